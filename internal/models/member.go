package models

// Member types partition the team page into sections.
const (
	MemberTypePI      = "pi"
	MemberTypeCurrent = "current"
	MemberTypeAlumni  = "alumni"
)

const (
	SupervisionAdvisor   = "advisor"
	SupervisionCoAdvisor = "co_advisor"
)

// Member is a person shown on the team page.
// OrderIndex and SupervisionType only drive display of non-PI members.
type Member struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `gorm:"size:200;not null" json:"name"`
	RolePT           string  `gorm:"column:role_pt;size:200" json:"role_pt"`
	RoleEN           string  `gorm:"column:role_en;size:200" json:"role_en"`
	BioPT            string  `gorm:"column:bio_pt;type:text" json:"bio_pt"`
	BioEN            string  `gorm:"column:bio_en;type:text" json:"bio_en"`
	ImageURL         string  `gorm:"size:500" json:"image_url"`
	Type             string  `gorm:"size:20;index;not null" json:"type"`
	OrderIndex       int     `gorm:"not null" json:"order_index"`
	SupervisionType  string  `gorm:"size:20" json:"supervision_type"`
	Email            *string `gorm:"size:255" json:"email"`
	Lattes           *string `gorm:"size:500" json:"lattes"`
	Linkedin         *string `gorm:"size:500" json:"linkedin"`
	Orcid            *string `gorm:"size:500" json:"orcid"`
	GoogleScholar    *string `gorm:"size:500" json:"google_scholar"`
	CurrentWorkplace *string `gorm:"size:300" json:"current_workplace"`
}

func (Member) TableName() string { return "members" }
