package models

// Publication types select the rendering template on the client.
const (
	PubTypeArticle    = "Article"
	PubTypeBook       = "Book"
	PubTypePatent     = "Patent"
	PubTypeCover      = "Cover"
	PubTypeConference = "Conference"
)

// Publication is a paper, book, patent, journal cover or conference item.
// DepositDate and GrantDate are only meaningful for patents.
type Publication struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	TitlePT     string  `gorm:"column:title_pt;type:text" json:"title_pt"`
	TitleEN     string  `gorm:"column:title_en;type:text" json:"title_en"`
	Journal     string  `gorm:"size:300" json:"journal"`
	Year        int     `gorm:"index" json:"year"`
	DOI         string  `gorm:"column:doi;size:300" json:"doi"`
	Authors     string  `gorm:"type:text" json:"authors"`
	ImageURL    *string `gorm:"size:500" json:"image_url"`
	Volume      *string `gorm:"size:50" json:"volume"`
	Pages       *string `gorm:"size:50" json:"pages"`
	PubType     *string `gorm:"size:20" json:"pub_type"`
	DepositDate *string `gorm:"size:20" json:"deposit_date"`
	GrantDate   *string `gorm:"size:20" json:"grant_date"`
}

func (Publication) TableName() string { return "publications" }
