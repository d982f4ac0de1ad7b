package models

// Lecture is an invited talk given by the group.
type Lecture struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Year        string  `gorm:"size:10;index" json:"year"`
	Institution string  `gorm:"size:300" json:"institution"`
	CountryPT   *string `gorm:"column:country_pt;size:100" json:"country_pt"`
	CountryEN   *string `gorm:"column:country_en;size:100" json:"country_en"`
	TitlePT     *string `gorm:"column:title_pt;type:text" json:"title_pt"`
	TitleEN     *string `gorm:"column:title_en;type:text" json:"title_en"`
}

func (Lecture) TableName() string { return "lectures" }
