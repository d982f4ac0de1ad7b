package models

// SiteContent is an editable bilingual page fragment addressed by key.
type SiteContent struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Key       string `gorm:"uniqueIndex;size:100;not null" json:"key"`
	ContentPT string `gorm:"column:content_pt;type:text" json:"content_pt"`
	ContentEN string `gorm:"column:content_en;type:text" json:"content_en"`
}

func (SiteContent) TableName() string { return "site_contents" }
