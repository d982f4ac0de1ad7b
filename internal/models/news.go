package models

const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
)

// News is a dated post. Only published rows are meant for the public site,
// but the list endpoint returns every row.
type News struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	TitlePT   string  `gorm:"column:title_pt;size:300" json:"title_pt"`
	TitleEN   string  `gorm:"column:title_en;size:300" json:"title_en"`
	ContentPT string  `gorm:"column:content_pt;type:text" json:"content_pt"`
	ContentEN string  `gorm:"column:content_en;type:text" json:"content_en"`
	Date      string  `gorm:"size:20;index" json:"date"` // YYYY-MM-DD
	ImageURL  string  `gorm:"size:500" json:"image_url"`
	Category  *string `gorm:"size:100" json:"category"`
	Status    string  `gorm:"size:20;index" json:"status"`
}

func (News) TableName() string { return "news" }
