package services

import (
	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteContentService struct {
	db *gorm.DB
}

func NewSiteContentService(db *gorm.DB) *SiteContentService {
	return &SiteContentService{db: db}
}

type SiteContentRequest struct {
	Key       string `json:"key"`
	ContentPT string `json:"content_pt"`
	ContentEN string `json:"content_en"`
}

func (s *SiteContentService) List() ([]models.SiteContent, error) {
	contents := []models.SiteContent{}
	if err := s.db.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (s *SiteContentService) Get(key string) (*models.SiteContent, error) {
	var content models.SiteContent
	if err := s.db.Where(map[string]interface{}{"key": key}).First(&content).Error; err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFound("Content not found")
		}
		return nil, err
	}
	return &content, nil
}

// Upsert inserts the fragment or, when the key exists, replaces both texts.
func (s *SiteContentService) Upsert(req *SiteContentRequest) error {
	if req.Key == "" {
		return response.NewBadRequest("key is required")
	}

	content := models.SiteContent{
		Key:       req.Key,
		ContentPT: req.ContentPT,
		ContentEN: req.ContentEN,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_pt", "content_en"}),
	}).Create(&content).Error
}

func (s *SiteContentService) Delete(key string) (int64, error) {
	result := s.db.Where(map[string]interface{}{"key": key}).Delete(&models.SiteContent{})
	return result.RowsAffected, result.Error
}
