package services

import (
	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/response"
	"gorm.io/gorm"
)

type NewsService struct {
	db *gorm.DB
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{db: db}
}

// NewsListRequest narrows the list only when Status is given. The plain
// list includes drafts; hiding them is left to the public client.
type NewsListRequest struct {
	Status string `form:"status"`
}

type NewsRequest struct {
	TitlePT   string  `json:"title_pt"`
	TitleEN   string  `json:"title_en"`
	ContentPT string  `json:"content_pt"`
	ContentEN string  `json:"content_en"`
	Date      string  `json:"date" binding:"omitempty,isodate"`
	ImageURL  string  `json:"image_url"`
	Category  *string `json:"category"`
	Status    string  `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r *NewsRequest) toModel() models.News {
	return models.News{
		TitlePT:   r.TitlePT,
		TitleEN:   r.TitleEN,
		ContentPT: r.ContentPT,
		ContentEN: r.ContentEN,
		Date:      r.Date,
		ImageURL:  r.ImageURL,
		Category:  r.Category,
		Status:    r.Status,
	}
}

func (s *NewsService) List(req *NewsListRequest) ([]models.News, error) {
	news := []models.News{}
	query := s.db.Model(&models.News{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if err := query.Order("date DESC").Order("id DESC").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) GetByID(id uint) (*models.News, error) {
	var item models.News
	if err := s.db.First(&item, id).Error; err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFound("News not found")
		}
		return nil, err
	}
	return &item, nil
}

func (s *NewsService) Create(req *NewsRequest) (uint, error) {
	item := req.toModel()
	if err := s.db.Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *NewsService) Update(id uint, req *NewsRequest) (int64, error) {
	item := req.toModel()
	return replaceByID(s.db, &item, id)
}

func (s *NewsService) Delete(id uint) (int64, error) {
	return deleteByID(s.db, &models.News{}, id)
}
