package services

import (
	"github.com/delologroup/site/internal/models"
	"gorm.io/gorm"
)

type PublicationService struct {
	db *gorm.DB
}

func NewPublicationService(db *gorm.DB) *PublicationService {
	return &PublicationService{db: db}
}

type PublicationRequest struct {
	TitlePT     string  `json:"title_pt"`
	TitleEN     string  `json:"title_en"`
	Journal     string  `json:"journal"`
	Year        int     `json:"year"`
	DOI         string  `json:"doi"`
	Authors     string  `json:"authors"`
	ImageURL    *string `json:"image_url"`
	Volume      *string `json:"volume"`
	Pages       *string `json:"pages"`
	PubType     *string `json:"pub_type"`
	DepositDate *string `json:"deposit_date" binding:"omitempty,isodate"`
	GrantDate   *string `json:"grant_date" binding:"omitempty,isodate"`
}

func (r *PublicationRequest) toModel() models.Publication {
	return models.Publication{
		TitlePT:     r.TitlePT,
		TitleEN:     r.TitleEN,
		Journal:     r.Journal,
		Year:        r.Year,
		DOI:         r.DOI,
		Authors:     r.Authors,
		ImageURL:    r.ImageURL,
		Volume:      r.Volume,
		Pages:       r.Pages,
		PubType:     r.PubType,
		DepositDate: r.DepositDate,
		GrantDate:   r.GrantDate,
	}
}

// List returns every publication, most recent year first.
func (s *PublicationService) List() ([]models.Publication, error) {
	publications := []models.Publication{}
	if err := s.db.Order("year DESC").Order("id DESC").Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

func (s *PublicationService) Create(req *PublicationRequest) (uint, error) {
	publication := req.toModel()
	if err := s.db.Create(&publication).Error; err != nil {
		return 0, err
	}
	return publication.ID, nil
}

func (s *PublicationService) Update(id uint, req *PublicationRequest) (int64, error) {
	publication := req.toModel()
	return replaceByID(s.db, &publication, id)
}

func (s *PublicationService) Delete(id uint) (int64, error) {
	return deleteByID(s.db, &models.Publication{}, id)
}
