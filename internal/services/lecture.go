package services

import (
	"github.com/delologroup/site/internal/models"
	"gorm.io/gorm"
)

type LectureService struct {
	db *gorm.DB
}

func NewLectureService(db *gorm.DB) *LectureService {
	return &LectureService{db: db}
}

type LectureRequest struct {
	Year        string  `json:"year"`
	Institution string  `json:"institution"`
	CountryPT   *string `json:"country_pt"`
	CountryEN   *string `json:"country_en"`
	TitlePT     *string `json:"title_pt"`
	TitleEN     *string `json:"title_en"`
}

func (r *LectureRequest) toModel() models.Lecture {
	return models.Lecture{
		Year:        r.Year,
		Institution: r.Institution,
		CountryPT:   r.CountryPT,
		CountryEN:   r.CountryEN,
		TitlePT:     r.TitlePT,
		TitleEN:     r.TitleEN,
	}
}

func (s *LectureService) List() ([]models.Lecture, error) {
	lectures := []models.Lecture{}
	if err := s.db.Order("year DESC").Order("id DESC").Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

func (s *LectureService) Create(req *LectureRequest) (uint, error) {
	lecture := req.toModel()
	if err := s.db.Create(&lecture).Error; err != nil {
		return 0, err
	}
	return lecture.ID, nil
}

func (s *LectureService) Update(id uint, req *LectureRequest) (int64, error) {
	lecture := req.toModel()
	return replaceByID(s.db, &lecture, id)
}

func (s *LectureService) Delete(id uint) (int64, error) {
	return deleteByID(s.db, &models.Lecture{}, id)
}
