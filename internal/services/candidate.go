package services

import (
	"time"

	"github.com/delologroup/site/internal/models"
	"gorm.io/gorm"
)

type CandidateService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{db: db, now: time.Now}
}

// CreateCandidateRequest is what the public application form posts.
type CreateCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

// List returns applications newest first.
func (s *CandidateService) List() ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	if err := s.db.Order("date DESC").Order("id DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (s *CandidateService) Create(req *CreateCandidateRequest) (uint, error) {
	candidate := models.Candidate{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Message:  req.Message,
		Date:     s.now(),
	}
	if err := s.db.Create(&candidate).Error; err != nil {
		return 0, err
	}
	return candidate.ID, nil
}

func (s *CandidateService) Delete(id uint) (int64, error) {
	return deleteByID(s.db, &models.Candidate{}, id)
}
