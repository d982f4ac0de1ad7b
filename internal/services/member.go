package services

import (
	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/response"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

type MemberListRequest struct {
	Type string `form:"type"`
}

// MemberRequest is the full writable field set of a member. PUT bodies
// replace the stored row with exactly these values.
type MemberRequest struct {
	Name             string  `json:"name"`
	RolePT           string  `json:"role_pt"`
	RoleEN           string  `json:"role_en"`
	BioPT            string  `json:"bio_pt"`
	BioEN            string  `json:"bio_en"`
	ImageURL         string  `json:"image_url"`
	Type             string  `json:"type" binding:"omitempty,oneof=pi current alumni"`
	OrderIndex       int     `json:"order_index"`
	SupervisionType  string  `json:"supervision_type" binding:"omitempty,oneof=advisor co_advisor"`
	Email            *string `json:"email"`
	Lattes           *string `json:"lattes"`
	Linkedin         *string `json:"linkedin"`
	Orcid            *string `json:"orcid"`
	GoogleScholar    *string `json:"google_scholar"`
	CurrentWorkplace *string `json:"current_workplace"`
}

func (r *MemberRequest) toModel() models.Member {
	memberType := r.Type
	if memberType == "" {
		memberType = models.MemberTypeCurrent
	}
	supervision := r.SupervisionType
	if supervision == "" {
		supervision = models.SupervisionAdvisor
	}

	return models.Member{
		Name:             r.Name,
		RolePT:           r.RolePT,
		RoleEN:           r.RoleEN,
		BioPT:            r.BioPT,
		BioEN:            r.BioEN,
		ImageURL:         r.ImageURL,
		Type:             memberType,
		OrderIndex:       r.OrderIndex,
		SupervisionType:  supervision,
		Email:            r.Email,
		Lattes:           r.Lattes,
		Linkedin:         r.Linkedin,
		Orcid:            r.Orcid,
		GoogleScholar:    r.GoogleScholar,
		CurrentWorkplace: r.CurrentWorkplace,
	}
}

// List returns all members ordered by order_index then id. When a type is
// given, only that section is returned in display order: advisors first,
// then co-advisors, each by order_index.
func (s *MemberService) List(req *MemberListRequest) ([]models.Member, error) {
	members := []models.Member{}
	query := s.db.Model(&models.Member{})

	if req.Type != "" {
		query = query.Where("type = ?", req.Type).
			Order("CASE WHEN supervision_type = 'co_advisor' THEN 1 ELSE 0 END")
	}

	if err := query.Order("order_index ASC").Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MemberService) GetByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, id).Error; err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFound("Member not found")
		}
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) Create(req *MemberRequest) (uint, error) {
	member := req.toModel()
	if err := s.db.Create(&member).Error; err != nil {
		return 0, err
	}
	return member.ID, nil
}

func (s *MemberService) Update(id uint, req *MemberRequest) (int64, error) {
	member := req.toModel()
	return replaceByID(s.db, &member, id)
}

func (s *MemberService) Delete(id uint) (int64, error) {
	return deleteByID(s.db, &models.Member{}, id)
}
