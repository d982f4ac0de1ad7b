package services

import (
	"time"

	"github.com/delologroup/site/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStatsRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type DashboardStats struct {
	Members      int64 `json:"members"`
	Publications int64 `json:"publications"`
	News         int64 `json:"news"`
	Lectures     int64 `json:"lectures"`
	Candidates   int64 `json:"candidates"`
}

// GroupCount is one bucket of a GROUP BY breakdown.
type GroupCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DashboardResponse struct {
	Stats         DashboardStats `json:"stats"`
	MembersByType []GroupCount   `json:"members_by_type"`
	PubsByType    []GroupCount   `json:"publications_by_type"`
	NewsByStatus  []GroupCount   `json:"news_by_status"`
	NewCandidates int64          `json:"new_candidates"`
	PeriodStart   time.Time      `json:"period_start"`
	PeriodEnd     time.Time      `json:"period_end"`
}

// GetStats counts every content table and the applications received in the
// requested window, which defaults to the last 30 days.
func (s *DashboardService) GetStats(req *DashboardStatsRequest) (*DashboardResponse, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -30)
	endDate := now

	if req.StartDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local); err == nil {
			startDate = t
		}
	}
	if req.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local); err == nil {
			endDate = t.Add(24*time.Hour - time.Second)
		}
	}

	resp := &DashboardResponse{
		MembersByType: []GroupCount{},
		PubsByType:    []GroupCount{},
		NewsByStatus:  []GroupCount{},
		PeriodStart:   startDate,
		PeriodEnd:     endDate,
	}

	for _, c := range []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Member{}, &resp.Stats.Members},
		{&models.Publication{}, &resp.Stats.Publications},
		{&models.News{}, &resp.Stats.News},
		{&models.Lecture{}, &resp.Stats.Lectures},
		{&models.Candidate{}, &resp.Stats.Candidates},
	} {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&models.Candidate{}).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Count(&resp.NewCandidates).Error; err != nil {
		return nil, err
	}

	if err := s.groupCount(&models.Member{}, "type", &resp.MembersByType); err != nil {
		return nil, err
	}
	if err := s.groupCount(&models.Publication{}, "COALESCE(pub_type, 'Article')", &resp.PubsByType); err != nil {
		return nil, err
	}
	if err := s.groupCount(&models.News{}, "status", &resp.NewsByStatus); err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *DashboardService) groupCount(model interface{}, expr string, dest *[]GroupCount) error {
	return s.db.Model(model).
		Select(expr + " AS label, COUNT(*) AS count").
		Group(expr).
		Order("count DESC").
		Order("label").
		Scan(dest).Error
}
