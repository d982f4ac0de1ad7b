package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CandidateHandler struct {
	candidateService *services.CandidateService
}

func NewCandidateHandler(db *gorm.DB) *CandidateHandler {
	return &CandidateHandler{
		candidateService: services.NewCandidateService(db),
	}
}

// List returns applications, admin only
// GET /api/candidates
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, candidates)
}

// Create stores an application from the public form
// POST /api/candidates
func (h *CandidateHandler) Create(c *gin.Context) {
	var req services.CreateCandidateRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.candidateService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "candidate")
	if !ok {
		return
	}

	changes, err := h.candidateService.Delete(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}
