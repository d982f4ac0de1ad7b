package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PublicationHandler struct {
	publicationService *services.PublicationService
}

func NewPublicationHandler(db *gorm.DB) *PublicationHandler {
	return &PublicationHandler{
		publicationService: services.NewPublicationService(db),
	}
}

func (h *PublicationHandler) List(c *gin.Context) {
	publications, err := h.publicationService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, publications)
}

func (h *PublicationHandler) Create(c *gin.Context) {
	var req services.PublicationRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.publicationService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

func (h *PublicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "publication")
	if !ok {
		return
	}

	var req services.PublicationRequest
	if !bindBody(c, &req) {
		return
	}

	changes, err := h.publicationService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}

func (h *PublicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "publication")
	if !ok {
		return
	}

	changes, err := h.publicationService.Delete(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}
