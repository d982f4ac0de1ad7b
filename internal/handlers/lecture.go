package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LectureHandler struct {
	lectureService *services.LectureService
}

func NewLectureHandler(db *gorm.DB) *LectureHandler {
	return &LectureHandler{
		lectureService: services.NewLectureService(db),
	}
}

func (h *LectureHandler) List(c *gin.Context) {
	lectures, err := h.lectureService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, lectures)
}

func (h *LectureHandler) Create(c *gin.Context) {
	var req services.LectureRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.lectureService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

func (h *LectureHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "lecture")
	if !ok {
		return
	}

	var req services.LectureRequest
	if !bindBody(c, &req) {
		return
	}

	changes, err := h.lectureService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}

func (h *LectureHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "lecture")
	if !ok {
		return
	}

	changes, err := h.lectureService.Delete(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}
