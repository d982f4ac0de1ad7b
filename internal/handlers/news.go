package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(db *gorm.DB) *NewsHandler {
	return &NewsHandler{
		newsService: services.NewNewsService(db),
	}
}

// List returns news items, drafts included unless ?status= narrows it
// GET /api/news
func (h *NewsHandler) List(c *gin.Context) {
	var req services.NewsListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, err := h.newsService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// GetByID returns a single news item
// GET /api/news/:id
func (h *NewsHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "news")
	if !ok {
		return
	}

	item, err := h.newsService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req services.NewsRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.newsService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, id)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "news")
	if !ok {
		return
	}

	var req services.NewsRequest
	if !bindBody(c, &req) {
		return
	}

	changes, err := h.newsService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "news")
	if !ok {
		return
	}

	changes, err := h.newsService.Delete(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}
