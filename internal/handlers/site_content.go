package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SiteContentHandler struct {
	contentService *services.SiteContentService
}

func NewSiteContentHandler(db *gorm.DB) *SiteContentHandler {
	return &SiteContentHandler{
		contentService: services.NewSiteContentService(db),
	}
}

func (h *SiteContentHandler) List(c *gin.Context) {
	contents, err := h.contentService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

// Get returns one fragment
// GET /api/site-content/:key
func (h *SiteContentHandler) Get(c *gin.Context) {
	content, err := h.contentService.Get(c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, content)
}

// Put upserts the fragment named in the path; a key in the body is ignored
// PUT /api/site-content/:key
func (h *SiteContentHandler) Put(c *gin.Context) {
	var req services.SiteContentRequest
	if !bindBody(c, &req) {
		return
	}
	req.Key = c.Param("key")
	h.upsert(c, &req)
}

// Save upserts the fragment named in the body
// POST /api/site-content
func (h *SiteContentHandler) Save(c *gin.Context) {
	var req services.SiteContentRequest
	if !bindBody(c, &req) {
		return
	}
	h.upsert(c, &req)
}

func (h *SiteContentHandler) upsert(c *gin.Context, req *services.SiteContentRequest) {
	if err := h.contentService.Upsert(req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"key": req.Key})
}

func (h *SiteContentHandler) Delete(c *gin.Context) {
	changes, err := h.contentService.Delete(c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Changes(c, changes)
}
