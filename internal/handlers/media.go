package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/logger"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload stores the multipart "image" field and returns its public URL
// POST /api/upload
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}

	name := h.mediaService.StoredName(file.Filename)
	if err := c.SaveUploadedFile(file, h.mediaService.Path(name)); err != nil {
		response.Error(c, err)
		return
	}

	logger.Info().
		Str("file", name).
		Int64("size", file.Size).
		Str("request_id", c.GetString(logger.RequestIDKey)).
		Msg("media uploaded")

	response.Success(c, gin.H{"url": h.mediaService.URL(name)})
}

// List returns every stored file, newest first
// GET /api/media
func (h *MediaHandler) List(c *gin.Context) {
	files, err := h.mediaService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, files)
}
