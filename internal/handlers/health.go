package handlers

import (
	"net/http"

	"github.com/delologroup/site/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// CheckHealth reports database reachability and content row counts.
// GET /health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		status = "unhealthy"
		dbStatus = "error: " + err.Error()
		code = http.StatusServiceUnavailable
	}

	counts := gin.H{}
	if err == nil {
		for name, model := range map[string]interface{}{
			"members":      &models.Member{},
			"publications": &models.Publication{},
			"news":         &models.News{},
			"lectures":     &models.Lecture{},
		} {
			var n int64
			h.db.Model(model).Count(&n)
			counts[name] = n
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"service":  "delolo-site",
		"database": dbStatus,
		"counts":   counts,
	})
}
