package handlers

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MetricsHandler struct {
	db           *gorm.DB
	mediaService *services.MediaService
	startTime    time.Time
}

func NewMetricsHandler(db *gorm.DB, mediaService *services.MediaService) *MetricsHandler {
	return &MetricsHandler{db: db, mediaService: mediaService, startTime: time.Now()}
}

// Metrics returns Prometheus-compatible text format metrics.
// GET /metrics
func (h *MetricsHandler) Metrics(c *gin.Context) {
	var b strings.Builder

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeGauge(&b, "delolo_uptime_seconds", "Time since server start in seconds", time.Since(h.startTime).Seconds())
	writeGauge(&b, "delolo_goroutines", "Number of active goroutines", float64(runtime.NumGoroutine()))
	writeGauge(&b, "delolo_memory_alloc_bytes", "Current heap allocation in bytes", float64(m.Alloc))
	writeGauge(&b, "delolo_gc_runs_total", "Total number of GC runs", float64(m.NumGC))

	if sqlDB, err := h.db.DB(); err == nil {
		stats := sqlDB.Stats()
		writeGauge(&b, "delolo_db_open_connections", "Number of open DB connections", float64(stats.OpenConnections))
		writeGauge(&b, "delolo_db_in_use_connections", "Number of in-use DB connections", float64(stats.InUse))
	}

	for _, t := range []struct {
		name  string
		model interface{}
	}{
		{"members", &models.Member{}},
		{"publications", &models.Publication{}},
		{"news", &models.News{}},
		{"lectures", &models.Lecture{}},
		{"candidates", &models.Candidate{}},
		{"site_contents", &models.SiteContent{}},
	} {
		var n int64
		h.db.Model(t.model).Count(&n)
		writeGauge(&b, "delolo_"+t.name+"_total", "Rows in the "+t.name+" table", float64(n))
	}

	var drafts int64
	h.db.Model(&models.News{}).Where("status = ?", models.NewsStatusDraft).Count(&drafts)
	writeGauge(&b, "delolo_news_drafts", "News items still in draft", float64(drafts))

	if files, err := h.mediaService.List(); err == nil {
		writeGauge(&b, "delolo_media_files", "Files in the upload directory", float64(len(files)))
	}

	c.Data(200, "text/plain; version=0.0.4; charset=utf-8", []byte(b.String()))
}

func writeGauge(b *strings.Builder, name, help string, value float64) {
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s gauge\n", name)
	fmt.Fprintf(b, "%s %g\n\n", name, value)
}
