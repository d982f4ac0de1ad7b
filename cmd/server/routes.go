package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/delologroup/site/internal/handlers"
	"github.com/delologroup/site/internal/middleware"
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(middleware.RequestID(), logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS())

	healthHandler := handlers.NewHealthHandler(svc.db)
	r.GET("/health", healthHandler.CheckHealth)

	metricsHandler := handlers.NewMetricsHandler(svc.db, svc.mediaService)
	r.GET("/metrics", metricsHandler.Metrics)

	// Uploaded media is public
	r.Static(svc.cfg.Upload.URLPrefix, svc.cfg.Upload.Dir)

	authHandler := handlers.NewAuthHandler(svc.db, svc.cfg)
	memberHandler := handlers.NewMemberHandler(svc.db)
	publicationHandler := handlers.NewPublicationHandler(svc.db)
	newsHandler := handlers.NewNewsHandler(svc.db)
	lectureHandler := handlers.NewLectureHandler(svc.db)
	candidateHandler := handlers.NewCandidateHandler(svc.db)
	contentHandler := handlers.NewSiteContentHandler(svc.db)
	mediaHandler := handlers.NewMediaHandler(svc.mediaService)
	systemLogHandler := handlers.NewSystemLogHandler(svc.db)
	dashboardHandler := handlers.NewDashboardHandler(svc.db)
	searchHandler := handlers.NewSearchHandler(svc.db)

	api := r.Group("/api")
	{
		// Public
		api.POST("/login", authHandler.Login)

		api.GET("/members", memberHandler.List)
		api.GET("/members/:id", memberHandler.GetByID)
		api.GET("/publications", publicationHandler.List)
		api.GET("/news", newsHandler.List)
		api.GET("/news/:id", newsHandler.GetByID)
		api.GET("/lectures", lectureHandler.List)
		api.GET("/site-content", contentHandler.List)
		api.GET("/site-content/:key", contentHandler.Get)
		api.POST("/candidates", candidateHandler.Create)
		api.GET("/search", searchHandler.Search)

		// Protected
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		protected.Use(middleware.AuditLog(services.NewSystemLogService(svc.db)))
		{
			protected.GET("/verify-token", authHandler.VerifyToken)
			protected.GET("/auth/me", authHandler.GetCurrentUser)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			protected.POST("/members", memberHandler.Create)
			protected.PUT("/members/:id", memberHandler.Update)
			protected.DELETE("/members/:id", memberHandler.Delete)

			protected.POST("/publications", publicationHandler.Create)
			protected.PUT("/publications/:id", publicationHandler.Update)
			protected.DELETE("/publications/:id", publicationHandler.Delete)

			protected.POST("/news", newsHandler.Create)
			protected.PUT("/news/:id", newsHandler.Update)
			protected.DELETE("/news/:id", newsHandler.Delete)

			protected.POST("/lectures", lectureHandler.Create)
			protected.PUT("/lectures/:id", lectureHandler.Update)
			protected.DELETE("/lectures/:id", lectureHandler.Delete)

			protected.GET("/candidates", candidateHandler.List)
			protected.DELETE("/candidates/:id", candidateHandler.Delete)

			protected.POST("/site-content", contentHandler.Save)
			protected.PUT("/site-content/:key", contentHandler.Put)
			protected.DELETE("/site-content/:key", contentHandler.Delete)

			protected.POST("/upload", mediaHandler.Upload)
			protected.GET("/media", mediaHandler.List)

			protected.GET("/system-logs", systemLogHandler.List)
			protected.GET("/system-logs/modules", systemLogHandler.GetModules)
			protected.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
		}
	}

	if svc.cfg.Server.StaticDir != "" {
		r.NoRoute(spaHandler(svc.cfg.Server.StaticDir))
	}
}

// spaHandler serves files from the built frontend, falling back to
// index.html so client-side routes resolve. API paths keep their 404.
func spaHandler(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(index)
	}
}
