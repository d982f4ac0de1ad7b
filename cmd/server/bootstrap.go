package main

import (
	"database/sql"

	"github.com/delologroup/site/internal/config"
	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/internal/utils"
	"github.com/delologroup/site/internal/validation"
	"github.com/delologroup/site/pkg/logger"
	"gorm.io/gorm"
)

// appServices holds the dependencies shared by the route table.
type appServices struct {
	cfg          *config.Config
	db           *gorm.DB
	sqlDB        *sql.DB
	mediaService *services.MediaService
}

// bootstrap opens the database, migrates and seeds it, and prepares the
// upload directory. Any failure here is fatal.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := validation.Register(); err != nil {
		logger.Fatalf("Failed to register validators: %v", err)
	}

	db, err := models.Open(&cfg.Database, logger.Gorm(cfg.Server.Mode))
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Debug().Str("driver", cfg.Database.Driver).Msg("Schema migrated")

	authService := services.NewAuthService(db, &cfg.JWT)
	if err := authService.EnsureAdmin(&cfg.Admin); err != nil {
		logger.Fatalf("Failed to create admin user: %v", err)
	}

	if err := models.SeedDefaultData(db); err != nil {
		logger.Fatalf("Failed to seed default data: %v", err)
	}

	mediaService := services.NewMediaService(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err := mediaService.EnsureDir(); err != nil {
		logger.Fatalf("Failed to create upload directory: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("Failed to get database handle: %v", err)
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Str("uploads", cfg.Upload.Dir).
		Msg("Bootstrap complete")

	return &appServices{
		cfg:          cfg,
		db:           db,
		sqlDB:        sqlDB,
		mediaService: mediaService,
	}
}

// shutdown releases the database connection pool.
func (s *appServices) shutdown() {
	if err := s.sqlDB.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close database")
		return
	}
	logger.Info().Msg("Database closed")
}
