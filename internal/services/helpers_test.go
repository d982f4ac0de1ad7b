package services

import (
	"path/filepath"
	"testing"

	"github.com/delologroup/site/internal/config"
	"github.com/delologroup/site/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.sqlite"),
	}
	db, err := models.Open(cfg, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }
