package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-logger/internal/model"
)

// ErrEmptyDSN is returned by NewDB when no database location is given.
var ErrEmptyDSN = errors.New("database location is empty")

// NewDB opens the task log at dsn and creates the task table on first use.
// SQL diagnostics go to stderr at the given level.
func NewDB(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open db: %w", ErrEmptyDSN)
	}
	if err := makeParentDir(dsn); err != nil {
		return nil, err
	}

	sqlLog := logger.New(log.New(os.Stderr, "", log.LstdFlags), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: sqlLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return db, nil
}

// makeParentDir creates the directory holding a file-backed database.
// In-memory DSNs are left alone.
func makeParentDir(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
