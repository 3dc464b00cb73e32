// Package storage owns the sqlite credential store.
package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	platformerrors "dugout-server-go/internal/platform/errors"
)

// Open initializes the sqlite database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, platformerrors.Wrap(
				platformerrors.KindStorage, "storage.open", "create data directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindStorage, "storage.open", "open database", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindStorage, "storage.open", "migrate schema", err)
	}

	return db, nil
}
