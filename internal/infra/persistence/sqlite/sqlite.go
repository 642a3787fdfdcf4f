// Package sqlite opens the embedded SQLite store used for single-node installs and tests.
package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	sqliteDriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const memoryPath = ":memory:"

// Open opens the database file at path with foreign keys enforced. SQLite allows a
// single writer, so the pool is limited to one connection and transactions serialize.
func Open(path string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	cfg.TranslateError = true

	db, err := gorm.Open(sqliteDriver.Open(dsn(path)), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %q", path)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "failed to enable sqlite foreign keys")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// OpenInMemory opens a private in-memory database with a silent logger.
func OpenInMemory() (*gorm.DB, error) {
	return Open(memoryPath, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func dsn(path string) string {
	if path == "" || path == memoryPath {
		return "file::memory:?_foreign_keys=on"
	}
	if strings.Contains(path, "?") {
		return path
	}

	return path + "?_foreign_keys=on&_busy_timeout=5000"
}
