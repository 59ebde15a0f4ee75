package config

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabaseClient opens the sqlite engine behind cfg.DatabaseDSN. Schema
// creation belongs to the repository.
func NewDatabaseClient(cfg Config, logger zerolog.Logger) (*gorm.DB, error) {
	sqlLog := logger.With().Str("component", "sql").Logger()

	level := gormlogger.Silent
	if cfg.DatabaseEcho {
		level = gormlogger.Info
	}

	return gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: gormlogger.New(&sqlLog, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
}
