// Package db opens the application database via GORM.
package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_monitor/internal/feature/watchlist/domain/entity"
	"stock_monitor/internal/platform/config"
	"stock_monitor/internal/platform/logger"
)

// Open connects to the configured database and runs migrations.
//
// The sqlite driver (default) opens a local file and is ready immediately.
// Postgres connections are retried for up to 60 seconds to tolerate the
// database coming up alongside the service.
//
// TranslateError is enabled so driver-specific uniqueness violations surface
// as gorm.ErrDuplicatedKey regardless of backend.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", cfg.SQLitePath, err)
		}
	case "postgres":
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), gcfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				return nil, fmt.Errorf("postgres connect failed after 60s: %w", err)
			}
			logger.L().Warn().Err(err).Msg("postgres connect failed, retrying")
			time.Sleep(3 * time.Second)
		}
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	if err := db.AutoMigrate(&entity.StockTicker{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
