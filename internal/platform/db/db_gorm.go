// Package db opens the sqlite database that holds the watchlist.
package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_terminal/internal/feature/watchlist/domain/entity"
)

// OpenDB opens (creating if needed) the sqlite file at path and runs the
// schema migration. The watchlist is the only persisted state, so a missing
// or broken database is fatal at boot rather than a degraded mode.
func OpenDB(path string) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("sqlite open failed (%s): %v", path, err)
	}

	if err := gdb.AutoMigrate(&entity.Symbol{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return gdb
}
