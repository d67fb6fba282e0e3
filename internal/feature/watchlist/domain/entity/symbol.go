// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Symbol is one watchlist entry. The watchlist drives which tickers the
// dashboard resolves; SortKey controls display order and IsActive lets a
// symbol be retired without deleting its row.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
