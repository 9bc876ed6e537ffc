// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// StockTicker represents a monitored ticker symbol.
// Ticker is stored normalized (uppercase, trimmed) and is unique across all
// records; the unique index is the authoritative guard against concurrent
// duplicate creation. AddedAt is set once at creation; LastUpdated is
// refreshed on every successful update.
type StockTicker struct {
	ID          uint      `gorm:"primaryKey"`
	Ticker      string    `gorm:"size:20;not null;uniqueIndex"`
	CompanyName *string   `gorm:"size:255"`
	IsActive    bool      `gorm:"not null;default:true"`
	AddedAt     time.Time `gorm:"not null"`
	LastUpdated time.Time `gorm:"not null"`
}
