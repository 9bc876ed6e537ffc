// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

import (
	"time"

	"stock_monitor/internal/feature/watchlist/domain/entity"
)

// TickerCreateRequest is the request body for adding a ticker.
type TickerCreateRequest struct {
	Ticker string `json:"ticker" binding:"required"`
}

// TickerUpdateRequest is the request body for updating a ticker.
// IsActive is optional; absent means unchanged.
type TickerUpdateRequest struct {
	IsActive *bool `json:"is_active"`
}

// TickerResponse is the wire representation of a watchlist ticker.
// Timestamps serialize as RFC 3339.
type TickerResponse struct {
	ID          uint      `json:"id"`
	Ticker      string    `json:"ticker"`
	CompanyName *string   `json:"company_name"`
	IsActive    bool      `json:"is_active"`
	AddedAt     time.Time `json:"added_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTickerResponse converts a domain ticker into its wire representation.
func NewTickerResponse(t *entity.StockTicker) TickerResponse {
	return TickerResponse{
		ID:          t.ID,
		Ticker:      t.Ticker,
		CompanyName: t.CompanyName,
		IsActive:    t.IsActive,
		AddedAt:     t.AddedAt,
		LastUpdated: t.LastUpdated,
	}
}
