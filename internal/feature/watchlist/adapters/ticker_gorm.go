// Package adapters provides the repository implementations for the
// watchlist feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stock_monitor/internal/feature/watchlist/domain/entity"
	"stock_monitor/internal/feature/watchlist/usecase"
)

// tickerGorm is the GORM implementation of the TickerRepository interface.
type tickerGorm struct {
	db *gorm.DB
}

var _ usecase.TickerRepository = (*tickerGorm)(nil)

// NewTickerRepository creates a tickerGorm repository with the given DB handle.
func NewTickerRepository(db *gorm.DB) *tickerGorm {
	return &tickerGorm{db: db}
}

// Insert persists a new ticker. A uniqueness violation on the symbol column
// is mapped to usecase.ErrTickerExists; the index is the authoritative guard
// when concurrent creates race past the usecase pre-check.
func (r *tickerGorm) Insert(ctx context.Context, t *entity.StockTicker) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrTickerExists
		}
		return err
	}
	return nil
}

// FindByTicker retrieves a ticker by exact match on the normalized symbol.
// Returns usecase.ErrTickerNotFound when no record exists.
func (r *tickerGorm) FindByTicker(ctx context.Context, ticker string) (*entity.StockTicker, error) {
	var t entity.StockTicker
	if err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTickerNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns tickers ordered ascending by symbol, excluding inactive ones
// when activeOnly is true.
func (r *tickerGorm) List(ctx context.Context, activeOnly bool) ([]entity.StockTicker, error) {
	q := r.db.WithContext(ctx).Order("ticker ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var tickers []entity.StockTicker
	if err := q.Find(&tickers).Error; err != nil {
		return nil, err
	}
	return tickers, nil
}

// Update persists the current state of an existing ticker.
func (r *tickerGorm) Update(ctx context.Context, t *entity.StockTicker) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes a ticker permanently.
func (r *tickerGorm) Delete(ctx context.Context, t *entity.StockTicker) error {
	return r.db.WithContext(ctx).Delete(t).Error
}
