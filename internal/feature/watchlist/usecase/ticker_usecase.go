package usecase

import (
	"context"
	"errors"
	"time"

	"stock_monitor/internal/feature/watchlist/domain/entity"
)

// TickerRepository abstracts the persistence layer for watchlist tickers.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type TickerRepository interface {
	// Insert persists a new ticker. Returns ErrTickerExists when the
	// normalized symbol is already stored.
	Insert(ctx context.Context, t *entity.StockTicker) error

	// FindByTicker retrieves a ticker by its normalized symbol.
	// Returns ErrTickerNotFound when absent.
	FindByTicker(ctx context.Context, ticker string) (*entity.StockTicker, error)

	// List returns tickers ordered ascending by symbol. When activeOnly is
	// true, inactive tickers are excluded.
	List(ctx context.Context, activeOnly bool) ([]entity.StockTicker, error)

	// Update persists the mutated fields of an existing ticker.
	Update(ctx context.Context, t *entity.StockTicker) error

	// Delete removes a ticker permanently.
	Delete(ctx context.Context, t *entity.StockTicker) error
}

// MarketRepository abstracts the external market data provider used to
// validate symbols at creation time.
type MarketRepository interface {
	// LookupName resolves a symbol to its company display name.
	// Any failure (unknown symbol, provider error, transport error) is
	// returned as a non-nil error.
	LookupName(ctx context.Context, symbol string) (string, error)
}

// TickerUsecase provides the watchlist business logic.
type TickerUsecase struct {
	repo   TickerRepository
	market MarketRepository
}

// NewTickerUsecase creates a TickerUsecase with the given repository and
// market data provider.
func NewTickerUsecase(repo TickerRepository, market MarketRepository) *TickerUsecase {
	return &TickerUsecase{repo: repo, market: market}
}

// AddTicker validates the symbol against the external provider and stores a
// new active ticker. The symbol must already be normalized by the caller.
//
// Returns ErrTickerExists for duplicates and ErrInvalidTicker when the
// external lookup fails for any reason.
func (u *TickerUsecase) AddTicker(ctx context.Context, ticker string) (*entity.StockTicker, error) {
	_, err := u.repo.FindByTicker(ctx, ticker)
	if err == nil {
		return nil, ErrTickerExists
	}
	if !errors.Is(err, ErrTickerNotFound) {
		return nil, err
	}

	name, err := u.market.LookupName(ctx, ticker)
	if err != nil {
		// Unknown symbol and provider outage are deliberately collapsed
		// into the same outcome.
		return nil, ErrInvalidTicker
	}

	now := time.Now().UTC()
	t := &entity.StockTicker{
		Ticker:      ticker,
		CompanyName: &name,
		IsActive:    true,
		AddedAt:     now,
		LastUpdated: now,
	}
	if err := u.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTickers returns tickers ordered ascending by symbol, optionally
// restricted to active ones.
func (u *TickerUsecase) ListTickers(ctx context.Context, activeOnly bool) ([]entity.StockTicker, error) {
	return u.repo.List(ctx, activeOnly)
}

// GetTicker returns a single ticker by its normalized symbol.
func (u *TickerUsecase) GetTicker(ctx context.Context, ticker string) (*entity.StockTicker, error) {
	return u.repo.FindByTicker(ctx, ticker)
}

// UpdateTicker applies the optional isActive change and refreshes
// LastUpdated, even when no field actually changed.
func (u *TickerUsecase) UpdateTicker(ctx context.Context, ticker string, isActive *bool) (*entity.StockTicker, error) {
	t, err := u.repo.FindByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if isActive != nil {
		t.IsActive = *isActive
	}
	t.LastUpdated = time.Now().UTC()

	if err := u.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RemoveTicker deletes a ticker permanently.
func (u *TickerUsecase) RemoveTicker(ctx context.Context, ticker string) error {
	t, err := u.repo.FindByTicker(ctx, ticker)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, t)
}
