// Package usecase implements the business logic for watchlist operations.
package usecase

import "errors"

var (
	// ErrTickerExists is returned when adding a ticker that is already on the
	// watchlist. The database unique index is the final arbiter, so this is
	// also returned when two concurrent creates race and one loses.
	ErrTickerExists = errors.New("ticker already exists")

	// ErrTickerNotFound is returned when a ticker is absent from the store.
	ErrTickerNotFound = errors.New("ticker not found")

	// ErrInvalidTicker is returned when the external provider cannot resolve
	// a symbol. Provider outages and transport failures are folded into this
	// error as well; clients cannot distinguish them.
	ErrInvalidTicker = errors.New("invalid ticker symbol")
)
