// Package usecase implements the business logic for watchlist operations.
package usecase

import (
	"context"

	"market_terminal/internal/feature/watchlist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for watchlist symbols.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// WatchlistUsecase provides business logic for watchlist operations.
type WatchlistUsecase struct {
	repo SymbolRepository
}

// NewWatchlistUsecase creates a new WatchlistUsecase with the given
// repository.
func NewWatchlistUsecase(r SymbolRepository) *WatchlistUsecase {
	return &WatchlistUsecase{repo: r}
}

// ListActiveSymbols returns all active watchlist entries in display order.
func (u *WatchlistUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns the active ticker codes in display order; this is
// what the quote resolver consumes.
func (u *WatchlistUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}
