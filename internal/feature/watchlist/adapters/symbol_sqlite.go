// Package adapters provides repository implementations for the watchlist
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"market_terminal/internal/feature/watchlist/domain/entity"
	"market_terminal/internal/feature/watchlist/usecase"
)

// symbolSQLite is the sqlite implementation of SymbolRepository.
type symbolSQLite struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolSQLite)(nil)

// NewSymbolRepository creates a symbolSQLite repository on the given DB
// handle.
func NewSymbolRepository(db *gorm.DB) *symbolSQLite {
	return &symbolSQLite{db: db}
}

// ListActive returns all active symbols ordered by sort_key.
func (r *symbolSQLite) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes returns only the codes of active symbols ordered by
// sort_key.
func (r *symbolSQLite) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
