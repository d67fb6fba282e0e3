package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_terminal/internal/feature/watchlist/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with the symbol table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Symbol{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedSymbol creates one symbol row for a test.
func seedSymbol(t *testing.T, db *gorm.DB, code, name string, isActive bool, sortKey int) *entity.Symbol {
	t.Helper()

	symbol := &entity.Symbol{
		Code:     code,
		Name:     name,
		Market:   "US",
		IsActive: true,
		SortKey:  sortKey,
	}
	err := db.Create(symbol).Error
	require.NoError(t, err, "failed to seed symbol")

	// SQLite handles booleans inconsistently on insert, so flip via Update.
	if !isActive {
		err = db.Model(symbol).Update("is_active", false).Error
		require.NoError(t, err, "failed to deactivate symbol")
	}

	return symbol
}

func TestSymbolSQLite_ListActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T, db *gorm.DB)
		expectedCodes []string
	}{
		{
			name: "returns active symbols sorted by sort_key",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "MSFT", "Microsoft", true, 2)
				seedSymbol(t, db, "AAPL", "Apple", true, 1)
				seedSymbol(t, db, "NVDA", "NVIDIA", true, 3)
			},
			expectedCodes: []string{"AAPL", "MSFT", "NVDA"},
		},
		{
			name: "excludes inactive symbols",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "AAPL", "Apple", true, 1)
				seedSymbol(t, db, "MSFT", "Microsoft", false, 2)
				seedSymbol(t, db, "NVDA", "NVIDIA", true, 3)
			},
			expectedCodes: []string{"AAPL", "NVDA"},
		},
		{
			name:          "returns empty list when no symbols",
			setupFunc:     func(t *testing.T, db *gorm.DB) {},
			expectedCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewSymbolRepository(db)
			tt.setupFunc(t, db)

			symbols, err := repo.ListActive(context.Background())

			assert.NoError(t, err)
			assert.Len(t, symbols, len(tt.expectedCodes))
			for i, code := range tt.expectedCodes {
				assert.Equal(t, code, symbols[i].Code)
			}
		})
	}
}

func TestSymbolSQLite_ListActiveCodes(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)

	seedSymbol(t, db, "BRK-B", "Berkshire Hathaway B", true, 2)
	seedSymbol(t, db, "AAPL", "Apple", true, 1)
	seedSymbol(t, db, "META", "Meta Platforms", false, 3)

	codes, err := repo.ListActiveCodes(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "BRK-B"}, codes)
}

func TestSeedDefaultWatchlist(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	require.NoError(t, SeedDefaultWatchlist(db))

	codes, err := NewSymbolRepository(db).ListActiveCodes(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes, len(defaultWatchlist))
	assert.Equal(t, "AAPL", codes[0], "board order is preserved via sort_key")
	assert.Contains(t, codes, "BRK-B")
}

func TestSeedDefaultWatchlist_LeavesPopulatedTableAlone(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedSymbol(t, db, "TSLA", "Tesla", true, 1)

	require.NoError(t, SeedDefaultWatchlist(db))

	var count int64
	require.NoError(t, db.Model(&entity.Symbol{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "an operator-managed table must not be reseeded")
}
