package adapters

import (
	"log/slog"

	"gorm.io/gorm"

	"market_terminal/internal/feature/watchlist/domain/entity"
)

// defaultWatchlist is the NASDAQ/S&P large-cap board the dashboard ships
// with. Codes use Stooq/Yahoo-compatible spelling (BRK-B, not BRK.B).
var defaultWatchlist = []string{
	"AAPL", "MSFT", "NVDA", "AMZN", "META", "GOOGL", "TSLA", "AVGO", "AMD", "NFLX",
	"ADBE", "INTC", "CSCO", "QCOM", "TXN",
	"CRM", "ORCL", "IBM", "NOW", "SNOW", "ABNB", "SHOP", "PYPL",
	"JPM", "BAC", "WFC", "GS", "MS", "V", "MA", "AXP", "BRK-B", "SCHW",
	"KO", "PEP", "PG", "MCD", "COST", "HD", "LOW", "DIS", "NKE", "SBUX", "TGT", "WMT",
	"T", "VZ", "CMCSA",
	"XOM", "CVX", "COP", "CAT", "BA", "GE", "UPS", "FDX", "DE",
	"UNH", "LLY", "MRK", "ABBV", "JNJ", "PFE",
	"UBER", "BKNG",
	"SPY", "QQQ", "DIA", "IWM",
}

// SeedDefaultWatchlist inserts the default board when the symbol table is
// empty, so a fresh database serves data immediately. An already-populated
// table is left alone; operators manage it directly.
func SeedDefaultWatchlist(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Symbol{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	symbols := make([]entity.Symbol, 0, len(defaultWatchlist))
	for i, code := range defaultWatchlist {
		symbols = append(symbols, entity.Symbol{
			Code:     code,
			Name:     code,
			Market:   "US",
			IsActive: true,
			SortKey:  i,
		})
	}
	if err := db.Create(&symbols).Error; err != nil {
		return err
	}
	slog.Info("seeded default watchlist", "symbols", len(symbols))
	return nil
}
