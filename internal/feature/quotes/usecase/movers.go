package usecase

import (
	"sort"

	"market_terminal/internal/feature/quotes/domain/entity"
)

// DefaultMoverCount is how many gainers and losers the movers endpoint
// reports.
const DefaultMoverCount = 10

// Movers holds the top and bottom of the watchlist ranked by percent
// change.
type Movers struct {
	Gainers []entity.Quote `json:"gainers"`
	Losers  []entity.Quote `json:"losers"`
}

// RankMovers ranks quotes by percent change. Quotes without a price are
// excluded entirely; a missing change figure ranks as 0.0 without being
// rewritten on the quote itself. Losers are reported most-negative-first.
func RankMovers(quotes []entity.Quote, n int) Movers {
	valid := make([]entity.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.HasPrice() {
			valid = append(valid, q)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return changeForRanking(valid[i]) > changeForRanking(valid[j])
	})

	m := Movers{Gainers: []entity.Quote{}, Losers: []entity.Quote{}}
	if len(valid) == 0 {
		return m
	}

	top := n
	if top > len(valid) {
		top = len(valid)
	}
	m.Gainers = append(m.Gainers, valid[:top]...)

	tail := valid[len(valid)-top:]
	for i := len(tail) - 1; i >= 0; i-- {
		m.Losers = append(m.Losers, tail[i])
	}
	return m
}

func changeForRanking(q entity.Quote) float64 {
	if q.ChangePct == nil {
		return 0.0
	}
	return *q.ChangePct
}
