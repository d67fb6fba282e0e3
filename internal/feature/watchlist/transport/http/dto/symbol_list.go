// Package dto defines the wire shapes for watchlist endpoints.
package dto

// SymbolItem is one watchlist entry as served by /api/symbols.
type SymbolItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
