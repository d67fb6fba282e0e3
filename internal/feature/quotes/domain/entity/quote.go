// Package entity defines the domain models for the quotes feature.
package entity

// Quote represents one ticker's market snapshot.
// Price and ChangePct are pointers because providers routinely return
// partial data; nil means "no provider produced a usable value".
//
// Invariant: ChangePct != nil implies Price != nil. The resolver enforces
// this during normalization; nothing else is allowed to construct a Quote
// that violates it.
type Quote struct {
	Symbol    string   `json:"symbol"`
	Price     *float64 `json:"price"`
	ChangePct *float64 `json:"change_pct"`
}

// HasPrice reports whether the quote carries a usable price.
func (q Quote) HasPrice() bool { return q.Price != nil }
