// Package entity defines the domain models for the history feature.
package entity

import "time"

// ClosePoint is one trading day's closing price. Series are always ordered
// oldest first.
type ClosePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}
