package frankfurter

import "github.com/shopspring/decimal"

// ConversionResult is the body of GET /latest with amount/from/to set.
// Rates maps target currency codes to already-converted amounts.
type ConversionResult struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}
