package currency

import (
	"github.com/shopspring/decimal"

	"travel-planner/internal/model"
)

// UpdateInput carries the raw form values. Amount stays a string so that
// non-numeric input can be rejected at the boundary without touching state.
type UpdateInput struct {
	Amount string
	From   model.Currency
	To     model.Currency
}

// Snapshot is the current conversion state. Amount and Result use
// NullDecimal so that "no value yet" is distinct from zero.
type Snapshot struct {
	Amount decimal.NullDecimal `json:"amount"`
	From   model.Currency      `json:"from"`
	To     model.Currency      `json:"to"`
	Result decimal.NullDecimal `json:"result"`
	Err    string              `json:"error,omitempty"`
}
