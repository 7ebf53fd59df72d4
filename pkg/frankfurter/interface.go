package frankfurter

import (
	"context"

	"github.com/shopspring/decimal"
)

// Converter performs currency conversion against an exchange-rate service.
// Implementations are safe for concurrent use.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (ConversionResult, error)
}
