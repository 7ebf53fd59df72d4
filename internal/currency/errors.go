package currency

import "errors"

var (
	ErrNotANumber          = errors.New("amount is not a number")
	ErrConversionFailed    = errors.New("could not fetch the conversion rate")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
