package http

import (
	"travel-planner/internal/currency"
	pkgErrors "travel-planner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case currency.ErrNotANumber:
		return pkgErrors.NewHTTPError(400, "amount must be a number")
	case currency.ErrUnsupportedCurrency:
		return pkgErrors.NewHTTPError(400, "unsupported currency code")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
