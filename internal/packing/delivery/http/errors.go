package http

import (
	"travel-planner/internal/packing"
	pkgErrors "travel-planner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case packing.ErrEmptyDescription:
		return pkgErrors.NewHTTPError(400, "description must not be empty")
	case packing.ErrInvalidQuantity:
		return pkgErrors.NewHTTPError(400, "quantity must be at least 1")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
