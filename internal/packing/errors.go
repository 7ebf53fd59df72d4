package packing

import "errors"

// Domain-specific errors for the packing package.
var (
	ErrEmptyDescription = errors.New("item description is empty")
	ErrInvalidQuantity  = errors.New("item quantity must be positive")
)
