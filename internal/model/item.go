package model

import "github.com/google/uuid"

// Item is a single entry on the packing list. Items are owned exclusively
// by the packing store; ID is stable for the item's lifetime.
type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

// NewItemID returns a fresh unique item ID.
func NewItemID() string {
	return uuid.NewString()
}
