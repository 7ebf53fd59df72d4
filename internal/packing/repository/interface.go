package repository

import (
	"context"

	"travel-planner/internal/model"
)

// ItemRepository is the durable local slot for the packing list. The whole
// collection is written on every mutation (overwrite semantics) and read
// once at startup.
type ItemRepository interface {
	// Load reads the full collection. A missing slot yields an empty
	// collection and no error; an unreadable slot yields an error the
	// caller may recover from.
	Load(ctx context.Context) ([]model.Item, error)

	// Save overwrites the slot with the full collection.
	Save(ctx context.Context, items []model.Item) error
}
