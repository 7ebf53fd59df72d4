package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"travel-planner/internal/model"
	"travel-planner/internal/packing"
)

// Add appends a new item to the end of the list. Insertion order is the
// persisted and display order.
func (uc *implUseCase) Add(ctx context.Context, input packing.AddItemInput) (packing.AddItemOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return packing.AddItemOutput{}, packing.ErrEmptyDescription
	}
	if input.Quantity <= 0 {
		return packing.AddItemOutput{}, packing.ErrInvalidQuantity
	}

	item := model.Item{
		ID:          model.NewItemID(),
		Description: input.Description,
		Quantity:    input.Quantity,
		Packed:      false,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Item, len(uc.items), len(uc.items)+1)
	copy(next, uc.items)
	next = append(next, item)

	if err := uc.commit(ctx, next); err != nil {
		uc.l.Errorf(ctx, "packing: failed to persist add: %v", err)
		return packing.AddItemOutput{}, fmt.Errorf("failed to persist item: %w", err)
	}

	uc.l.Infof(ctx, "packing: added item %s (%dx %s)", item.ID, item.Quantity, item.Description)
	return packing.AddItemOutput{Item: item}, nil
}

// Delete removes the item with the given ID. Unknown IDs leave the list
// untouched and do not write the slot.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Item, 0, len(uc.items))
	found := false
	for _, item := range uc.items {
		if item.ID == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		return nil
	}

	if err := uc.commit(ctx, next); err != nil {
		uc.l.Errorf(ctx, "packing: failed to persist delete: %v", err)
		return fmt.Errorf("failed to persist deletion: %w", err)
	}
	return nil
}

// Toggle flips the packed flag of the matching item.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (packing.ToggleItemOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Item, len(uc.items))
	copy(next, uc.items)

	var out packing.ToggleItemOutput
	for i, item := range next {
		if item.ID == id {
			next[i].Packed = !item.Packed
			out = packing.ToggleItemOutput{Item: next[i], Found: true}
			break
		}
	}
	if !out.Found {
		return out, nil
	}

	if err := uc.commit(ctx, next); err != nil {
		uc.l.Errorf(ctx, "packing: failed to persist toggle: %v", err)
		return packing.ToggleItemOutput{}, fmt.Errorf("failed to persist toggle: %w", err)
	}
	return out, nil
}

// List returns the items in insertion order plus packed statistics.
func (uc *implUseCase) List(ctx context.Context) (packing.ListItemsOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]model.Item, len(uc.items))
	copy(items, uc.items)

	return packing.ListItemsOutput{
		Items: items,
		Stats: computeStats(items),
	}, nil
}

func computeStats(items []model.Item) packing.Stats {
	total := len(items)
	if total == 0 {
		return packing.Stats{}
	}

	packed := 0
	for _, item := range items {
		if item.Packed {
			packed++
		}
	}

	return packing.Stats{
		Total:    total,
		Packed:   packed,
		Pending:  total - packed,
		Progress: math.Round(float64(packed) / float64(total) * 100),
	}
}
