package usecase

import (
	"context"
	"fmt"

	"travel-planner/internal/model"
	"travel-planner/internal/packing"
)

// ClearAll empties the list behind the injected confirmation gate.
// A declined confirmation leaves both memory and the durable slot untouched.
func (uc *implUseCase) ClearAll(ctx context.Context, confirm packing.Confirmer) (packing.ClearAllOutput, error) {
	if confirm == nil || !confirm.Confirm(ctx, packing.ClearAllPrompt) {
		uc.l.Infof(ctx, "packing: clear all declined")
		return packing.ClearAllOutput{Cleared: false}, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.commit(ctx, []model.Item{}); err != nil {
		uc.l.Errorf(ctx, "packing: failed to persist clear: %v", err)
		return packing.ClearAllOutput{}, fmt.Errorf("failed to persist clear: %w", err)
	}

	uc.l.Infof(ctx, "packing: cleared all items")
	return packing.ClearAllOutput{Cleared: true}, nil
}
