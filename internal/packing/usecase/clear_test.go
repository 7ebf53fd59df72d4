package usecase_test

import (
	"context"
	"testing"

	"travel-planner/internal/packing"
	"travel-planner/internal/packing/usecase"
)

func TestClearAll(t *testing.T) {
	ctx := context.Background()

	confirm := func(decision bool) packing.Confirmer {
		return packing.ConfirmFunc(func(ctx context.Context, prompt string) bool {
			if prompt != packing.ClearAllPrompt {
				t.Errorf("unexpected prompt %q", prompt)
			}
			return decision
		})
	}

	t.Run("Declined Leaves State Untouched", func(t *testing.T) {
		repo := &mockItemRepo{}
		uc := usecase.New(ctx, &mockLogger{}, repo)
		uc.Add(ctx, packing.AddItemInput{Description: "passport", Quantity: 1})
		writes := len(repo.saves)

		out, err := uc.ClearAll(ctx, confirm(false))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Cleared {
			t.Errorf("declined confirmation must not clear")
		}
		list, _ := uc.List(ctx)
		if len(list.Items) != 1 {
			t.Errorf("expected list unchanged, got %d items", len(list.Items))
		}
		if len(repo.saves) != writes {
			t.Errorf("declined clear must not write the slot")
		}
	})

	t.Run("Confirmed Empties List And Slot", func(t *testing.T) {
		repo := &mockItemRepo{}
		uc := usecase.New(ctx, &mockLogger{}, repo)
		uc.Add(ctx, packing.AddItemInput{Description: "passport", Quantity: 1})
		uc.Add(ctx, packing.AddItemInput{Description: "socks", Quantity: 6})

		out, err := uc.ClearAll(ctx, confirm(true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Cleared {
			t.Errorf("expected cleared=true")
		}
		list, _ := uc.List(ctx)
		if len(list.Items) != 0 {
			t.Errorf("expected empty list, got %d items", len(list.Items))
		}
		if got := repo.lastSave(); len(got) != 0 {
			t.Errorf("slot must hold the emptied collection, got %d items", len(got))
		}
	})

	t.Run("Nil Confirmer Declines", func(t *testing.T) {
		repo := &mockItemRepo{}
		uc := usecase.New(ctx, &mockLogger{}, repo)
		out, err := uc.ClearAll(ctx, nil)
		if err != nil || out.Cleared {
			t.Errorf("nil confirmer must decline, got %+v %v", out, err)
		}
	})
}
