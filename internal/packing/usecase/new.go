package usecase

import (
	"context"
	"sync"

	"travel-planner/internal/model"
	"travel-planner/internal/packing/repository"
	pkgLog "travel-planner/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ItemRepository

	mu    sync.Mutex
	items []model.Item
}

// New creates the packing-list use case and loads the durable slot.
// An absent or unreadable slot starts an empty list; startup never fails
// on storage reads.
func New(ctx context.Context, l pkgLog.Logger, repo repository.ItemRepository) *implUseCase {
	uc := &implUseCase{
		l:    l,
		repo: repo,
	}

	items, err := repo.Load(ctx)
	if err != nil {
		l.Warnf(ctx, "packing: could not read item slot, starting empty: %v", err)
		items = nil
	}
	uc.items = items

	return uc
}

// commit persists next as the full collection and, only on success, makes
// it the in-memory state. Callers must hold uc.mu.
func (uc *implUseCase) commit(ctx context.Context, next []model.Item) error {
	if err := uc.repo.Save(ctx, next); err != nil {
		return err
	}
	uc.items = next
	return nil
}
