package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"travel-planner/internal/model"
	"travel-planner/internal/packing/repository"
)

// SlotName is the fixed key of the durable local slot.
const SlotName = "items.json"

// Repository persists the packing list as a single JSON file.
type Repository struct {
	path string
	mu   sync.Mutex
}

var _ repository.ItemRepository = (*Repository)(nil)

// New creates a file-backed item repository under dir.
func New(dir string) *Repository {
	return &Repository{path: filepath.Join(dir, SlotName)}
}

// Load reads the full collection. A missing file is an empty collection.
func (r *Repository) Load(ctx context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read item slot: %w", err)
	}

	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("failed to parse item slot: %w", err)
	}
	return items, nil
}

// Save overwrites the slot with the full collection via a temp file then
// rename, so a crash mid-write never corrupts the previous state.
func (r *Repository) Save(ctx context.Context, items []model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("failed to write item slot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace item slot: %w", err)
	}
	return nil
}
