package packing

import "context"

// UseCase defines the business logic interface for the packing-list domain.
type UseCase interface {
	// Add appends a new item to the end of the list and persists the list.
	Add(ctx context.Context, input AddItemInput) (AddItemOutput, error)

	// Delete removes the item with the given ID. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error

	// Toggle flips the packed flag of the item with the given ID.
	// Unknown IDs are a no-op.
	Toggle(ctx context.Context, id string) (ToggleItemOutput, error)

	// ClearAll empties the list only when the confirmer says yes.
	// Declining leaves the list and the durable slot untouched.
	ClearAll(ctx context.Context, confirm Confirmer) (ClearAllOutput, error)

	// List returns the items in insertion order plus packed statistics.
	List(ctx context.Context) (ListItemsOutput, error)
}

// Confirmer is the yes/no gate consulted by ClearAll. The HTTP delivery
// derives the decision from the request; tests pass fixed decisions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }
