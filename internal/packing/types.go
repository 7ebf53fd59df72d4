package packing

import "travel-planner/internal/model"

// ClearAllPrompt is the question put to the Confirmer before wiping the list.
const ClearAllPrompt = "Are you sure you want to delete all items?"

// AddItemInput is the input for adding a packing item.
type AddItemInput struct {
	Description string
	Quantity    int
}

// AddItemOutput is the result of adding a packing item.
type AddItemOutput struct {
	Item model.Item
}

// ToggleItemOutput reports the item after a toggle. Found is false when the
// ID matched nothing and the list was left untouched.
type ToggleItemOutput struct {
	Item  model.Item
	Found bool
}

// ClearAllOutput reports whether the confirmer allowed the wipe.
type ClearAllOutput struct {
	Cleared bool
}

// Stats summarizes packing progress.
type Stats struct {
	Total    int     // total items
	Packed   int     // items with packed=true
	Pending  int     // items left to pack
	Progress float64 // completion percentage (0-100)
}

// ListItemsOutput is the full list state handed to collaborators.
type ListItemsOutput struct {
	Items []model.Item
	Stats Stats
}
