package http

import (
	"context"

	"travel-planner/internal/model"
	"travel-planner/internal/packing"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() packing.AddItemInput {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return packing.AddItemInput{
		Description: r.Description,
		Quantity:    quantity,
	}
}

// ---

type clearReq struct {
	Confirmed bool `json:"confirmed"`
}

func (r clearReq) toConfirmer() packing.Confirmer {
	return packing.ConfirmFunc(func(ctx context.Context, prompt string) bool {
		return r.Confirmed
	})
}

// --- Response DTOs ---

type itemResp struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		Packed:      item.Packed,
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out packing.AddItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type statsResp struct {
	Total    int     `json:"total"`
	Packed   int     `json:"packed"`
	Pending  int     `json:"pending"`
	Progress float64 `json:"progress"`
}

type listResp struct {
	Items []itemResp `json:"items"`
	Stats statsResp  `json:"stats"`
}

func (h *handler) newListResp(out packing.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items: items,
		Stats: statsResp{
			Total:    out.Stats.Total,
			Packed:   out.Stats.Packed,
			Pending:  out.Stats.Pending,
			Progress: out.Stats.Progress,
		},
	}
}

type toggleResp struct {
	Item  itemResp `json:"item"`
	Found bool     `json:"found"`
}

func (h *handler) newToggleResp(out packing.ToggleItemOutput) toggleResp {
	return toggleResp{Item: newItemResp(out.Item), Found: out.Found}
}

type clearResp struct {
	Cleared bool `json:"cleared"`
}

func (h *handler) newClearResp(out packing.ClearAllOutput) clearResp {
	return clearResp{Cleared: out.Cleared}
}
