package http

import (
	"travel-planner/internal/currency"
	"travel-planner/internal/model"
)

// --- Request DTOs ---

type updateReq struct {
	Amount string `json:"amount"`
	From   string `json:"from" binding:"required"`
	To     string `json:"to"   binding:"required"`
}

func (r updateReq) toInput() currency.UpdateInput {
	return currency.UpdateInput{
		Amount: r.Amount,
		From:   model.Currency(r.From),
		To:     model.Currency(r.To),
	}
}

// --- Response DTOs ---

type snapshotResp struct {
	Amount     string   `json:"amount"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Result     string   `json:"result"`
	Error      string   `json:"error,omitempty"`
	Currencies []string `json:"currencies"`
}

func newSnapshotResp(snap currency.Snapshot) snapshotResp {
	resp := snapshotResp{
		From:  string(snap.From),
		To:    string(snap.To),
		Error: snap.Err,
	}
	if snap.Amount.Valid {
		resp.Amount = snap.Amount.Decimal.String()
	}
	if snap.Result.Valid {
		resp.Result = snap.Result.Decimal.String()
	}
	for _, c := range model.Currencies {
		resp.Currencies = append(resp.Currencies, string(c))
	}
	return resp
}
