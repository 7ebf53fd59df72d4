package usecase

import (
	"sync"

	"travel-planner/internal/currency"
	"travel-planner/internal/model"
	"travel-planner/pkg/frankfurter"
	pkgLog "travel-planner/pkg/log"
)

type implUseCase struct {
	l  pkgLog.Logger
	fx frankfurter.Converter

	mu    sync.Mutex
	gen   uint64
	state currency.Snapshot
}

var _ currency.UseCase = (*implUseCase)(nil)

// New creates the currency conversion use case.
func New(l pkgLog.Logger, fx frankfurter.Converter) *implUseCase {
	return &implUseCase{
		l:  l,
		fx: fx,
		state: currency.Snapshot{
			From: model.CurrencyEUR,
			To:   model.CurrencyUSD,
		},
	}
}
