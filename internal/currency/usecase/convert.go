package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"travel-planner/internal/currency"
	"travel-planner/internal/model"
)

func (uc *implUseCase) Update(ctx context.Context, input currency.UpdateInput) (currency.Snapshot, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return currency.Snapshot{}, err
	}

	from, err := model.ParseCurrency(string(input.From))
	if err != nil {
		return currency.Snapshot{}, currency.ErrUnsupportedCurrency
	}
	to, err := model.ParseCurrency(string(input.To))
	if err != nil {
		return currency.Snapshot{}, currency.ErrUnsupportedCurrency
	}

	uc.mu.Lock()
	uc.gen++
	gen := uc.gen
	uc.state.Amount = amount
	uc.state.From = from
	uc.state.To = to
	uc.state.Err = ""

	// No positive amount means nothing to convert. Same-currency queries
	// are answered locally, the rate is always 1.
	if !amount.Valid || !amount.Decimal.IsPositive() {
		uc.state.Result = decimal.NullDecimal{}
		snap := uc.state
		uc.mu.Unlock()
		return snap, nil
	}
	if from == to {
		uc.state.Result = amount
		snap := uc.state
		uc.mu.Unlock()
		return snap, nil
	}
	uc.mu.Unlock()

	uc.convert(ctx, gen, amount.Decimal, from, to)

	return uc.Snapshot(ctx), nil
}

func (uc *implUseCase) Snapshot(ctx context.Context) currency.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// convert fetches the rate outside the lock and applies the result only
// when no newer query has started since.
func (uc *implUseCase) convert(ctx context.Context, gen uint64, amount decimal.Decimal, from, to model.Currency) {
	res, err := uc.fx.Convert(ctx, amount, string(from), string(to))
	if err != nil {
		uc.l.Warnf(ctx, "currency: convert %s %s to %s: %v", amount, from, to, err)
		uc.apply(ctx, gen, func(s *currency.Snapshot) {
			s.Result = decimal.NullDecimal{}
			s.Err = currency.ErrConversionFailed.Error()
		})
		return
	}

	converted, ok := res.Rates[string(to)]
	if !ok {
		uc.l.Warnf(ctx, "currency: rate for %s missing in response", to)
		uc.apply(ctx, gen, func(s *currency.Snapshot) {
			s.Result = decimal.NullDecimal{}
			s.Err = currency.ErrConversionFailed.Error()
		})
		return
	}

	uc.apply(ctx, gen, func(s *currency.Snapshot) {
		s.Result = decimal.NullDecimal{Decimal: converted, Valid: true}
		s.Err = ""
	})
}

// apply runs mutate under the lock unless a newer query superseded gen.
func (uc *implUseCase) apply(ctx context.Context, gen uint64, mutate func(*currency.Snapshot)) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.gen {
		uc.l.Debugf(ctx, "currency: dropping stale result for generation %d", gen)
		return false
	}
	mutate(&uc.state)
	return true
}

func parseAmount(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, currency.ErrNotANumber
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
