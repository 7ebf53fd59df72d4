package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"travel-planner/pkg/frankfurter"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock converter with injectable behavior and a call counter.
type mockConverter struct {
	convertFunc func(amount decimal.Decimal, from, to string) (frankfurter.ConversionResult, error)
	calls       int
}

func (m *mockConverter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (frankfurter.ConversionResult, error) {
	m.calls++
	if m.convertFunc != nil {
		return m.convertFunc(amount, from, to)
	}
	return frankfurter.ConversionResult{}, nil
}

func rateResult(amount decimal.Decimal, from, to string, converted decimal.Decimal) frankfurter.ConversionResult {
	return frankfurter.ConversionResult{
		Amount: amount,
		Base:   from,
		Date:   "2026-08-31",
		Rates:  map[string]decimal.Decimal{to: converted},
	}
}
