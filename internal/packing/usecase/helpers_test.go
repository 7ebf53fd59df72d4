package usecase_test

import (
	"context"

	"travel-planner/internal/model"
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

// Mock item repository with injectable behavior and a record of saves.
type mockItemRepo struct {
	loadFunc func() ([]model.Item, error)
	saveFunc func(items []model.Item) error

	saves [][]model.Item
}

func (m *mockItemRepo) Load(ctx context.Context) ([]model.Item, error) {
	if m.loadFunc != nil {
		return m.loadFunc()
	}
	return nil, nil
}

func (m *mockItemRepo) Save(ctx context.Context, items []model.Item) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(items); err != nil {
			return err
		}
	}
	saved := make([]model.Item, len(items))
	copy(saved, items)
	m.saves = append(m.saves, saved)
	return nil
}

func (m *mockItemRepo) lastSave() []model.Item {
	if len(m.saves) == 0 {
		return nil
	}
	return m.saves[len(m.saves)-1]
}
