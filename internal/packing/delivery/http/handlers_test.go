package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-planner/config"
	"travel-planner/internal/middleware"
	"travel-planner/internal/model"
	"travel-planner/internal/packing"
	packingHTTP "travel-planner/internal/packing/delivery/http"
	"travel-planner/pkg/response"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockUseCase struct {
	addOutput    packing.AddItemOutput
	addErr       error
	deleteErr    error
	toggleOutput packing.ToggleItemOutput
	listOutput   packing.ListItemsOutput
	clearedWith  *bool
}

func (m *mockUseCase) Add(ctx context.Context, input packing.AddItemInput) (packing.AddItemOutput, error) {
	return m.addOutput, m.addErr
}
func (m *mockUseCase) Delete(ctx context.Context, id string) error { return m.deleteErr }
func (m *mockUseCase) Toggle(ctx context.Context, id string) (packing.ToggleItemOutput, error) {
	return m.toggleOutput, nil
}
func (m *mockUseCase) ClearAll(ctx context.Context, confirm packing.Confirmer) (packing.ClearAllOutput, error) {
	decision := confirm != nil && confirm.Confirm(ctx, packing.ClearAllPrompt)
	m.clearedWith = &decision
	return packing.ClearAllOutput{Cleared: decision}, nil
}
func (m *mockUseCase) List(ctx context.Context) (packing.ListItemsOutput, error) {
	return m.listOutput, nil
}

func newRouter(uc packing.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := packingHTTP.New(&mockLogger{}, uc)
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{})
	packingHTTP.RegisterRoutes(r.Group("/api/v1/packing"), h, mw)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	t.Run("Created Item Is Echoed Back", func(t *testing.T) {
		uc := &mockUseCase{addOutput: packing.AddItemOutput{
			Item: model.Item{ID: "abc", Description: "Socks", Quantity: 3},
		}}
		r := newRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/v1/packing/items", gin.H{"description": "Socks", "quantity": 3})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]interface{})
		item := data["item"].(map[string]interface{})
		if item["description"] != "Socks" {
			t.Errorf("unexpected item payload: %v", item)
		}
	})

	t.Run("Missing Description Is Rejected", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		w := doJSON(r, http.MethodPost, "/api/v1/packing/items", gin.H{"quantity": 3})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Domain Error Maps To 400", func(t *testing.T) {
		uc := &mockUseCase{addErr: packing.ErrInvalidQuantity}
		r := newRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/v1/packing/items", gin.H{"description": "Socks", "quantity": -1})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestClear(t *testing.T) {
	t.Run("Confirmed Body Clears", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newRouter(uc)

		w := doJSON(r, http.MethodDelete, "/api/v1/packing/items", gin.H{"confirmed": true})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.clearedWith == nil || !*uc.clearedWith {
			t.Errorf("handler must pass a confirming decision through")
		}
	})

	t.Run("Missing Body Declines", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newRouter(uc)

		w := doJSON(r, http.MethodDelete, "/api/v1/packing/items", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.clearedWith == nil || *uc.clearedWith {
			t.Errorf("an absent confirmation must read as declined")
		}
	})
}

func TestList(t *testing.T) {
	uc := &mockUseCase{listOutput: packing.ListItemsOutput{
		Items: []model.Item{
			{ID: "a", Description: "Passport", Quantity: 1, Packed: true},
			{ID: "b", Description: "Charger", Quantity: 2},
		},
		Stats: packing.Stats{Total: 2, Packed: 1, Pending: 1, Progress: 50},
	}}
	r := newRouter(uc)

	w := doJSON(r, http.MethodGet, "/api/v1/packing/items", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	stats := data["stats"].(map[string]interface{})
	if stats["progress"].(float64) != 50 {
		t.Errorf("unexpected stats: %v", stats)
	}
}
