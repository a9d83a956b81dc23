// PrinceMahmood | 2026
// handler_test.go

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type fakeProcessor struct {
	intent     *Intent
	err        error
	lastAmount int64
	calls      int
}

func (f *fakeProcessor) CreateIntent(
	_ context.Context,
	amount int64,
) (*Intent, error) {
	f.calls++
	f.lastAmount = amount
	return f.intent, f.err
}

func postIntent(body string) *http.Request {
	return httptest.NewRequest(
		http.MethodPost, "/create-payment-intent", strings.NewReader(body),
	)
}

func TestCreateIntentRejectsBadAmounts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{}`},
		{"zero price", `{"price": 0}`},
		{"negative price", `{"price": -10}`},
		{"below one minor unit", `{"price": 0.001}`},
		{"malformed body", `{"price": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &fakeProcessor{}
			h := NewHandler(processor, slog.Default())

			rec := httptest.NewRecorder()
			h.CreateIntent(rec, postIntent(tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if processor.calls != 0 {
				t.Error("processor called for a rejected amount")
			}
		})
	}
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		wantAmount int64
	}{
		{"whole dollars", 120, 12000},
		{"cents kept", 99.99, 9999},
		{"single cent", 0.01, 1},
		{"fraction rounds down", 0.011, 1},
		{"fraction rounds up", 0.019, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &fakeProcessor{
				intent: &Intent{ID: "pi_1", ClientSecret: "pi_1_secret"},
			}
			h := NewHandler(processor, slog.Default())

			rec := httptest.NewRecorder()
			h.CreateIntent(rec, postIntent(
				fmt.Sprintf(`{"price": %v}`, tt.price),
			))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d: %s",
					rec.Code, http.StatusOK, rec.Body.String())
			}
			if processor.lastAmount != tt.wantAmount {
				t.Errorf("amount = %d, want %d",
					processor.lastAmount, tt.wantAmount)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp["clientSecret"] != "pi_1_secret" {
				t.Errorf("clientSecret = %q, want pi_1_secret",
					resp["clientSecret"])
			}
		})
	}
}

func TestCreateIntentProcessorRejection(t *testing.T) {
	processor := &fakeProcessor{
		err: fmt.Errorf("payment processor: amount too small: %w",
			core.ErrInvalidInput),
	}
	h := NewHandler(processor, slog.Default())

	rec := httptest.NewRecorder()
	h.CreateIntent(rec, postIntent(`{"price": 5}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateIntentProcessorFailure(t *testing.T) {
	processor := &fakeProcessor{err: fmt.Errorf("connection refused")}
	h := NewHandler(processor, slog.Default())

	rec := httptest.NewRecorder()
	h.CreateIntent(rec, postIntent(`{"price": 5}`))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error detail leaked to the client")
	}
}
