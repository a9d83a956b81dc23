// PrinceMahmood | 2026
// handler.go

package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type Handler struct {
	processor Processor
	logger    *slog.Logger
}

func NewHandler(processor Processor, logger *slog.Logger) *Handler {
	return &Handler{processor: processor, logger: logger}
}

type createIntentRequest struct {
	Price *float64 `json:"price"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent. The price arrives in
// major currency units and is converted to integer minor units. A missing
// price or one below a single minor unit is rejected outright instead of
// being forwarded to the processor.
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if req.Price == nil {
		core.BadRequest(w, "price is required")
		return
	}

	amount := int64(math.Round(*req.Price * 100))
	if amount < 1 {
		core.BadRequest(w, "price must be at least 0.01")
		return
	}

	intent, err := h.processor.CreateIntent(r.Context(), amount)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "payment processor rejected the amount")
			return
		}
		h.logger.Error("failed to create payment intent",
			"error", err,
			"amount", amount,
		)
		core.InternalServerError(w, "failed to create payment intent")
		return
	}

	core.OK(w, createIntentResponse{ClientSecret: intent.ClientSecret})
}
