package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/service"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/httputil"
)

// CheckoutHandler handles the order summary and order placement endpoints.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, logger: logger}
}

// Summary handles GET /api/v1/checkout
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id := sessionIDFromContext(r.Context())
	if id == "" {
		httputil.WriteError(w, r, apperrors.EmptyCart(), h.logger)
		return
	}

	view, err := h.service.Summary(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// PlaceOrder handles POST /api/v1/checkout. The form is validated by the
// service so that an empty cart is reported ahead of form errors.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form domain.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httputil.WriteValidationError(w, fmt.Errorf("decode request body: %w", err))
		return
	}

	conf, err := h.service.PlaceOrder(r.Context(), sessionIDFromContext(r.Context()), form)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, conf)
}
