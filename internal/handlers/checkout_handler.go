package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/darkcuisine/storefront/internal/cart"
	"github.com/darkcuisine/storefront/internal/checkout"
)

// CheckoutHandler drives the checkout flow for the session cart.
type CheckoutHandler struct {
	flow *checkout.Flow
	log  *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(flow *checkout.Flow, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		flow: flow,
		log:  log,
	}
}

// Submit handles POST /api/checkout. Validation failures block the
// submission with a user-facing message and never place an order; a
// persistence failure leaves the cart untouched for manual retry.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkout.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	store := cart.FromContext(ctx)
	conf, err := h.flow.Submit(ctx, store, req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			WriteError(w, http.StatusConflict, "購物車是空的", h.log)
		case errors.Is(err, checkout.ErrPaymentRequired):
			WriteError(w, http.StatusBadRequest, "請選擇支付方式", h.log)
		case errors.Is(err, checkout.ErrDeliveryInfoRequired):
			WriteError(w, http.StatusBadRequest, "請填寫收貨資訊", h.log)
		default:
			h.log.Error("checkout submission failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "訂單保存失敗，請稍後重試", h.log)
		}
		return
	}

	h.log.Info("order placed",
		"order_id", conf.OrderID,
		"order_number", conf.OrderNumber,
		"items_count", len(conf.Items),
	)
	WriteJSON(w, http.StatusCreated, conf, h.log)
}

// History handles GET /api/checkout/history: the session-local order
// history, most-recent-first. Orders from prior sessions are not
// visible here; GET /api/orders reads the persistent store instead.
func (h *CheckoutHandler) History(w http.ResponseWriter, r *http.Request) {
	store := cart.FromContext(r.Context())
	WriteJSON(w, http.StatusOK, store.Orders(), h.log)
}
