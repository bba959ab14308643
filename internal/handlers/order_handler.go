package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/darkcuisine/storefront/internal/service"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

type createOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/orders.
// Responses follow the storefront contract: 201 with a success flag,
// 400 when required fields are missing or the item list is empty, 500
// on persistence failure.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "缺少必要的訂單資訊", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingOrderFields) {
			WriteError(w, http.StatusBadRequest, "缺少必要的訂單資訊", h.log)
			return
		}

		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "建立訂單失敗", h.log)
		return
	}

	h.log.Info("order created",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"items_count", len(order.Items),
	)
	WriteJSON(w, http.StatusCreated, createOrderResponse{
		Success: true,
		OrderID: order.ID,
		Message: "訂單已成功建立",
	}, h.log)
}

// ListOrders handles GET /api/orders: all persisted orders with their
// line items, most-recent-first.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}
