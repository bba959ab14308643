package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/darkcuisine/storefront/internal/cart"
	"github.com/darkcuisine/storefront/internal/repository"
	"github.com/darkcuisine/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartHandler exposes the session cart over HTTP. Every response body
// is the cart snapshot resulting from the operation.
type CartHandler struct {
	catalog *service.ProductService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(catalog *service.ProductService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		log:     log,
	}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := cart.FromContext(r.Context())
	WriteJSON(w, http.StatusOK, store.Snapshot(), h.log)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem handles POST /api/cart/items. On first add the product's
// name, price and image are snapshotted into the line; repeated adds
// increment the quantity.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to load product for cart", "product_id", req.ProductID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	store := cart.FromContext(ctx)
	snap := store.AddItem(cart.Item{
		ID:     product.ID,
		NameZh: product.NameZh,
		Price:  product.Price,
		Image:  product.Image,
	})

	WriteJSON(w, http.StatusOK, snap, h.log)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity handles PUT /api/cart/items/{productId}. A quantity of
// zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	store := cart.FromContext(r.Context())
	snap := store.UpdateQuantity(productID, req.Quantity)
	h.log.Debug("cart quantity updated",
		"product_id", productID,
		"quantity", req.Quantity,
	)

	WriteJSON(w, http.StatusOK, snap, h.log)
}

// DecrementItem handles POST /api/cart/items/{productId}/decrement.
// Quantities clamp at zero; reaching zero removes the line.
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	store := cart.FromContext(r.Context())
	WriteJSON(w, http.StatusOK, store.Decrement(productID), h.log)
}

// RemoveItem handles DELETE /api/cart/items/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	store := cart.FromContext(r.Context())
	WriteJSON(w, http.StatusOK, store.RemoveItem(productID), h.log)
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := cart.FromContext(r.Context())
	WriteJSON(w, http.StatusOK, store.Clear(), h.log)
}
