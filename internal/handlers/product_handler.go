package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/darkcuisine/storefront/internal/cart"
	"github.com/darkcuisine/storefront/internal/models"
	"github.com/darkcuisine/storefront/internal/repository"
	"github.com/darkcuisine/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles catalog HTTP requests.
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// listedProduct is a catalog entry with the session cart's quantity
// merged in. The cart is the single source of truth for quantities;
// the listing only derives its display value from it.
type listedProduct struct {
	models.Product
	Quantity int `json:"quantity"`
}

// ListProducts handles GET /api/products?category=
// The category tag filters by menu-placement flag; unknown tags yield
// an empty list.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(ctx, category)
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	store := cart.FromContext(ctx)
	listed := make([]listedProduct, 0, len(products))
	for _, p := range products {
		listed = append(listed, listedProduct{
			Product:  p,
			Quantity: store.Quantity(p.ID),
		})
	}

	WriteJSON(w, http.StatusOK, listed, h.log)
}

// GetProduct handles GET /api/products/{productId}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if productID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.log.Info("product not found", "product_id", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}

		h.log.Error("failed to get product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
}
