package repository

import (
	"context"
	"sync"
	"time"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence. Create
// must write the order and all of its line items atomically.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
}

// InMemoryOrderRepository implements OrderRepository with in-memory
// storage. Used in tests and as the fallback when no database is
// configured.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order store.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// Create stores the order, assigning ids to the order and its lines.
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}

	stored := *order
	stored.Items = make([]models.OrderLine, len(order.Items))
	copy(stored.Items, order.Items)
	r.orders = append(r.orders, stored)
	return nil
}

// List returns all persisted orders, most-recent-first.
func (r *InMemoryOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]models.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		orders = append(orders, r.orders[i])
	}
	return orders, nil
}

// Len returns the number of persisted orders.
func (r *InMemoryOrderRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.orders)
}
