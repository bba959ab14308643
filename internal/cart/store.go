package cart

import (
	"sync"
	"time"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Line is one product's quantity within the active cart. The display
// name, price and image are snapshots taken when the product was first
// added.
type Line struct {
	ID       string          `json:"id"`
	NameZh   string          `json:"nameZh"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Item is the add-time snapshot of a product, without a quantity.
type Item struct {
	ID     string
	NameZh string
	Price  decimal.Decimal
	Image  string
}

// Order is the session-local copy of a placed order, used for the
// checkout confirmation and kept in the store's history. It is never
// reconciled against the persisted row after creation.
type Order struct {
	OrderNumber   string               `json:"orderNumber"`
	PickupTime    string               `json:"pickupTime"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	DeliveryInfo  models.DeliveryInfo  `json:"deliveryInfo"`
	Items         []Line               `json:"items"`
	TotalPrice    decimal.Decimal      `json:"totalPrice"`
	Timestamp     time.Time            `json:"timestamp"`
}

// Snapshot is an immutable view of the cart. Totals are folded from the
// current lines on every read, never cached.
type Snapshot struct {
	Lines      []Line          `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	TotalItems int             `json:"totalItems"`
}

// Store is the single source of truth for one session's cart and order
// history. All methods are safe for concurrent use; mutating operations
// return the resulting snapshot.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	orders []Order
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// AddItem increments the line for the given product by one, inserting a
// new line with quantity one on first add. There is no upper bound on
// quantity.
func (s *Store) AddItem(item Item) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			return s.snapshotLocked()
		}
	}

	s.lines = append(s.lines, Line{
		ID:       item.ID,
		NameZh:   item.NameZh,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	})
	return s.snapshotLocked()
}

// UpdateQuantity sets (not increments) the quantity of a line. A value
// of zero or less removes the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		break
	}
	return s.snapshotLocked()
}

// Decrement lowers a line's quantity by one, clamped at zero; reaching
// zero removes the line. Unknown ids are a no-op.
func (s *Store) Decrement(id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		if s.lines[i].Quantity <= 1 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity--
		}
		break
	}
	return s.snapshotLocked()
}

// RemoveItem deletes the line unconditionally; no-op if absent.
func (s *Store) RemoveItem(id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return s.snapshotLocked()
}

// Clear empties all lines. Order history is not affected.
func (s *Store) Clear() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.snapshotLocked()
}

// Quantity returns the current quantity for a product, zero if absent.
func (s *Store) Quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			return s.lines[i].Quantity
		}
	}
	return 0
}

// Snapshot returns an immutable view of the current cart.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// AddOrder prepends the order to the session history, most-recent-first.
func (s *Store) AddOrder(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]Order{o}, s.orders...)
}

// Orders returns a copy of the session's order history,
// most-recent-first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

func (s *Store) snapshotLocked() Snapshot {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	total := decimal.Zero
	count := 0
	for _, l := range s.lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		count += l.Quantity
	}

	return Snapshot{
		Lines:      lines,
		TotalPrice: total,
		TotalItems: count,
	}
}
