// Package checkout orchestrates order submission: it validates the
// delivery and payment input, snapshots the cart, places the order and
// mirrors the result into the session's order history.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/darkcuisine/storefront/internal/cart"
	"github.com/darkcuisine/storefront/internal/models"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrPaymentRequired      = errors.New("payment method must be selected")
	ErrDeliveryInfoRequired = errors.New("delivery name, phone and address are required")
)

// PickupTime is the static pickup estimate shown on every confirmation.
const PickupTime = "15-20 分鐘"

// OrderPlacer persists a validated order and returns its identifier.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (string, error)
}

// SubmitRequest is the checkout form input.
type SubmitRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	DeliveryInfo  models.DeliveryInfo  `json:"deliveryInfo"`
}

// Confirmation is the result of a successfully placed order.
type Confirmation struct {
	OrderID string `json:"orderId"`
	cart.Order
}

// Flow runs the checkout for one submission. The flow has three phases:
// cart non-empty, submitting, order placed. A failed submission leaves
// the cart and history untouched so the user can resubmit manually; a
// resubmission mints a fresh order number.
type Flow struct {
	placer OrderPlacer

	// Overridable for deterministic tests.
	now     func() time.Time
	randInt func(n int) int
}

// NewFlow creates a checkout flow backed by the given order placer.
func NewFlow(placer OrderPlacer) *Flow {
	return &Flow{
		placer:  placer,
		now:     time.Now,
		randInt: rand.IntN,
	}
}

// Submit validates the input, places the order, and on success clears
// the cart and prepends the order to the session history. Validation
// failures never reach the order placer.
func (f *Flow) Submit(ctx context.Context, store *cart.Store, req SubmitRequest) (*Confirmation, error) {
	snap := store.Snapshot()
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	if !req.PaymentMethod.Valid() {
		return nil, ErrPaymentRequired
	}
	if req.DeliveryInfo.Name == "" || req.DeliveryInfo.Phone == "" || req.DeliveryInfo.Address == "" {
		return nil, ErrDeliveryInfoRequired
	}

	order := cart.Order{
		OrderNumber:   f.orderNumber(),
		PickupTime:    PickupTime,
		PaymentMethod: req.PaymentMethod,
		DeliveryInfo:  req.DeliveryInfo,
		Items:         snap.Lines,
		TotalPrice:    snap.TotalPrice,
		Timestamp:     f.now(),
	}

	items := make([]models.OrderItemInput, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		items = append(items, models.OrderItemInput{
			ID:       line.ID,
			NameZh:   line.NameZh,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	orderID, err := f.placer.PlaceOrder(ctx, models.OrderRequest{
		OrderNumber:   order.OrderNumber,
		PaymentMethod: order.PaymentMethod,
		DeliveryInfo:  order.DeliveryInfo,
		Items:         items,
		TotalPrice:    order.TotalPrice,
	})
	if err != nil {
		return nil, err
	}

	store.AddOrder(order)
	store.Clear()

	return &Confirmation{OrderID: orderID, Order: order}, nil
}

// orderNumber mints a display order number: a zero-padded decimal
// string from a uniformly random integer in [0, 999999]. Collisions are
// accepted, not mitigated.
func (f *Flow) orderNumber() string {
	return fmt.Sprintf("%05d", f.randInt(1000000))
}
