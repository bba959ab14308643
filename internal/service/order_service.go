package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/darkcuisine/storefront/internal/notify"
	"github.com/darkcuisine/storefront/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingOrderFields = errors.New("missing required order fields")
)

// Pickup estimate persisted with every order, in minutes. A static
// figure, not computed from kitchen load.
const estimatedTimeMinutes = 15

// OrderService validates and persists incoming orders.
type OrderService struct {
	repo   repository.OrderRepository
	events notify.Publisher
	log    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, events notify.Publisher, log *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// CreateOrder validates the request, computes the subtotal server-side
// and writes the order with its line items in one transaction. The
// caller-supplied total is persisted verbatim; it is not checked
// against the subtotal. After a successful write an order-created event
// is published; publish failures are logged and never fail the order.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if req.OrderNumber == "" || req.PaymentMethod == "" || len(req.Items) == 0 {
		return nil, ErrMissingOrderFields
	}

	subtotal := decimal.Zero
	items := make([]models.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lineSubtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineSubtotal)

		items = append(items, models.OrderLine{
			ProductID:   item.ID,
			ProductName: item.NameZh,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    lineSubtotal,
		})
	}

	order := &models.Order{
		OrderNumber:     req.OrderNumber,
		Subtotal:        subtotal,
		Total:           req.TotalPrice,
		PaymentMethod:   req.PaymentMethod.Backing(),
		EstimatedTime:   estimatedTimeMinutes,
		DeliveryName:    req.DeliveryInfo.Name,
		DeliveryPhone:   req.DeliveryInfo.Phone,
		DeliveryAddress: req.DeliveryInfo.Address,
		Items:           items,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.events.OrderCreated(ctx, order); err != nil {
		s.log.Warn("failed to publish order created event",
			"order_id", order.ID,
			"error", err,
		)
	}

	return order, nil
}

// PlaceOrder adapts CreateOrder to the checkout flow's OrderPlacer
// interface, returning the generated order identifier.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (string, error) {
	order, err := s.CreateOrder(ctx, req)
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

// ListOrders returns all persisted orders, most-recent-first.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}
