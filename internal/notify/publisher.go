// Package notify publishes order lifecycle events for downstream
// consumers (kitchen display, notifications). Publishing is best-effort:
// a failed publish never fails the order write.
package notify

import (
	"context"

	"github.com/darkcuisine/storefront/internal/models"
)

// Publisher emits an event after an order has been persisted.
type Publisher interface {
	OrderCreated(ctx context.Context, order *models.Order) error
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(ctx context.Context, order *models.Order) error {
	return nil
}
