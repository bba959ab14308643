package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/darkcuisine/storefront/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher publishes order-created events to a fanout exchange.
type RabbitPublisher struct {
	conn     *amqp.Connection
	exchange string
}

// NewRabbitPublisher connects to RabbitMQ and declares the fanout
// exchange events are published to.
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitPublisher{conn: conn, exchange: exchange}, nil
}

type orderCreatedEvent struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Total       string `json:"total"`
	ItemCount   int    `json:"itemCount"`
	CreatedAt   string `json:"createdAt"`
}

// OrderCreated publishes the event for a freshly persisted order.
func (p *RabbitPublisher) OrderCreated(ctx context.Context, order *models.Order) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(orderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total.String(),
		ItemCount:   len(order.Items),
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (p *RabbitPublisher) Close() error {
	return p.conn.Close()
}
