package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// OrderRepository implements repository.OrderRepository on PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create writes the order row and one child row per line item in a
// single transaction. Any failure rolls back the whole write.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO orders (id, order_number, subtotal, total, payment_method,
		                    estimated_time, delivery_name, delivery_phone, delivery_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.Exec(ctx, query,
		order.ID, order.OrderNumber, order.Subtotal.String(), order.Total.String(),
		string(order.PaymentMethod), order.EstimatedTime,
		order.DeliveryName, order.DeliveryPhone, order.DeliveryAddress, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID

		itemQuery := `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err = tx.Exec(ctx, itemQuery,
			order.Items[i].ID, order.ID, order.Items[i].ProductID, order.Items[i].ProductName,
			order.Items[i].Quantity, order.Items[i].Price.String(), order.Items[i].Subtotal.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// List returns all persisted orders with their line items,
// most-recent-first.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, order_number, subtotal::text, total::text, payment_method,
		       estimated_time, delivery_name, delivery_phone, delivery_address, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var subtotal, total, method string

		err := rows.Scan(&o.ID, &o.OrderNumber, &subtotal, &total, &method,
			&o.EstimatedTime, &o.DeliveryName, &o.DeliveryPhone, &o.DeliveryAddress, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		if o.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, fmt.Errorf("invalid order subtotal %q: %w", subtotal, err)
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("invalid order total %q: %w", total, err)
		}
		o.PaymentMethod = models.PaymentMethodType(method)

		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) listItems(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, price::text, subtotal::text
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		var price, subtotal string

		err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.ProductName,
			&line.Quantity, &price, &subtotal)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		if line.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("invalid item price %q: %w", price, err)
		}
		if line.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, fmt.Errorf("invalid item subtotal %q: %w", subtotal, err)
		}

		items = append(items, line)
	}
	return items, rows.Err()
}
