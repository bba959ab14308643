package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/darkcuisine/storefront/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ProductRepository implements repository.ProductRepository on
// PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetAll returns all available products ordered by creation time.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, name_zh, description, price::text, image, category,
		       is_available, is_popular, is_breakfast, is_dinner, created_at
		FROM products
		WHERE is_available = true
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetByID returns an available product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, name_zh, description, price::text, image, category,
		       is_available, is_popular, is_breakfast, is_dinner, created_at
		FROM products
		WHERE id = $1 AND is_available = true
	`

	row := r.pool.QueryRow(ctx, query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var price string

	err := row.Scan(&p.ID, &p.Name, &p.NameZh, &p.Description, &price, &p.Image,
		&p.Category, &p.IsAvailable, &p.IsPopular, &p.IsBreakfast, &p.IsDinner, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid product price %q: %w", price, err)
	}
	return &p, nil
}
