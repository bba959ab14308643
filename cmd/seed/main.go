// Command seed bootstraps the database schema and loads the standard
// menu. Existing products are replaced; orders are left untouched.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/darkcuisine/storefront/internal/config"
	"github.com/darkcuisine/storefront/internal/postgres"
	"github.com/darkcuisine/storefront/internal/repository"
	"github.com/darkcuisine/storefront/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	name_zh       TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	price         NUMERIC(10,2) NOT NULL,
	image         TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL,
	is_available  BOOLEAN NOT NULL DEFAULT true,
	is_popular    BOOLEAN NOT NULL DEFAULT false,
	is_breakfast  BOOLEAN NOT NULL DEFAULT false,
	is_dinner     BOOLEAN NOT NULL DEFAULT false,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id               TEXT PRIMARY KEY,
	order_number     TEXT NOT NULL,
	subtotal         NUMERIC(10,2) NOT NULL,
	total            NUMERIC(10,2) NOT NULL,
	payment_method   TEXT NOT NULL,
	estimated_time   INTEGER NOT NULL,
	delivery_name    TEXT NOT NULL DEFAULT '',
	delivery_phone   TEXT NOT NULL DEFAULT '',
	delivery_address TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_items (
	id           TEXT PRIMARY KEY,
	order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id   TEXT NOT NULL,
	product_name TEXT NOT NULL,
	quantity     INTEGER NOT NULL,
	price        NUMERIC(10,2) NOT NULL,
	subtotal     NUMERIC(10,2) NOT NULL
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if !cfg.Database.Enabled() {
		log.Error("DB_HOST must be set to seed the database")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("applying schema...")
	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	log.Info("cleaning existing products...")
	if _, err := pool.Exec(ctx, `DELETE FROM products`); err != nil {
		log.Error("failed to clean products", "error", err)
		os.Exit(1)
	}

	log.Info("seeding products...")
	products := repository.SeedProducts()
	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, name_zh, description, price, image, category,
			                      is_available, is_popular, is_breakfast, is_dinner, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, p.ID, p.Name, p.NameZh, p.Description, p.Price.String(), p.Image, p.Category,
			p.IsAvailable, p.IsPopular, p.IsBreakfast, p.IsDinner, p.CreatedAt)
		if err != nil {
			log.Error("failed to insert product", "name_zh", p.NameZh, "error", err)
			os.Exit(1)
		}
		log.Info("seeded product", "name_zh", p.NameZh, "price", p.Price.String())
	}

	log.Info("seed completed", "count", len(products))
}
