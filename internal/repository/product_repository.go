package repository

import (
	"context"
	"errors"
	"time"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog reads. Only
// available products are returned, ordered by creation time ascending.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. Used in tests and as the fallback when no database is
// configured.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates an in-memory catalog seeded with
// the standard menu.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: SeedProducts(),
	}
}

// GetAll returns all available products in menu order.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsAvailable {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetByID returns an available product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.IsAvailable {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// SeedProducts returns the standard menu. The same data is written to
// the database by cmd/seed.
func SeedProducts() []models.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString

	products := []models.Product{
		{ID: "1", Name: "Soy Milk", NameZh: "豆漿", Description: "Freshly made soy milk, served hot or cold.", Price: price("2.00"), Image: "https://images.unsplash.com/photo-1556910110-a5a63dfd393c?w=400&h=400&fit=crop", Category: models.CategoryDrink, IsAvailable: true, IsPopular: true, IsBreakfast: true},
		{ID: "2", Name: "Egg Crepe", NameZh: "蛋餅", Description: "Egg crepe with a variety of fillings.", Price: price("3.50"), Image: "https://images.unsplash.com/photo-1606787366850-de6330128bfc?w=400&h=400&fit=crop", Category: models.CategoryMain, IsAvailable: true, IsPopular: true, IsBreakfast: true},
		{ID: "3", Name: "Radish Cake", NameZh: "蘿蔔糕", Description: "Pan-fried radish cake, crispy outside.", Price: price("3.00"), Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400&h=400&fit=crop", Category: models.CategoryMain, IsAvailable: true, IsBreakfast: true, IsDinner: true},
		{ID: "4", Name: "Fried Dough Stick", NameZh: "油條", Description: "Traditional Chinese fried dough.", Price: price("2.00"), Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400&h=400&fit=crop", Category: models.CategoryMain, IsAvailable: true, IsBreakfast: true},
		{ID: "5", Name: "Black Tea", NameZh: "紅茶", Description: "Classic Taiwanese black tea.", Price: price("1.50"), Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400&h=400&fit=crop", Category: models.CategoryDrink, IsAvailable: true, IsPopular: true, IsBreakfast: true, IsDinner: true},
		{ID: "6", Name: "Rice Ball", NameZh: "飯糰", Description: "Traditional rice ball with various fillings.", Price: price("3.00"), Image: "https://images.unsplash.com/photo-1609501676725-7186f017a4b7?w=400&h=400&fit=crop", Category: models.CategoryMain, IsAvailable: true, IsBreakfast: true},
		{ID: "7", Name: "Steamed Bun", NameZh: "饅頭", Description: "Fluffy steamed bun.", Price: price("1.50"), Image: "https://images.unsplash.com/photo-1517686469429-8bdb88b9f907?w=400&h=400&fit=crop", Category: models.CategorySide, IsAvailable: true, IsBreakfast: true},
		{ID: "8", Name: "Sweet Soy Milk", NameZh: "甜豆漿", Description: "Sweet soy milk with a touch of sugar.", Price: price("2.00"), Image: "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=400&h=400&fit=crop", Category: models.CategoryDrink, IsAvailable: true},
	}

	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
	}
	return products
}
