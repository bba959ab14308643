package service

import (
	"context"

	"github.com/darkcuisine/storefront/internal/models"
	"github.com/darkcuisine/storefront/internal/repository"
)

// Menu-placement filter tags accepted by the catalog listing.
const (
	CategoryPopular   = "popular"
	CategoryBreakfast = "breakfast"
	CategoryDinner    = "dinner"
)

// ProductService handles business logic for the catalog.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns available products filtered by a menu-placement
// tag. An empty tag returns the full catalog; an unrecognized tag
// matches nothing (there is no catch-all branch).
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		switch category {
		case CategoryPopular:
			if p.IsPopular {
				filtered = append(filtered, p)
			}
		case CategoryBreakfast:
			if p.IsBreakfast {
				filtered = append(filtered, p)
			}
		case CategoryDinner:
			if p.IsDinner {
				filtered = append(filtered, p)
			}
		}
	}
	return filtered, nil
}

// GetProduct returns a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
