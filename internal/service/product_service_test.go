package service

import (
	"context"
	"testing"

	"github.com/darkcuisine/storefront/internal/repository"
)

func TestProductService_ListProducts_Filtering(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)

	tests := []struct {
		name      string
		category  string
		wantCount int
	}{
		{name: "no category returns full catalog", category: "", wantCount: 8},
		{name: "popular flag", category: CategoryPopular, wantCount: 3},
		{name: "breakfast flag", category: CategoryBreakfast, wantCount: 7},
		{name: "dinner flag", category: CategoryDinner, wantCount: 2},
		{name: "unknown tag matches nothing", category: "lunch", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.ListProducts(context.Background(), tt.category)
			if err != nil {
				t.Fatalf("ListProducts() unexpected error = %v", err)
			}
			if len(products) != tt.wantCount {
				t.Errorf("ListProducts(%q) count = %d, want %d", tt.category, len(products), tt.wantCount)
			}
		})
	}
}

func TestProductService_ListProducts_MenuOrderPreserved(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)

	products, err := svc.ListProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("ListProducts() unexpected error = %v", err)
	}

	for i := 1; i < len(products); i++ {
		if products[i].CreatedAt.Before(products[i-1].CreatedAt) {
			t.Errorf("products not ordered by creation time at index %d", i)
		}
	}
}

func TestProductService_GetProduct(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo)

	product, err := svc.GetProduct(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetProduct() unexpected error = %v", err)
	}
	if product.NameZh != "豆漿" {
		t.Errorf("nameZh = %s, want 豆漿", product.NameZh)
	}

	if _, err := svc.GetProduct(context.Background(), "999"); err != repository.ErrProductNotFound {
		t.Errorf("GetProduct(999) error = %v, want ErrProductNotFound", err)
	}
}
