package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driving"
)

// Ensure ProductService implements the interface.
var _ driving.ProductService = (*ProductService)(nil)

// ProductService manages the product catalogue.
type ProductService struct {
	store driven.ProductStore
}

// NewProductService creates a new product service.
func NewProductService(store driven.ProductStore) *ProductService {
	return &ProductService{store: store}
}

// GetAll returns every product.
func (s *ProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	return s.store.GetAll(ctx)
}

// Get retrieves a product by ID, or nil if it does not exist.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.store.Get(ctx, id)
}

// Add stores a new product. The ID is cleared first so the store always
// allocates one.
func (s *ProductService) Add(ctx context.Context, product domain.Product) (*domain.Product, error) {
	product.ID = 0

	added, err := s.store.Add(ctx, product)
	if err != nil {
		return nil, err
	}
	if added == nil || !added.IsPersisted() {
		return nil, fmt.Errorf("%w: no id assigned to product %q", domain.ErrWrite, product.Name)
	}
	return added, nil
}

// Update replaces a product's fields. Returns nil if it does not exist.
func (s *ProductService) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	return s.store.Update(ctx, product)
}

// Delete removes a product. Returns nil if it does not exist.
// Grocery list items referring to the product are left in place.
func (s *ProductService) Delete(ctx context.Context, product domain.Product) (*domain.Product, error) {
	return s.store.Delete(ctx, product)
}
