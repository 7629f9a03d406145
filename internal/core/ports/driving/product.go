package driving

import (
	"context"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

// ProductService manages the product catalogue.
// Callers are expected to have validated field values already.
type ProductService interface {
	// GetAll returns every product.
	GetAll(ctx context.Context) ([]domain.Product, error)

	// Get retrieves a product by ID, or nil if it does not exist.
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// Add stores a new product. Any ID on the input is ignored.
	Add(ctx context.Context, product domain.Product) (*domain.Product, error)

	// Update replaces a product's fields. Returns nil if it does not exist.
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)

	// Delete removes a product. Returns nil if it does not exist.
	Delete(ctx context.Context, product domain.Product) (*domain.Product, error)
}
