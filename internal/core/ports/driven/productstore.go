package driven

import (
	"context"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

// ProductStore persists products.
// Implementations are synchronous: every call blocks until the statement
// has completed.
type ProductStore interface {
	// GetAll returns every product in primary-key order.
	GetAll(ctx context.Context) ([]domain.Product, error)

	// Get retrieves a product by ID.
	// Returns nil and no error if the product does not exist.
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// Add inserts a new product and returns it with the store-assigned ID.
	Add(ctx context.Context, product domain.Product) (*domain.Product, error)

	// Update replaces all mutable fields of the product with the same ID.
	// Returns nil and no error if no product has that ID.
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)

	// Delete removes the product with the same ID.
	// Returns nil and no error if no product has that ID.
	Delete(ctx context.Context, product domain.Product) (*domain.Product, error)
}
