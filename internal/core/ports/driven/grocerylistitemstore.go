package driven

import (
	"context"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

// GroceryListItemStore persists grocery list items.
type GroceryListItemStore interface {
	// GetAll returns every item of every list in primary-key order.
	GetAll(ctx context.Context) ([]domain.GroceryListItem, error)

	// GetAllForList returns the items of one grocery list.
	// An unknown list yields an empty slice, not an error.
	GetAllForList(ctx context.Context, groceryListID int64) ([]domain.GroceryListItem, error)

	// Get retrieves an item by ID.
	// Returns nil and no error if the item does not exist.
	Get(ctx context.Context, id int64) (*domain.GroceryListItem, error)

	// Add inserts a new item and returns it with the store-assigned ID.
	Add(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error)

	// Update replaces all mutable fields of the item with the same ID.
	// Returns nil and no error if no item has that ID.
	Update(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error)

	// Delete removes the item with the same ID.
	// Returns nil and no error if no item has that ID.
	Delete(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error)
}
