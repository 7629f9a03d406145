package driving

import (
	"context"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

// GroceryListService manages the items on grocery lists.
type GroceryListService interface {
	// Items returns the items of all lists.
	Items(ctx context.Context) ([]domain.GroceryListItem, error)

	// ItemsForList returns the items of one list.
	ItemsForList(ctx context.Context, groceryListID int64) ([]domain.GroceryListItem, error)

	// Item retrieves a list item by ID, or nil if it does not exist.
	Item(ctx context.Context, id int64) (*domain.GroceryListItem, error)

	// AddItem puts a product on a list. Any ID on the input is ignored.
	AddItem(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error)

	// UpdateItem replaces a list item's fields. Returns nil if it does not exist.
	UpdateItem(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error)

	// RemoveItem deletes a list item. Returns nil if it does not exist.
	RemoveItem(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error)
}
