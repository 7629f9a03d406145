package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driving"
)

// Ensure GroceryListService implements the interface.
var _ driving.GroceryListService = (*GroceryListService)(nil)

// GroceryListService manages the items on grocery lists.
type GroceryListService struct {
	store driven.GroceryListItemStore
}

// NewGroceryListService creates a new grocery list service.
func NewGroceryListService(store driven.GroceryListItemStore) *GroceryListService {
	return &GroceryListService{store: store}
}

// Items returns the items of all lists.
func (s *GroceryListService) Items(ctx context.Context) ([]domain.GroceryListItem, error) {
	return s.store.GetAll(ctx)
}

// ItemsForList returns the items of one list.
func (s *GroceryListService) ItemsForList(ctx context.Context, groceryListID int64) ([]domain.GroceryListItem, error) {
	return s.store.GetAllForList(ctx, groceryListID)
}

// Item retrieves a list item by ID, or nil if it does not exist.
func (s *GroceryListService) Item(ctx context.Context, id int64) (*domain.GroceryListItem, error) {
	return s.store.Get(ctx, id)
}

// AddItem puts a product on a list.
func (s *GroceryListService) AddItem(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	item.ID = 0

	added, err := s.store.Add(ctx, item)
	if err != nil {
		return nil, err
	}
	if added == nil || !added.IsPersisted() {
		return nil, fmt.Errorf("%w: no id assigned to list item", domain.ErrWrite)
	}
	return added, nil
}

// UpdateItem replaces a list item's fields. Returns nil if it does not exist.
func (s *GroceryListService) UpdateItem(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	return s.store.Update(ctx, item)
}

// RemoveItem deletes a list item. Returns nil if it does not exist.
func (s *GroceryListService) RemoveItem(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	return s.store.Delete(ctx, item)
}
