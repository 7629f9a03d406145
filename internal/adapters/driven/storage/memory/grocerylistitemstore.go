package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
)

// Ensure GroceryListItemStore implements the interface.
var _ driven.GroceryListItemStore = (*GroceryListItemStore)(nil)

// GroceryListItemStore is an in-memory implementation of driven.GroceryListItemStore.
type GroceryListItemStore struct {
	mu     sync.RWMutex
	items  map[int64]domain.GroceryListItem
	lastID int64
}

// NewGroceryListItemStore creates a new in-memory list item store holding the given items.
func NewGroceryListItemStore(items ...domain.GroceryListItem) *GroceryListItemStore {
	s := &GroceryListItemStore{
		items: make(map[int64]domain.GroceryListItem, len(items)),
	}
	for _, item := range items {
		s.items[item.ID] = item
		if item.ID > s.lastID {
			s.lastID = item.ID
		}
	}
	return s
}

// GetAll returns every item ordered by ID.
func (s *GroceryListItemStore) GetAll(_ context.Context) ([]domain.GroceryListItem, error) {
	return s.filter(func(domain.GroceryListItem) bool { return true }), nil
}

// GetAllForList returns the items of one list ordered by ID.
func (s *GroceryListItemStore) GetAllForList(_ context.Context, groceryListID int64) ([]domain.GroceryListItem, error) {
	return s.filter(func(item domain.GroceryListItem) bool {
		return item.GroceryListID == groceryListID
	}), nil
}

func (s *GroceryListItemStore) filter(keep func(domain.GroceryListItem) bool) []domain.GroceryListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.GroceryListItem, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get retrieves an item by ID.
func (s *GroceryListItemStore) Get(_ context.Context, id int64) (*domain.GroceryListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Add inserts an item under a new ID.
func (s *GroceryListItemStore) Add(_ context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	item.ID = s.lastID
	s.items[item.ID] = item
	return &item, nil
}

// Update replaces the item with the same ID.
func (s *GroceryListItemStore) Update(_ context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return nil, nil
	}
	s.items[item.ID] = item
	return &item, nil
}

// Delete removes the item with the same ID.
func (s *GroceryListItemStore) Delete(_ context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return nil, nil
	}
	delete(s.items, item.ID)
	return &item, nil
}
