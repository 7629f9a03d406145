package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
)

// Ensure ProductStore implements the interface.
var _ driven.ProductStore = (*ProductStore)(nil)

// ProductStore is an in-memory implementation of driven.ProductStore.
// IDs are allocated from a counter and never reused.
type ProductStore struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	lastID   int64
}

// NewProductStore creates a new in-memory product store holding the given products.
// Products keep their IDs; later inserts are numbered after the highest one.
func NewProductStore(products ...domain.Product) *ProductStore {
	s := &ProductStore{
		products: make(map[int64]domain.Product, len(products)),
	}
	for _, p := range products {
		s.products[p.ID] = p
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return s
}

// GetAll returns every product ordered by ID.
func (s *ProductStore) GetAll(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Get retrieves a product by ID.
func (s *ProductStore) Get(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Add inserts a product under a new ID.
func (s *ProductStore) Add(_ context.Context, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	product.ID = s.lastID
	s.products[product.ID] = product
	return &product, nil
}

// Update replaces the product with the same ID.
func (s *ProductStore) Update(_ context.Context, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return nil, nil
	}
	s.products[product.ID] = product
	return &product, nil
}

// Delete removes the product with the same ID.
func (s *ProductStore) Delete(_ context.Context, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return nil, nil
	}
	delete(s.products, product.ID)
	return &product, nil
}
