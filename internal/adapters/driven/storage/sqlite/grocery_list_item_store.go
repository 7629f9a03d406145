package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/sqlite/schema"
	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
)

// groceryListItemsTable is the canonical name of the list items table.
// Schema creation, seeding and every query use this name.
const groceryListItemsTable = "GroceryListItems"

// seedGroceryListItems put the three seed products on list 1.
var seedGroceryListItems = []domain.GroceryListItem{
	{ID: 1, GroceryListID: 1, ProductID: 1, Amount: 2},
	{ID: 2, GroceryListID: 1, ProductID: 2, Amount: 3},
	{ID: 3, GroceryListID: 1, ProductID: 3, Amount: 1},
}

// SeedGroceryListItems returns a copy of the list items every new database starts with.
func SeedGroceryListItems() []domain.GroceryListItem {
	return slices.Clone(seedGroceryListItems)
}

// GroceryListItemStore implements driven.GroceryListItemStore on the
// GroceryListItems table.
type GroceryListItemStore struct {
	mu sync.Mutex
	db *Database
}

var _ driven.GroceryListItemStore = (*GroceryListItemStore)(nil)

// NewGroceryListItemStore creates the GroceryListItems table if needed and
// inserts the seed items that are not present yet.
func NewGroceryListItemStore(ctx context.Context, db *Database) (*GroceryListItemStore, error) {
	seeds := make([]Statement, 0, len(seedGroceryListItems))
	for _, item := range seedGroceryListItems {
		seeds = append(seeds, Statement{
			Query: `INSERT OR IGNORE INTO GroceryListItems (Id, ProductId, GroceryListId, Amount) VALUES (?, ?, ?, ?)`,
			Args:  []any{item.ID, item.ProductID, item.GroceryListID, item.Amount},
		})
	}

	if err := db.bootstrap(ctx, groceryListItemsTable, schema.GroceryListItems, seeds); err != nil {
		return nil, err
	}
	return &GroceryListItemStore{db: db}, nil
}

// GetAll returns every item of every list in primary-key order.
func (s *GroceryListItemStore) GetAll(ctx context.Context) ([]domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query(ctx, `
		SELECT Id, ProductId, GroceryListId, Amount
		FROM GroceryListItems ORDER BY Id
	`)
}

// GetAllForList returns the items of one grocery list in primary-key order.
func (s *GroceryListItemStore) GetAllForList(ctx context.Context, groceryListID int64) ([]domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query(ctx, `
		SELECT Id, ProductId, GroceryListId, Amount
		FROM GroceryListItems WHERE GroceryListId = ? ORDER BY Id
	`, groceryListID)
}

// query runs a SELECT over GroceryListItems (caller must hold lock).
func (s *GroceryListItemStore) query(ctx context.Context, query string, args ...any) ([]domain.GroceryListItem, error) {
	var items []domain.GroceryListItem //nolint:prealloc // size unknown from query
	err := s.db.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: querying grocery list items: %w", domain.ErrConnection, err)
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scanGroceryListItem(rows)
			if err != nil {
				return err
			}
			items = append(items, *item)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: iterating grocery list items: %w", domain.ErrConnection, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get retrieves an item by ID.
// Returns nil and no error if the item does not exist.
func (s *GroceryListItemStore) Get(ctx context.Context, id int64) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item *domain.GroceryListItem
	err := s.db.withConn(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, `
			SELECT Id, ProductId, GroceryListId, Amount
			FROM GroceryListItems WHERE Id = ?
		`, id)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: querying grocery list item %d: %w", domain.ErrConnection, id, err)
		}

		found, err := scanGroceryListItem(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		item = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Add inserts a new item and returns a copy carrying the assigned ID.
// The ID of the input is ignored.
func (s *GroceryListItemStore) Add(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.withConn(ctx, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `
			INSERT INTO GroceryListItems (ProductId, GroceryListId, Amount)
			VALUES (?, ?, ?)
		`, item.ProductID, item.GroceryListID, item.Amount)
		if err != nil {
			return fmt.Errorf("%w: inserting grocery list item: %w", domain.ErrWrite, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: reading grocery list item id: %w", domain.ErrWrite, err)
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the product, list and amount of the item with the same ID.
// Returns nil and no error if no item has that ID.
func (s *GroceryListItemStore) Update(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := s.exec(ctx, "updating", item.ID, `
		UPDATE GroceryListItems
		SET ProductId = ?, GroceryListId = ?, Amount = ?
		WHERE Id = ?
	`, item.ProductID, item.GroceryListID, item.Amount, item.ID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return &item, nil
}

// Delete removes the item with the same ID.
// Returns nil and no error if no item has that ID.
func (s *GroceryListItemStore) Delete(ctx context.Context, item domain.GroceryListItem) (*domain.GroceryListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := s.exec(ctx, "deleting", item.ID, "DELETE FROM GroceryListItems WHERE Id = ?", item.ID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return &item, nil
}

// exec runs a write statement and returns the number of affected rows
// (caller must hold lock).
func (s *GroceryListItemStore) exec(ctx context.Context, action string, id int64, query string, args ...any) (int64, error) {
	var affected int64
	err := s.db.withConn(ctx, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %s grocery list item %d: %w", domain.ErrWrite, action, id, err)
		}
		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %s grocery list item %d: %w", domain.ErrWrite, action, id, err)
		}
		return nil
	})
	return affected, err
}

// scanGroceryListItem reads one GroceryListItems row.
func scanGroceryListItem(row rowScanner) (*domain.GroceryListItem, error) {
	var item domain.GroceryListItem
	if err := row.Scan(&item.ID, &item.ProductID, &item.GroceryListID, &item.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scanning grocery list item: %w", domain.ErrDecode, err)
	}
	return &item, nil
}
