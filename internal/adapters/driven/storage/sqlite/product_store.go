package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/sqlite/schema"
	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
)

// productsTable is the canonical name of the products table.
const productsTable = "Products"

// seedProducts are inserted on every start-up unless a row with the same id exists.
var seedProducts = []domain.Product{
	{ID: 1, Name: "Brood", Stock: 100, ShelfLife: domain.NewDate(2026, time.December, 31), Price: decimal.RequireFromString("1.50")},
	{ID: 2, Name: "Melk", Stock: 100, ShelfLife: domain.NewDate(2025, time.December, 31), Price: decimal.RequireFromString("2.50")},
	{ID: 3, Name: "Kaas", Stock: 100, ShelfLife: domain.NewDate(2026, time.June, 30), Price: decimal.RequireFromString("3.50")},
}

// SeedProducts returns a copy of the products every new database starts with.
func SeedProducts() []domain.Product {
	return slices.Clone(seedProducts)
}

// ProductStore implements driven.ProductStore on the Products table.
type ProductStore struct {
	mu sync.Mutex
	db *Database
}

var _ driven.ProductStore = (*ProductStore)(nil)

// NewProductStore creates the Products table if needed and inserts the
// seed products that are not present yet.
func NewProductStore(ctx context.Context, db *Database) (*ProductStore, error) {
	seeds := make([]Statement, 0, len(seedProducts))
	for _, p := range seedProducts {
		shelfLife, price, err := encodeProduct(p)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, Statement{
			Query: `INSERT OR IGNORE INTO Products (Id, Name, Stock, ShelfLife, Price) VALUES (?, ?, ?, ?, ?)`,
			Args:  []any{p.ID, p.Name, p.Stock, shelfLife, price},
		})
	}

	if err := db.bootstrap(ctx, productsTable, schema.Products, seeds); err != nil {
		return nil, err
	}
	return &ProductStore{db: db}, nil
}

// GetAll returns every product in primary-key order.
func (s *ProductStore) GetAll(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []domain.Product //nolint:prealloc // size unknown from query
	err := s.db.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `
			SELECT Id, Name, Stock, ShelfLife, Price
			FROM Products ORDER BY Id
		`)
		if err != nil {
			return fmt.Errorf("%w: querying products: %w", domain.ErrConnection, err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			products = append(products, *p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: iterating products: %w", domain.ErrConnection, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Get retrieves a product by ID.
// Returns nil and no error if the product does not exist.
func (s *ProductStore) Get(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	err := s.db.withConn(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, `
			SELECT Id, Name, Stock, ShelfLife, Price
			FROM Products WHERE Id = ?
		`, id)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: querying product %d: %w", domain.ErrConnection, id, err)
		}

		p, err := scanProduct(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Add inserts a new product and returns a copy carrying the assigned ID.
// The ID of the input is ignored.
func (s *ProductStore) Add(ctx context.Context, product domain.Product) (*domain.Product, error) {
	shelfLife, price, err := encodeProduct(product)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.withConn(ctx, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `
			INSERT INTO Products (Name, Stock, ShelfLife, Price)
			VALUES (?, ?, ?, ?)
		`, product.Name, product.Stock, shelfLife, price)
		if err != nil {
			return fmt.Errorf("%w: inserting product: %w", domain.ErrWrite, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: reading product id: %w", domain.ErrWrite, err)
		}
		product.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the name, stock, shelf life and price of the product
// with the same ID. Returns nil and no error if no product has that ID.
func (s *ProductStore) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	shelfLife, price, err := encodeProduct(product)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var affected int64
	err = s.db.withConn(ctx, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `
			UPDATE Products
			SET Name = ?, Stock = ?, ShelfLife = ?, Price = ?
			WHERE Id = ?
		`, product.Name, product.Stock, shelfLife, price, product.ID)
		if err != nil {
			return fmt.Errorf("%w: updating product %d: %w", domain.ErrWrite, product.ID, err)
		}
		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: updating product %d: %w", domain.ErrWrite, product.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return &product, nil
}

// Delete removes the product with the same ID.
// Returns nil and no error if no product has that ID.
func (s *ProductStore) Delete(ctx context.Context, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var affected int64
	err := s.db.withConn(ctx, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, "DELETE FROM Products WHERE Id = ?", product.ID)
		if err != nil {
			return fmt.Errorf("%w: deleting product %d: %w", domain.ErrWrite, product.ID, err)
		}
		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: deleting product %d: %w", domain.ErrWrite, product.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return &product, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one Products row and decodes its text columns.
func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p         domain.Product
		shelfLife string
		price     string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Stock, &shelfLife, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scanning product: %w", domain.ErrDecode, err)
	}

	var err error
	if p.ShelfLife, err = ParseDate(shelfLife); err != nil {
		return nil, fmt.Errorf("product %d shelf life: %w", p.ID, err)
	}
	if p.Price, err = ParseMoney(price); err != nil {
		return nil, fmt.Errorf("product %d price: %w", p.ID, err)
	}
	return &p, nil
}
