package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/logger"
)

// dbFileName is the name of the database file inside the data directory.
const dbFileName = "grocery.db"

// Database is a handle to the on-disk database file.
// It holds no open connection between calls.
type Database struct {
	path string
	dsn  string
}

// NewDatabase resolves the database file inside dataDir and creates the
// directory if needed. The file itself is created on first open.
// If dataDir is empty, defaults to ~/.grocery/data.
func NewDatabase(dataDir string) (*Database, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %w", domain.ErrConnection, err)
		}
		dataDir = filepath.Join(home, ".grocery", "data")
	}

	dataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving data directory: %w", domain.ErrConnection, err)
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", domain.ErrConnection, err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	return &Database{
		path: dbPath,
		dsn:  fileURI(dbPath) + "?_pragma=busy_timeout(5000)",
	}, nil
}

// fileURI turns an absolute path into a SQLite file: URI. Characters such
// as '?', '#' and '%' in directory names are percent-encoded so they stay
// part of the path.
func fileURI(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Path: p}
	return "file:" + u.EscapedPath()
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.path
}

// Conn is an open connection to the database file.
type Conn struct {
	db   *sql.DB
	path string
}

// Open opens the database file, creating it if it does not exist.
// The caller must Close the returned connection.
func (d *Database) Open(ctx context.Context) (*Conn, error) {
	db, err := sql.Open("sqlite", d.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", domain.ErrConnection, d.path, err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; reading the schema catches missing directories and
	// files that are not databases.
	var tables int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master").Scan(&tables); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrConnection, d.path, err)
	}

	logger.Debug("opened %s", d.path)
	return &Conn{db: db, path: d.path}, nil
}

// Close releases the connection. Closing a nil or already closed
// connection is a no-op.
func (c *Conn) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	logger.Debug("closed %s", c.path)
	if err != nil {
		return fmt.Errorf("%w: closing %s: %w", domain.ErrConnection, c.path, err)
	}
	return nil
}

// withConn opens a connection, runs fn and closes the connection on
// every return path.
func (d *Database) withConn(ctx context.Context, fn func(db *sql.DB) error) (err error) {
	conn, err := d.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(conn.db)
}

// CreateTable executes an idempotent CREATE TABLE IF NOT EXISTS statement.
func (d *Database) CreateTable(ctx context.Context, stmt string) error {
	return d.withConn(ctx, func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: creating table: %w", domain.ErrWrite, err)
		}
		return nil
	})
}

// TableExists reports whether a table with the given name exists.
func (d *Database) TableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := d.withConn(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
		).Scan(&count)
	})
	if err != nil {
		return false, fmt.Errorf("looking up table %s: %w", name, err)
	}
	return count == 1, nil
}

// Statement is a parameterised non-query statement.
type Statement struct {
	Query string
	Args  []any
}

// RunInTransaction executes stmts in order inside one transaction.
// If any statement fails the transaction is rolled back and the error
// wraps domain.ErrSeed.
func (d *Database) RunInTransaction(ctx context.Context, stmts []Statement) error {
	return d.withConn(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: beginning transaction: %w", domain.ErrSeed, err)
		}
		defer tx.Rollback() //nolint:errcheck

		for i, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt.Query, stmt.Args...); err != nil {
				return fmt.Errorf("%w: statement %d: %w", domain.ErrSeed, i+1, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: committing transaction: %w", domain.ErrSeed, err)
		}
		return nil
	})
}

// bootstrap creates a table, checks that it exists under its canonical
// name and inserts the seed rows.
func (d *Database) bootstrap(ctx context.Context, table, create string, seeds []Statement) error {
	if err := d.CreateTable(ctx, create); err != nil {
		return err
	}

	ok, err := d.TableExists(ctx, table)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: table %s missing after schema creation", domain.ErrSeed, table)
	}

	if err := d.RunInTransaction(ctx, seeds); err != nil {
		return fmt.Errorf("seeding %s: %w", table, err)
	}

	logger.Debug("bootstrapped %s with %d seed statements", table, len(seeds))
	return nil
}
