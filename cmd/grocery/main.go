// Command grocery manages products and grocery lists stored in a local
// SQLite database.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/grocery-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/grocery-cli/internal/core/services"
	"github.com/custodia-labs/grocery-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(wire, version); err != nil {
		os.Exit(1)
	}
}

// wire builds the services for one command run.
func wire(opts cli.Options) (cli.Services, error) {
	config, err := file.NewConfigStore("")
	if err != nil {
		return cli.Services{}, fmt.Errorf("loading config: %w", err)
	}

	var (
		products driven.ProductStore
		items    driven.GroceryListItemStore
	)

	if opts.InMemory {
		logger.Debug("Using in-memory storage")
		products = memory.NewProductStore(sqlite.SeedProducts()...)
		items = memory.NewGroceryListItemStore(sqlite.SeedGroceryListItems()...)
	} else {
		db, err := sqlite.NewDatabase(dataDir(opts, config))
		if err != nil {
			return cli.Services{}, err
		}
		logger.Debug("Using database %s", db.Path())

		ctx := context.Background()
		if products, err = sqlite.NewProductStore(ctx, db); err != nil {
			return cli.Services{}, err
		}
		if items, err = sqlite.NewGroceryListItemStore(ctx, db); err != nil {
			return cli.Services{}, err
		}
	}

	return cli.Services{
		Products:    services.NewProductService(products),
		GroceryList: services.NewGroceryListService(items),
		Config:      config,
	}, nil
}

// dataDir picks the database directory: the flag first, then the config
// file, then the default.
func dataDir(opts cli.Options, config driven.ConfigStore) string {
	if opts.DataDir != "" {
		return opts.DataDir
	}
	if dir := config.GetString(file.KeyDataDir); dir != "" {
		return filepath.Clean(dir)
	}
	return ""
}
