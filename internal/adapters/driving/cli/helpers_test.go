package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/grocery-cli/internal/core/services"
)

// testStores gives tests direct access to the stores behind the services.
type testStores struct {
	products *memory.ProductStore
	items    *memory.GroceryListItemStore
	config   *memory.ConfigStore
}

// setupTestServices installs memory-backed services holding the seed data
// and restores the previous command state when the test ends.
func setupTestServices(t *testing.T) testStores {
	t.Helper()

	stores := testStores{
		products: memory.NewProductStore(sqlite.SeedProducts()...),
		items:    memory.NewGroceryListItemStore(sqlite.SeedGroceryListItems()...),
		config:   memory.NewConfigStore(nil),
	}

	old := Services{Products: productService, GroceryList: groceryListService, Config: configStore}
	oldWiring := wiring
	oldTerminal := stdinIsTerminal

	wiring = nil
	stdinIsTerminal = func() bool { return false }
	SetServices(Services{
		Products:    services.NewProductService(stores.products),
		GroceryList: services.NewGroceryListService(stores.items),
		Config:      stores.config,
	})
	resetFlags(rootCmd)

	t.Cleanup(func() {
		SetServices(old)
		wiring = oldWiring
		stdinIsTerminal = oldTerminal
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})
	return stores
}

// resetFlags puts every flag of cmd and its children back to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// runCommand executes the root command with args and returns its output.
func runCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
