// Package cli implements the grocery command line on top of the core services.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/grocery-cli/internal/core/ports/driving"
	"github.com/custodia-labs/grocery-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// annotationNoServices marks commands that run without wiring the services.
const annotationNoServices = "no-services"

// Options are the global flags passed to the wiring function.
type Options struct {
	// DataDir overrides the configured database directory.
	DataDir string

	// InMemory keeps all data in memory for the duration of the command.
	InMemory bool
}

// Services are the core services the commands call into.
type Services struct {
	Products    driving.ProductService
	GroceryList driving.GroceryListService
	Config      driven.ConfigStore
}

// Wiring builds the services once the global flags are parsed.
type Wiring func(opts Options) (Services, error)

var (
	wiring Wiring

	productService     driving.ProductService
	groceryListService driving.GroceryListService
	configStore        driven.ConfigStore
)

// Global flags.
var (
	dataDir  string
	verbose  bool
	inMemory bool
)

var rootCmd = &cobra.Command{
	Use:   "grocery",
	Short: "Manage products and grocery lists",
	Long: `grocery keeps a product catalogue and grocery lists in a local SQLite database.

The database is created on first use and seeded with a few products and one list.`,
	SilenceUsage:      true,
	PersistentPreRunE: wireServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the database (default ~/.grocery/data)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "memory", false, "keep data in memory instead of the database")
}

// Execute runs the root command with the given wiring and build version.
func Execute(w Wiring, buildVersion string) error {
	wiring = w
	if buildVersion != "" {
		version = buildVersion
	}
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	productService = s.Products
	groceryListService = s.GroceryList
	configStore = s.Config
}

func wireServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if wiring == nil || productService != nil {
		return nil
	}

	logger.Section("Bootstrap")
	services, err := wiring(Options{DataDir: dataDir, InMemory: inMemory})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	SetServices(services)
	return nil
}

// parseID parses a positive numeric identifier argument.
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s id must be a positive number, got %q", domain.ErrInvalidInput, kind, arg)
	}
	return id, nil
}

// errNotConfigured is returned when a command runs without its service.
func errNotConfigured(service string) error {
	return errors.New(service + " service not configured")
}
