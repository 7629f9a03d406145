package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
	Long:  `List, show, add, update or delete products in the catalogue.`,
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Args:  cobra.NoArgs,
	RunE:  runProductList,
}

var productGetCmd = &cobra.Command{
	Use:   "get [product-id]",
	Short: "Show a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductGet,
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	Long: `Add a product to the catalogue.

The price may use '.' or ',' as decimal separator and must lie between
0 and 999.99 with at most two decimals.`,
	Example: `  grocery product add --name Yoghurt --stock 50 --shelf-life 2026-01-01 --price 1.89`,
	Args:    cobra.NoArgs,
	RunE:    runProductAdd,
}

var productUpdateCmd = &cobra.Command{
	Use:   "update [product-id]",
	Short: "Update a product",
	Long:  `Change one or more fields of a product. Fields without a flag keep their value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProductUpdate,
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete [product-id]",
	Short: "Delete a product",
	Long:  `Delete a product. Grocery list items that refer to it are kept.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProductDelete,
}

// Product flags.
var (
	productJSON  bool
	productYes   bool
	productFlags productInput
)

func init() {
	productListCmd.Flags().BoolVar(&productJSON, "json", false, "output products as JSON")
	productGetCmd.Flags().BoolVar(&productJSON, "json", false, "output the product as JSON")

	for _, cmd := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		cmd.Flags().StringVar(&productFlags.Name, "name", "", "product name")
		cmd.Flags().IntVar(&productFlags.Stock, "stock", 0, "units in stock")
		cmd.Flags().StringVar(&productFlags.ShelfLife, "shelf-life", "", "best-before date (yyyy-mm-dd)")
		cmd.Flags().StringVar(&productFlags.Price, "price", "", "unit price, e.g. 1.89")
	}
	productDeleteCmd.Flags().BoolVarP(&productYes, "yes", "y", false, "delete without asking")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	rootCmd.AddCommand(productCmd)
}

// productView is the JSON form of a product.
type productView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	ShelfLife string `json:"shelf_life"`
	Price     string `json:"price"`
}

func newProductView(p *domain.Product) productView {
	return productView{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		ShelfLife: p.ShelfLife.String(),
		Price:     p.Price.StringFixed(2),
	}
}

func runProductList(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errNotConfigured("product")
	}

	products, err := productService.GetAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if productJSON {
		views := make([]productView, 0, len(products))
		for i := range products {
			views = append(views, newProductView(&products[i]))
		}
		return writeJSON(cmd, views)
	}

	if len(products) == 0 {
		cmd.Println("No products found.")
		return nil
	}

	cmd.Printf("%-5s %-24s %6s  %-10s  %8s\n", "ID", "NAME", "STOCK", "BEST BY", "PRICE")
	for i := range products {
		p := &products[i]
		cmd.Printf("%-5d %-24s %6d  %-10s  %8s\n", p.ID, p.Name, p.Stock, p.ShelfLife, p.Price.StringFixed(2))
	}
	cmd.Printf("\nTotal: %d products\n", len(products))
	return nil
}

func runProductGet(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errNotConfigured("product")
	}

	id, err := parseID("product", args[0])
	if err != nil {
		return err
	}

	product, err := lookupProduct(id)
	if err != nil {
		return err
	}

	if productJSON {
		return writeJSON(cmd, newProductView(product))
	}
	printProduct(cmd, product)
	return nil
}

func runProductAdd(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errNotConfigured("product")
	}

	product, err := productFlags.toProduct()
	if err != nil {
		return err
	}

	added, err := productService.Add(context.Background(), product)
	if err != nil {
		return fmt.Errorf("failed to add product: %w", err)
	}

	cmd.Printf("Added product %d.\n\n", added.ID)
	printProduct(cmd, added)
	return nil
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errNotConfigured("product")
	}

	id, err := parseID("product", args[0])
	if err != nil {
		return err
	}

	current, err := lookupProduct(id)
	if err != nil {
		return err
	}

	// Start from the stored values and overlay the flags that were given.
	in := productFlags
	flags := cmd.Flags()
	if !flags.Changed("name") {
		in.Name = current.Name
	}
	if !flags.Changed("stock") {
		in.Stock = current.Stock
	}
	if !flags.Changed("shelf-life") {
		in.ShelfLife = current.ShelfLife.String()
	}
	if !flags.Changed("price") {
		in.Price = current.Price.StringFixed(2)
	}

	product, err := in.toProduct()
	if err != nil {
		return err
	}
	product.ID = id

	updated, err := productService.Update(context.Background(), product)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if updated == nil {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}

	cmd.Printf("Updated product %d.\n\n", updated.ID)
	printProduct(cmd, updated)
	return nil
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errNotConfigured("product")
	}

	id, err := parseID("product", args[0])
	if err != nil {
		return err
	}

	product, err := lookupProduct(id)
	if err != nil {
		return err
	}

	ok, err := confirm(cmd, productYes, fmt.Sprintf("Delete product %d (%s)?", product.ID, product.Name))
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("Cancelled.")
		return nil
	}

	deleted, err := productService.Delete(context.Background(), *product)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if deleted == nil {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}

	cmd.Printf("Deleted product %d (%s).\n", deleted.ID, deleted.Name)
	return nil
}

// lookupProduct fetches a product and turns absence into ErrNotFound.
func lookupProduct(id int64) (*domain.Product, error) {
	product, err := productService.Get(context.Background(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

func printProduct(cmd *cobra.Command, p *domain.Product) {
	cmd.Printf("Product: %d\n", p.ID)
	cmd.Printf("  Name:     %s\n", p.Name)
	cmd.Printf("  Stock:    %d\n", p.Stock)
	cmd.Printf("  Best by:  %s\n", p.ShelfLife)
	cmd.Printf("  Price:    %s\n", p.Price.StringFixed(2))
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
