package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage grocery lists",
	Long:  `Show the items on grocery lists, put products on a list and change amounts.`,
}

var listItemsCmd = &cobra.Command{
	Use:   "items [list-id]",
	Short: "Show list items",
	Long:  `Show the items of one grocery list, or of all lists when no list is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runListItems,
}

var listAddCmd = &cobra.Command{
	Use:   "add [list-id] [product-id] [amount]",
	Short: "Put a product on a list",
	Args:  cobra.ExactArgs(3),
	RunE:  runListAdd,
}

var listSetAmountCmd = &cobra.Command{
	Use:   "set-amount [item-id] [amount]",
	Short: "Change the amount of a list item",
	Args:  cobra.ExactArgs(2),
	RunE:  runListSetAmount,
}

var listRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Remove an item from its list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListRemove,
}

// listYes skips the confirmation prompt of remove.
var listYes bool

func init() {
	listRemoveCmd.Flags().BoolVarP(&listYes, "yes", "y", false, "remove without asking")

	listCmd.AddCommand(listItemsCmd)
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listSetAmountCmd)
	listCmd.AddCommand(listRemoveCmd)
	rootCmd.AddCommand(listCmd)
}

func runListItems(cmd *cobra.Command, args []string) error {
	if groceryListService == nil {
		return errNotConfigured("grocery list")
	}
	ctx := context.Background()

	var (
		items []domain.GroceryListItem
		err   error
	)
	if len(args) == 1 {
		listID, perr := parseID("list", args[0])
		if perr != nil {
			return perr
		}
		items, err = groceryListService.ItemsForList(ctx, listID)
	} else {
		items, err = groceryListService.Items(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No items found.")
		return nil
	}

	cmd.Printf("%-5s %-5s %-24s %6s\n", "ID", "LIST", "PRODUCT", "AMOUNT")
	for i := range items {
		item := &items[i]
		cmd.Printf("%-5d %-5d %-24s %6d\n", item.ID, item.GroceryListID, productLabel(ctx, item.ProductID), item.Amount)
	}
	cmd.Printf("\nTotal: %d items\n", len(items))
	return nil
}

// productLabel names a product for display. Items may outlive their
// product, so a missing product is shown by id.
func productLabel(ctx context.Context, productID int64) string {
	if productService != nil {
		if p, err := productService.Get(ctx, productID); err == nil && p != nil {
			return p.Name
		}
	}
	return fmt.Sprintf("(product %d)", productID)
}

func runListAdd(cmd *cobra.Command, args []string) error {
	if groceryListService == nil {
		return errNotConfigured("grocery list")
	}
	ctx := context.Background()

	listID, err := parseID("list", args[0])
	if err != nil {
		return err
	}
	productID, err := parseID("product", args[1])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	item, err := listItemInput{GroceryListID: listID, ProductID: productID, Amount: amount}.toItem()
	if err != nil {
		return err
	}

	if productService != nil {
		if _, err := lookupProduct(productID); err != nil {
			return err
		}
	}

	added, err := groceryListService.AddItem(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	cmd.Printf("Added item %d: %d x %s on list %d.\n",
		added.ID, added.Amount, productLabel(ctx, added.ProductID), added.GroceryListID)
	return nil
}

func runListSetAmount(cmd *cobra.Command, args []string) error {
	if groceryListService == nil {
		return errNotConfigured("grocery list")
	}
	ctx := context.Background()

	id, err := parseID("item", args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	item, err := lookupItem(ctx, id)
	if err != nil {
		return err
	}

	changed, err := listItemInput{GroceryListID: item.GroceryListID, ProductID: item.ProductID, Amount: amount}.toItem()
	if err != nil {
		return err
	}
	changed.ID = item.ID

	updated, err := groceryListService.UpdateItem(ctx, changed)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if updated == nil {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	cmd.Printf("Item %d now has amount %d.\n", updated.ID, updated.Amount)
	return nil
}

func runListRemove(cmd *cobra.Command, args []string) error {
	if groceryListService == nil {
		return errNotConfigured("grocery list")
	}
	ctx := context.Background()

	id, err := parseID("item", args[0])
	if err != nil {
		return err
	}

	item, err := lookupItem(ctx, id)
	if err != nil {
		return err
	}

	ok, err := confirm(cmd, listYes, fmt.Sprintf("Remove item %d from list %d?", item.ID, item.GroceryListID))
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("Cancelled.")
		return nil
	}

	removed, err := groceryListService.RemoveItem(ctx, *item)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if removed == nil {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	cmd.Printf("Removed item %d from list %d.\n", removed.ID, removed.GroceryListID)
	return nil
}

// lookupItem fetches a list item and turns absence into ErrNotFound.
func lookupItem(ctx context.Context, id int64) (*domain.GroceryListItem, error) {
	item, err := groceryListService.Item(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return item, nil
}

func parseAmount(arg string) (int, error) {
	amount, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: amount must be a whole number, got %q", domain.ErrInvalidInput, arg)
	}
	return amount, nil
}
