package domain

// GroceryListItem puts an amount of a product on a grocery list.
// Deleting the referenced product or list does not remove the item.
type GroceryListItem struct {
	// ID is assigned by the store on insert. Zero means not yet persisted.
	ID int64

	// GroceryListID references the list the item belongs to.
	GroceryListID int64

	// ProductID references the product being bought.
	ProductID int64

	// Amount is the quantity to buy.
	Amount int
}

// NewGroceryListItem returns an unpersisted list item.
func NewGroceryListItem(groceryListID, productID int64, amount int) GroceryListItem {
	return GroceryListItem{
		GroceryListID: groceryListID,
		ProductID:     productID,
		Amount:        amount,
	}
}

// IsPersisted reports whether the item has been assigned an ID by a store.
func (i *GroceryListItem) IsPersisted() bool {
	return i.ID != 0
}
