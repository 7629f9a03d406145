// Package schema embeds the CREATE TABLE statements for the SQLite store.
//
// Every statement is idempotent ("IF NOT EXISTS") and is executed on each
// start-up; there are no versioned migrations.
package schema

import _ "embed"

// Products creates the Products table.
//
//go:embed products.sql
var Products string

// GroceryListItems creates the GroceryListItems table.
//
//go:embed grocery_list_items.sql
var GroceryListItems string
