// Package domain defines the core business entities for the grocery app.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Product: A product with stock, best-before date and price
//   - GroceryListItem: An amount of a product on a grocery list
//   - Date: A calendar date without time or location
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library and github.com/shopspring/decimal
//   - Cannot Import: Any internal/ package
package domain
