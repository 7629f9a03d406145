// Package sqlite provides the SQLite-based implementation of the product and
// grocery list item stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Connections
//
// A Database is a handle to one database file. It does not keep a connection
// open: every store call opens the file, runs exactly one statement and
// closes it again, on every return path.
//
// # Schema
//
// Each store creates its table on construction with the idempotent statements
// in the schema/ directory and then inserts its seed rows inside a single
// transaction. Seeds use INSERT OR IGNORE keyed on fixed ids, so constructing
// a store on every start-up never duplicates them.
//
// # Encoding
//
// Dates are stored as yyyy-mm-dd text and prices as decimal text with two
// fractional digits. See FormatDate, ParseDate, FormatMoney and ParseMoney.
//
// # Data Location
//
// By default, the database is stored at ~/.grocery/data/grocery.db
//
// # Thread Safety
//
// Each store serialises its own calls with a mutex. Two stores that share a
// file rely on SQLite locking and a busy timeout. Calls block; interactive
// callers should run them off their event loop.
package sqlite
