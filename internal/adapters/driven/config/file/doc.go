// Package file provides the TOML configuration store.
// The only setting today is the data directory that holds the database file.
package file
