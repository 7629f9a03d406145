package domain

import "errors"

// Domain errors represent business logic failures.
// Persistence errors are wrapped around the underlying driver error so
// callers can test for the category with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Storage Errors.

	// ErrConnection indicates the database file could not be opened,
	// either because the storage medium is unavailable or the file is not
	// a readable database.
	ErrConnection = errors.New("database connection failed")

	// ErrSeed indicates the seed-data transaction failed and was rolled back.
	ErrSeed = errors.New("seeding failed")

	// ErrDecode indicates a stored value does not match its expected text encoding.
	ErrDecode = errors.New("decoding stored value failed")

	// ErrWrite indicates an insert, update or delete was rejected by the storage engine.
	ErrWrite = errors.New("write rejected")
)
