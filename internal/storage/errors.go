package storage

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates an insert collided with an existing key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidInput indicates a nil record or missing identifier.
	ErrInvalidInput = errors.New("invalid input")
)
