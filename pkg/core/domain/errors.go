package domain

import "errors"

var (
	// ErrNotFound means no record exists for the given code or id.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means an insert hit a unique constraint in the store.
	ErrConflict = errors.New("record already exists")

	// ErrAllocationExhausted means the allocator spent its retry budget
	// without finding a free short code.
	ErrAllocationExhausted = errors.New("short code allocation exhausted")
)
