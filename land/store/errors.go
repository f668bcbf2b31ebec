package store

import "errors"

var (
	// ErrBadRef indicates a record ID that was never allocated.
	ErrBadRef = errors.New("store: bad record reference")

	// ErrFreed indicates an attempt to use or free a record that is already free.
	ErrFreed = errors.New("store: record already freed")
)
