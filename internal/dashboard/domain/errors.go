package domain

import "errors"

var (
	// ErrNotFound indicates that a requested record was not found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEntry indicates a unique constraint violation.
	ErrDuplicateEntry = errors.New("duplicate entry")
)
