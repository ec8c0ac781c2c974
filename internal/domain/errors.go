package domain

import "errors"

// Domain errors.
var (
	ErrEntityNotFound = errors.New("entity not found")
)
