package ledger

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidType      = errors.New("invalid entry type")
	ErrCategoryNotFound = errors.New("category not found")
)
