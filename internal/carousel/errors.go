package carousel

import "errors"

// Configuration errors. They surface from New, Reload and SetOptions and are
// not recoverable at runtime.
var (
	ErrTooFewItems     = errors.New("carousel: too few items for the page size")
	ErrInvalidPageSize = errors.New("carousel: items per page must be at least 1")
	ErrInvalidInterval = errors.New("carousel: auto-scroll interval must be positive")
	ErrInvalidItemSize = errors.New("carousel: item size must be positive")
	ErrNilDataSource   = errors.New("carousel: data source is nil")
)
