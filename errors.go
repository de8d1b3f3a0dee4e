package gocube

import (
	"github.com/SeamusWaldron/gocube_order/internal/search"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = types.ErrInvalidNotation

	// Search errors
	ErrOrderExceeded = search.ErrOrderExceeded
	ErrEmptyPool     = search.ErrEmptyPool
	ErrDuplicateMove = search.ErrDuplicateMove
	ErrInvalidDepth  = search.ErrInvalidDepth
)
