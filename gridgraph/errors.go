package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrNilView indicates a nil board view was passed to NewGridGraph.
	ErrNilView = errors.New("gridgraph: board view is nil")
	// ErrEmptyGrid indicates the board has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
