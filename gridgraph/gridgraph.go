// Package gridgraph provides utilities to treat a board of integer cell
// values as a graph. Cells with value < LandThreshold are "water"; cells
// with value ≥ LandThreshold are "land".
package gridgraph

import "github.com/katalvlaran/lvgrid/matrix"

// NewGridGraph snapshots a non-empty board view.
// It deep-copies the cells so the caller's matrix may keep changing.
// Returns ErrNilView for a nil view (including a nil *matrix.Matrix[int]),
// ErrEmptyGrid if the board has no rows or no columns.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(board matrix.ReadOnly[int], opts GridOptions) (*GridGraph, error) {
	if board == nil {
		return nil, ErrNilView
	}
	if m, ok := board.(*matrix.Matrix[int]); ok && m == nil {
		return nil, ErrNilView
	}
	w, h := board.Width(), board.Height()
	if w == 0 || h == 0 {
		return nil, ErrEmptyGrid
	}
	cells, err := matrix.NewSized[int](w, h)
	if err != nil {
		return nil, err
	}
	cells.InitAllElements(board.At)

	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &GridGraph{
		cells:           cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: append([]matrix.Coordinate(nil), offsets...),
	}, nil
}

// From2D builds a GridGraph from a non-empty, rectangular rows[y][x] slice
// with the default threshold.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(rows [][]int, conn Connectivity) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	board, err := matrix.NewSized[int](w, len(rows))
	if err != nil {
		return nil, err
	}
	board.InitAllElements(func(x, y int) int { return rows[y][x] })
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(board, opts)
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.cells.Width() }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.cells.Height() }

// Board exposes the snapshot through its read-only facade.
func (gg *GridGraph) Board() matrix.ReadOnly[int] { return gg.cells.View() }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c matrix.Coordinate) bool {
	return gg.cells.ContainsCoord(c)
}

// IsLand reports whether c is in bounds and holds a value ≥ LandThreshold.
func (gg *GridGraph) IsLand(c matrix.Coordinate) bool {
	return gg.InBounds(c) && gg.cells.AtCoord(c) >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets for gg.Conn.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []matrix.Coordinate {
	return gg.neighborOffsets
}

// mustSized allocates scratch state shaped like gg. The shape was already
// accepted by NewGridGraph, so NewSized cannot fail here.
func mustSized[T any](gg *GridGraph) *matrix.Matrix[T] {
	m, err := matrix.NewSized[T](gg.Width(), gg.Height())
	if err != nil {
		panic(err)
	}

	return m
}
