// SPDX-License-Identifier: MIT

// Package matrix - generic row-major storage & coordinate accessors.
//
// Purpose:
//   - Own a contiguous row-major buffer with the explicit index formula y*width + x.
//   - Keep the indexers thin: At/Set check the domain and panic like a slice
//     index would; TryAt/TrySet are the error-returning opt-in.
//   - Keep the pair form (AtCoord/SetCoord) a wrapper over the (x, y) form so
//     both address the same cell by construction.
//
// Complexity quicksheet:
//   - New: O(1); NewSized/Recreate: O(w*h) zero-init; At/Set: O(1); Clone: O(w*h).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a Width×Height grid of T stored row-major.
//   - w,h hold dimensions (columns, rows), both >= 0.
//   - data has length w*h; cell (x, y) lives at y*w + x.
//
// The zero value is an empty 0×0 matrix ready for use.
type Matrix[T any] struct {
	w, h int // column and row counts
	data []T // row-major storage (len == w*h), never aliased outside
}

// New returns an empty 0×0 matrix.
// Complexity: O(1).
func New[T any]() *Matrix[T] {
	return &Matrix[T]{}
}

// NewSized creates a width×height matrix with every cell set to T's zero value.
// MAIN DESCRIPTION:
//   - Public sized constructor; 0×N and N×0 shapes are legal.
//
// Implementation:
//   - Stage 1: reject negative or overflowing shapes (ErrBadShape) before allocating.
//   - Stage 2: allocate a zero-filled buffer of width*height elements.
//
// Errors:
//   - ErrBadShape when width < 0, height < 0 or width*height overflows int.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewSized[T any](width, height int) (*Matrix[T], error) {
	if !validShape(width, height) {
		return nil, shapeErrorf(ctxNew, width, height, ErrBadShape)
	}

	return &Matrix[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// Compile-time assertions.
var (
	_ ReadOnly[int] = (*Matrix[int])(nil)
	_ fmt.Stringer  = (*Matrix[int])(nil)
)

// Width returns the number of columns (elements per row).
func (m *Matrix[T]) Width() int { return m.w }

// Height returns the number of rows (elements per column).
func (m *Matrix[T]) Height() int { return m.h }

// Count returns Width()*Height().
func (m *Matrix[T]) Count() int { return len(m.data) }

// View narrows m to its read-only facade.
func (m *Matrix[T]) View() ReadOnly[T] { return m }

// validShape reports whether width×height is non-negative and its cell
// count fits in an int, so Count() == Width()*Height() holds.
func validShape(width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}

	return width == 0 || height <= math.MaxInt/width
}

// offset maps (x, y) to the row-major index, or reports ErrOutOfRange.
// Each axis is checked on its own: y*w + x alone would let x overflow into
// the next row.
func (m *Matrix[T]) offset(x, y int) (int, bool) {
	if !m.IsCoordinateInDefinitionDomain(x, y) {
		return 0, false
	}

	return y*m.w + x, true
}

// At returns the cell at column x, row y.
// It performs no recovery: outside the definition domain it panics with an
// error wrapping ErrOutOfRange. Guard with IsCoordinateInDefinitionDomain or
// use TryAt when bounds are not already known.
// Complexity: O(1).
func (m *Matrix[T]) At(x, y int) T {
	off, ok := m.offset(x, y)
	if !ok {
		panic(coordErrorf(ctxAt, x, y, ErrOutOfRange))
	}

	return m.data[off]
}

// Set stores v at column x, row y. Panics like At outside the domain.
// Complexity: O(1).
func (m *Matrix[T]) Set(x, y int, v T) {
	off, ok := m.offset(x, y)
	if !ok {
		panic(coordErrorf(ctxSet, x, y, ErrOutOfRange))
	}
	m.data[off] = v
}

// AtCoord is At(c.X, c.Y).
func (m *Matrix[T]) AtCoord(c Coordinate) T { return m.At(c.X, c.Y) }

// SetCoord is Set(c.X, c.Y, v).
func (m *Matrix[T]) SetCoord(c Coordinate, v T) { m.Set(c.X, c.Y, v) }

// TryAt is the checked form of At.
// Returns (zero, error wrapping ErrOutOfRange) outside the domain.
func (m *Matrix[T]) TryAt(x, y int) (T, error) {
	off, ok := m.offset(x, y)
	if !ok {
		var zero T
		return zero, coordErrorf(ctxAt, x, y, ErrOutOfRange)
	}

	return m.data[off], nil
}

// TrySet is the checked form of Set. Nothing is written on error.
func (m *Matrix[T]) TrySet(x, y int, v T) error {
	off, ok := m.offset(x, y)
	if !ok {
		return coordErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	m.data[off] = v

	return nil
}

// IsCoordinateInDefinitionDomain reports whether 0 <= x < Width and 0 <= y < Height.
// Complexity: O(1).
func (m *Matrix[T]) IsCoordinateInDefinitionDomain(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// ContainsCoord is IsCoordinateInDefinitionDomain(c.X, c.Y).
func (m *Matrix[T]) ContainsCoord(c Coordinate) bool {
	return m.IsCoordinateInDefinitionDomain(c.X, c.Y)
}

// Recreate replaces the storage with a fresh width×height buffer.
// All cells are reset to T's zero value; no prior content survives, even
// where the old and new shapes overlap.
//
// Errors:
//   - ErrBadShape when width < 0, height < 0 or width*height overflows int;
//     m is left untouched.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix[T]) Recreate(width, height int) error {
	if !validShape(width, height) {
		return shapeErrorf(ctxRecreate, width, height, ErrBadShape)
	}
	m.w, m.h = width, height
	m.data = make([]T, width*height)

	return nil
}

// Clone returns a deep copy of m. The copy shares no storage with m.
// Complexity: O(w*h).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{w: m.w, h: m.h, data: data}
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// An empty matrix renders as "".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for y := 0; y < m.h; y++ {
		sb.WriteString(_fmtRowOpen)
		row := m.data[y*m.w : (y+1)*m.w]
		for x, v := range row {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
