// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container and its collaborators.
// This file contains ONLY value types and contracts (Coordinate, ReadOnly,
// resize rules). Errors and options live in errors.go and options.go.
package matrix

import "fmt"

// Coordinate addresses one cell: X is the column, Y is the row.
type Coordinate struct {
	X, Y int
}

// Pt is shorthand for Coordinate{X: x, Y: y}.
func Pt(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum c+d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ReadOnly is the read-only facade of a Matrix.
// Hand it to collaborators that may inspect cells but must not write,
// Recreate or Resize. *Matrix[T] satisfies it.
//
// Complexity: every method is O(1).
type ReadOnly[T any] interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// At returns the cell at column x, row y.
	// Panics with an error wrapping ErrOutOfRange outside the definition domain.
	At(x, y int) T

	// AtCoord is At(c.X, c.Y).
	AtCoord(c Coordinate) T
}

// WidthResizeRule selects which side of the horizontal axis absorbs a
// width delta during Resize.
type WidthResizeRule uint8

const (
	// Left: the start side absorbs the delta. Growth opens empty columns on
	// the left; shrinking drops the leftmost columns.
	Left WidthResizeRule = iota
	// Right: the end side absorbs the delta. Growth appends empty columns on
	// the right; shrinking drops the rightmost columns.
	Right
	// CenterLeft splits the delta between both sides; an odd unit goes left.
	CenterLeft
	// CenterRight splits the delta between both sides; an odd unit goes right.
	CenterRight
)

// IsValid reports whether r is one of the four declared rules.
func (r WidthResizeRule) IsValid() bool {
	return r <= CenterRight
}

// String implements fmt.Stringer.
func (r WidthResizeRule) String() string {
	switch r {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case CenterLeft:
		return "CenterLeft"
	case CenterRight:
		return "CenterRight"
	default:
		return fmt.Sprintf("WidthResizeRule(%d)", uint8(r))
	}
}

// HeightResizeRule selects which side of the vertical axis absorbs a
// height delta during Resize.
type HeightResizeRule uint8

const (
	// Up: the start side absorbs the delta (rows are added or dropped on top).
	Up HeightResizeRule = iota
	// Down: the end side absorbs the delta (rows are added or dropped at the bottom).
	Down
	// CenterUp splits the delta between both sides; an odd unit goes up.
	CenterUp
	// CenterDown splits the delta between both sides; an odd unit goes down.
	CenterDown
)

// IsValid reports whether r is one of the four declared rules.
func (r HeightResizeRule) IsValid() bool {
	return r <= CenterDown
}

// String implements fmt.Stringer.
func (r HeightResizeRule) String() string {
	switch r {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case CenterUp:
		return "CenterUp"
	case CenterDown:
		return "CenterDown"
	default:
		return fmt.Sprintf("HeightResizeRule(%d)", uint8(r))
	}
}
