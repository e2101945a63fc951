// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public operations return (or, for the fast-path indexers, panic with)
// errors wrapping these sentinels; callers match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested width or height is negative.
	// Validation happens before any allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a coordinate outside [0,Width)×[0,Height).
	// TryAt/TrySet return it; At/Set panic with an error wrapping it.
	ErrOutOfRange = errors.New("matrix: coordinate out of range")

	// ErrInvalidRule indicates a WidthResizeRule or HeightResizeRule value
	// outside its closed enumeration.
	ErrInvalidRule = errors.New("matrix: invalid resize rule")
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNew      = "NewSized"
	ctxRecreate = "Recreate"
	ctxResize   = "Resize"
)

// coordErrorf wraps err with the method tag and the offending coordinate.
func coordErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, x, y, err)
}

// shapeErrorf wraps err with the method tag and the offending shape.
func shapeErrorf(method string, width, height int, err error) error {
	return fmt.Errorf("Matrix.%s(%dx%d): %w", method, width, height, err)
}

// ruleErrorf wraps err with the method tag and the rejected rule value.
func ruleErrorf(method string, rule fmt.Stringer, err error) error {
	return fmt.Errorf("Matrix.%s(%v): %w", method, rule, err)
}
