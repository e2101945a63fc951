// SPDX-License-Identifier: MIT

// Package matrix - bulk initialization, flattening and iteration.
// All walks are row-major: x advances first, then y.
package matrix

import "iter"

// InitAllElements sets every cell (x, y) to fn(x, y).
// Each cell is visited exactly once, row by row.
// Complexity: O(w*h) calls to fn.
func (m *Matrix[T]) InitAllElements(fn func(x, y int) T) {
	for y := 0; y < m.h; y++ {
		row := y * m.w
		for x := 0; x < m.w; x++ {
			m.data[row+x] = fn(x, y)
		}
	}
}

// ToArray returns a row-major copy of the cells: element i equals
// At(i%Width, i/Width). The slice is independent of m.
// Complexity: O(w*h).
func (m *Matrix[T]) ToArray() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// All yields every stored element once in row-major order.
// The sequence reads live storage on each step rather than a snapshot, and
// can be ranged over again to observe later writes.
func (m *Matrix[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(m.data); i++ {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// Cells yields (coordinate, value) pairs in row-major order, with the same
// live-storage semantics as All.
func (m *Matrix[T]) Cells() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for i := 0; i < len(m.data); i++ {
			if !yield(Coordinate{X: i % m.w, Y: i / m.w}, m.data[i]) {
				return
			}
		}
	}
}
