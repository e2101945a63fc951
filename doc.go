// Package lvgrid is an in-memory toolkit for grid-shaped data: a generic,
// resizable two-dimensional container and the grid analyses built on it.
//
// What is lvgrid?
//
//	A small, dependency-light library that brings together:
//		• matrix:    Matrix[T], a row-major 2D container addressed by (x, y),
//		             with alignment-aware in-place Resize, bulk init and
//		             flattening, plus a ReadOnly[T] facade for collaborators.
//		• gridgraph: connected "islands" and cheapest bridging paths over any
//		             matrix.ReadOnly[int] board.
//
// Quick ASCII example (Resize by +3 columns, CenterLeft):
//
//	[a b c d]  →  [_ _ a b c d _]
//
// The odd column goes to the start side; CenterRight would give
// [_ a b c d _ _].
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
