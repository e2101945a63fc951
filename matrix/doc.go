// Package matrix provides a generic two-dimensional container addressed by
// (x, y) coordinates, with alignment-aware in-place resizing.
//
// What:
//
//   - Matrix[T] owns a row-major buffer of Width×Height elements.
//   - Cells are addressed by column x and row y, either as two ints or as a
//     Coordinate value; both forms hit the same storage.
//   - ReadOnly[T] is the narrow facade handed to collaborators that must not
//     mutate the container.
//   - Resize grows or shrinks each axis independently and keeps the
//     overlapping content according to a WidthResizeRule / HeightResizeRule.
//
// Resize rules:
//
//	Left / Up             start side absorbs the delta
//	Right / Down          end side absorbs the delta
//	CenterLeft / CenterUp split in half, odd unit goes to the start side
//	CenterRight / CenterDown split in half, odd unit goes to the end side
//
// Quick ASCII example (3 columns grown by 2 with Left):
//
//	[a b c]  →  [_ _ a b c]
//
// Errors:
//
//   - ErrBadShape: negative width or height on construction / Recreate.
//   - ErrInvalidRule: rule value outside its enumeration.
//   - ErrOutOfRange: coordinate outside [0,Width)×[0,Height).
//
// Complexity:
//
//   - At/Set/IsCoordinateInDefinitionDomain: O(1).
//   - InitAllElements, ToArray, Resize, Recreate, Clone: O(Width×Height).
//
// A Matrix is not safe for concurrent mutation; callers serialize access.
package matrix
