// Package gridgraph treats a read-only matrix of cell values as a graph,
// enabling component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph snapshots a matrix.ReadOnly[int] board with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Level editors: boards stored in a resizable matrix.Matrix can be
//     analysed through their read-only view without granting write access.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrNilView: the board view is nil.
//   - ErrEmptyGrid: the board has no rows or no columns.
//   - ErrNonRectangular: From2D rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
