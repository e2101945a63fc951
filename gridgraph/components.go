package gridgraph

import "github.com/katalvlaran/lvgrid/matrix"

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major scan order; cells
// within a component are listed in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]matrix.Coordinate {
	seen := mustSized[bool](gg)
	var comps [][]matrix.Coordinate

	for start, v := range gg.cells.Cells() {
		if v < gg.LandThreshold || seen.AtCoord(start) {
			continue
		}
		// BFS to collect component
		queue := []matrix.Coordinate{start}
		seen.SetCoord(start, true)

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range gg.neighborOffsets {
				n := u.Add(d)
				if !gg.IsLand(n) || seen.AtCoord(n) {
					continue
				}
				seen.SetCoord(n, true)
				queue = append(queue, n)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
