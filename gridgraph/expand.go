package gridgraph

import (
	"container/list"
	"math"

	"github.com/katalvlaran/lvgrid/matrix"
)

// noPrev marks a cell without predecessor in ExpandIsland.
var noPrev = matrix.Pt(-1, -1)

// ExpandIsland finds a minimum-conversion path of "water" cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the path (including the start and end land cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into an existing land cell → cost 0
//     • Moving into a water cell          → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via the predecessor matrix.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance, predecessor and
// target flags.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []matrix.Coordinate, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	dist := mustSized[int](gg)
	prev := mustSized[matrix.Coordinate](gg)
	isTarget := mustSized[bool](gg)
	dist.InitAllElements(func(int, int) int { return math.MaxInt })
	prev.InitAllElements(func(int, int) matrix.Coordinate { return noPrev })
	for _, c := range comps[dstComp] {
		isTarget.SetCoord(c, true)
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, c := range comps[srcComp] {
		dist.SetCoord(c, 0)
		dq.PushFront(c)
	}

	target := noPrev
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(matrix.Coordinate)
		if isTarget.AtCoord(u) {
			target = u
			break
		}
		for _, d := range gg.neighborOffsets {
			v := u.Add(d)
			if !gg.InBounds(v) {
				continue
			}
			step := 0
			if !gg.IsLand(v) {
				step = 1
			}
			nd := dist.AtCoord(u) + step
			if nd < dist.AtCoord(v) {
				dist.SetCoord(v, nd)
				prev.SetCoord(v, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target == noPrev {
		return nil, 0, ErrNoPath
	}
	for at := target; at != noPrev; at = prev.AtCoord(at) {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist.AtCoord(target), nil
}
