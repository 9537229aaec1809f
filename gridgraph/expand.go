// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
	"slices"
)

// ExpandIsland finds a minimum‐conversion path of non-land cells to connect
// any cell in island srcComp to any cell in island dstComp, as indexed by
// Islands(). Each water or deck cell on the way costs 1; existing bridges
// are not reused, since a new bridge needs its own planks.
// Returns the row-major cell indices of the path (including the start and
// end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate island indices.
//  2. Multi‐source 0–1‐BFS from all srcComp cells:
//     • Moving into a land cell     → cost 0
//     • Moving into any other cell  → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Steps are orthogonal: a bridge is built plank by plank.
//
// Complexity: O(W·H) time, Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.Islands()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 1
			if gg.CellValues[vy][vx] == Land {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, dist[target], nil
}

// BuildCost returns how many cells must be planked to join islands from
// and to, named by their node IDs.
func (gg *GridGraph) BuildCost(from, to string) (int, error) {
	ids := gg.IslandIDs()
	src, dst := slices.Index(ids, from), slices.Index(ids, to)
	if src < 0 || dst < 0 {
		return 0, fmt.Errorf("gridgraph: BuildCost(%q, %q): %w", from, to, ErrUnknownIsland)
	}
	_, cost, err := gg.ExpandIsland(src, dst)
	if err != nil {
		return 0, fmt.Errorf("gridgraph: BuildCost(%q, %q): %w", from, to, err)
	}

	return cost, nil
}
