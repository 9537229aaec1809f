// SPDX-License-Identifier: MIT

package euler

import (
	"slices"

	"github.com/katalvlaran/konigsberg/core"
)

// BuildPath returns an Eulerian trail over the uncrossed edges of g as a
// sequence of node IDs, or (nil, false) when none exists.
//
// Start resolution: start is used when it is a valid start candidate of
// Classify(g.Uncrossed()); otherwise the first candidate is used. When no
// uncrossed edge is left, the trail is just [start] if start names a node.
//
// The returned trail has RemainingEdgeCount()+1 entries. Calling BuildPath
// twice on the same snapshot with the same start yields the same trail.
func BuildPath(g *core.Graph, start string, opts ...Option) ([]string, bool) {
	idx := core.NewIndex(g, true)
	c := classifyIndex(idx, resolve(opts))
	if !c.Exists {
		return nil, false
	}
	if len(idx.Edges) == 0 {
		if g.HasNode(start) {
			return []string{start}, true
		}
		return nil, false
	}
	if !slices.Contains(c.StartCandidates, start) {
		start = c.StartCandidates[0]
	}
	s, ok := idx.Pos(start)
	if !ok {
		return nil, false
	}

	walk := hierholzer(idx, s)
	if len(walk) != len(idx.Edges)+1 {
		// ParityOnly on a disconnected graph: the walk strands edges.
		return nil, false
	}
	out := make([]string, len(walk))
	for i, v := range walk {
		out[i] = idx.IDs[v]
	}

	return out, true
}

// hierholzer consumes every edge reachable from start and returns the walk
// in traversal order.
//
// Each node keeps a cursor into its incidence list; arcs before the cursor
// are all used, so the scan for "first unused arc in stored order" resumes
// where it stopped and the whole run stays O(V + E).
func hierholzer(idx *core.Index, start int) []int {
	used := make([]bool, len(idx.Edges)) // edge arena: one bit per edge, both arcs share it
	cursor := make([]int, idx.NumNodes())

	walk := make([]int, 0, len(idx.Edges)+1) // holds the walk in reverse
	stack := []int{start}                    // DFS stack, initialized with start

	var u int
	var arcs []core.Arc
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		arcs = idx.Incidence[u]
		for cursor[u] < len(arcs) && used[arcs[cursor[u]].Edge] {
			cursor[u]++
		}
		if cursor[u] == len(arcs) {
			// no more edges: backtrack
			walk = append(walk, u)
			stack = stack[:len(stack)-1]
			continue
		}
		// traverse one edge u→v and retire it for both endpoints
		a := arcs[cursor[u]]
		used[a.Edge] = true
		cursor[u]++
		stack = append(stack, a.To)
	}
	slices.Reverse(walk)

	return walk
}

// IsTrail reports whether path walks every uncrossed edge of g exactly once:
// it has RemainingEdgeCount()+1 nodes and each consecutive pair consumes a
// distinct uncrossed edge.
func IsTrail(g *core.Graph, path []string) bool {
	idx := core.NewIndex(g, true)
	if len(path) != len(idx.Edges)+1 {
		return false
	}
	if _, ok := idx.Pos(path[0]); !ok {
		return false
	}

	used := make([]bool, len(idx.Edges))
	for i := 0; i+1 < len(path); i++ {
		u, ok := idx.Pos(path[i])
		if !ok {
			return false
		}
		v, ok := idx.Pos(path[i+1])
		if !ok {
			return false
		}
		found := false
		for _, a := range idx.Incidence[u] {
			if a.To == v && !used[a.Edge] {
				used[a.Edge] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
