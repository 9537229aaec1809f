// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and degree APIs (AdjacentNodes, NodeDegrees).
// Determinism:
//   - AdjacentNodes() lists neighbors in order of first appearance along g.edges.
// AI-HINT (file):
//   - AdjacentNodes is "live connectivity": crossed bridges do not count.
//   - A self-loop adds 2 to its node's degree.

package core

// AdjacentNodes returns the unique IDs of nodes reachable from id through
// one uncrossed edge.
//
// Implementation:
//   - Stage 1: Scan edges in stored order, skipping crossed ones.
//   - Stage 2: For each edge touching id, record the opposite endpoint once.
//
// Returns nil when id has no live edges (or does not exist).
// Complexity: O(E) time, O(d) space.
func (g *Graph) AdjacentNodes(id string) []string {
	var out []string
	seen := make(map[string]struct{})
	var e *Edge
	for i := range g.edges {
		e = &g.edges[i]
		if e.Crossed || !e.Touches(id) {
			continue
		}
		nb := e.Other(id)
		if _, dup := seen[nb]; dup {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}

	return out
}

// NodeDegrees maps every node ID to its incident-edge count.
// When excludeCrossed is true only uncrossed edges count.
// Isolated nodes are present with degree 0.
// Complexity: O(V+E).
func (g *Graph) NodeDegrees(excludeCrossed bool) map[string]int {
	idx := NewIndex(g, excludeCrossed)
	out := make(map[string]int, len(idx.IDs))
	for i, id := range idx.IDs {
		out[id] = idx.Degree[i]
	}

	return out
}
