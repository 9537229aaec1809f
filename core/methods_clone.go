// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshots: Clone, Cross, Uncrossed, Reset, Without.
// Policy:
//   - None of these methods mutate the receiver; each returns a fresh Graph.
// AI-HINT (file):
//   - Game state REPLACES, never mutates: g2, _ := g.Cross(id) leaves g intact.
//   - Uncrossed() is what you pass to euler.Classify for "solvable from here?".

package core

import "fmt"

// Clone returns a deep copy of the Graph: options, nodes and edges.
// Node and Edge records are copied by value, so changing the clone's crossed
// flags never affects g.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return g.filtered(func(Edge) bool { return true }, func(e Edge) Edge { return e })
}

// Cross returns a new snapshot in which edge id is marked crossed.
//
// Errors:
//   - ErrEdgeNotFound if id names no edge.
//   - ErrEdgeCrossed if the edge is already crossed.
//
// Complexity: O(V + E)
func (g *Graph) Cross(id string) (*Graph, error) {
	e, ok := g.Edge(id)
	if !ok {
		return nil, fmt.Errorf("core: Cross(%q): %w", id, ErrEdgeNotFound)
	}
	if e.Crossed {
		return nil, fmt.Errorf("core: Cross(%q): %w", id, ErrEdgeCrossed)
	}
	next := g.Clone()
	next.edges[next.edgePos[id]].Crossed = true

	return next, nil
}

// Uncrossed returns the remaining-moves subgraph: every node of g and only
// the edges that are not crossed yet, in stored order.
// Complexity: O(V + E)
func (g *Graph) Uncrossed() *Graph {
	return g.filtered(func(e Edge) bool { return !e.Crossed }, func(e Edge) Edge { return e })
}

// Reset returns a snapshot with every edge uncrossed, i.e. the level as it
// was before the first move.
// Complexity: O(V + E)
func (g *Graph) Reset() *Graph {
	return g.filtered(func(Edge) bool { return true }, func(e Edge) Edge {
		e.Crossed = false
		return e
	})
}

// Without returns a new snapshot with edge id removed; the remaining edges
// keep their stored order.
//
// Errors:
//   - ErrEdgeNotFound if id names no edge.
//
// Complexity: O(V + E)
func (g *Graph) Without(id string) (*Graph, error) {
	if _, ok := g.edgePos[id]; !ok {
		return nil, fmt.Errorf("core: Without(%q): %w", id, ErrEdgeNotFound)
	}

	return g.filtered(func(e Edge) bool { return e.ID != id }, func(e Edge) Edge { return e }), nil
}

// filtered copies g, keeping edges for which keep returns true after
// passing them through mapFn.
func (g *Graph) filtered(keep func(Edge) bool, mapFn func(Edge) Edge) *Graph {
	clone := &Graph{
		allowLoops: g.allowLoops,
		nodes:      make([]Node, len(g.nodes)),
		edges:      make([]Edge, 0, len(g.edges)),
		nodePos:    make(map[string]int, len(g.nodes)),
		edgePos:    make(map[string]int, len(g.edges)),
	}
	copy(clone.nodes, g.nodes)
	for id, i := range g.nodePos {
		clone.nodePos[id] = i
	}
	for _, e := range g.edges {
		if !keep(e) {
			continue
		}
		clone.edgePos[e.ID] = len(clone.edges)
		clone.edges = append(clone.edges, mapFn(e))
	}

	return clone
}
