// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/IncidentEdges/
//       AvailableEdges/EdgeBetween/RemainingEdgeCount.
// Determinism:
//   - Every scan walks g.edges in stored order; "first match" means the
//     lowest stored position.
// AI-HINT (file):
//   - Live queries skip Crossed edges; IncidentEdges does not.
//   - Endpoints are matched in either direction (undirected).

package core

import "fmt"

// AddEdge appends e to the graph.
//
// Steps:
//  1. Validate IDs (ErrEmptyEdgeID, ErrEmptyNodeID).
//  2. Reject duplicate edge IDs (ErrDuplicateEdge).
//  3. Both endpoints must already exist (ErrNodeNotFound).
//  4. Reject self-loops unless WithLoops() (ErrLoopNotAllowed).
//
// Parallel edges between the same endpoints are always accepted; the
// Crossed flag is stored as given.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	// 1) Input validation
	if e.ID == "" {
		return ErrEmptyEdgeID
	}
	if e.From == "" || e.To == "" {
		return fmt.Errorf("core: AddEdge(%q): %w", e.ID, ErrEmptyNodeID)
	}
	// 2) Identity
	if _, exists := g.edgePos[e.ID]; exists {
		return fmt.Errorf("core: AddEdge(%q): %w", e.ID, ErrDuplicateEdge)
	}
	// 3) Endpoints
	if !g.HasNode(e.From) {
		return fmt.Errorf("core: AddEdge(%q): from %q: %w", e.ID, e.From, ErrNodeNotFound)
	}
	if !g.HasNode(e.To) {
		return fmt.Errorf("core: AddEdge(%q): to %q: %w", e.ID, e.To, ErrNodeNotFound)
	}
	// 4) Loop constraint
	if e.From == e.To && !g.allowLoops {
		return fmt.Errorf("core: AddEdge(%q): %w", e.ID, ErrLoopNotAllowed)
	}

	g.edgePos[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)

	return nil
}

// Edge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id string) (Edge, bool) {
	i, ok := g.edgePos[id]
	if !ok {
		return Edge{}, false
	}

	return g.edges[i], true
}

// Edges returns a copy of all edges in stored order, crossed ones included.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// IncidentEdges returns every edge touching id, crossed or not, in stored order.
// A self-loop appears once.
// Complexity: O(E).
func (g *Graph) IncidentEdges(id string) []Edge {
	var out []Edge
	for i := range g.edges {
		if g.edges[i].Touches(id) {
			out = append(out, g.edges[i])
		}
	}

	return out
}

// AvailableEdges returns the uncrossed edges touching id, in stored order.
// Complexity: O(E).
func (g *Graph) AvailableEdges(id string) []Edge {
	var out []Edge
	for i := range g.edges {
		if !g.edges[i].Crossed && g.edges[i].Touches(id) {
			out = append(out, g.edges[i])
		}
	}

	return out
}

// EdgeBetween returns the first uncrossed edge, in stored order, joining a
// and b in either direction.
//
// With parallel edges this is an explicit first-match policy: callers get
// the same bridge for the same snapshot every time.
// Complexity: O(E).
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	for i := range g.edges {
		if !g.edges[i].Crossed && g.edges[i].Connects(a, b) {
			return g.edges[i], true
		}
	}

	return Edge{}, false
}

// RemainingEdgeCount returns the number of uncrossed edges.
// Complexity: O(E).
func (g *Graph) RemainingEdgeCount() int {
	n := 0
	for i := range g.edges {
		if !g.edges[i].Crossed {
			n++
		}
	}

	return n
}
