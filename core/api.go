// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Node lifecycle and read-only getters.
// Policy:
//   - No algorithms here.
//   - Getters return copies; callers can never reach the stored records.
// Determinism:
//   - Nodes()/NodeIDs() follow insertion order.

package core

import "fmt"

// AddNode appends n to the graph.
//
// Returns ErrEmptyNodeID if n.ID is empty and ErrDuplicateNode if a node
// with the same ID already exists.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodePos[n.ID]; exists {
		return fmt.Errorf("core: AddNode(%q): %w", n.ID, ErrDuplicateNode)
	}
	g.nodePos[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	_, ok := g.nodePos[id]

	return ok
}

// Node returns the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.nodePos[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i := range g.nodes {
		ids[i] = g.nodes[i].ID
	}

	return ids
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, crossed or not. O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Looped reports whether the graph accepts self-loops.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Name returns the display name (label or ID) of the node id.
// Unknown IDs are returned unchanged.
func (g *Graph) Name(id string) string {
	if n, ok := g.Node(id); ok {
		return n.Name()
	}

	return id
}
