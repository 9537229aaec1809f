// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Node, and Edge types,
// the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrEmptyEdgeID    - edge ID is the empty string.
//	ErrDuplicateNode  - a node with the same ID already exists.
//	ErrDuplicateEdge  - an edge with the same ID already exists.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrEdgeCrossed    - the edge has already been crossed.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyEdgeID indicates that the provided Edge has an empty ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateNode indicates a second node with an already used ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates a second edge with an already used ID.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeCrossed indicates an attempt to cross a bridge twice.
	ErrEdgeCrossed = errors.New("core: edge already crossed")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node represents a land mass.
//
// ID uniquely identifies this Node within its Graph. Label is the display
// name; X and Y are rendering coordinates and are ignored by the algorithms.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Label is the human-readable name, e.g. "North bank".
	Label string

	// X, Y position the node on the canvas.
	X, Y float64
}

// Name returns the Label, or the ID when no label is set.
func (n Node) Name() string {
	if n.Label != "" {
		return n.Label
	}

	return n.ID
}

// Edge represents a bridge between two land masses.
//
// Edges are undirected; From and To are kept in stored order.
type Edge struct {
	// ID uniquely identifies this edge in the Graph, even between
	// parallel edges that share both endpoints.
	ID string

	// From is the first stored endpoint.
	From string

	// To is the second stored endpoint.
	To string

	// Crossed reports whether the player has already walked this bridge.
	Crossed bool
}

// Touches reports whether id is one of the endpoints of e.
func (e Edge) Touches(id string) bool {
	return e.From == id || e.To == id
}

// Connects reports whether e joins a and b, in either direction.
func (e Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Other returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id. If id is not an endpoint, "" is returned.
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (a bridge from a land mass to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the puzzle multigraph.
//
// nodes and edges hold records by value in stored order; nodePos and
// edgePos map IDs to slice positions. A Graph is not safe for concurrent
// mutation, but once built it is only read, and every derived state is a
// fresh snapshot (see Cross, Uncrossed, Reset).
type Graph struct {
	allowLoops bool // allow self-loops

	nodes []Node
	edges []Edge

	nodePos map[string]int // Node.ID → index in nodes
	edgePos map[string]int // Edge.ID → index in edges
}

// NewGraph creates an empty Graph with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodePos: make(map[string]int),
		edgePos: make(map[string]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
