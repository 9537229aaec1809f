// SPDX-License-Identifier: MIT

// Package core provides the puzzle Graph: land masses (nodes) joined by
// bridges (edges) that a player crosses one at a time.
//
// The Graph G = (V,E) is an undirected multigraph:
//
//   - Parallel edges: two bridges may join the same pair of land masses;
//     each bridge keeps its own Edge.ID.
//   - Stored order: nodes and edges keep insertion order. Every "first
//     matching" lookup (EdgeBetween, AvailableEdges, ...) scans in that
//     order, so results are stable and deterministic.
//   - Endpoint order: Edge.From/Edge.To are kept as stored. Traversal
//     treats (X,Y) and (Y,X) the same; narration uses the stored order.
//   - Crossed flag: Edge.Crossed marks bridges already walked in the
//     current game. Live queries (AdjacentNodes, AvailableEdges,
//     EdgeBetween, RemainingEdgeCount) ignore crossed bridges.
//
// Snapshot policy ("game state replaces, never mutates"):
//
//	A Graph is mutated only while it is being built (AddNode, AddEdge).
//	Once handed to a game or a solver it is treated as immutable:
//	Cross, Uncrossed and Reset return NEW snapshots and never touch the
//	receiver. A canonical level graph can therefore be shared by any
//	number of sessions and solver calls without locking, and undo is a
//	replay of a move prefix against a fresh Clone.
//
// Core methods:
//
//	// Construction (validates invariants)
//	NewGraph(opts ...GraphOption) *Graph
//	AddNode(n Node) error                 // O(1)
//	AddEdge(e Edge) error                 // O(1)
//
//	// Live connectivity (uncrossed edges only)
//	AdjacentNodes(id string) []string     // O(E)
//	AvailableEdges(id string) []Edge      // O(E)
//	EdgeBetween(a, b string) (Edge, bool) // O(E), first match in stored order
//	RemainingEdgeCount() int              // O(E)
//
//	// Degrees
//	NodeDegrees(excludeCrossed bool) map[string]int // O(V+E)
//	NewIndex(g, excludeCrossed) *Index              // dense arrays, O(V+E)
//
//	// Snapshots
//	Clone() *Graph                        // O(V+E), deep copy
//	Cross(edgeID string) (*Graph, error)  // O(V+E), new snapshot
//	Uncrossed() *Graph                    // O(V+E), remaining-moves subgraph
//	Reset() *Graph                        // O(V+E), every bridge uncrossed
//	Without(edgeID string) (*Graph, error) // O(V+E), bridge demolished
//
// Errors:
//
//	ErrEmptyNodeID     - zero-length node ID
//	ErrEmptyEdgeID     - zero-length edge ID
//	ErrDuplicateNode   - node ID already present
//	ErrDuplicateEdge   - edge ID already present
//	ErrNodeNotFound    - edge endpoint or lookup refers to a missing node
//	ErrEdgeNotFound    - lookup refers to a missing edge
//	ErrEdgeCrossed     - Cross on a bridge that is already crossed
//	ErrLoopNotAllowed  - self-loop when loops are disabled
//
// Position (Node.X, Node.Y) travels with the graph for the rendering layer
// and is never read by the algorithms.
package core
