// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Dense node-index view of a Graph for hot paths (degrees,
//       connectivity, Hierholzer).
// Determinism:
//   - Node i is g.Nodes()[i]; Incidence[i] lists arcs in stored edge order.
// AI-HINT (file):
//   - *Index satisfies github.com/aclements/go-moremath/graph.Graph, so the
//     graphalg package (SCC, pre/post order) runs on it directly.
//   - An Index is a read-only snapshot; build a new one per graph.

package core

import "github.com/aclements/go-moremath/graph"

var _ graph.Graph = (*Index)(nil)

// Arc is one endpoint registration of an edge: the edge seen from a node.
// An undirected edge contributes one Arc to each endpoint; a self-loop
// contributes two Arcs to the same node.
type Arc struct {
	// Edge is the position of the edge in Index.Edges.
	Edge int

	// To is the index of the node on the other side.
	To int
}

// Index is a dense, array-backed view of a Graph.
//
// Node IDs are mapped once to 0..V-1 and every per-node quantity is a
// slice indexed by that position, avoiding map lookups inside algorithms.
type Index struct {
	// IDs maps node index → node ID (graph insertion order).
	IDs []string

	// Degree maps node index → number of incident edges in Edges.
	Degree []int

	// Edges are the edges covered by this index, in stored order.
	Edges []Edge

	// Incidence maps node index → arcs in stored edge order.
	Incidence [][]Arc

	pos map[string]int
	out [][]int
}

// NewIndex builds the dense view of g. When excludeCrossed is true, crossed
// edges are left out of Edges, Degree and Incidence.
// Complexity: O(V + E).
func NewIndex(g *Graph, excludeCrossed bool) *Index {
	n := len(g.nodes)
	idx := &Index{
		IDs:       make([]string, n),
		Degree:    make([]int, n),
		Edges:     make([]Edge, 0, len(g.edges)),
		Incidence: make([][]Arc, n),
		pos:       make(map[string]int, n),
		out:       make([][]int, n),
	}
	for i := range g.nodes {
		idx.IDs[i] = g.nodes[i].ID
		idx.pos[g.nodes[i].ID] = i
	}

	var u, v, k int
	var ok bool
	for _, e := range g.edges {
		if excludeCrossed && e.Crossed {
			continue
		}
		// Endpoints outside the graph violate a construction invariant;
		// such edges are skipped rather than indexed.
		if u, ok = idx.pos[e.From]; !ok {
			continue
		}
		if v, ok = idx.pos[e.To]; !ok {
			continue
		}
		k = len(idx.Edges)
		idx.Edges = append(idx.Edges, e)
		idx.Incidence[u] = append(idx.Incidence[u], Arc{Edge: k, To: v})
		idx.Incidence[v] = append(idx.Incidence[v], Arc{Edge: k, To: u})
		idx.out[u] = append(idx.out[u], v)
		idx.out[v] = append(idx.out[v], u)
		idx.Degree[u]++
		idx.Degree[v]++
	}

	return idx
}

// Pos returns the dense index of node id.
func (x *Index) Pos(id string) (int, bool) {
	i, ok := x.pos[id]

	return i, ok
}

// NumNodes returns the number of nodes. Part of graph.Graph.
func (x *Index) NumNodes() int {
	return len(x.IDs)
}

// Out returns the neighbor indices of node, one entry per arc.
// Part of graph.Graph; the relation is symmetric.
func (x *Index) Out(node int) []int {
	return x.out[node]
}

// OddNodes returns the indices of odd-degree nodes in node order.
func (x *Index) OddNodes() []int {
	var odd []int
	for i, d := range x.Degree {
		if d%2 == 1 {
			odd = append(odd, i)
		}
	}

	return odd
}
