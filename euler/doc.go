// SPDX-License-Identifier: MIT

// Package euler decides whether a puzzle graph can be walked crossing every
// bridge exactly once, and constructs such a walk.
//
// Classification (Classify):
//
//	odd-degree nodes | connected edge set | Kind
//	-----------------+--------------------+---------
//	0                | yes                | Circuit  (start anywhere with degree > 0)
//	2                | yes                | Path     (start at one of the two odd nodes)
//	4, 6, ...        | any                | None
//	0 or 2           | no                 | None     (Connected == false)
//
// Degrees are counted over ALL edges of the graph as given, crossed ones
// included. To ask "is the puzzle still solvable from here", pass the
// remaining-moves subgraph: Classify(g.Uncrossed()).
//
// Connectivity is checked by running Tarjan's SCC
// (github.com/aclements/go-moremath/graph/graphalg) on the symmetric dense
// index of the graph; nodes without edges are ignored. ParityOnly() turns
// the check off and reproduces the parity-only test; with it, a graph made
// of two separate parity-valid pieces is reported as solvable, but BuildPath
// still returns (nil, false) because no single walk covers both pieces.
//
// Construction (BuildPath) is Hierholzer's algorithm over the uncrossed
// edges: a stack of nodes, an edge arena with one private "used" bit per
// edge, and a per-node cursor into the stored-order incidence list.
//
//	Time:   O(V + E)
//	Memory: O(V + E), allocated per call and discarded on return.
//
// Neither function mutates the graph or keeps state between calls; both are
// safe to call concurrently on shared snapshots, and the same input always
// yields the same output.
//
// Preconditions: edges must reference nodes of the same graph (enforced by
// core.Graph construction). Nothing is re-validated here.
package euler
