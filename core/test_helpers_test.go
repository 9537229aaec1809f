// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for konigsberg/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep *testing.T out of goroutines (collect errors, assert afterwards).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NCrosses = 20
)

// edgeRow is a compact (id, from, to) triple for fixtures.
type edgeRow struct{ ID, From, To string }

// mustGraph builds a graph from node IDs and edge triples, failing the test
// on any construction error.
func mustGraph(t testing.TB, nodes []string, edges []edgeRow, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range nodes {
		require.NoError(t, g.AddNode(core.Node{ID: id, Label: "Node " + id}), "AddNode(%s)", id)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.Edge{ID: e.ID, From: e.From, To: e.To}), "AddEdge(%s)", e.ID)
	}

	return g
}

// triangle returns A-B, B-C, C-A.
func triangle(t testing.TB) *core.Graph {
	return mustGraph(t, []string{NodeA, NodeB, NodeC}, []edgeRow{
		{"ab", NodeA, NodeB},
		{"bc", NodeB, NodeC},
		{"ca", NodeC, NodeA},
	})
}

// konigsberg returns the historical 4 land masses / 7 bridges layout:
// A (island Kneiphof) has 5 bridges, B, C, D have 3 each.
func konigsberg(t testing.TB) *core.Graph {
	return mustGraph(t, []string{NodeA, NodeB, NodeC, NodeD}, []edgeRow{
		{"a", NodeA, NodeB},
		{"b", NodeA, NodeB},
		{"c", NodeA, NodeC},
		{"d", NodeA, NodeC},
		{"e", NodeA, NodeD},
		{"f", NodeB, NodeD},
		{"g", NodeC, NodeD},
	})
}

// edgeIDs projects edges to their IDs.
func edgeIDs(es []core.Edge) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}

	return out
}
