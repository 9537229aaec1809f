// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for every Constructor,
// verifying topology, counts, emission order and degree parity.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/builder"
	"github.com/katalvlaran/konigsberg/core"
)

// endpoints renders the edge list as "From-To" strings in stored order.
func endpoints(g *core.Graph) []string {
	es := g.Edges()
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.From + "-" + e.To
	}

	return out
}

// oddCount counts odd-degree nodes over all edges.
func oddCount(g *core.Graph) int {
	n := 0
	for _, d := range g.NodeDegrees(false) {
		if d%2 == 1 {
			n++
		}
	}

	return n
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		wantOdd int
		check   func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3, wantOdd: 2,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"0-1", "1-2", "2-3"}, endpoints(g))
			},
		},
		{
			name: "Cycle(4)", ctor: builder.Cycle(4), wantV: 4, wantE: 4, wantOdd: 0,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"0-1", "1-2", "2-3", "3-0"}, endpoints(g))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6, wantOdd: 4,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"0-1", "0-2", "0-3", "1-2", "1-3", "2-3"}, endpoints(g))
			},
		},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10, wantOdd: 0},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3, wantOdd: 4,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"Center-1", "Center-2", "Center-3"}, endpoints(g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8, wantOdd: 4,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.NodeDegrees(false)[builder.CenterID])
			},
		},
		{
			name: "Parallel(x,y,3)", ctor: builder.Parallel("x", "y", 3), wantV: 2, wantE: 3, wantOdd: 2,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"e1", "e2", "e3"}, []string{g.Edges()[0].ID, g.Edges()[1].ID, g.Edges()[2].ID})
			},
		},
		{
			name: "Konigsberg", ctor: builder.Konigsberg(), wantV: 4, wantE: 7, wantOdd: 4,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, map[string]int{"0": 5, "1": 3, "2": 3, "3": 3}, g.NodeDegrees(false))
				n, ok := g.Node("0")
				require.True(t, ok)
				assert.Equal(t, "Kneiphof", n.Label)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount(), "node count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			assert.Equal(t, tc.wantOdd, oddCount(g), "odd-degree nodes")
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_TooFew(t *testing.T) {
	t.Parallel()

	for name, c := range map[string]builder.Constructor{
		"Path(1)":         builder.Path(1),
		"Cycle(2)":        builder.Cycle(2),
		"Complete(0)":     builder.Complete(0),
		"Star(1)":         builder.Star(1),
		"Wheel(3)":        builder.Wheel(3),
		"Parallel(a,b,0)": builder.Parallel("a", "b", 0),
	} {
		_, err := builder.BuildGraph(nil, nil, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	// Shared IDs glue constructors together.
	g, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Parallel("0", "1", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []string{"0-1", "0-1"}, endpoints(g))

	// Re-running a node-adding constructor collides.
	_, err = builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Cycle(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestDisjointAndPrefixed(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Disjoint(builder.Cycle(3), builder.Star(3)))
	require.NoError(t, err)
	assert.Equal(t, []string{"g0.0", "g0.1", "g0.2", "g1.Center", "g1.1", "g1.2"}, g.NodeIDs())
	assert.Equal(t, 5, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.Prefixed("x", builder.Prefixed("y", builder.Wheel(4))))
	require.NoError(t, err)
	assert.True(t, g.HasNode("yx0"))
	assert.True(t, g.HasNode("yxCenter"))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	g := builder.MustBuild([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithLabels(func(id string) string { return "Isle " + id }),
	}, builder.Cycle(3))
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	assert.Equal(t, "Isle B", g.Name("B"))

	g = builder.MustBuild([]builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(2))
	assert.Equal(t, []string{"v0", "v1"}, g.NodeIDs())

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithLabels(nil) })
	assert.Panics(t, func() { builder.MustBuild(nil, builder.Path(0)) })
}

func TestLoopsNeedGraphOption(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.Parallel("a", "a", 1))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops()}, nil, builder.Parallel("a", "a", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeDegrees(false)["a"])
}
