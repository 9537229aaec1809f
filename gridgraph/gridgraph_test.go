// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
	"github.com/katalvlaran/konigsberg/gridgraph"
)

// konigsbergMap is the town drawn with its seven bridges.
const konigsbergMap = `
BBBBBBBBBBBB
.|..|....|..
.AAAAA=DDDDD
.|..|....|..
CCCCCCCCCCCC
`

func TestParseMap_Konigsberg(t *testing.T) {
	gg, err := gridgraph.ParseMap(konigsbergMap, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 12, gg.Width)
	assert.Equal(t, 5, gg.Height)
	assert.Equal(t, []string{"B", "A", "D", "C"}, gg.IslandIDs())

	g, err := gg.ToPuzzle()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 5, "B": 3, "C": 3, "D": 3}, g.NodeDegrees(false))
	assert.Equal(t, euler.None, euler.Classify(g).Kind)

	e, ok := g.Edge("b4")
	require.True(t, ok)
	assert.Equal(t, core.Edge{ID: "b4", From: "A", To: "D"}, e)

	n, ok := g.Node("B")
	require.True(t, ok)
	assert.InDelta(t, 0.5, n.X, 1e-9)
	assert.InDelta(t, 0.1, n.Y, 1e-9)
}

func TestBuildCost(t *testing.T) {
	gg, err := gridgraph.ParseMap(konigsbergMap, gridgraph.Conn4)
	require.NoError(t, err)

	cost, err := gg.BuildCost("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 2, cost, "hop over Kneiphof")

	cost, err = gg.BuildCost("A", "D")
	require.NoError(t, err)
	assert.Equal(t, 1, cost, "next to the existing deck")

	_, err = gg.BuildCost("A", "Z")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownIsland)
}

func TestExpandIsland(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 0, 1},
		{0, 0, 0, 0},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, _, err = gg.ExpandIsland(0, 5)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

func TestIslands_Connectivity(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	g4, err := gridgraph.NewGridGraph(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Len(t, g4.Islands(), 5)

	g8, err := gridgraph.NewGridGraph(grid, gridgraph.Conn8)
	require.NoError(t, err)
	require.Len(t, g8.Islands(), 1)
	assert.Len(t, g8.Islands()[0], 5)
}

func TestToPuzzle_UnnamedIslands(t *testing.T) {
	gg, err := gridgraph.ParseMap("#=#\n|~|\n#==", gridgraph.Conn4)
	require.NoError(t, err)
	g, err := gg.ToPuzzle()
	require.NoError(t, err)
	assert.Equal(t, []string{"I1", "I2", "I3"}, g.NodeIDs())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestErrors(t *testing.T) {
	_, err := gridgraph.NewGridGraph(nil, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.NewGridGraph([][]int{{1, 0}, {1}}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	_, err = gridgraph.NewGridGraph([][]int{{7}}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)
	_, err = gridgraph.ParseMap("A?B", gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrBadCell)
	_, err = gridgraph.ParseMap("\n\n", gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	gg, err := gridgraph.ParseMap("#=~#", gridgraph.Conn4)
	require.NoError(t, err)
	_, err = gg.ToPuzzle()
	assert.ErrorIs(t, err, gridgraph.ErrDanglingBridge)

	gg, err = gridgraph.ParseMap("A=A", gridgraph.Conn4)
	require.NoError(t, err)
	_, err = gg.ToPuzzle()
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	gg, err = gridgraph.ParseMap("#~~\n~~~\n~~#", gridgraph.Conn4)
	require.NoError(t, err)
	_, _, err = gg.ExpandIsland(0, 0)
	assert.NoError(t, err, "an island reaches itself")
}
