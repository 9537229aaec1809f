// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/konigsberg/core"
)

// islandPrefix prefixes IDs of islands without a letter.
const islandPrefix = "I"

// Bridges finds every deck run and the two islands it joins, ordered by
// the run's first cell in row-major order. A deck cell touches an island
// through its four orthogonal neighbors.
func (gg *GridGraph) Bridges() ([]Bridge, error) {
	owner := gg.islandOf(gg.Islands())
	var out []Bridge
	for _, run := range gg.components(Deck, offsets4) {
		var ends []int
		for _, c := range run {
			cx, cy := gg.Coordinate(c)
			for _, d := range offsets4 {
				nx, ny := cx+d[0], cy+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				if k := owner[gg.index(nx, ny)]; k >= 0 && !slices.Contains(ends, k) {
					ends = append(ends, k)
				}
			}
		}
		if len(ends) != 2 {
			x, y := gg.Coordinate(run[0])
			return nil, fmt.Errorf("gridgraph: bridge at (%d,%d) touches %d islands: %w", x, y, len(ends), ErrDanglingBridge)
		}
		slices.Sort(ends)
		out = append(out, Bridge{Cells: run, From: ends[0], To: ends[1]})
	}

	return out, nil
}

// IslandIDs returns the node ID of every island, in Islands order.
func (gg *GridGraph) IslandIDs() []string {
	return gg.islandIDs(gg.Islands())
}

func (gg *GridGraph) islandIDs(islands [][]int) []string {
	ids := make([]string, len(islands))
	unnamed := 0
	for k, isl := range islands {
		// the row-major first letter names the island
		best := -1
		for _, c := range isl {
			if _, ok := gg.names[c]; ok && (best < 0 || c < best) {
				best = c
			}
		}
		if best >= 0 {
			ids[k] = string(gg.names[best])
			continue
		}
		unnamed++
		ids[k] = islandPrefix + strconv.Itoa(unnamed)
	}

	return ids
}

// ToPuzzle converts the map into a puzzle graph: one node per island,
// placed at the island's centre in unit coordinates, and one bridge "b1",
// "b2", ... per deck run.
func (gg *GridGraph) ToPuzzle() (*core.Graph, error) {
	islands := gg.Islands()
	bridges, err := gg.Bridges()
	if err != nil {
		return nil, err
	}
	ids := gg.islandIDs(islands)

	g := core.NewGraph()
	for k, isl := range islands {
		var sx, sy float64
		for _, c := range isl {
			x, y := gg.Coordinate(c)
			sx += float64(x) + 0.5
			sy += float64(y) + 0.5
		}
		n := float64(len(isl))
		node := core.Node{
			ID: ids[k],
			X:  sx / n / float64(gg.Width),
			Y:  sy / n / float64(gg.Height),
		}
		if err = g.AddNode(node); err != nil {
			return nil, fmt.Errorf("gridgraph: island %d: %w", k, err)
		}
	}
	for i, b := range bridges {
		e := core.Edge{ID: "b" + strconv.Itoa(i+1), From: ids[b.From], To: ids[b.To]}
		if err = g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("gridgraph: bridge %d: %w", i+1, err)
		}
	}

	return g, nil
}
