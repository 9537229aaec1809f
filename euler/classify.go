// SPDX-License-Identifier: MIT

package euler

import (
	"github.com/aclements/go-moremath/graph/graphalg"

	"github.com/katalvlaran/konigsberg/core"
)

// Classify reports whether g admits an Eulerian circuit, an Eulerian path,
// or neither. See the package documentation for the decision table.
func Classify(g *core.Graph, opts ...Option) Classification {
	return classifyIndex(core.NewIndex(g, false), resolve(opts))
}

func classifyIndex(idx *core.Index, o options) Classification {
	odd := idx.OddNodes()
	c := Classification{OddDegreeNodes: idsOf(idx, odd)}
	c.Components = edgeComponents(idx)
	c.Connected = c.Components <= 1

	switch len(odd) {
	case 0:
		c.Kind = Circuit
		for i, d := range idx.Degree {
			if d > 0 {
				c.StartCandidates = append(c.StartCandidates, idx.IDs[i])
			}
		}
	case 2:
		c.Kind = Path
		c.StartCandidates = idsOf(idx, odd)
	default:
		c.Kind = None
	}

	if c.Kind != None && o.connectivity && !c.Connected {
		c.Kind = None
		c.StartCandidates = nil
	}
	c.Exists = c.Kind != None

	return c
}

// edgeComponents counts the connected components of idx that hold at least
// one edge. Index adjacency is symmetric, so strongly connected components
// are exactly the undirected components.
func edgeComponents(idx *core.Index) int {
	sccs := graphalg.SCC(idx, 0)
	n := 0
	for cid := 0; cid < sccs.NumNodes(); cid++ {
		for _, sub := range sccs.Subnodes(cid) {
			if idx.Degree[sub] > 0 {
				n++
				break
			}
		}
	}

	return n
}

// Components groups the edge-bearing nodes of g into connected components.
// Components are ordered by their first node in graph order, and nodes
// within a component keep graph order. Isolated nodes are left out.
func Components(g *core.Graph) [][]string {
	idx := core.NewIndex(g, false)
	sccs := graphalg.SCC(idx, graphalg.SCCSubnodeComponent)

	slot := make(map[int]int) // component ID → position in out
	var out [][]string
	for i, id := range idx.IDs {
		if idx.Degree[i] == 0 {
			continue
		}
		cid := sccs.SubnodeComponent(i)
		k, ok := slot[cid]
		if !ok {
			k = len(out)
			slot[cid] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], id)
	}

	return out
}

func idsOf(idx *core.Index, nodes []int) []string {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = idx.IDs[n]
	}

	return out
}
