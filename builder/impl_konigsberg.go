// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_konigsberg.go: the historical seven bridges of Königsberg (1736).
//
// Layout (node index → land mass):
//   0 Kneiphof island, 1 north bank, 2 south bank, 3 east island (Lomse).
//
// Bridges in emission order:
//   0–1, 0–1, 0–2, 0–2, 0–3, 1–3, 2–3
//
// Degrees 5,3,3,3: four odd nodes, no Eulerian path.

package builder

import "github.com/katalvlaran/konigsberg/core"

const methodKonigsberg = "Konigsberg"

// konigsbergLand holds the default labels and sketch coordinates.
var konigsbergLand = []core.Node{
	{Label: "Kneiphof", X: 0.5, Y: 0.5},
	{Label: "North Bank", X: 0.5, Y: 0.1},
	{Label: "South Bank", X: 0.5, Y: 0.9},
	{Label: "Lomse", X: 0.9, Y: 0.5},
}

var konigsbergBridges = [][2]int{{0, 1}, {0, 1}, {0, 2}, {0, 2}, {0, 3}, {1, 3}, {2, 3}}

// Konigsberg returns a Constructor that builds the seven-bridge puzzle.
// Node IDs come from cfg.idFn(0..3); labels default to the land names
// unless WithLabels is set.
func Konigsberg() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids := make([]string, len(konigsbergLand))
		for i, land := range konigsbergLand {
			n := land
			n.ID = cfg.idFn(i)
			if cfg.labelFn != nil {
				n.Label = cfg.labelFn(n.ID)
			}
			if err := g.AddNode(n); err != nil {
				return wrapNode(methodKonigsberg, n.ID, err)
			}
			ids[i] = n.ID
		}
		for _, br := range konigsbergBridges {
			if err := addEdge(methodKonigsberg, g, ids[br[0]], ids[br[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}
