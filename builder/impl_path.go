// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits bridges in stable order i–(i+1) for i=0..n-2.
//
// Complexity: O(n) time, O(n) space for the ID slice.
//
// Puzzle shape: exactly two odd nodes (the ends), so an Eulerian path
// exists and must start at one end.

package builder

import "github.com/katalvlaran/konigsberg/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		ids, err := addNodes(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
