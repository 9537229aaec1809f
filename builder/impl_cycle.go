// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits bridges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time.
//
// Puzzle shape: every node has degree 2, an Eulerian circuit from anywhere.

package builder

import "github.com/katalvlaran/konigsberg/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		ids, err := addNodes(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		// i == n-1 closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
