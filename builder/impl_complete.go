// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits one bridge per unordered pair in lexicographic index order
//     (i<j): (0,1),(0,2),...,(0,n-1),(1,2),...
//
// Complexity: O(n²) time, n(n-1)/2 edges.
//
// Puzzle shape: every node has degree n-1, so K_n is solvable (as a
// circuit) exactly when n is odd; K_2 is a path.

package builder

import "github.com/katalvlaran/konigsberg/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		ids, err := addNodes(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
