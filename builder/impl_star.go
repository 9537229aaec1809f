// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub node with fixed ID "Center" (prefixed under Prefixed).
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center–leaf[i].
//
// Complexity: O(n) time.
//
// Puzzle shape: every leaf is odd, so only Star(2) (a single bridge) and
// Star(3) (a path through the hub) are solvable.

package builder

import "github.com/katalvlaran/konigsberg/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	// CenterID is the fixed hub ID used by Star and Wheel.
	CenterID = "Center"
)

// Star returns a Constructor that builds a star with n nodes:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		hub, err := addNode(methodStar, g, cfg, cfg.prefix+CenterID)
		if err != nil {
			return err
		}
		var leaf string
		for i := 1; i < n; i++ {
			if leaf, err = addNode(methodStar, g, cfg, cfg.idFn(i)); err != nil {
				return err
			}
			if err = addEdge(methodStar, g, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
