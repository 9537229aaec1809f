// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub node.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim nodes via cfg.idFn(0..n-2); rim bridges are emitted first in the
//     Cycle order, then spokes Center–rim[i] in index order.
//
// Puzzle shape: every rim node has degree 3, so for n ≥ 5 the wheel has at
// least four odd nodes and is unsolvable; W₄ (= K₄) as well.

package builder

import "github.com/katalvlaran/konigsberg/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		rim, err := addNodes(methodWheel, g, cfg, n-1)
		if err != nil {
			return err
		}
		m := len(rim)
		for i := 0; i < m; i++ {
			if err = addEdge(methodWheel, g, rim[i], rim[(i+1)%m]); err != nil {
				return err
			}
		}
		hub, err := addNode(methodWheel, g, cfg, cfg.prefix+CenterID)
		if err != nil {
			return err
		}
		for _, r := range rim {
			if err = addEdge(methodWheel, g, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
