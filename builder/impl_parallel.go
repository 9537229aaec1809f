// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// impl_parallel.go: implementation of Parallel(a, b, k) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices).
//   • Node IDs a and b are taken verbatim (plus the Prefixed prefix); each
//     is added only if the graph does not hold it yet, so Parallel can
//     thicken a bridge of an earlier constructor.
//   • Emits k parallel bridges a–b.
//   • a == b requires core.WithLoops (core rejects it otherwise).

package builder

import "github.com/katalvlaran/konigsberg/core"

const (
	methodParallel   = "Parallel"
	minParallelEdges = 1
)

// Parallel returns a Constructor that adds k parallel bridges between a and b.
func Parallel(a, b string, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minParallelEdges {
			return tooFew(methodParallel, k, minParallelEdges)
		}
		from, to := cfg.prefix+a, cfg.prefix+b
		for _, id := range []string{from, to} {
			if g.HasNode(id) {
				continue
			}
			if _, err := addNode(methodParallel, g, cfg, id); err != nil {
				return err
			}
		}
		for i := 0; i < k; i++ {
			if err := addEdge(methodParallel, g, from, to); err != nil {
				return err
			}
		}

		return nil
	}
}
