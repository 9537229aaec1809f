// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes through cfg.idFn so ID schemes compose.
//   - Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures and examples: it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// Prefixed runs c with node IDs prefixed by prefix, so c builds a piece
// disjoint from everything else in the graph.
func Prefixed(prefix string, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Prefixed(%q): nil constructor: %w", prefix, ErrConstructFailed)
		}
		inner := cfg.idFn
		cfg.idFn = func(i int) string { return prefix + inner(i) }
		cfg.prefix = prefix + cfg.prefix

		return c(g, cfg)
	}
}

// Disjoint runs each constructor on its own ID prefix ("g0.", "g1.", ...),
// producing a graph with one component per constructor.
func Disjoint(cons ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, c := range cons {
			if err := Prefixed(fmt.Sprintf("g%d.", i), c)(g, cfg); err != nil {
				return fmt.Errorf("Disjoint[%d]: %w", i, err)
			}
		}

		return nil
	}
}
