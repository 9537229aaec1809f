// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn  ("0","1","2",...)
//   • labelFn  = nil          (labels left empty; Node.Name falls back to ID)
//   • prefix   = ""

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Optional label strategy: ID -> label.
	labelFn func(id string) string
	// Prefix for fixed IDs such as the "Center" hub; set by Prefixed.
	prefix string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
