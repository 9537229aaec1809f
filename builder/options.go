// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithLabels sets a label generator applied to every node ID.
// Panics on nil.
func WithLabels(fn func(id string) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithSymbolIDs sets the ID scheme to ExcelColumnIDFn ("A".."Z","AA",...).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
