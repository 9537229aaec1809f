// SPDX-License-Identifier: MIT

// Package builder assembles deterministic puzzle graphs: classic
// topologies (path, cycle, star, wheel, complete), bundles of parallel
// bridges and the historical Königsberg layout.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates the graph,
// resolves the builder configuration and runs the constructors in order.
// Constructors share the graph, so composing them glues topologies together
// on common node IDs; wrap a constructor with Prefixed to keep it apart.
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(3),
//		builder.Prefixed("x", builder.Path(2)), // second, disjoint piece
//	)
//
// Edge IDs are "e1", "e2", ... in emission order across all constructors,
// which keeps "first matching edge" lookups reproducible in tests.
//
// Errors:
//
//	ErrTooFewVertices  - a size parameter is below the constructor's minimum.
//	ErrConstructFailed - nil constructor or a core insertion failure.
package builder
