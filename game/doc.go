// SPDX-License-Identifier: MIT

// Package game runs one player's attempt at a level.
//
// A Session holds the canonical level graph (never modified) and the
// current snapshot. Every move replaces the snapshot with the one returned
// by core.Graph.Cross; no snapshot is ever mutated. Undo rebuilds the state
// by replaying all moves but the last against a fresh clone of the level,
// so any number of sessions may share one level graph.
//
// Lifecycle:
//
//	NewSession ─Start(node)─► playing ─Move/MoveAlong─► ... ─► Won or Stuck
//	                 ▲             │
//	                 └──Restart────┘          Undo steps back one move
//
// Hint, Advice and Solution delegate to packages hint, advisor, euler and
// narrator on the current snapshot. Playback paces narrated steps for
// animation and stops when its context is cancelled.
//
// Session methods are safe for concurrent use.
package game
