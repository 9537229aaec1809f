// SPDX-License-Identifier: MIT

// Package hint recommends the player's next move.
//
// Before the first move, Next classifies the remaining bridges and picks a
// starting land mass. During a game it solves the whole remaining puzzle
// again from the player's position (no incremental state is kept between
// calls) and proposes the node that follows that position in the fresh
// trail.
//
// Next reports false when nothing useful can be said: the remaining puzzle
// is unsolvable, the player is stranded, or every bridge is already
// crossed. Callers fall back to package advisor for an explanation.
package hint
