// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/konigsberg/advisor"
	"github.com/katalvlaran/konigsberg/euler"
	"github.com/katalvlaran/konigsberg/hint"
	"github.com/katalvlaran/konigsberg/narrator"
)

// Hint recommends the next move, or the start node before Start.
func (s *Session) Hint() (hint.Hint, bool) {
	s.mu.Lock()
	state, pos := s.state, s.position
	s.mu.Unlock()

	return hint.Next(state, pos)
}

// Advice analyzes the bridges still to cross from where the player stands.
//
// Before Start it is advisor.Analyze of the remaining bridges. After Start,
// a remaining set that is walkable, but not from Position, is reported
// unsolvable with no modifications: the player has to undo or restart.
func (s *Session) Advice() advisor.Analysis {
	s.mu.Lock()
	state, pos := s.state, s.position
	s.mu.Unlock()

	left := state.Uncrossed()
	a := advisor.Analyze(left)
	if !a.Solvable || pos == "" || left.EdgeCount() == 0 {
		return a
	}
	if c := euler.Classify(left); !slices.Contains(c.StartCandidates, pos) {
		a.Solvable = false
		a.Suggestion = fmt.Sprintf(
			"The remaining bridges can still be walked, but not starting from %s. Undo a move or restart.",
			state.Name(pos))
	}

	return a
}

// Solution narrates a complete walk over the remaining bridges that starts
// at the player's position, or at the recommended start before Start.
// It reports false when no such walk exists.
func (s *Session) Solution() ([]narrator.Step, bool) {
	s.mu.Lock()
	state, pos := s.state, s.position
	s.mu.Unlock()

	path, ok := euler.BuildPath(state, pos)
	if !ok || (pos != "" && path[0] != pos) {
		return nil, false
	}

	return narrator.Describe(state, path), true
}
