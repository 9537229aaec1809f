// SPDX-License-Identifier: MIT

// Package narrator turns a walk (a sequence of node IDs) into
// player-facing steps for animated playback.
//
// Each step after the first names the bridge it crosses. When several
// uncrossed bridges join the same two land masses they are handed out in
// stored order, each at most once, so a walk over parallel bridges
// narrates every bridge separately.
package narrator

import (
	"fmt"

	"github.com/katalvlaran/konigsberg/core"
)

// Step is one narrated move.
type Step struct {
	// Node is where the player stands after the step.
	Node string
	// Edge is the bridge crossed to reach Node; nil for the opening step
	// and when no unused bridge joins the two nodes.
	Edge *core.Edge
	// Description is the player-facing text.
	Description string
}

// Describe narrates path over the uncrossed bridges of g.
// An empty path yields no steps.
func Describe(g *core.Graph, path []string) []Step {
	if len(path) == 0 {
		return nil
	}
	steps := make([]Step, 0, len(path))
	steps = append(steps, Step{
		Node:        path[0],
		Description: fmt.Sprintf("Start at %s", g.Name(path[0])),
	})

	used := make(map[string]bool, len(path)-1)
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		s := Step{Node: to}
		if e, ok := nextUnused(g, from, to, used); ok {
			used[e.ID] = true
			s.Edge = &e
			s.Description = fmt.Sprintf("Cross bridge %s from %s to %s", e.ID, g.Name(from), g.Name(to))
		} else {
			s.Description = fmt.Sprintf("No bridge left from %s to %s", g.Name(from), g.Name(to))
		}
		steps = append(steps, s)
	}

	return steps
}

// nextUnused returns the first uncrossed bridge joining from and to, in
// stored order, that no earlier step has taken.
func nextUnused(g *core.Graph, from, to string, used map[string]bool) (core.Edge, bool) {
	for _, e := range g.AvailableEdges(from) {
		if e.Connects(from, to) && !used[e.ID] {
			return e, true
		}
	}

	return core.Edge{}, false
}
