// SPDX-License-Identifier: MIT

package hint

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// Kind tells whether a Hint picks a start node or a move.
type Kind int

const (
	// Start recommends where to begin; Hint.From is empty.
	Start Kind = iota
	// Move recommends the next land mass to walk to from Hint.From.
	Move
)

func (k Kind) String() string {
	if k == Move {
		return "move"
	}
	return "start"
}

// Hint is one recommendation.
type Hint struct {
	Kind Kind
	// Node is the recommended start or destination.
	Node string
	// From is the player's position for a Move hint.
	From string
	// Bridge is the first uncrossed bridge from From to Node (Move only).
	Bridge string
	// Message is the player-facing text.
	Message string
}

// Next returns the recommended move for a player standing on current, or
// the recommended start when current is empty.
func Next(g *core.Graph, current string) (Hint, bool) {
	if current == "" {
		return startHint(g)
	}

	path, ok := euler.BuildPath(g, current)
	if !ok {
		return Hint{}, false
	}
	i := slices.Index(path, current)
	if i < 0 || i == len(path)-1 {
		return Hint{}, false
	}
	next := path[i+1]
	h := Hint{
		Kind:    Move,
		Node:    next,
		From:    current,
		Message: fmt.Sprintf("Cross over to %s.", g.Name(next)),
	}
	if e, found := g.EdgeBetween(current, next); found {
		h.Bridge = e.ID
	}

	return h, true
}

func startHint(g *core.Graph) (Hint, bool) {
	c := euler.Classify(g.Uncrossed())
	if !c.Exists || len(c.StartCandidates) == 0 {
		return Hint{}, false
	}
	node := c.StartCandidates[0]
	h := Hint{Kind: Start, Node: node}
	switch c.Kind {
	case euler.Path:
		h.Message = fmt.Sprintf(
			"Start at %s: it has an odd number of bridges, so the walk must begin at %s or %s.",
			g.Name(node), g.Name(c.StartCandidates[0]), g.Name(c.StartCandidates[1]))
	default:
		h.Message = fmt.Sprintf(
			"Every land mass has an even number of bridges, so you may start anywhere. Try %s; you will finish where you began.",
			g.Name(node))
	}

	return h, true
}
