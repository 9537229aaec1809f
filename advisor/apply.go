// SPDX-License-Identifier: MIT

package advisor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/konigsberg/core"
)

// Apply returns a new graph with m applied; g is left untouched.
//
// Add builds an uncrossed bridge with a fresh random ID ("bridge-<uuid>").
// Remove demolishes m.EdgeID, or the first uncrossed bridge between From
// and To when EdgeID is empty.
func Apply(g *core.Graph, m Modification) (*core.Graph, error) {
	switch m.Action {
	case Add:
		next := g.Clone()
		e := core.Edge{ID: "bridge-" + uuid.NewString(), From: m.From, To: m.To}
		if err := next.AddEdge(e); err != nil {
			return nil, fmt.Errorf("advisor: Apply(add %s-%s): %w: %w", m.From, m.To, ErrApplyFailed, err)
		}
		return next, nil

	case Remove:
		id := m.EdgeID
		if id == "" {
			e, ok := g.EdgeBetween(m.From, m.To)
			if !ok {
				return nil, fmt.Errorf("advisor: Apply(remove %s-%s): %w: %w", m.From, m.To, ErrApplyFailed, core.ErrEdgeNotFound)
			}
			id = e.ID
		}
		next, err := g.Without(id)
		if err != nil {
			return nil, fmt.Errorf("advisor: Apply(remove %s): %w: %w", id, ErrApplyFailed, err)
		}
		return next, nil

	default:
		return nil, fmt.Errorf("advisor: Apply(%d): %w", m.Action, ErrUnknownAction)
	}
}
