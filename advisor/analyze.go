// SPDX-License-Identifier: MIT

package advisor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// Analyze classifies g and, when it is unsolvable, proposes modifications.
func Analyze(g *core.Graph) Analysis {
	c := euler.Classify(g)
	a := Analysis{
		Solvable:       c.Exists,
		OddDegreeNodes: c.OddDegreeNodes,
		OddDegreeCount: len(c.OddDegreeNodes),
	}
	if a.Solvable {
		return a
	}

	if a.OddDegreeCount > 2 {
		a.Modifications = parityRepairs(g, c.OddDegreeNodes)
		a.Suggestion = fmt.Sprintf(
			"%d land masses (%s) have an odd number of bridges, but a walk crossing every bridge once allows at most 2. "+
				"Each change below evens out two of them.",
			a.OddDegreeCount, names(g, c.OddDegreeNodes))
	} else {
		a.Modifications = joinRepairs(g, c.OddDegreeNodes)
		a.Suggestion = fmt.Sprintf(
			"The bridges form %d separate groups, so no single walk can reach them all. Connect the groups.",
			c.Components)
	}

	return a
}

// parityRepairs runs the pairing search and the removal scan, adds first.
func parityRepairs(g *core.Graph, odd []string) []Modification {
	var mods []Modification

	work := append([]string(nil), odd...)
	for len(work) > 2 {
		i, j, linked := pickPair(g, work)
		from, to := work[i], work[j]
		m := Modification{Action: Add, From: from, To: to}
		if linked {
			m.Reason = fmt.Sprintf("Add another bridge between %s and %s: both have an odd number of bridges and one more makes both even.",
				g.Name(from), g.Name(to))
		} else {
			m.Reason = fmt.Sprintf("Build a bridge from %s to %s: both have an odd number of bridges and one more makes both even.",
				g.Name(from), g.Name(to))
		}
		mods = append(mods, m)
		// j > i, so dropping j first keeps i valid.
		work = append(work[:j], work[j+1:]...)
		work = append(work[:i], work[i+1:]...)
	}

	isOdd := make(map[string]bool, len(odd))
	for _, id := range odd {
		isOdd[id] = true
	}
	seen := make(map[string]bool)
	for _, id := range odd[:2] {
		inc := g.IncidentEdges(id)
		if len(inc) <= 1 {
			continue
		}
		e := inc[0]
		other := e.Other(id)
		if other == id || !isOdd[other] || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		mods = append(mods, Modification{
			Action: Remove,
			From:   id,
			To:     other,
			EdgeID: e.ID,
			Reason: fmt.Sprintf("Remove bridge %s between %s and %s: both lose one bridge and become even.",
				e.ID, g.Name(id), g.Name(other)),
		})
	}

	if len(mods) > MaxModifications {
		mods = mods[:MaxModifications]
	}

	return mods
}

// pickPair returns the first pair (i<j) of work already joined by a bridge,
// or (0, 1) when no pair is.
func pickPair(g *core.Graph, work []string) (int, int, bool) {
	var i, j int
	for i = 0; i < len(work); i++ {
		for j = i + 1; j < len(work); j++ {
			if linked(g, work[i], work[j]) {
				return i, j, true
			}
		}
	}

	return 0, 1, false
}

// linked reports whether any bridge, crossed or not, joins a and b.
func linked(g *core.Graph, a, b string) bool {
	for _, e := range g.IncidentEdges(a) {
		if e.Connects(a, b) {
			return true
		}
	}

	return false
}

// joinRepairs chains the edge-bearing components. Components holding odd
// nodes go to the ends of the chain and lend an odd node as endpoint, so
// the odd count after all joins stays at most two.
func joinRepairs(g *core.Graph, odd []string) []Modification {
	comps := euler.Components(g)
	if len(comps) < 2 {
		return nil
	}
	isOdd := make(map[string]bool, len(odd))
	for _, id := range odd {
		isOdd[id] = true
	}

	// Odd-bearing component goes first.
	if firstOdd(comps[0], isOdd) == "" {
		for k := 1; k < len(comps); k++ {
			if firstOdd(comps[k], isOdd) != "" {
				comps[0], comps[k] = comps[k], comps[0]
				break
			}
		}
	}

	var mods []Modification
	for k := 0; k+1 < len(comps) && len(mods) < MaxModifications; k++ {
		from := firstOdd(comps[k], isOdd)
		if from == "" || k > 0 {
			from = comps[k][0]
		}
		to := comps[k+1][0]
		mods = append(mods, Modification{
			Action: Add,
			From:   from,
			To:     to,
			Reason: fmt.Sprintf("Build a bridge from %s to %s to connect two separate groups of land.",
				g.Name(from), g.Name(to)),
		})
	}

	return mods
}

func firstOdd(comp []string, isOdd map[string]bool) string {
	for _, id := range comp {
		if isOdd[id] {
			return id
		}
	}

	return ""
}

func names(g *core.Graph, ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Name(id)
	}

	return strings.Join(out, ", ")
}
