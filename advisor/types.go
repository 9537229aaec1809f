// SPDX-License-Identifier: MIT

package advisor

import "errors"

// MaxModifications caps the suggestions returned by Analyze.
const MaxModifications = 3

// Action is the kind of a Modification.
type Action int

const (
	// Add builds a new bridge between From and To.
	Add Action = iota
	// Remove demolishes bridge EdgeID between From and To.
	Remove
)

func (a Action) String() string {
	if a == Remove {
		return "remove"
	}
	return "add"
}

// Modification is one suggested change to the puzzle.
type Modification struct {
	Action Action
	From   string
	To     string
	// EdgeID names the bridge to demolish (Remove only).
	EdgeID string
	// Reason explains the parity effect to the player.
	Reason string
}

// Analysis is the outcome of Analyze.
type Analysis struct {
	Solvable       bool
	OddDegreeNodes []string
	OddDegreeCount int
	// Suggestion is a one-paragraph summary for the player; empty when
	// the puzzle is solvable.
	Suggestion    string
	Modifications []Modification
}

// Sentinel errors returned by Apply.
var (
	// ErrUnknownAction indicates a Modification with an undefined Action.
	ErrUnknownAction = errors.New("advisor: unknown action")
	// ErrApplyFailed indicates that the graph rejected the modification.
	ErrApplyFailed = errors.New("advisor: modification cannot be applied")
)
