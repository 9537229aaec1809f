// SPDX-License-Identifier: MIT

package game

import "errors"

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrNotStarted indicates a move before Start.
	ErrNotStarted = errors.New("game: not started")
	// ErrAlreadyStarted indicates a second Start without Restart.
	ErrAlreadyStarted = errors.New("game: already started")
	// ErrUnknownNode indicates a node ID the level does not have.
	ErrUnknownNode = errors.New("game: unknown node")
	// ErrNoBridge indicates no uncrossed bridge leads where the player asked.
	ErrNoBridge = errors.New("game: no bridge")
	// ErrNothingToUndo indicates Undo with an empty move history.
	ErrNothingToUndo = errors.New("game: nothing to undo")
	// ErrGameOver indicates a move after every bridge is crossed.
	ErrGameOver = errors.New("game: every bridge already crossed")
)
