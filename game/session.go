// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/konigsberg/core"
)

// Move is one crossed bridge.
type Move struct {
	Edge string
	From string
	To   string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLevelID tags log lines with the level's catalogue ID.
func WithLevelID(id string) Option {
	return func(s *Session) { s.levelID = id }
}

// Session is one game on one level.
type Session struct {
	mu sync.Mutex

	id      string
	levelID string
	level   *core.Graph
	log     *zap.Logger

	state    *core.Graph
	position string
	moves    []Move
}

// NewSession starts a game on level. The level is reset, so crossed flags
// on it do not carry over; the caller's graph is never modified.
func NewSession(level *core.Graph, opts ...Option) *Session {
	s := &Session{
		id:    uuid.NewString(),
		level: level.Reset(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session", s.id), zap.String("level", s.levelID))
	s.state = s.level.Clone()

	return s
}

// ID returns the random session identifier.
func (s *Session) ID() string { return s.id }

// Start places the player on node.
func (s *Session) Start(node string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position != "" {
		return fmt.Errorf("game: Start(%q): %w", node, ErrAlreadyStarted)
	}
	if !s.level.HasNode(node) {
		return fmt.Errorf("game: Start(%q): %w", node, ErrUnknownNode)
	}
	s.position = node
	s.log.Info("game started", zap.String("node", node), zap.Int("bridges", s.level.EdgeCount()))

	return nil
}

// Move crosses the first uncrossed bridge from the current position to to.
func (s *Session) Move(to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.movable(); err != nil {
		return fmt.Errorf("game: Move(%q): %w", to, err)
	}
	if !s.level.HasNode(to) {
		return fmt.Errorf("game: Move(%q): %w", to, ErrUnknownNode)
	}
	e, ok := s.state.EdgeBetween(s.position, to)
	if !ok {
		return fmt.Errorf("game: Move(%s→%s): %w", s.position, to, ErrNoBridge)
	}

	return s.cross(e, to)
}

// MoveAlong crosses bridge edgeID, which must be uncrossed and touch the
// current position.
func (s *Session) MoveAlong(edgeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.movable(); err != nil {
		return fmt.Errorf("game: MoveAlong(%q): %w", edgeID, err)
	}
	e, ok := s.state.Edge(edgeID)
	if !ok || e.Crossed || !e.Touches(s.position) {
		return fmt.Errorf("game: MoveAlong(%q) from %s: %w", edgeID, s.position, ErrNoBridge)
	}

	return s.cross(e, e.Other(s.position))
}

// movable checks the preconditions shared by Move and MoveAlong.
// Caller holds s.mu.
func (s *Session) movable() error {
	if s.position == "" {
		return ErrNotStarted
	}
	if s.state.RemainingEdgeCount() == 0 {
		return ErrGameOver
	}

	return nil
}

// cross replaces the snapshot. Caller holds s.mu.
func (s *Session) cross(e core.Edge, to string) error {
	next, err := s.state.Cross(e.ID)
	if err != nil {
		return fmt.Errorf("game: cross %s: %w", e.ID, err)
	}
	m := Move{Edge: e.ID, From: s.position, To: to}
	s.state = next
	s.position = to
	s.moves = append(s.moves, m)

	left := next.RemainingEdgeCount()
	s.log.Debug("bridge crossed",
		zap.String("edge", m.Edge), zap.String("from", m.From), zap.String("to", m.To), zap.Int("remaining", left))
	switch {
	case left == 0:
		s.log.Info("level solved", zap.Int("moves", len(s.moves)))
	case len(next.AvailableEdges(to)) == 0:
		s.log.Info("player stuck", zap.String("node", to), zap.Int("remaining", left))
	}

	return nil
}

// Undo takes back the last move.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.moves) == 0 {
		return fmt.Errorf("game: Undo: %w", ErrNothingToUndo)
	}
	keep := s.moves[:len(s.moves)-1]
	state := s.level.Clone()
	var err error
	for _, m := range keep {
		if state, err = state.Cross(m.Edge); err != nil {
			return fmt.Errorf("game: Undo: replay %s: %w", m.Edge, err)
		}
	}
	undone := s.moves[len(s.moves)-1]
	s.state = state
	s.position = undone.From
	s.moves = append([]Move(nil), keep...)
	s.log.Debug("move undone", zap.String("edge", undone.Edge), zap.String("node", s.position))

	return nil
}

// Restart drops every move and the start node.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.level.Clone()
	s.position = ""
	s.moves = nil
	s.log.Info("game restarted")
}

// State returns the current snapshot. Treat it as read-only.
func (s *Session) State() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Level returns the canonical, uncrossed level graph.
func (s *Session) Level() *core.Graph { return s.level }

// Position returns the player's node, or "" before Start.
func (s *Session) Position() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// History returns the moves made so far, oldest first.
func (s *Session) History() []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Move(nil), s.moves...)
}

// Trail returns the visited nodes: the start followed by each destination.
func (s *Session) Trail() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.moves) == 0 {
		if s.position == "" {
			return nil
		}
		return []string{s.position}
	}
	out := make([]string, 0, len(s.moves)+1)
	out = append(out, s.moves[0].From)
	for _, m := range s.moves {
		out = append(out, m.To)
	}

	return out
}

// Won reports whether the player has started and every bridge is crossed.
func (s *Session) Won() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position != "" && s.state.RemainingEdgeCount() == 0
}

// Stuck reports whether bridges remain but none leaves the player's node.
func (s *Session) Stuck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position != "" && s.state.RemainingEdgeCount() > 0 && len(s.state.AvailableEdges(s.position)) == 0
}
