// SPDX-License-Identifier: MIT
package game_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/konigsberg/builder"
	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/game"
	"github.com/katalvlaran/konigsberg/hint"
)

// SessionSuite plays the four-island path A-B-C-D.
type SessionSuite struct {
	suite.Suite
	level *core.Graph
	logs  *observer.ObservedLogs
	s     *game.Session
}

func (st *SessionSuite) SetupTest() {
	st.level = builder.MustBuild([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	obs, logs := observer.New(zapcore.DebugLevel)
	st.logs = logs
	st.s = game.NewSession(st.level, game.WithLogger(zap.New(obs)), game.WithLevelID("stroll"))
}

func (st *SessionSuite) TestHappyPath() {
	st.Require().NoError(st.s.Start("A"))
	st.Require().NoError(st.s.Move("B"))
	st.Require().NoError(st.s.MoveAlong("e2"))
	st.False(st.s.Won())
	st.Require().NoError(st.s.Move("D"))

	st.True(st.s.Won())
	st.False(st.s.Stuck())
	st.Equal("D", st.s.Position())
	st.Equal([]string{"A", "B", "C", "D"}, st.s.Trail())
	st.Equal([]game.Move{
		{Edge: "e1", From: "A", To: "B"},
		{Edge: "e2", From: "B", To: "C"},
		{Edge: "e3", From: "C", To: "D"},
	}, st.s.History())
	st.Equal(3, st.level.RemainingEdgeCount(), "level untouched")

	st.ErrorIs(st.s.Move("C"), game.ErrGameOver)
	st.Equal(1, st.logs.FilterMessage("level solved").Len())
	st.Equal(3, st.logs.FilterMessage("bridge crossed").Len())
	entry := st.logs.FilterMessage("game started").All()[0]
	st.Equal("stroll", entry.ContextMap()["level"])
	st.Equal(st.s.ID(), entry.ContextMap()["session"])
}

func (st *SessionSuite) TestErrors() {
	st.ErrorIs(st.s.Move("B"), game.ErrNotStarted)
	st.ErrorIs(st.s.Undo(), game.ErrNothingToUndo)
	st.ErrorIs(st.s.Start("Z"), game.ErrUnknownNode)

	st.Require().NoError(st.s.Start("B"))
	st.ErrorIs(st.s.Start("A"), game.ErrAlreadyStarted)
	st.ErrorIs(st.s.Move("D"), game.ErrNoBridge)
	st.ErrorIs(st.s.Move("Z"), game.ErrUnknownNode)
	st.ErrorIs(st.s.MoveAlong("e3"), game.ErrNoBridge, "e3 does not touch B")
	st.ErrorIs(st.s.MoveAlong("nope"), game.ErrNoBridge)

	st.Require().NoError(st.s.Move("A"))
	st.ErrorIs(st.s.Move("B"), game.ErrNoBridge, "e1 already crossed")
	st.True(st.s.Stuck())
	st.Equal(1, st.logs.FilterMessage("player stuck").Len())
}

func (st *SessionSuite) TestUndoAndRestart() {
	st.Require().NoError(st.s.Start("B"))
	st.Require().NoError(st.s.Move("A"))
	stuck := st.s.State()
	st.Require().True(st.s.Stuck())

	st.Require().NoError(st.s.Undo())
	st.Equal("B", st.s.Position())
	st.Empty(st.s.History())
	st.Equal(3, st.s.State().RemainingEdgeCount())
	st.Equal(2, stuck.RemainingEdgeCount(), "old snapshot unchanged")

	st.Require().NoError(st.s.Move("C"))
	st.Require().NoError(st.s.Move("D"))
	st.Require().NoError(st.s.Undo())
	st.Equal([]string{"B", "C"}, st.s.Trail())
	st.Equal(2, st.s.State().RemainingEdgeCount())

	st.s.Restart()
	st.Equal("", st.s.Position())
	st.Nil(st.s.Trail())
	st.Equal(3, st.s.State().RemainingEdgeCount())
	st.NoError(st.s.Start("A"))
}

func (st *SessionSuite) TestAssistance() {
	h, ok := st.s.Hint()
	st.Require().True(ok)
	st.Equal(hint.Start, h.Kind)
	st.Equal("A", h.Node)

	steps, ok := st.s.Solution()
	st.Require().True(ok)
	st.Len(steps, 4)
	st.Equal("Start at A", steps[0].Description)

	st.Require().NoError(st.s.Start("B"))
	_, ok = st.s.Solution()
	st.False(ok, "B is not an end of the remaining path")
	st.False(st.s.Advice().Solvable)

	st.Require().NoError(st.s.Move("A"))
	_, ok = st.s.Hint()
	st.False(ok)
	a := st.s.Advice()
	st.False(a.Solvable, "B-C-D is walkable, but not from A")
	st.Empty(a.Modifications)
	st.Contains(a.Suggestion, "not starting from A")

	st.s.Restart()
	st.True(st.s.Advice().Solvable, "not started")
	st.Require().NoError(st.s.Start("A"))
	st.True(st.s.Advice().Solvable)
	st.Require().NoError(st.s.Move("B"))
	st.True(st.s.Advice().Solvable, "B is an end of B-C-D")
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestNewSession_ResetsLevel(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(3))
	crossed, err := g.Cross("e1")
	require.NoError(t, err)

	s := game.NewSession(crossed)
	assert.Equal(t, 3, s.State().RemainingEdgeCount())
	assert.True(t, crossed.Edges()[0].Crossed, "caller graph untouched")
	assert.NotEmpty(t, s.ID())
	assert.NotEqual(t, s.ID(), game.NewSession(g).ID())
}

func TestKonigsbergIsNeverWon(t *testing.T) {
	s := game.NewSession(builder.MustBuild([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Konigsberg()))
	_, ok := s.Hint()
	assert.False(t, ok)
	_, ok = s.Solution()
	assert.False(t, ok)
	a := s.Advice()
	assert.False(t, a.Solvable)
	assert.Equal(t, 4, a.OddDegreeCount)
}

// TestSharedLevel plays the same canonical level in many sessions at once.
func TestSharedLevel(t *testing.T) {
	level := builder.MustBuild([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3))
	const players = 32

	var wg sync.WaitGroup
	errs := make(chan error, players)
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := game.NewSession(level)
			for _, step := range []func() error{
				func() error { return s.Start("A") },
				func() error { return s.Move("B") },
				func() error { return s.Move("C") },
				func() error { return s.Move("A") },
			} {
				if err := step(); err != nil {
					errs <- err
					return
				}
			}
			if !s.Won() {
				errs <- game.ErrNoBridge
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, 3, level.RemainingEdgeCount())
}
