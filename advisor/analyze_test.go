// SPDX-License-Identifier: MIT
package advisor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/konigsberg/advisor"
	"github.com/katalvlaran/konigsberg/builder"
	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/euler"
)

// AdvisorSuite runs Analyze against the classic fixtures.
type AdvisorSuite struct {
	suite.Suite
	konigsberg *core.Graph
}

func (s *AdvisorSuite) SetupTest() {
	s.konigsberg = builder.MustBuild([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Konigsberg())
}

func (s *AdvisorSuite) TestKonigsberg() {
	a := advisor.Analyze(s.konigsberg)
	s.False(a.Solvable)
	s.Equal(4, a.OddDegreeCount)
	s.Equal([]string{"A", "B", "C", "D"}, a.OddDegreeNodes)
	s.Contains(a.Suggestion, "Kneiphof, North Bank, South Bank, Lomse")

	// A-B already share a bridge; one removal of that same bridge follows.
	s.Require().Len(a.Modifications, 2)
	add, rm := a.Modifications[0], a.Modifications[1]
	s.Equal(advisor.Add, add.Action)
	s.Equal([]string{"A", "B"}, []string{add.From, add.To})
	s.Contains(add.Reason, "another bridge")
	s.Equal(advisor.Remove, rm.Action)
	s.Equal("e1", rm.EdgeID)
	s.Equal([]string{"A", "B"}, []string{rm.From, rm.To})
}

func (s *AdvisorSuite) TestApplyFixesKonigsberg() {
	for _, m := range advisor.Analyze(s.konigsberg).Modifications {
		next, err := advisor.Apply(s.konigsberg, m)
		s.Require().NoError(err)
		c := euler.Classify(next)
		s.True(c.Exists, "%s %s-%s", m.Action, m.From, m.To)
		s.Equal(euler.Path, c.Kind)
		s.Equal([]string{"C", "D"}, c.StartCandidates)
	}
	s.Equal(7, s.konigsberg.EdgeCount(), "Apply never mutates its input")
}

func TestAdvisorSuite(t *testing.T) {
	suite.Run(t, new(AdvisorSuite))
}

func TestAnalyze_Solvable(t *testing.T) {
	for _, c := range []builder.Constructor{builder.Cycle(5), builder.Path(3), builder.Complete(5)} {
		a := advisor.Analyze(builder.MustBuild(nil, c))
		assert.True(t, a.Solvable)
		assert.Empty(t, a.Modifications)
		assert.Empty(t, a.Suggestion)
	}
}

func TestAnalyze_UnlinkedPairs(t *testing.T) {
	// Star(5): hub Center plus four leaves "1".."4", leaves never touch.
	a := advisor.Analyze(builder.MustBuild(nil, builder.Star(5)))
	require.False(t, a.Solvable)
	assert.Equal(t, []string{"1", "2", "3", "4"}, a.OddDegreeNodes)
	require.NotEmpty(t, a.Modifications)
	first := a.Modifications[0]
	assert.Equal(t, advisor.Add, first.Action)
	assert.Equal(t, []string{"1", "2"}, []string{first.From, first.To})
	assert.True(t, strings.HasPrefix(first.Reason, "Build a bridge"))
	for _, m := range a.Modifications {
		assert.Equal(t, advisor.Add, m.Action, "leaves have a single bridge, nothing to remove")
	}
}

func TestAnalyze_Cap(t *testing.T) {
	// K8: eight odd nodes, three pairing rounds plus removals, capped.
	a := advisor.Analyze(builder.MustBuild(nil, builder.Complete(8)))
	assert.Equal(t, 8, a.OddDegreeCount)
	require.Len(t, a.Modifications, advisor.MaxModifications)
	for _, m := range a.Modifications {
		assert.Equal(t, advisor.Add, m.Action, "adds are listed first")
	}
}

// TestAnalyze_AddLowersOddCountByTwo checks every Add on every unsolvable fixture.
func TestAnalyze_AddLowersOddCountByTwo(t *testing.T) {
	var cons []builder.Constructor
	for n := 4; n <= 10; n++ {
		cons = append(cons, builder.Complete(n), builder.Star(n), builder.Wheel(n))
	}
	cons = append(cons, builder.Konigsberg())

	for i, c := range cons {
		g := builder.MustBuild(nil, c)
		a := advisor.Analyze(g)
		if a.OddDegreeCount <= 2 {
			continue
		}
		assert.LessOrEqual(t, len(a.Modifications), advisor.MaxModifications)
		assert.NotEmpty(t, a.Modifications, "fixture %d", i)
		for _, m := range a.Modifications {
			if m.Action != advisor.Add {
				continue
			}
			next, err := advisor.Apply(g, m)
			require.NoError(t, err)
			assert.Equal(t, a.OddDegreeCount-2, len(euler.Classify(next).OddDegreeNodes), "fixture %d add %s-%s", i, m.From, m.To)
		}
	}
}

func TestAnalyze_Disconnected(t *testing.T) {
	// Two triangles: parity is fine, the groups are apart.
	g := builder.MustBuild(nil, builder.Disjoint(builder.Cycle(3), builder.Cycle(3)))
	a := advisor.Analyze(g)
	require.False(t, a.Solvable)
	assert.Zero(t, a.OddDegreeCount)
	assert.Contains(t, a.Suggestion, "2 separate groups")
	require.Len(t, a.Modifications, 1)
	m := a.Modifications[0]
	assert.Equal(t, advisor.Add, m.Action)
	assert.Equal(t, []string{"g0.0", "g1.0"}, []string{m.From, m.To})

	next, err := advisor.Apply(g, m)
	require.NoError(t, err)
	assert.True(t, euler.Classify(next).Exists)
}

func TestAnalyze_DisconnectedOddGroupFirst(t *testing.T) {
	// Cycle, then a path: the path's odd end anchors the chain.
	g := builder.MustBuild(nil, builder.Disjoint(builder.Cycle(3), builder.Path(3), builder.Cycle(4)))
	a := advisor.Analyze(g)
	require.False(t, a.Solvable)
	require.Len(t, a.Modifications, 2)
	assert.Equal(t, "g1.0", a.Modifications[0].From)

	next := g
	var err error
	for _, m := range a.Modifications {
		next, err = advisor.Apply(next, m)
		require.NoError(t, err)
	}
	c := euler.Classify(next)
	assert.True(t, c.Exists)
	assert.True(t, c.Connected)
}
