// SPDX-License-Identifier: MIT
package euler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konigsberg/builder"
	"github.com/katalvlaran/konigsberg/core"
)

// build runs constructors with letter IDs ("A", "B", ...).
func build(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, cons...)
	require.NoError(t, err)

	return g
}

// cross marks the edges as crossed, one snapshot at a time.
func cross(t testing.TB, g *core.Graph, ids ...string) *core.Graph {
	t.Helper()
	var err error
	for _, id := range ids {
		g, err = g.Cross(id)
		require.NoError(t, err, "Cross(%s)", id)
	}

	return g
}
