// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// helpers.go: shared insertion helpers for constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the constructor name and keep
//     ErrConstructFailed in the chain next to the core sentinel.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/konigsberg/core"
)

// edgeIDPrefix prefixes generated edge IDs ("e1", "e2", ...).
const edgeIDPrefix = "e"

// addNodes inserts cfg.idFn(0..n-1) and returns the IDs in index order.
// Complexity: O(n).
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id, err := addNode(method, g, cfg, cfg.idFn(i))
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}

// addNode inserts one node, labelled through cfg.labelFn when set.
func addNode(method string, g *core.Graph, cfg builderConfig, id string) (string, error) {
	n := core.Node{ID: id}
	if cfg.labelFn != nil {
		n.Label = cfg.labelFn(id)
	}
	if err := g.AddNode(n); err != nil {
		return "", wrapNode(method, id, err)
	}

	return id, nil
}

func wrapNode(method, id string, err error) error {
	return fmt.Errorf("%s: AddNode(%s): %w: %w", method, id, ErrConstructFailed, err)
}

// addEdge appends from–to with the next sequential edge ID.
func addEdge(method string, g *core.Graph, from, to string) error {
	id := edgeIDPrefix + strconv.Itoa(g.EdgeCount()+1)
	if err := g.AddEdge(core.Edge{ID: id, From: from, To: to}); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, from, to, ErrConstructFailed, err)
	}

	return nil
}

// tooFew formats the uniform size-validation error.
func tooFew(method string, n, minN int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
}
