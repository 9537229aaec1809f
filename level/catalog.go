// SPDX-License-Identifier: MIT

package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/konigsberg/core"
	"github.com/katalvlaran/konigsberg/gridgraph"
)

//go:embed classic.yaml
var classicYAML []byte

// Catalog is an ordered, read-only set of levels.
type Catalog struct {
	order  []string
	levels map[string]Definition
}

// Classic returns the built-in catalogue. It panics if the embedded
// document is broken, which the package tests rule out.
func Classic() *Catalog {
	c, err := Parse(bytes.NewReader(classicYAML))
	if err != nil {
		panic(fmt.Sprintf("level: embedded catalogue: %v", err))
	}

	return c
}

// Load reads a catalogue from a YAML file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: Load(%q): %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("level: Load(%q): %w", path, err)
	}

	return c, nil
}

// Parse decodes, validates and test-builds a catalogue.
func Parse(r io.Reader) (*Catalog, error) {
	var doc File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLevel)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLevel, describeValidation(err))
	}

	c := &Catalog{levels: make(map[string]Definition, len(doc.Levels))}
	for _, d := range doc.Levels {
		if _, dup := c.levels[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLevel, d.ID)
		}
		if _, err := d.Graph(); err != nil {
			return nil, err
		}
		c.levels[d.ID] = d
		c.order = append(c.order, d.ID)
	}

	return c, nil
}

// IDs returns level IDs in catalogue order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of levels.
func (c *Catalog) Len() int { return len(c.order) }

// Level returns the definition with the given ID.
func (c *Catalog) Level(id string) (Definition, error) {
	d, ok := c.levels[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}

	return d, nil
}

// Graph builds a fresh puzzle graph with every bridge uncrossed.
func (d Definition) Graph() (*core.Graph, error) {
	if d.Map != "" {
		return d.mapGraph()
	}
	var opts []core.GraphOption
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, n := range d.Nodes {
		if err := g.AddNode(core.Node{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y}); err != nil {
			return nil, fmt.Errorf("%w: level %q: %w", ErrInvalidLevel, d.ID, err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(core.Edge{ID: e.ID, From: e.From, To: e.To}); err != nil {
			return nil, fmt.Errorf("%w: level %q: %w", ErrInvalidLevel, d.ID, err)
		}
	}

	return g, nil
}

// Grid parses the drawn map of a Map level.
func (d Definition) Grid() (*gridgraph.GridGraph, error) {
	if d.Map == "" {
		return nil, fmt.Errorf("%w: level %q has no map", ErrInvalidLevel, d.ID)
	}
	gg, err := gridgraph.ParseMap(d.Map, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("%w: level %q: %w", ErrInvalidLevel, d.ID, err)
	}

	return gg, nil
}

// mapGraph converts the drawn map and applies Labels.
func (d Definition) mapGraph() (*core.Graph, error) {
	gg, err := d.Grid()
	if err != nil {
		return nil, err
	}
	drawn, err := gg.ToPuzzle()
	if err != nil {
		return nil, fmt.Errorf("%w: level %q: %w", ErrInvalidLevel, d.ID, err)
	}
	for id := range d.Labels {
		if !drawn.HasNode(id) {
			return nil, fmt.Errorf("%w: level %q: label for %q: %w", ErrInvalidLevel, d.ID, id, core.ErrNodeNotFound)
		}
	}

	g := core.NewGraph()
	for _, n := range drawn.Nodes() {
		if l, ok := d.Labels[n.ID]; ok {
			n.Label = l
		}
		if err = g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range drawn.Edges() {
		if err = g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// describeValidation flattens validator field errors into one line.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		case "required_without":
			msgs = append(msgs, fmt.Sprintf("%s is required unless %s is set", fe.Namespace(), fe.Param()))
		case "excluded_with":
			msgs = append(msgs, fmt.Sprintf("%s cannot be combined with %s", fe.Namespace(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s entries", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Namespace(), fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
