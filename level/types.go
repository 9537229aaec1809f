// SPDX-License-Identifier: MIT

package level

import "errors"

// Sentinel errors.
var (
	// ErrInvalidLevel indicates a catalogue that fails decoding, field
	// validation or graph construction.
	ErrInvalidLevel = errors.New("level: invalid level")
	// ErrUnknownLevel indicates a lookup of an ID the catalogue lacks.
	ErrUnknownLevel = errors.New("level: unknown level")
	// ErrDuplicateLevel indicates two levels sharing an ID.
	ErrDuplicateLevel = errors.New("level: duplicate level id")
)

// File is the top-level YAML document.
type File struct {
	Levels []Definition `yaml:"levels" validate:"required,min=1,dive"`
}

// Definition is one level as written in YAML.
type Definition struct {
	ID          string    `yaml:"id" validate:"required"`
	Name        string    `yaml:"name" validate:"required"`
	Description string    `yaml:"description,omitempty"`
	Loops       bool      `yaml:"loops,omitempty"`
	Nodes       []NodeDef `yaml:"nodes" validate:"required_without=Map,dive"`
	Edges       []EdgeDef `yaml:"edges" validate:"dive"`

	// Map is a drawn level (see package gridgraph); it replaces Nodes and
	// Edges. Labels names its islands by ID.
	Map    string            `yaml:"map,omitempty" validate:"excluded_with=Nodes Edges"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// NodeDef is a land mass.
type NodeDef struct {
	ID    string  `yaml:"id" validate:"required"`
	Label string  `yaml:"label,omitempty"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// EdgeDef is a bridge.
type EdgeDef struct {
	ID   string `yaml:"id" validate:"required"`
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
}
