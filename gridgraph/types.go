// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a cell value or map rune outside the legend.
	ErrBadCell = errors.New("gridgraph: unknown cell")
	// ErrDanglingBridge indicates a deck run touching fewer or more than two islands.
	ErrDanglingBridge = errors.New("gridgraph: bridge must join exactly two islands")
	// ErrComponentIndex indicates a requested island index is out of range.
	ErrComponentIndex = errors.New("gridgraph: island index out of range")
	// ErrUnknownIsland indicates an island ID not present on the map.
	ErrUnknownIsland = errors.New("gridgraph: unknown island")
	// ErrNoPath indicates no conversion path exists between two islands.
	ErrNoPath = errors.New("gridgraph: no path between specified islands")
)

// Cell values.
const (
	Water = 0
	Land  = 1
	Deck  = 2
)

// Connectivity selects neighbor connectivity for land: orthogonal (Conn4)
// or including diagonals (Conn8). Decks always use Conn4.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Bridge is one deck run and the islands it joins.
type Bridge struct {
	// Cells are row-major indices of the deck cells, in discovery order.
	Cells []int
	// From and To are island indices (order of Islands), From < To.
	From, To int
}

// GridGraph is an immutable map. CellValues[y][x] holds Water, Land or Deck.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity

	names           map[int]rune // cell index → island letter (ParseMap only)
	neighborOffsets [][2]int
}
