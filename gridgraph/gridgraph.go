// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of Water, Land and Deck values. It deep-copies the input.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, conn Connectivity) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v != Water && v != Land && v != Deck {
				return nil, fmt.Errorf("gridgraph: (%d,%d)=%d: %w", x, y, v, ErrBadCell)
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            conn,
		names:           make(map[int]rune),
		neighborOffsets: offsets,
	}, nil
}

// ParseMap reads a text map (see package documentation). Blank leading and
// trailing lines are ignored; shorter rows are padded with water.
func ParseMap(text string, conn Connectivity) (*GridGraph, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	w := 0
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \r")
		if n := utf8.RuneCountInString(lines[i]); n > w {
			w = n
		}
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, len(lines))
	names := make(map[int]rune)
	for y, l := range lines {
		values[y] = make([]int, w)
		x := 0
		for _, r := range l {
			switch {
			case r == '~' || r == '.' || r == ' ':
				values[y][x] = Water
			case r == '#':
				values[y][x] = Land
			case r >= 'A' && r <= 'Z':
				values[y][x] = Land
				names[y*w+x] = r
			case r == '=' || r == '|' || r == '+':
				values[y][x] = Deck
			default:
				return nil, fmt.Errorf("gridgraph: (%d,%d)=%q: %w", x, y, r, ErrBadCell)
			}
			x++
		}
	}

	gg, err := NewGridGraph(values, conn)
	if err != nil {
		return nil, err
	}
	gg.names = names

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the land neighbor offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) value(idx int) int {
	x, y := gg.Coordinate(idx)
	return gg.CellValues[y][x]
}
