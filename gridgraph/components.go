// SPDX-License-Identifier: MIT

package gridgraph

// Islands finds all contiguous regions of Land cells under gg.Conn.
// Islands are ordered by their first cell in row-major order; each island
// lists its cell indices in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Islands() [][]int {
	return gg.components(Land, gg.neighborOffsets)
}

// components groups cells equal to kind, walking offsets.
func (gg *GridGraph) components(kind int, offsets [][2]int) [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] != kind {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] != kind {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// islandOf maps every land cell to its island index; other cells map to -1.
func (gg *GridGraph) islandOf(islands [][]int) []int {
	owner := make([]int, gg.Width*gg.Height)
	for i := range owner {
		owner[i] = -1
	}
	for k, isl := range islands {
		for _, c := range isl {
			owner[c] = k
		}
	}

	return owner
}
