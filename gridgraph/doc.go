// SPDX-License-Identifier: MIT

// Package gridgraph turns a drawn map of islands and bridges into a puzzle
// graph.
//
// What:
//
//   - GridGraph wraps a rectangular grid of cells: Water, Land or Deck
//     (bridge planks).
//   - Islands are the connected regions of Land cells (Conn4 or Conn8).
//   - A bridge is a Conn4-connected run of Deck cells; it must touch
//     exactly two distinct islands.
//   - ToPuzzle emits one core.Node per island and one core.Edge per
//     bridge, so the map can be played like any other level.
//   - ExpandIsland and BuildCost find the fewest water cells to convert to
//     join two islands (0–1 BFS), which prices the advisor's "build a
//     bridge" suggestions on a map.
//
// Text maps (ParseMap):
//
//	~ . or space  water
//	#             land
//	A..Z          land, and names its island
//	= | +         bridge deck
//
// Islands named by a letter take it as node ID; the others become "I1",
// "I2", ... in discovery order. Discovery order is row-major by first cell,
// so IDs and edge order are deterministic.
//
// Complexity:
//
//   - Islands, Bridges, ToPuzzle: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ExpandIsland, BuildCost:     O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a value or rune with no meaning on the map.
//   - ErrDanglingBridge: a deck run not touching exactly two islands.
//   - ErrComponentIndex: requested island index out of range.
//   - ErrUnknownIsland: BuildCost with an ID no island carries.
//   - ErrNoPath: no conversion path exists between two islands.
package gridgraph
