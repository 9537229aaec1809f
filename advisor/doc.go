// SPDX-License-Identifier: MIT

// Package advisor explains why a puzzle cannot be solved and proposes up
// to three bridge changes that would fix it.
//
// Parity repairs (more than two odd-degree land masses):
//
//  1. While more than two odd nodes remain in a working set, pair them up
//     scanning pairs in node order. A pair already joined by a bridge is
//     preferred ("add another bridge between them"); otherwise the first
//     pair wins. Each pair becomes one Add suggestion.
//  2. For each of the first two odd nodes with more than one incident
//     bridge, if the first incident bridge leads to another odd node, a
//     Remove suggestion for that bridge is recorded.
//  3. Adds come first; at most three suggestions are returned.
//
// Every Add flips two odd nodes to even, so applying any single Add lowers
// the odd count by exactly two.
//
// Connectivity repairs: a parity-valid graph whose bridges fall into
// separate groups gets Add suggestions chaining the groups together, picking
// odd-degree land masses as endpoints first so the result keeps at most two
// odd nodes.
//
// Analyze reads degrees over every bridge of the graph as given; pass
// g.Uncrossed() to analyze the remaining moves only.
package advisor
