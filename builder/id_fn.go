// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the land mass created at a zero-based construction index.
// It must be pure: the same index always yields the same ID, so a fixture
// rebuilt in another test has the same bridges between the same nodes.
type IDFn func(idx int) string

// DefaultIDFn names land masses by their index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn names land masses with letters, as puzzle maps label
// islands: 0→"A", 25→"Z", 26→"AA". Konigsberg() built with it yields A
// (Kneiphof), B (North Bank), C (South Bank) and D (Lomse), matching the
// letters of a drawn gridgraph map.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn(%d): negative index", idx))
	}
	var letters []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		letters = append(letters, byte('A'+i%26))
	}
	for l, r := 0, len(letters)-1; l < r; l, r = l+1, r-1 {
		letters[l], letters[r] = letters[r], letters[l]
	}

	return string(letters)
}

// SymbolNumberIDFn returns prefix followed by the index, e.g. "isle0",
// "isle1" for prefix "isle". Useful when a fixture joins several
// sub-puzzles and letter IDs would collide.
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberIDFn(%d): negative index", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
