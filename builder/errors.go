// SPDX-License-Identifier: MIT
// Package: konigsberg/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not insert its
// nodes or edges (core rejected them) or was nil.
var ErrConstructFailed = errors.New("builder: construction failed")
