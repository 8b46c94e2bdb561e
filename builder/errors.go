// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// errors.go: sentinel errors. Callers branch with errors.Is; context is
// attached with %w at the call site.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, partition
// size) below the minimum of the requested family.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates BuildGraph could not run a constructor
// (for example a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
