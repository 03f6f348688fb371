// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels and tests check them via
// errors.Is. No algorithm panics on a user-triggered error condition; panics
// are reserved for programmer errors in private helpers.
//
// NOTE ON FATAL VS. NON-FATAL (spec ??4.10/??7):
//   - allocation failure: not reported; mmc falls back to a plain Go
//     allocation when an mmap fails, and no routine calls the die hook.
//   - index violations on low-level primitives: returned as ErrOutOfRange.
//   - dimension mismatch in high-level ops: returned as the sentinels below
//     (ErrDimensionMismatch, ErrNonSquare), so callers can choose to die or
//     recover.
//   - singular-matrix detection: non-fatal; Invert and SolveLeft return a
//     nil result with a nil error.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when requested rows/cols are <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row/column/offset index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Matrix was used where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular names a rank deficiency where full rank was required. No
	// routine returns it: Invert and SolveLeft report a singular input with
	// a nil result and a nil error.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrWindowHasNoParent indicates a window-only operation was attempted
	// on a matrix that is not a window.
	ErrWindowHasNoParent = errors.New("matrix: not a window")

	// ErrOwnedHasLiveWindows indicates Free was called on an owning matrix
	// while windows still reference its storage (spec ??4.9).
	ErrOwnedHasLiveWindows = errors.New("matrix: matrix has live windows")

	// ErrAlreadyFreed indicates a matrix handle was used after Free.
	ErrAlreadyFreed = errors.New("matrix: use after free")

	// ErrBadMagic indicates a file does not start with the GF(2) matrix magic.
	ErrBadMagic = errors.New("matrix: bad file magic")

	// ErrUnsupportedVersion indicates a file format version this build cannot read.
	ErrUnsupportedVersion = errors.New("matrix: unsupported file version")

	// ErrNotImplemented marks an intentionally unsupported combination of
	// parameters (e.g. a malformed permutation).
	ErrNotImplemented = errors.New("matrix: not yet implemented")
)

// matrixErrorf wraps an underlying error with the given tag in "%s: %w"
// form. Nothing in the package calls it; routines return the sentinels
// above unwrapped.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
