// SPDX-License-Identifier: MIT
// Package csr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csr
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. The package never panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow easy
// grepping across logs. When positional context is essential (which invariant
// broke, at which index), wrap with fmt.Errorf("ctx: %w", ErrX) at the
// boundary — callers still match via errors.Is.
//
// ERROR FAMILIES:
//   - construction (New/Zeros): ErrBadShape and the five structural
//     sentinels below; never returned after a matrix has been built.
//   - lookup (At/Row): ErrOutOfRange only.

var (
	// ErrBadShape is returned when a requested shape has a negative
	// dimension. Zero dimensions are valid (degenerate, first-class shapes).
	ErrBadShape = errors.New("csr: negative dimension in shape")

	// ErrRowPtrLength indicates len(rowPtr) != rows+1.
	ErrRowPtrLength = errors.New("csr: row pointer length must be rows+1")

	// ErrRowPtrHead indicates rowPtr[0] != 0.
	ErrRowPtrHead = errors.New("csr: row pointer must start at 0")

	// ErrRowPtrOrder indicates the row pointer decreases somewhere.
	ErrRowPtrOrder = errors.New("csr: row pointer not monotonically non-decreasing")

	// ErrLengthMismatch indicates len(colInd) or len(values) disagrees with
	// the stored-entry count rowPtr[rows].
	ErrLengthMismatch = errors.New("csr: column/value length disagrees with row pointer")

	// ErrColOutOfRange indicates a stored column index outside [0, cols).
	ErrColOutOfRange = errors.New("csr: stored column index out of range")

	// ErrColOrder indicates a row whose stored columns are not strictly
	// increasing (unsorted or duplicated entries).
	ErrColOrder = errors.New("csr: row columns not strictly increasing")

	// ErrOutOfRange indicates a lookup coordinate outside the matrix shape.
	// Negative indices are invalid here — there is no Python-style
	// wraparound; this divergence is deliberate and tested.
	ErrOutOfRange = errors.New("csr: index out of range")
)
