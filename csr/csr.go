// SPDX-License-Identifier: MIT

// Package csr: construction and structural validation.
//
// New accepts the four raw CSR fields and checks the structural invariants
// before any Matrix becomes observable:
//  1. len(rowPtr) == rows+1,
//  2. rowPtr[0] == 0 and rowPtr non-decreasing,
//  3. len(colInd) == len(values) == rowPtr[rows],
//  4. every stored column in [0, cols),
//  5. columns strictly increasing within each row.
//
// Invariants 1–3 are cheap (O(rows)) and always enforced: they are what
// keeps lookup slicing inside storage bounds. Invariants 4–5 cost O(nnz)
// and can be skipped via WithoutValidation for pre-validated arrays.
// Violations wrap the matching sentinel with the offending index, so
// callers can both match via errors.Is and read the position from the
// message. No partial instance is observable on failure.

package csr

import "fmt"

// New builds a Matrix from raw CSR arrays.
// Stage 1 (Validate): shape sign, row-pointer shape, length agreement,
// then (unless disabled) the O(nnz) column scan.
// Stage 2 (Prepare): deep-copy the caller's slices — the matrix owns its
// storage and freezes it, so later caller-side mutation cannot leak in.
// Stage 3 (Finalize): return the frozen instance.
// Complexity: O(rows + nnz) time and memory.
func New(rowPtr, colInd []int, values []float64, rows, cols int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if err := validateStructure(rowPtr, colInd, values, rows, cols, o.validate); err != nil {
		return nil, err
	}

	m := &Matrix{
		rowPtr: make([]int, len(rowPtr)),
		colInd: make([]int, len(colInd)),
		values: make([]float64, len(values)),
		rows:   rows,
		cols:   cols,
	}
	copy(m.rowPtr, rowPtr)
	copy(m.colInd, colInd)
	copy(m.values, values)

	return m, nil
}

// Zeros builds a matrix of the given shape with no stored entries: the row
// pointer is rows+1 zeros and the column/value slices are empty. Degenerate
// shapes (0,0), (rows,0) and (0,cols) are first-class valid matrices.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Finalize): allocate the trivially-valid structure.
// Complexity: O(rows) time and memory.
func Zeros(rows, cols int) (*Matrix, error) {
	// Validate dimensions; zero is legal, negative is not.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix{
		rowPtr: make([]int, rows+1), // all zeros: every row is empty
		colInd: []int{},
		values: []float64{},
		rows:   rows,
		cols:   cols,
	}, nil
}

// validateStructure checks the CSR invariants against the raw arrays.
// The scan reports the first violation with its position; it never reads
// past rowPtr[rows] once the length agreement has been established.
func validateStructure(rowPtr, colInd []int, values []float64, rows, cols int, full bool) error {
	// Shape must be non-negative.
	if rows < 0 || cols < 0 {
		return fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	// Invariant 1: row pointer covers every row plus the terminal slot.
	if len(rowPtr) != rows+1 {
		return fmt.Errorf("row_ptr has length %d, want %d: %w", len(rowPtr), rows+1, ErrRowPtrLength)
	}

	// Invariant 2: anchored at zero, never decreasing.
	if rowPtr[0] != 0 {
		return fmt.Errorf("row_ptr[0] = %d: %w", rowPtr[0], ErrRowPtrHead)
	}
	for i := 1; i <= rows; i++ {
		if rowPtr[i] < rowPtr[i-1] {
			return fmt.Errorf("row_ptr not monotonic at index %d (%d < %d): %w",
				i, rowPtr[i], rowPtr[i-1], ErrRowPtrOrder)
		}
	}

	// Invariant 3: both parallel arrays agree with the stored-entry count.
	nnz := rowPtr[rows]
	if len(colInd) != nnz {
		return fmt.Errorf("col_indices has length %d, want nnz=%d: %w", len(colInd), nnz, ErrLengthMismatch)
	}
	if len(values) != nnz {
		return fmt.Errorf("values has length %d, want nnz=%d: %w", len(values), nnz, ErrLengthMismatch)
	}

	if !full {
		return nil // trusted input: skip the per-entry scan
	}

	// Invariants 4 and 5 in a single linear pass over the stored entries.
	for r := 0; r < rows; r++ {
		for k := rowPtr[r]; k < rowPtr[r+1]; k++ {
			c := colInd[k]
			if c < 0 || c >= cols {
				return fmt.Errorf("column index %d out of bounds for %d columns at row %d: %w",
					c, cols, r, ErrColOutOfRange)
			}
			// Strict ascent within the row: no duplicates, no disorder.
			if k > rowPtr[r] && c <= colInd[k-1] {
				return fmt.Errorf("columns not strictly increasing at row %d, offset %d (%d after %d): %w",
					r, k, c, colInd[k-1], ErrColOrder)
			}
		}
	}

	return nil
}
