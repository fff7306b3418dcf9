// Package csr: point and row lookup.
// At is the hot path: one bounds check, then binary search over the
// addressed row's column slice. Given a validated structure the search can
// never fail — the only error surface is the bounds check itself.

package csr

import (
	"fmt"
	"sort"
)

// lookupErrorf wraps ErrOutOfRange with the offending coordinate and shape.
func lookupErrorf(method string, row, col, rows, cols int) error {
	return fmt.Errorf("%s(%d,%d): outside %dx%d matrix: %w", method, row, col, rows, cols, ErrOutOfRange)
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check; negative indices are invalid — this
// intentionally diverges from host-language wraparound conventions.
// Stage 2 (Execute): binary-search the row's column slice (valid because
// columns are strictly increasing within a row).
// Stage 3 (Finalize): return the stored value on a hit — NaN, ±Inf and
// signed zero pass through exactly as stored — or the implicit 0.0 on a
// miss. A stored 0.0 and an implicit zero are numerically identical here;
// only Values and the structural accessors tell them apart.
// Complexity: O(log k) time for k entries in the row, O(1) space.
func (m *Matrix) At(row, col int) (float64, error) {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return 0, lookupErrorf("At", row, col, m.rows, m.cols)
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return 0, lookupErrorf("At", row, col, m.rows, m.cols)
	}

	// The row's stored entries live at colInd[rowPtr[row]:rowPtr[row+1]].
	lo := m.rowPtr[row]
	seg := m.colInd[lo:m.rowPtr[row+1]]

	// Binary search for col within the row.
	p := sort.SearchInts(seg, col)
	if p < len(seg) && seg[p] == col {
		return m.values[lo+p], nil // stored entry, returned as-is
	}

	return 0.0, nil // implicit zero: coordinate absent from the structure
}

// Row returns copies of one row's stored column indices and values, in
// column-ascending order. Both slices have the same length (possibly zero);
// mutating them does not affect the matrix.
// Stage 1 (Validate): row bounds check.
// Stage 2 (Execute): copy the row's slice out of storage.
// Complexity: O(k) time and memory for k entries in the row.
func (m *Matrix) Row(row int) (cols []int, vals []float64, err error) {
	if row < 0 || row >= m.rows {
		return nil, nil, lookupErrorf("Row", row, 0, m.rows, m.cols)
	}

	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	cols = make([]int, hi-lo)
	vals = make([]float64, hi-lo)
	copy(cols, m.colInd[lo:hi])
	copy(vals, m.values[lo:hi])

	return cols, vals, nil
}
