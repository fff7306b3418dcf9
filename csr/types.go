// Package csr: core Matrix type and read-only accessors.
// Matrix is a frozen, row-major compressed-sparse representation: three
// parallel slices plus a shape pair. Every accessor that exposes internal
// storage returns a fresh copy, preserving immutability.

package csr

import (
	"fmt"
	"strings"
)

// Matrix is an immutable Compressed-Sparse-Row matrix of float64 values.
//
// rowPtr has length rows+1; for row r the stored entries occupy positions
// rowPtr[r]..rowPtr[r+1] of colInd and values, with colInd strictly
// increasing inside each row. rowPtr[rows] equals the stored-entry count.
type Matrix struct {
	rowPtr []int     // prefix-sum row delimiters, length == rows+1
	colInd []int     // stored column positions, length == nnz
	values []float64 // stored values, aligned with colInd
	rows   int       // number of rows, >= 0
	cols   int       // number of columns, >= 0
}

// Shape returns the (rows, cols) pair fixed at construction.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols // return stored column count
}

// NNZ returns the number of stored (explicit) entries. Stored entries are
// not necessarily non-zero in value: an explicitly stored 0.0 counts.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return len(m.values)
}

// Values returns the stored values in storage order (row-major, column
// ascending within each row). The result is a fresh copy; mutating it does
// not affect the matrix. Length always equals NNZ().
// Complexity: O(nnz) time and memory.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)

	return out
}

// RowPtr returns a copy of the row pointer (length Rows()+1).
// Complexity: O(rows).
func (m *Matrix) RowPtr() []int {
	out := make([]int, len(m.rowPtr))
	copy(out, m.rowPtr)

	return out
}

// ColIndices returns a copy of the stored column indices in storage order.
// Complexity: O(nnz).
func (m *Matrix) ColIndices() []int {
	out := make([]int, len(m.colInd))
	copy(out, m.colInd)

	return out
}

// Clone returns a deep copy of the matrix. Since Matrix is immutable the
// copy is observationally identical to the receiver; it shares no storage.
// Complexity: O(rows + nnz) time and memory.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		rowPtr: make([]int, len(m.rowPtr)),
		colInd: make([]int, len(m.colInd)),
		values: make([]float64, len(m.values)),
		rows:   m.rows,
		cols:   m.cols,
	}
	copy(c.rowPtr, m.rowPtr)
	copy(c.colInd, m.colInd)
	copy(c.values, m.values)

	return c
}

// String implements fmt.Stringer, rendering the matrix densely with implicit
// zeros printed as 0. Intended for debugging small matrices.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ { // iterate over rows
		b.WriteByte('[') // open row
		next := m.rowPtr[r]
		end := m.rowPtr[r+1]
		for c := 0; c < m.cols; c++ { // iterate over columns
			if c > 0 {
				b.WriteString(", ") // separate values with comma
			}
			if next < end && m.colInd[next] == c {
				fmt.Fprintf(&b, "%g", m.values[next])
				next++
			} else {
				b.WriteByte('0') // implicit entry
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
