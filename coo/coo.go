// Package coo: triplet accumulation and CSR compilation.

package coo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sprsmat/csr"
)

// Sentinel errors for coo operations.
var (
	// ErrBadShape indicates a negative builder dimension.
	ErrBadShape = errors.New("coo: negative dimension in shape")
	// ErrOutOfRange indicates a triplet coordinate outside the builder shape.
	ErrOutOfRange = errors.New("coo: index out of range")
)

// entry is one accumulated triplet.
type entry struct {
	row, col int
	val      float64
}

// Builder collects unordered triplets for a fixed shape.
// The zero value is not usable; construct via NewBuilder.
type Builder struct {
	rows, cols int
	entries    []entry
}

// NewBuilder creates a Builder for a rows×cols matrix.
// Stage 1 (Validate): reject negative dimensions; zero is a legal shape
// (such a builder accepts no triplets and compiles to an empty matrix).
// Complexity: O(1).
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewBuilder(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Builder{rows: rows, cols: cols}, nil
}

// Add records one (row, col, value) triplet.
// Duplicated coordinates are allowed at this stage; compilation resolves
// them with last-write-wins. NaN and ±Inf values are data and pass through.
// Stage 1 (Validate): bounds check against the builder shape.
// Stage 2 (Execute): append the triplet.
// Complexity: amortized O(1).
func (b *Builder) Add(row, col int, v float64) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return fmt.Errorf("Add(%d,%d): outside %dx%d builder: %w", row, col, b.rows, b.cols, ErrOutOfRange)
	}
	b.entries = append(b.entries, entry{row: row, col: col, val: v})

	return nil
}

// Len returns the number of triplets accumulated so far, duplicates
// included.
// Complexity: O(1).
func (b *Builder) Len() int {
	return len(b.entries)
}

// Shape returns the builder's (rows, cols) pair.
// Complexity: O(1).
func (b *Builder) Shape() (rows, cols int) {
	return b.rows, b.cols
}

// ToCSR compiles the accumulated triplets into an immutable csr.Matrix.
// Stage 1 (Prepare): stable row-major sort of a snapshot of the triplets —
// stability keeps insertion order inside equal coordinates, which makes the
// last-write-wins policy deterministic.
// Stage 2 (Execute): collapse duplicate coordinates keeping the final write,
// then emit colInd/values and the prefix-sum row pointer.
// Stage 3 (Finalize): construct through csr.New with full validation — the
// builder's output honors the same contract as any other caller's arrays.
// Complexity: O(t log t) time for t accumulated triplets.
func (b *Builder) ToCSR() (*csr.Matrix, error) {
	// Snapshot so the builder stays usable (and unsorted) after compiling.
	sorted := make([]entry, len(b.entries))
	copy(sorted, b.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].row != sorted[j].row {
			return sorted[i].row < sorted[j].row
		}

		return sorted[i].col < sorted[j].col
	})

	colInd := make([]int, 0, len(sorted))
	values := make([]float64, 0, len(sorted))
	rowPtr := make([]int, b.rows+1)
	for i, e := range sorted {
		// Within a run of equal coordinates only the last entry survives.
		if i+1 < len(sorted) && sorted[i+1].row == e.row && sorted[i+1].col == e.col {
			continue
		}
		colInd = append(colInd, e.col)
		values = append(values, e.val)
		rowPtr[e.row+1]++ // per-row count, prefix-summed below
	}
	for r := 1; r <= b.rows; r++ {
		rowPtr[r] += rowPtr[r-1]
	}

	return csr.New(rowPtr, colInd, values, b.rows, b.cols)
}
