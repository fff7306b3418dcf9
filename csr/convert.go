// Package csr: export adapters.
// Conversion is one-way by design: a CSR matrix can be materialized densely,
// but the constructor never accepts dense input — callers supply
// already-CSR-shaped arrays (or use the coo builder).

package csr

import "github.com/katalvlaran/sprsmat/dense"

// ToDense materializes the dense equivalent of the matrix: every stored
// entry is written at its coordinate and every absent coordinate stays 0.
// Stage 1 (Prepare): allocate a dense.Dense of the same shape.
// Stage 2 (Execute): walk the stored entries row by row and write them out.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix) ToDense() (*dense.Dense, error) {
	d, err := dense.New(m.rows, m.cols)
	if err != nil {
		return nil, err
	}

	for r := 0; r < m.rows; r++ { // walk rows in storage order
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			// Coordinates are in range for any validated matrix; Set can
			// only fail for a matrix built with WithoutValidation.
			if err = d.Set(r, m.colInd[k], m.values[k]); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
