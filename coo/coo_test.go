// Package coo_test contains unit tests for the triplet Builder and its CSR
// compilation.
package coo_test

import (
	"testing"

	"github.com/katalvlaran/sprsmat/coo"
	"github.com/katalvlaran/sprsmat/csr"
	"github.com/stretchr/testify/require"
)

// TestNewBuilderRejectsNegativeShape ensures negative dimensions fail with
// ErrBadShape while zero-sized shapes are accepted.
func TestNewBuilderRejectsNegativeShape(t *testing.T) {
	_, err := coo.NewBuilder(-1, 3)
	require.ErrorIs(t, err, coo.ErrBadShape)

	_, err = coo.NewBuilder(3, -1)
	require.ErrorIs(t, err, coo.ErrBadShape)

	b, err := coo.NewBuilder(0, 0) // degenerate but legal
	require.NoError(t, err)
	require.Equal(t, 0, b.Len())
}

// TestAddBounds ensures Add rejects coordinates outside the builder shape,
// negative indices included.
func TestAddBounds(t *testing.T) {
	b, err := coo.NewBuilder(2, 3)
	require.NoError(t, err)

	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(1, 2, 2))

	require.ErrorIs(t, b.Add(2, 0, 3), coo.ErrOutOfRange)  // row overflow
	require.ErrorIs(t, b.Add(0, 3, 3), coo.ErrOutOfRange)  // col overflow
	require.ErrorIs(t, b.Add(-1, 0, 3), coo.ErrOutOfRange) // negative row
	require.ErrorIs(t, b.Add(0, -1, 3), coo.ErrOutOfRange) // negative col

	require.Equal(t, 2, b.Len()) // rejected triplets are not recorded
}

// TestToCSRSortsUnorderedTriplets ensures compilation produces the canonical
// row-major, column-ascending structure regardless of insertion order.
func TestToCSRSortsUnorderedTriplets(t *testing.T) {
	b, err := coo.NewBuilder(3, 3)
	require.NoError(t, err)

	// Insert in scrambled order.
	require.NoError(t, b.Add(2, 2, 30))
	require.NoError(t, b.Add(0, 0, 10))
	require.NoError(t, b.Add(1, 1, 20))

	m, err := b.ToCSR()
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, m.RowPtr())
	require.Equal(t, []int{0, 1, 2}, m.ColIndices())
	require.Equal(t, []float64{10, 20, 30}, m.Values())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 20.0, v)
}

// TestToCSRLastWriteWins ensures duplicated coordinates collapse to the most
// recent Add, deterministically.
func TestToCSRLastWriteWins(t *testing.T) {
	b, err := coo.NewBuilder(2, 2)
	require.NoError(t, err)

	require.NoError(t, b.Add(0, 1, 1))
	require.NoError(t, b.Add(0, 1, 2)) // overwrite
	require.NoError(t, b.Add(1, 0, 5))
	require.NoError(t, b.Add(0, 1, 3)) // final write for (0,1)

	require.Equal(t, 4, b.Len()) // duplicates are kept until compilation

	m, err := b.ToCSR()
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ()) // collapsed to two stored entries

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // the last write survives
}

// TestToCSREmptyBuilder ensures an untouched builder compiles to a
// zero-entry matrix identical to csr.Zeros.
func TestToCSREmptyBuilder(t *testing.T) {
	b, err := coo.NewBuilder(4, 5)
	require.NoError(t, err)

	m, err := b.ToCSR()
	require.NoError(t, err)

	z, err := csr.Zeros(4, 5)
	require.NoError(t, err)

	require.Equal(t, z.RowPtr(), m.RowPtr())
	require.Equal(t, 0, m.NNZ())
}

// TestBuilderReusableAfterToCSR ensures compiling is a snapshot: the builder
// keeps accepting triplets, and earlier matrices are unaffected.
func TestBuilderReusableAfterToCSR(t *testing.T) {
	b, err := coo.NewBuilder(1, 3)
	require.NoError(t, err)
	require.NoError(t, b.Add(0, 0, 1))

	first, err := b.ToCSR()
	require.NoError(t, err)

	require.NoError(t, b.Add(0, 2, 9)) // grow after compiling

	second, err := b.ToCSR()
	require.NoError(t, err)

	require.Equal(t, 1, first.NNZ()) // earlier snapshot frozen
	require.Equal(t, 2, second.NNZ())
}
