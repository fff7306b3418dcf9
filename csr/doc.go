// Package csr implements an immutable Compressed-Sparse-Row matrix.
//
// The csr package provides:
//
//   - Validated construction (New) from raw row-pointer / column-index /
//     value arrays, with the full structural-invariant check performed in a
//     single O(nnz) pass.
//   - A zero-entry factory (Zeros) for any non-negative shape, including the
//     degenerate (0,0), (r,0) and (0,c) shapes.
//   - O(log k) point lookup (At) via per-row binary search, where k is the
//     number of stored entries in the addressed row.
//   - Structural introspection (Values, RowPtr, ColIndices, Row, NNZ) that
//     always returns fresh copies, so the matrix itself can never be mutated
//     through a returned slice.
//
// A Matrix is frozen at construction: once New or Zeros returns, no operation
// mutates it, which makes concurrent read access safe without locking.
//
// Stored entries are data, not semantics: an explicitly stored 0.0, a NaN or
// a ±Inf round-trips unchanged, and a stored zero is distinguishable from an
// absent (implicit) zero via Values and the structural accessors.
//
// CSR is best when the matrix is built once and queried many times; use the
// coo package to accumulate unordered triplets and compile them into a
// Matrix.
package csr
