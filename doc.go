// Package sprsmat is a small, strict Compressed-Sparse-Row matrix core:
// build once from raw CSR arrays, then look up anywhere, lock-free.
//
// 🚀 What is sprsmat?
//
//	A focused library built around one data structure:
//		• csr/   — the immutable CSR engine: validated construction,
//		           zero factory, O(log k) point lookup, introspection
//		• coo/   — a coordinate-format builder compiling unordered
//		           triplets into valid CSR arrays
//		• dense/ — a minimal row-major dense matrix: export target and
//		           the brute-force oracle used by the test suite
//
// ✨ Design rules
//
//   - Validate once — all five structural invariants are checked at
//     construction in a single O(nnz) pass; lookups never re-validate
//   - Never panic — invalid input is reported through prefixed sentinel
//     errors matched with errors.Is
//   - Values are data — stored zeros, NaN and ±Inf round-trip unchanged;
//     only absence means "implicit zero"
//   - Frozen means shareable — a constructed matrix is immutable, so any
//     number of goroutines may read it concurrently without locks
//
// Quick ASCII example, a 3×3 diagonal stored as CSR:
//
//	row_ptr  [0, 1, 2, 3]
//	col_ind  [0, 1, 2]          [10  0  0]
//	values   [10, 20, 30]   ⇒   [ 0 20  0]
//	                            [ 0  0 30]
//
// Dive into the csr package docs for the full contract and into examples/
// for runnable scenarios.
//
//	go get github.com/katalvlaran/sprsmat
package sprsmat
