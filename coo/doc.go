// Package coo accumulates coordinate-format (row, col, value) triplets and
// compiles them into a csr.Matrix.
//
// A csr.Matrix constructor demands already-CSR-shaped arrays: a monotone row
// pointer and strictly increasing columns per row. Building those by hand is
// error-prone when entries arrive unordered; Builder closes the gap:
//
//	b, _ := coo.NewBuilder(3, 3)
//	_ = b.Add(2, 0, 7)   // any order
//	_ = b.Add(0, 1, 4)
//	_ = b.Add(2, 0, 9)   // duplicate: last write wins
//	m, _ := b.ToCSR()
//
// ToCSR sorts triplets row-major with a stable sort, de-duplicates repeated
// coordinates deterministically (last Add wins) and emits the prefix-sum row
// pointer, then hands the arrays to csr.New under the full structural check.
//
// The Builder itself is not a matrix: it has no lookup, and it stays usable
// after ToCSR (compiling is a read-only snapshot).
package coo
