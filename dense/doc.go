// Package dense provides a minimal row-major dense matrix of float64
// values.
//
// It is the mutable scratch counterpart to the csr package: every coordinate
// of the shape is backed by real storage, Set is legal, and element access
// is a flat-index read. Its main jobs in this module are serving as the
// export target of csr.Matrix.ToDense and as the brute-force row-scan
// reference in tests.
//
// Unlike csr, there is no implicit/explicit zero distinction — a dense
// matrix stores rows*cols values, zeros included. Zero-sized shapes are
// legal; negative dimensions are rejected at construction.
package dense
