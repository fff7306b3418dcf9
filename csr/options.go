// SPDX-License-Identifier: MIT

// Package csr: functional configuration for construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package csr

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultValidate toggles the full structural scan in New. Enabled by
	// default: construction is the only place invariants are ever checked.
	DefaultValidate = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation.
type options struct {
	validate bool // DefaultValidate
}

// WithValidation enables the full O(nnz) structural scan in New (default).
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithoutValidation skips the O(nnz) per-entry scan (column bounds and
// strict per-row ordering) for arrays the caller has already validated —
// for example arrays exported verbatim from another CSR implementation.
//
// Behavior highlights:
//   - The cheap shape/length/row-pointer checks always run regardless of
//     this option, so a matrix built from malformed arrays can return wrong
//     lookup results but can never index outside its own storage.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Use only on trusted input; At on an unsorted row is unspecified
//     (binary search assumes strict ascent).
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) options {
	o := options{
		validate: DefaultValidate,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
