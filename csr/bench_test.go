// Package csr_test provides benchmarks for construction and lookup, using
// deterministic random structures.
package csr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sprsmat/csr"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkM *csr.Matrix
	sinkF float64
)

// benchArrays builds valid random CSR arrays for an n×n matrix at the given
// density with a fixed seed.
func benchArrays(n int, density float64, seed int64) (rowPtr, colInd []int, values []float64) {
	rng := rand.New(rand.NewSource(seed))
	rowPtr = make([]int, n+1)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Float64() < density {
				colInd = append(colInd, c)
				values = append(values, rng.NormFloat64())
			}
		}
		rowPtr[r+1] = len(colInd)
	}

	return rowPtr, colInd, values
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rowPtr, colInd, values := benchArrays(n, 0.05, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := csr.New(rowPtr, colInd, values, n, n)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkNewWithoutValidation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rowPtr, colInd, values := benchArrays(n, 0.05, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := csr.New(rowPtr, colInd, values, n, n, csr.WithoutValidation())
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rowPtr, colInd, values := benchArrays(n, 0.05, 4242)
			m, err := csr.New(rowPtr, colInd, values, n, n)
			if err != nil {
				b.Fatal(err)
			}
			// Precompute a deterministic probe sequence outside the loop.
			rng := rand.New(rand.NewSource(7))
			probes := make([][2]int, 1024)
			for i := range probes {
				probes[i] = [2]int{rng.Intn(n), rng.Intn(n)}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := probes[i&1023]
				v, err := m.At(p[0], p[1])
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}
