// Package linalg provides the small dense linear-algebra kernels used by the
// design-size diagnostics: Gram matrix accumulation and symmetric eigenvalue
// extraction by cyclic Jacobi rotations.
package linalg

import (
	"math"
	"sort"
)

const (
	maxSweeps = 50
	offTol    = 1e-12
)

// Gram returns xᵀx for a rows×cols matrix x, a cols×cols symmetric matrix.
func Gram(x [][]float64) [][]float64 {
	if len(x) == 0 {
		return nil
	}
	cols := len(x[0])
	g := make([][]float64, cols)
	for t := range g {
		g[t] = make([]float64, cols)
	}
	for _, row := range x {
		for t := 0; t < cols; t++ {
			for u := t; u < cols; u++ {
				g[t][u] += row[t] * row[u]
			}
		}
	}
	for t := 0; t < cols; t++ {
		for u := 0; u < t; u++ {
			g[t][u] = g[u][t]
		}
	}
	return g
}

// SymEigvals returns the eigenvalues of the symmetric matrix a in ascending
// order. a is not modified. Only the symmetric part of a is consulted.
func SymEigvals(a [][]float64) []float64 {
	n := len(a)
	m := make([][]float64, n)
	for i := range m {
		m[i] = append([]float64(nil), a[i]...)
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if offNorm(m) <= offTol*(1+frobNorm(m)) {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(m, p, q)
			}
		}
	}

	eig := make([]float64, n)
	for i := range eig {
		eig[i] = m[i][i]
	}
	sort.Float64s(eig)
	return eig
}

// rotate applies the Jacobi rotation annihilating m[p][q], m ← JᵀmJ.
func rotate(m [][]float64, p, q int) {
	apq := m[p][q]
	if apq == 0 {
		return
	}
	theta := (m[q][q] - m[p][p]) / (2 * apq)
	t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if theta < 0 {
		t = -t
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for k := range m {
		akp, akq := m[k][p], m[k][q]
		m[k][p] = c*akp - s*akq
		m[k][q] = s*akp + c*akq
	}
	for k := range m {
		apk, aqk := m[p][k], m[q][k]
		m[p][k] = c*apk - s*aqk
		m[q][k] = s*apk + c*aqk
	}
}

func offNorm(m [][]float64) float64 {
	var sum float64
	for i := range m {
		for j := range m[i] {
			if i != j {
				sum += m[i][j] * m[i][j]
			}
		}
	}
	return math.Sqrt(sum)
}

func frobNorm(m [][]float64) float64 {
	var sum float64
	for i := range m {
		for j := range m[i] {
			sum += m[i][j] * m[i][j]
		}
	}
	return math.Sqrt(sum)
}
