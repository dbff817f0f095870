package epipolar

import "math"

// groebnerMatrix is the 10x10 matrix G: the coefficients of the ten
// lower-order monomials (columns 10..19 of the fixed ordering) after the
// ten constraint polynomials have been reduced to row-echelon form
// against the ten leading degree-3 monomials (columns 0..9). This is the
// Gröbner basis of the constraint ideal expressed in Nistér's preferred
// monomial basis.
type groebnerMatrix [10][10]float64

// reduceToGroebner builds the 10x20 coefficient matrix from the ten
// constraint polynomials and reduces it to reduced row-echelon form with
// partial pivoting over columns 0..9. This is Gaussian elimination
// specialized to this algorithm's known monomial support, not a general
// Buchberger implementation.
func reduceToGroebner(constraints [10]poly) (groebnerMatrix, bool) {
	var m [10][numMonomials]float64
	for i, p := range constraints {
		m[i] = p
	}

	for col := 0; col < 10; col++ {
		pivot := -1
		best := 0.0
		for r := col; r < 10; r++ {
			if v := math.Abs(m[r][col]); v > best {
				best = v
				pivot = r
			}
		}
		if pivot == -1 || best < 1e-12 {
			return groebnerMatrix{}, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		inv := 1 / m[col][col]
		for c := 0; c < numMonomials; c++ {
			m[col][c] *= inv
		}

		for r := 0; r < 10; r++ {
			if r == col {
				continue
			}
			factor := m[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < numMonomials; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	var g groebnerMatrix
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			g[r][c] = m[r][10+c]
		}
	}
	return g, true
}
