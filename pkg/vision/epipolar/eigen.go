package epipolar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// extractCandidates computes the eigendecomposition of the action matrix
// and recovers an essential matrix from every eigenvector whose
// eigenvalue has near-zero imaginary part. Complex eigenvalues come in
// conjugate pairs and correspond to spurious solutions of the polynomial
// system that don't correspond to a real essential matrix.
//
// gonum's mat.Eigen stores right eigenvectors as columns of the matrix
// returned by VectorsTo (documented on Eigen.VectorsTo): eigenvector i is
// column i, not row i.
func extractCandidates(az [10][10]float64, b0, b1, b2, b3 basis9, tol float64) ([]EssentialMatrix, bool) {
	dense := mat.NewDense(10, 10, nil)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			dense.Set(r, c, az[r][c])
		}
	}

	var eig mat.Eigen
	if !eig.Factorize(dense, false, true) {
		return nil, false
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	candidates := make([]EssentialMatrix, 0, 10)
	for i, lambda := range values {
		if math.Abs(imag(lambda)) > tol {
			continue
		}

		wInv := real(vectors.At(9, i))
		if math.Abs(wInv) < tol {
			continue
		}
		wInv = 1 / wInv

		x := real(vectors.At(6, i)) * wInv
		y := real(vectors.At(7, i)) * wInv
		z := real(vectors.At(8, i)) * wInv

		var e basis9
		for k := 0; k < 9; k++ {
			e[k] = x*b0[k] + y*b1[k] + z*b2[k] + b3[k]
		}

		if math.Abs(e[8]) < tol {
			continue
		}
		scale := 1 / e[8]

		var em EssentialMatrix
		for c := 0; c < 3; c++ {
			for r := 0; r < 3; r++ {
				em[r][c] = e[c*3+r] * scale
			}
		}
		candidates = append(candidates, em)
	}

	return candidates, true
}
