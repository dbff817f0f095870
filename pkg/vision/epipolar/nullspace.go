package epipolar

import (
	"gonum.org/v1/gonum/mat"
)

// basis9 is a 9-vector in the column-major layout of a 3x3 matrix: index
// c*3+r holds entry (r, c). This is the layout the epipolar constraint
// row in buildConstraintMatrix dots against, and therefore the layout
// B0..B3 (and every linear combination of them, including the
// reconstructed essential matrix in S5) are expressed in.
type basis9 [9]float64

// buildConstraintMatrix assembles the 5x9 epipolar constraint matrix A
// from five correspondences. Each row encodes the epipolar constraint
// xl^T * E * xr = 0 as a dot product against the unknown 9-vector of
// entries of E:
//
//	A_i = [ xr*xl, yr*xl, xl, xr*yl, yr*yl, yl, xr, yr, 1 ]
func buildConstraintMatrix(rightPoints, leftPoints []Point2D) *mat.Dense {
	a := mat.NewDense(5, 9, nil)
	for i := 0; i < 5; i++ {
		xr, yr := rightPoints[i].X, rightPoints[i].Y
		xl, yl := leftPoints[i].X, leftPoints[i].Y
		a.SetRow(i, []float64{
			xr * xl, yr * xl, xl,
			xr * yl, yr * yl, yl,
			xr, yr, 1,
		})
	}
	return a
}

// nullspaceBasis computes the four 9-vectors spanning the right nullspace
// of the 5x9 epipolar constraint matrix, via full SVD. The nullspace is
// extracted by column index (the last four columns of V, the generic
// nullity of a full-rank 5x9 matrix), not by thresholding singular
// values — tol is accepted for API symmetry with the rest of the
// pipeline and is not currently used to gate this extraction.
func nullspaceBasis(rightPoints, leftPoints []Point2D, tol float64) (b0, b1, b2, b3 basis9, ok bool) {
	a := buildConstraintMatrix(rightPoints, leftPoints)

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return b0, b1, b2, b3, false
	}

	var v mat.Dense
	svd.VTo(&v)

	bases := [4]*basis9{&b0, &b1, &b2, &b3}
	for k, col := range []int{5, 6, 7, 8} {
		for r := 0; r < 9; r++ {
			bases[k][r] = v.At(r, col)
		}
	}
	return b0, b1, b2, b3, true
}
