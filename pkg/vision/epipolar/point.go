package epipolar

import "math"

// Point2D is a 2D point in normalized image coordinates: principal point
// at the origin, unit focal length. It is double precision regardless of
// the float32 convention used by x/math/vec and x/math/mat, because the
// Gauss-Jordan reduction and eigensolve in this package need double
// precision to stay well conditioned (see Config.Tolerance).
type Point2D struct {
	X, Y float64
}

// EssentialMatrix is a 3x3 real matrix relating two calibrated views.
// By convention the (2,2) entry is normalized to 1 unless it is too close
// to zero to divide by safely, in which case the candidate is dropped
// rather than returned with an arbitrary scale (see Config.Tolerance).
type EssentialMatrix [3][3]float64

// At returns the entry at row r, column c.
func (e EssentialMatrix) At(r, c int) float64 {
	return e[r][c]
}

// Frobenius returns the Frobenius norm of the matrix.
func (e EssentialMatrix) Frobenius() float64 {
	sum := 0.0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum += e[r][c] * e[r][c]
		}
	}
	return math.Sqrt(sum)
}
