package epipolar

import "errors"

// ErrInvalidInputCount is returned by SolveN when either point slice is
// not exactly length 5. Solve cannot hit this path: its signature takes
// [5]Point2D arrays, so the count is enforced by the type system.
var ErrInvalidInputCount = errors.New("epipolar: exactly 5 point correspondences are required")

// ErrDecompositionFailed wraps a LAPACK non-convergence signal from the
// SVD (S1) or eigendecomposition (S5) stages. Gonum reports only a
// boolean success flag, so there is no underlying error value to wrap.
var ErrDecompositionFailed = errors.New("epipolar: linear algebra backend failed to converge")
