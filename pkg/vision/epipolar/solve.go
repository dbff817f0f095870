package epipolar

import (
	"fmt"

	"github.com/itohio/EasyRobot/pkg/logger"
)

// Solve computes up to ten candidate essential matrices from five
// calibrated point correspondences using Nistér's five-point algorithm:
// nullspace extraction, constraint polynomial expansion, Gröbner basis
// reduction, action matrix assembly, and eigen-extraction.
//
// The five-point contract is enforced by the array length in the
// signature, so Solve never returns ErrInvalidInputCount; callers that
// hold points in slices (e.g. a RANSAC driver sampling minimal sets) use
// SolveN instead.
func Solve(rightPoints, leftPoints [5]Point2D, opts ...Option) ([]EssentialMatrix, error) {
	return SolveN(rightPoints[:], leftPoints[:], opts...)
}

// SolveN is the slice-based entry point behind Solve. It returns
// ErrInvalidInputCount if either slice is not exactly length 5.
func SolveN(rightPoints, leftPoints []Point2D, opts ...Option) ([]EssentialMatrix, error) {
	cfg := newConfig(opts...)

	if len(rightPoints) != 5 || len(leftPoints) != 5 {
		if cfg.Verbose {
			logger.Log.Warn().
				Int("rightPoints", len(rightPoints)).
				Int("leftPoints", len(leftPoints)).
				Msg("epipolar: solve requires exactly 5 point correspondences per view")
		}
		return nil, fmt.Errorf("%w: got %d right, %d left", ErrInvalidInputCount, len(rightPoints), len(leftPoints))
	}

	b0, b1, b2, b3, ok := nullspaceBasis(rightPoints, leftPoints, cfg.Tolerance)
	if !ok {
		return nil, ErrDecompositionFailed
	}

	constraints := constraintPolynomials(b0, b1, b2, b3)

	g, ok := reduceToGroebner(constraints)
	if !ok {
		return nil, ErrDecompositionFailed
	}

	az := actionMatrix(g)

	candidates, ok := extractCandidates(az, b0, b1, b2, b3, cfg.Tolerance)
	if !ok {
		return nil, ErrDecompositionFailed
	}

	if cfg.Verbose && len(candidates) < 10 {
		logger.Log.Debug().
			Int("candidates", len(candidates)).
			Msg("epipolar: fewer than 10 essential matrices survived the imaginary-part filter")
	}

	return candidates, nil
}
