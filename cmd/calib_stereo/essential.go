package main

import (
	"math"

	"github.com/itohio/EasyRobot/pkg/vision/epipolar"
	cv "gocv.io/x/gocv"
)

// normalizePoint maps a pixel-space corner into calibrated camera
// coordinates using the camera's intrinsic matrix, so the epipolar
// constraint pr^T E pl = 0 holds for the un-projected rays.
func normalizePoint(p cv.Point2f, cameraMatrix cv.Mat) epipolar.Point2D {
	fx := cameraMatrix.GetDoubleAt(0, 0)
	fy := cameraMatrix.GetDoubleAt(1, 1)
	cx := cameraMatrix.GetDoubleAt(0, 2)
	cy := cameraMatrix.GetDoubleAt(1, 2)
	return epipolar.Point2D{
		X: (float64(p.X) - cx) / fx,
		Y: (float64(p.Y) - cy) / fy,
	}
}

// epipolarResidual measures how well an essential matrix candidate
// satisfies the calibrated epipolar constraint for one correspondence.
func epipolarResidual(e epipolar.EssentialMatrix, right, left epipolar.Point2D) float64 {
	pr := [3]float64{right.X, right.Y, 1}
	pl := [3]float64{left.X, left.Y, 1}

	var ePl [3]float64
	for r := 0; r < 3; r++ {
		sum := 0.0
		for c := 0; c < 3; c++ {
			sum += e.At(r, c) * pl[c]
		}
		ePl[r] = sum
	}

	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += pr[i] * ePl[i]
	}
	return sum
}

// essentialFromCorrespondences estimates an essential matrix from a set
// of calibrated correspondences by running epipolar.Solve over a handful
// of fixed 5-point subsets and keeping the candidate whose mean squared
// epipolar residual over all correspondences is smallest.
//
// This is intentionally minimal: it samples a fixed number of subsets
// with no adaptive stopping and no outlier rejection, standing in for a
// full RANSAC loop, which remains out of scope.
func essentialFromCorrespondences(rightPoints, leftPoints []epipolar.Point2D) (epipolar.EssentialMatrix, float64, error) {
	n := len(rightPoints)
	if n < 5 {
		return epipolar.EssentialMatrix{}, 0, epipolar.ErrInvalidInputCount
	}

	const maxSubsets = 20
	step := n / 5
	if step < 1 {
		step = 1
	}

	var best epipolar.EssentialMatrix
	bestScore := math.Inf(1)
	found := false

	for subset := 0; subset < maxSubsets; subset++ {
		offset := (subset * step) % n
		var right, left [5]epipolar.Point2D
		for k := 0; k < 5; k++ {
			idx := (offset + k*step) % n
			right[k] = rightPoints[idx]
			left[k] = leftPoints[idx]
		}

		candidates, err := epipolar.Solve(right, left)
		if err != nil {
			continue
		}

		for _, cand := range candidates {
			score := 0.0
			for i := 0; i < n; i++ {
				res := epipolarResidual(cand, rightPoints[i], leftPoints[i])
				score += res * res
			}
			score /= float64(n)
			if score < bestScore {
				bestScore = score
				best = cand
				found = true
			}
		}

		if subset*step >= n {
			break
		}
	}

	if !found {
		return epipolar.EssentialMatrix{}, 0, epipolar.ErrDecompositionFailed
	}
	return best, bestScore, nil
}

// essentialMatrixToMat converts an EssentialMatrix into a gocv Mat so it
// can be stored alongside the rest of the stereo calibration.
func essentialMatrixToMat(e epipolar.EssentialMatrix) cv.Mat {
	m := cv.NewMatWithSize(3, 3, cv.MatTypeCV64F)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.SetDoubleAt(r, c, e.At(r, c))
		}
	}
	return m
}
