// Package epipolar computes candidate essential matrices relating two
// calibrated pinhole views from exactly five normalized point
// correspondences, following Nistér's five-point algorithm.
//
// The package is a pure numerical kernel: it has no notion of image
// acquisition, intrinsic calibration, point normalization, outlier
// rejection or pose decomposition. Callers (typically a RANSAC loop
// sampling minimal sets from a larger correspondence set) own all of
// that; see cmd/calib_stereo for an example caller.
package epipolar
