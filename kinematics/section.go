package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// SectionFrames samples the closed-form constant-curvature transform of one
// section at n arc-length positions spaced uniformly over [0, c.Length],
// inclusive of both ends (n == 1 yields the single sample at s = 0).
//
// The first frame is always the identity, so a section's frames are local to
// the disk it starts from. Sections below the curvature tolerance take the
// straight branch: identity rotation and position (0, 0, s) for every sample.
// Curved sections rotate into the bending plane, bend about the local
// transverse axis and rotate back:
//
//	R(s) = Rz(φ)·Ry(κs)·Rz(−φ)
//	p(s) = (1/κ)·[(1−cos κs)·cos φ, (1−cos κs)·sin φ, sin κs]
func SectionFrames(c Curvature, n int, tol float64) ([]Frame, error) {
	if n < 1 {
		return nil, ErrBadSampleCount
	}
	if c.Length < 0 {
		return nil, ErrNegativeLength
	}

	frames := make([]Frame, n)

	switch c.Kind(tol) {
	case SegmentStraight:
		eye := mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
		for i := range frames {
			s := arcPosition(c.Length, i, n)
			frames[i] = newFrame(eye, r3.Vector{Z: s})
		}

	case SegmentCurved:
		cphi, sphi := math.Cos(c.Phi), math.Sin(c.Phi)
		rzIn := mat.NewDense(3, 3, []float64{
			cphi, -sphi, 0,
			sphi, cphi, 0,
			0, 0, 1,
		})
		rzOut := mat.NewDense(3, 3, []float64{
			cphi, sphi, 0,
			-sphi, cphi, 0,
			0, 0, 1,
		})
		for i := range frames {
			s := arcPosition(c.Length, i, n)
			theta := c.Kappa * s
			ct, st := math.Cos(theta), math.Sin(theta)
			ry := mat.NewDense(3, 3, []float64{
				ct, 0, st,
				0, 1, 0,
				-st, 0, ct,
			})

			var tmp, rot mat.Dense
			tmp.Mul(rzIn, ry)
			rot.Mul(&tmp, rzOut)

			p := r3.Vector{
				X: (1 - ct) * cphi,
				Y: (1 - ct) * sphi,
				Z: st,
			}.Mul(1 / c.Kappa)

			frames[i] = newFrame(&rot, p)
		}
	}

	return frames, nil
}

// arcPosition returns the i-th of n uniform arc-length samples over [0, length].
func arcPosition(length float64, i, n int) float64 {
	if n == 1 {
		return 0
	}
	return length * float64(i) / float64(n-1)
}
