package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/rdk/spatialmath"
)

// SegmentKind distinguishes the two closed-form branches of the
// constant-curvature transform.
type SegmentKind int

const (
	// SegmentStraight marks a curvature magnitude below tolerance; the
	// section reduces to a pure translation along its longitudinal axis.
	SegmentStraight SegmentKind = iota
	// SegmentCurved marks a genuine arc.
	SegmentCurved
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentStraight:
		return "straight"
	case SegmentCurved:
		return "curved"
	default:
		return "unknown"
	}
}

// Curvature describes one section as a constant-curvature arc.
type Curvature struct {
	Kappa  float64 // bending magnitude [1/m]
	Phi    float64 // bending-plane angle [rad]
	Length float64 // arc length [m]
}

// Kind classifies the section against the zero-curvature tolerance.
// The straight branch must be taken below tol; the curved branch divides by Kappa.
func (c Curvature) Kind(tol float64) SegmentKind {
	if math.Abs(c.Kappa) < tol {
		return SegmentStraight
	}
	return SegmentCurved
}

// Frame is one backbone pose: a 4×4 homogeneous transform holding a 3×3
// rotation and a translation, bottom row fixed to [0, 0, 0, 1]. Frames are
// built only by this package's constructors, which maintain that invariant.
type Frame struct {
	m *mat.Dense
}

// IdentityFrame returns the robot base frame.
func IdentityFrame() Frame {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return Frame{m: m}
}

// newFrame assembles a homogeneous transform from a 3×3 rotation and a translation.
func newFrame(r *mat.Dense, p r3.Vector) Frame {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j))
		}
	}
	m.Set(0, 3, p.X)
	m.Set(1, 3, p.Y)
	m.Set(2, 3, p.Z)
	m.Set(3, 3, 1)
	return Frame{m: m}
}

// Compose returns f·g, the frame g expressed through f.
func (f Frame) Compose(g Frame) Frame {
	out := mat.NewDense(4, 4, nil)
	out.Mul(f.m, g.m)
	return Frame{m: out}
}

// At returns the matrix entry at row i, column j.
func (f Frame) At(i, j int) float64 {
	return f.m.At(i, j)
}

// Translation returns the frame origin in the parent frame.
func (f Frame) Translation() r3.Vector {
	return r3.Vector{X: f.m.At(0, 3), Y: f.m.At(1, 3), Z: f.m.At(2, 3)}
}

// Pose converts the frame to a spatialmath.Pose for consumers that reason
// about the arm in Viam terms.
func (f Frame) Pose() spatialmath.Pose {
	rot := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot = append(rot, f.m.At(i, j))
		}
	}
	rm, _ := spatialmath.NewRotationMatrix(rot)
	return spatialmath.NewPose(f.Translation(), rm)
}

// Backbone is the composed shape of the whole arm for one tension vector.
type Backbone struct {
	// Positions are the backbone points in the base frame, section-major,
	// sample-minor: NumSections × PointsPerSection entries.
	Positions []r3.Vector

	// Sections holds the global frames of each section, proximal to distal.
	Sections [NumSections][]Frame

	// Curvatures are the per-section arc parameters the shape was built from.
	Curvatures [NumSections]Curvature
}

// Tip returns the end-effector position: the origin of the very last frame.
func (b *Backbone) Tip() r3.Vector {
	return b.Positions[len(b.Positions)-1]
}

// TipFrame returns the full pose of the end effector.
func (b *Backbone) TipFrame() Frame {
	last := b.Sections[NumSections-1]
	return last[len(last)-1]
}
