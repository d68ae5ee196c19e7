// Package kinematics implements the piecewise-constant-curvature (PCC) model
// of a three-section tendon-driven continuum arm: the static tension-to-
// curvature moment balance, the per-section closed-form transform, and the
// chain composition that yields the full backbone shape.
package kinematics

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Model evaluates the forward kinematics of the arm. It is pure and
// stateless apart from its immutable parameters; every evaluation recomputes
// curvatures from scratch.
type Model struct {
	params Params
}

// NewModel creates a Model with the given parameters. A nil params uses
// DefaultParams.
func NewModel(params *Params) *Model {
	if params == nil {
		p := DefaultParams()
		params = &p
	}
	return &Model{params: *params}
}

// Params returns a copy of the model parameters.
func (m *Model) Params() Params {
	return m.params
}

// Curvatures converts a 9-tendon tension vector into per-section arc
// parameters via the static moment-balance model. Tensions are grouped into
// triplets, one per section, proximal to distal. Negative tensions are
// accepted and act as signed moments; the model does not clamp them.
//
// A tendon anchored on a distal section passes through and loads every more
// proximal section, so section j carries the summed local moments of
// sections j..distal.
func (m *Model) Curvatures(tensions []float64) ([NumSections]Curvature, error) {
	var out [NumSections]Curvature
	if len(tensions) != NumTendons {
		return out, fmt.Errorf("%w: got %d, want %d", ErrTensionCount, len(tensions), NumTendons)
	}

	// Local bending moment of each section from its own tendon triplet.
	var mxLocal, myLocal [NumSections]float64
	for j, sec := range m.params.Sections {
		var sumCos, sumSin float64
		for i, sigma := range sec.TendonAngles {
			t := tensions[j*TendonsPerSection+i]
			sumCos += t * math.Cos(sigma)
			sumSin += t * math.Sin(sigma)
		}
		mxLocal[j] = sec.DiskRadius * sumCos
		myLocal[j] = sec.DiskRadius * sumSin
	}

	for j := 0; j < NumSections; j++ {
		var mx, my float64
		for k := j; k < NumSections; k++ {
			mx += mxLocal[k]
			my += myLocal[k]
		}
		out[j] = Curvature{
			Kappa:  math.Hypot(mx, my) / m.params.Sections[j].BendStiffness,
			Phi:    math.Atan2(my, mx),
			Length: m.params.Sections[j].Length,
		}
	}
	return out, nil
}

// Shape runs the full forward kinematics for one tension vector: solve the
// static model, sample each section's local frames, and chain them into
// global backbone poses. The last global frame of section j seeds section
// j+1, so the backbone is continuous by construction.
func (m *Model) Shape(tensions []float64) (*Backbone, error) {
	curvatures, err := m.Curvatures(tensions)
	if err != nil {
		return nil, err
	}

	b := &Backbone{
		Positions:  make([]r3.Vector, 0, NumSections*m.params.PointsPerSection),
		Curvatures: curvatures,
	}

	acc := IdentityFrame()
	for j, c := range curvatures {
		local, err := SectionFrames(c, m.params.PointsPerSection, m.params.CurvatureTol)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", j, err)
		}

		global := make([]Frame, len(local))
		for i, lf := range local {
			global[i] = acc.Compose(lf)
			b.Positions = append(b.Positions, global[i].Translation())
		}
		b.Sections[j] = global
		acc = global[len(global)-1]
	}
	return b, nil
}

// Tip returns just the end-effector position for one tension vector.
func (m *Model) Tip(tensions []float64) (r3.Vector, error) {
	b, err := m.Shape(tensions)
	if err != nil {
		return r3.Vector{}, err
	}
	return b.Tip(), nil
}
