package kinematics

import (
	"fmt"
	"math"
)

const (
	// NumSections is the number of stacked constant-curvature sections.
	NumSections = 3

	// TendonsPerSection is the number of tendons routed through each section's disk.
	TendonsPerSection = 3

	// NumTendons is the total tendon count, and the required tension-vector length.
	NumTendons = NumSections * TendonsPerSection
)

// SectionParams holds the physical constants of one arm section.
type SectionParams struct {
	Length        float64                    // arc length [m]
	DiskRadius    float64                    // tendon routing radius [m]
	TendonAngles  [TendonsPerSection]float64 // angular offsets of the tendons around the disk [rad]
	BendStiffness float64                    // bending stiffness E·I [N·m²]
}

// Params holds all configuration for the forward-kinematics model.
// Constructed once and never mutated afterwards.
type Params struct {
	// Sections are ordered proximal to distal.
	Sections [NumSections]SectionParams

	// PointsPerSection is the number of backbone samples per section,
	// spaced uniformly over [0, Length] inclusive of both ends.
	PointsPerSection int

	// CurvatureTol is the curvature magnitude below which a section is
	// treated as straight rather than divided through.
	CurvatureTol float64
}

// DefaultParams returns the measured parameters of the physical arm:
// section lengths, disk radii, tendon angular offsets and bending
// stiffnesses, proximal to distal.
func DefaultParams() Params {
	return Params{
		Sections: [NumSections]SectionParams{
			{
				Length:        0.3542,
				DiskRadius:    0.0449,
				TendonAngles:  [TendonsPerSection]float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3},
				BendStiffness: 17.860,
			},
			{
				Length:        0.289,
				DiskRadius:    0.0376,
				TendonAngles:  [TendonsPerSection]float64{math.Pi / 6, 5 * math.Pi / 6, 3 * math.Pi / 2},
				BendStiffness: 11.819,
			},
			{
				Length:        0.2268,
				DiskRadius:    0.0270,
				TendonAngles:  [TendonsPerSection]float64{math.Pi / 3, math.Pi, 5 * math.Pi / 3},
				BendStiffness: 7.036,
			},
		},
		PointsPerSection: 10,
		CurvatureTol:     1e-6,
	}
}

// TotalLength returns the arc length of the full backbone.
func (p Params) TotalLength() float64 {
	var total float64
	for _, sec := range p.Sections {
		total += sec.Length
	}
	return total
}

// Validate checks that the parameters describe a physically usable arm.
func (p Params) Validate() error {
	if p.PointsPerSection < 1 {
		return fmt.Errorf("points per section %d: %w", p.PointsPerSection, ErrBadSampleCount)
	}
	if p.CurvatureTol <= 0 {
		return fmt.Errorf("curvature tolerance must be positive, got %g", p.CurvatureTol)
	}
	for j, sec := range p.Sections {
		if sec.Length < 0 {
			return fmt.Errorf("section %d length %g: %w", j, sec.Length, ErrNegativeLength)
		}
		if sec.DiskRadius <= 0 {
			return fmt.Errorf("section %d disk radius must be positive, got %g", j, sec.DiskRadius)
		}
		if sec.BendStiffness <= 0 {
			return fmt.Errorf("section %d bending stiffness must be positive, got %g", j, sec.BendStiffness)
		}
	}
	return nil
}
