package kinematics

import (
	"errors"
	"math"
	"testing"
)

const floatTol = 1e-9

// checkHomogeneous verifies the bottom row of a frame is exactly [0, 0, 0, 1].
func checkHomogeneous(t *testing.T, f Frame) {
	t.Helper()
	for j := 0; j < 3; j++ {
		if f.At(3, j) != 0 {
			t.Errorf("bottom row entry (3,%d) = %g, want 0", j, f.At(3, j))
		}
	}
	if f.At(3, 3) != 1 {
		t.Errorf("bottom-right entry = %g, want 1", f.At(3, 3))
	}
}

// checkIdentityRotation verifies the rotation block is the identity within tol.
func checkIdentityRotation(t *testing.T, f Frame, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(f.At(i, j)-want) > tol {
				t.Errorf("rotation entry (%d,%d) = %g, want %g", i, j, f.At(i, j), want)
			}
		}
	}
}

func TestSectionFrames_Straight(t *testing.T) {
	c := Curvature{Kappa: 0, Phi: 1.2, Length: 0.6}
	frames, err := SectionFrames(c, 4, 1e-6)
	if err != nil {
		t.Fatalf("SectionFrames failed: %v", err)
	}
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4", len(frames))
	}

	for i, f := range frames {
		checkHomogeneous(t, f)
		checkIdentityRotation(t, f, floatTol)

		wantZ := 0.6 * float64(i) / 3.0
		p := f.Translation()
		if p.X != 0 || p.Y != 0 {
			t.Errorf("sample %d: position (%g, %g, %g), want X=Y=0", i, p.X, p.Y, p.Z)
		}
		if math.Abs(p.Z-wantZ) > floatTol {
			t.Errorf("sample %d: Z = %g, want %g", i, p.Z, wantZ)
		}
	}
}

func TestSectionFrames_CurvedScenario(t *testing.T) {
	// κ = 0.5 1/m, φ = 45°, L = 1 m, 5 samples.
	c := Curvature{Kappa: 0.5, Phi: math.Pi / 4, Length: 1.0}
	frames, err := SectionFrames(c, 5, 1e-6)
	if err != nil {
		t.Fatalf("SectionFrames failed: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(frames))
	}

	for i, f := range frames {
		checkHomogeneous(t, f)

		// Rotation stays orthonormal: R·Rᵀ = I.
		for r := 0; r < 3; r++ {
			for cIdx := 0; cIdx < 3; cIdx++ {
				var dot float64
				for k := 0; k < 3; k++ {
					dot += f.At(r, k) * f.At(cIdx, k)
				}
				want := 0.0
				if r == cIdx {
					want = 1.0
				}
				if math.Abs(dot-want) > floatTol {
					t.Errorf("sample %d: R·Rᵀ entry (%d,%d) = %g, want %g", i, r, cIdx, dot, want)
				}
			}
		}
	}

	// First frame is the identity with zero translation.
	checkIdentityRotation(t, frames[0], floatTol)
	if p := frames[0].Translation(); p.Norm() > floatTol {
		t.Errorf("first frame translation = %v, want origin", p)
	}

	// Last frame position from the closed form: θ = κL = 0.5.
	theta := 0.5
	wantX := (1 - math.Cos(theta)) * math.Cos(math.Pi/4) / c.Kappa
	wantY := (1 - math.Cos(theta)) * math.Sin(math.Pi/4) / c.Kappa
	wantZ := math.Sin(theta) / c.Kappa
	tip := frames[4].Translation()
	if math.Abs(tip.X-wantX) > floatTol || math.Abs(tip.Y-wantY) > floatTol || math.Abs(tip.Z-wantZ) > floatTol {
		t.Errorf("tip = (%g, %g, %g), want (%g, %g, %g)", tip.X, tip.Y, tip.Z, wantX, wantY, wantZ)
	}
}

func TestSectionFrames_FirstFrameIdentity(t *testing.T) {
	cases := []Curvature{
		{Kappa: 2.0, Phi: 0, Length: 0.3},
		{Kappa: -1.5, Phi: math.Pi / 3, Length: 0.5},
		{Kappa: 0.01, Phi: -2.5, Length: 1.2},
	}
	for _, c := range cases {
		frames, err := SectionFrames(c, 3, 1e-6)
		if err != nil {
			t.Fatalf("SectionFrames(%+v) failed: %v", c, err)
		}
		checkIdentityRotation(t, frames[0], floatTol)
		if p := frames[0].Translation(); p.Norm() > floatTol {
			t.Errorf("κ=%g φ=%g: first frame translation = %v, want origin", c.Kappa, c.Phi, p)
		}
	}
}

func TestSectionFrames_SingleSample(t *testing.T) {
	frames, err := SectionFrames(Curvature{Kappa: 1.0, Phi: 0.7, Length: 0.4}, 1, 1e-6)
	if err != nil {
		t.Fatalf("SectionFrames failed: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	checkIdentityRotation(t, frames[0], floatTol)
	if p := frames[0].Translation(); p.Norm() > floatTol {
		t.Errorf("single sample translation = %v, want origin", p)
	}
}

func TestSectionFrames_BadInputs(t *testing.T) {
	if _, err := SectionFrames(Curvature{Length: 1}, 0, 1e-6); !errors.Is(err, ErrBadSampleCount) {
		t.Errorf("n=0: got %v, want ErrBadSampleCount", err)
	}
	if _, err := SectionFrames(Curvature{Length: -0.1}, 5, 1e-6); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("L<0: got %v, want ErrNegativeLength", err)
	}
}

func TestCurvatureKind(t *testing.T) {
	if k := (Curvature{Kappa: 1e-8}).Kind(1e-6); k != SegmentStraight {
		t.Errorf("κ below tol classified as %v, want straight", k)
	}
	if k := (Curvature{Kappa: -1e-8}).Kind(1e-6); k != SegmentStraight {
		t.Errorf("negative κ below tol classified as %v, want straight", k)
	}
	if k := (Curvature{Kappa: 0.5}).Kind(1e-6); k != SegmentCurved {
		t.Errorf("κ=0.5 classified as %v, want curved", k)
	}
}
