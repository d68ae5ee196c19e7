package kinematics

import "errors"

var (
	// ErrTensionCount is returned when a tension vector does not have exactly
	// one scalar per tendon (NumSections * TendonsPerSection).
	ErrTensionCount = errors.New("tension vector must have one entry per tendon")

	// ErrBadSampleCount is returned when a section is asked for fewer than one
	// sample point.
	ErrBadSampleCount = errors.New("sample count must be at least 1")

	// ErrNegativeLength is returned when a section arc length is negative.
	ErrNegativeLength = errors.New("arc length must be nonnegative")
)
