package softarm

import "errors"

var (
	// ErrEmptyTable is returned when an inverse query is made before a
	// workspace lookup table has been loaded or generated.
	ErrEmptyTable = errors.New("workspace lookup table is empty or not loaded")

	// ErrBadTableShape is returned when a persisted table does not have the
	// expected [X Y Z T1 T2 T3] column layout.
	ErrBadTableShape = errors.New("workspace table must have 6 columns")

	// ErrBadSamplerConfig is returned when the sweep configuration cannot
	// produce any samples.
	ErrBadSamplerConfig = errors.New("invalid workspace sampler configuration")
)
