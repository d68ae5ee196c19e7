// Package softarm computes the shape and reachable workspace of a
// three-section tendon-driven continuum arm, and answers approximate
// inverse-kinematics queries against a precomputed workspace lookup table.
// The forward model itself lives in the kinematics package; this package
// owns the table, its persistence, and the spatial index over it.
package softarm

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"

	"github.com/QuentinBlan/CREATE-throwing-arm-controller/kinematics"
)

// Engine owns the forward model, the workspace lookup table and the spatial
// index built over it. The table and index only ever change together, so the
// index can never serve positions from a stale table. All methods are safe
// for sequential use; the engine assumes a single caller, matching the
// synchronous control loop that drives it.
type Engine struct {
	logger  logging.Logger
	model   *kinematics.Model
	sampler SamplerConfig

	table *Table
	index *spatialIndex
}

// NewEngine creates an engine around the given forward model and sweep
// configuration. A nil model uses the default arm parameters; a nil logger
// gets a named default.
func NewEngine(model *kinematics.Model, sampler SamplerConfig, logger logging.Logger) *Engine {
	if model == nil {
		model = kinematics.NewModel(nil)
	}
	if logger == nil {
		logger = logging.NewLogger("softarm")
	}
	return &Engine{
		logger:  logger,
		model:   model,
		sampler: sampler,
	}
}

// Model returns the forward-kinematics model.
func (e *Engine) Model() *kinematics.Model {
	return e.model
}

// Table returns the active lookup table, or nil before EnsureTable or
// Regenerate has succeeded.
func (e *Engine) Table() *Table {
	return e.table
}

// Forward evaluates the forward kinematics for a 9-tendon tension vector.
func (e *Engine) Forward(tensions []float64) (*kinematics.Backbone, error) {
	return e.model.Shape(tensions)
}

// InverseSolution is the answer to an inverse-kinematics query: the recorded
// tension triplet whose tip position lies nearest the target. Matched is
// always a real workspace sample, so precision is bounded by the sampler's
// step resolution.
type InverseSolution struct {
	Tensions [kinematics.TendonsPerSection]float64 // swept tendon tensions [N]
	Matched  r3.Vector                             // recorded tip position [m]
	Distance float64                               // Euclidean distance from target to Matched [m]
}

// Inverse returns the workspace record nearest the target position. It fails
// with ErrEmptyTable until a table is ready.
func (e *Engine) Inverse(target r3.Vector) (*InverseSolution, error) {
	if e.index == nil {
		return nil, fmt.Errorf("inverse query for (%g, %g, %g): %w", target.X, target.Y, target.Z, ErrEmptyTable)
	}
	rec, dist := e.index.nearest(target)
	return &InverseSolution{
		Tensions: rec.Tensions,
		Matched:  rec.Pos,
		Distance: dist,
	}, nil
}

// EnsureTable makes the engine ready to answer inverse queries: it loads the
// table persisted at path or, when the file is missing or unreadable, falls
// back to generating a fresh one and persisting it. The spatial index is
// built from whichever table becomes active.
func (e *Engine) EnsureTable(ctx context.Context, path string) error {
	table, err := LoadTable(path)
	if err != nil {
		e.logger.Warnf("Could not open the lookup table: %v; generating a default one", err)
		_, err = e.Regenerate(ctx, path)
		return err
	}

	index, err := newSpatialIndex(table)
	if err != nil {
		return err
	}

	e.table = table
	e.index = index
	e.logger.Infof("Loaded workspace table from %s (%d records)", path, table.Len())
	return nil
}

// Regenerate rebuilds the lookup table from scratch, persists it at path
// (with its CSV companion), and swaps the active table and spatial index in
// the same step. It returns the fresh table handle; the previous table and
// index are discarded together. An empty path skips persistence.
func (e *Engine) Regenerate(ctx context.Context, path string) (*Table, error) {
	table, err := BuildTable(ctx, e.model, e.sampler, e.logger)
	if err != nil {
		return nil, err
	}

	index, err := newSpatialIndex(table)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := SaveTable(path, table); err != nil {
			return nil, err
		}
		csvPath := csvCompanionPath(path)
		if err := ExportCSV(csvPath, table); err != nil {
			e.logger.Warnf("Failed to write CSV companion %s: %v", csvPath, err)
		} else {
			e.logger.Infof("Workspace map saved to %s and %s", path, csvPath)
		}
	}

	e.table = table
	e.index = index
	return table, nil
}

// csvCompanionPath swaps the table file's extension for .csv.
func csvCompanionPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"
}
