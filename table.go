package softarm

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/QuentinBlan/CREATE-throwing-arm-controller/kinematics"
)

// tableColumns is the persisted column count: [X Y Z T1 T2 T3].
const tableColumns = 6

// Record is one workspace sample: a reachable tip position and the tension
// triplet on the swept tendons that produced it.
type Record struct {
	Pos      r3.Vector                             // tip position in the base frame [m]
	Tensions [kinematics.TendonsPerSection]float64 // swept tendon tensions [N]
}

// Table is the workspace lookup table backing inverse-kinematics queries.
// It is generated once per session or loaded from disk, and read-only after
// that.
type Table struct {
	Records []Record
}

// Len returns the number of workspace records.
func (t *Table) Len() int {
	return len(t.Records)
}

// matrix packs the table as an n×6 dense matrix in persisted column order.
func (t *Table) matrix() *mat.Dense {
	m := mat.NewDense(t.Len(), tableColumns, nil)
	for i, rec := range t.Records {
		m.Set(i, 0, rec.Pos.X)
		m.Set(i, 1, rec.Pos.Y)
		m.Set(i, 2, rec.Pos.Z)
		m.Set(i, 3, rec.Tensions[0])
		m.Set(i, 4, rec.Tensions[1])
		m.Set(i, 5, rec.Tensions[2])
	}
	return m
}

// tableFromMatrix rebuilds a Table from a persisted matrix, validating its shape.
func tableFromMatrix(m *mat.Dense) (*Table, error) {
	rows, cols := m.Dims()
	if cols != tableColumns {
		return nil, fmt.Errorf("%w: got %d", ErrBadTableShape, cols)
	}
	if rows == 0 {
		return nil, fmt.Errorf("persisted table has no rows: %w", ErrEmptyTable)
	}

	t := &Table{Records: make([]Record, rows)}
	for i := 0; i < rows; i++ {
		t.Records[i] = Record{
			Pos:      r3.Vector{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)},
			Tensions: [kinematics.TendonsPerSection]float64{m.At(i, 3), m.At(i, 4), m.At(i, 5)},
		}
	}
	return t, nil
}
