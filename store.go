package softarm

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/rdk/pointcloud"
)

// DefaultTablePath is where the workspace map is persisted when no other
// path is given; matches the name the rest of the robot tooling expects.
const DefaultTablePath = "workspace_map.npy"

// csvHeader matches the persisted column order.
var csvHeader = []string{"X", "Y", "Z", "T1", "T2", "T3"}

// SaveTable persists the lookup table as an n×6 float64 .npy matrix, the
// authoritative on-disk form. The write goes through a temp file in the same
// directory followed by a rename, so a crashed save never leaves a
// half-written file that a later load would accept.
func SaveTable(path string, t *Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp table file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := npyio.Write(tmp, t.matrix()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp table file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing table file %s: %w", path, err)
	}
	return nil
}

// LoadTable reads a persisted table and validates its shape. Any failure
// (missing file, unreadable contents, wrong shape) is surfaced so the caller
// can fall back to regeneration.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table file: %w", err)
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("parsing table file %s: %w", path, err)
	}
	return tableFromMatrix(&m)
}

// ExportCSV writes the human-readable companion file with an
// "X,Y,Z,T1,T2,T3" header. It exists for inspection only and is never read
// back.
func ExportCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV export: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing CSV header: %w", err)
	}
	row := make([]string, tableColumns)
	for _, rec := range t.Records {
		row[0] = strconv.FormatFloat(rec.Pos.X, 'g', -1, 64)
		row[1] = strconv.FormatFloat(rec.Pos.Y, 'g', -1, 64)
		row[2] = strconv.FormatFloat(rec.Pos.Z, 'g', -1, 64)
		row[3] = strconv.FormatFloat(rec.Tensions[0], 'g', -1, 64)
		row[4] = strconv.FormatFloat(rec.Tensions[1], 'g', -1, 64)
		row[5] = strconv.FormatFloat(rec.Tensions[2], 'g', -1, 64)
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing CSV export: %w", err)
	}
	return f.Close()
}

// ExportPCD writes the reachable tip positions as a binary PCD point cloud,
// viewable alongside the robot's other captures.
func ExportPCD(path string, t *Table) error {
	cloud := pointcloud.NewWithPrealloc(t.Len())
	for _, rec := range t.Records {
		if err := cloud.Set(rec.Pos, nil); err != nil {
			return fmt.Errorf("adding workspace point: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if err := pointcloud.ToPCD(cloud, f, pointcloud.PCDBinary); err != nil {
		return fmt.Errorf("write PCD: %w", err)
	}
	return nil
}
