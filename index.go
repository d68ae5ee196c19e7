package softarm

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// recordPoint adapts one table record to the kd-tree interfaces. Distances
// are squared Euclidean, as the tree's search expects.
type recordPoint struct {
	pos [3]float64
	idx int // index into Table.Records
}

func (p recordPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(recordPoint)
	return p.pos[d] - q.pos[d]
}

func (p recordPoint) Dims() int { return 3 }

func (p recordPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(recordPoint)
	var sum float64
	for i := range p.pos {
		d := p.pos[i] - q.pos[i]
		sum += d * d
	}
	return sum
}

// recordPoints implements kdtree.Interface over the table's positions.
type recordPoints []recordPoint

func (p recordPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p recordPoints) Len() int                      { return len(p) }
func (p recordPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p recordPoints) Pivot(d kdtree.Dim) int {
	return recordPlane{recordPoints: p, Dim: d}.Pivot()
}

// recordPlane is the sort plane helper the kd-tree uses to partition points.
type recordPlane struct {
	recordPoints
	kdtree.Dim
}

func (p recordPlane) Less(i, j int) bool {
	return p.recordPoints[i].pos[p.Dim] < p.recordPoints[j].pos[p.Dim]
}
func (p recordPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p recordPlane) Slice(start, end int) kdtree.SortSlicer {
	p.recordPoints = p.recordPoints[start:end]
	return p
}
func (p recordPlane) Swap(i, j int) {
	p.recordPoints[i], p.recordPoints[j] = p.recordPoints[j], p.recordPoints[i]
}

// spatialIndex answers nearest-neighbor queries over the positions of one
// table. It is valid only for the exact table it was built from; the Engine
// swaps table and index together.
type spatialIndex struct {
	tree  *kdtree.Tree
	table *Table
}

// newSpatialIndex builds the index in O(n log n).
func newSpatialIndex(t *Table) (*spatialIndex, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	pts := make(recordPoints, t.Len())
	for i, rec := range t.Records {
		pts[i] = recordPoint{
			pos: [3]float64{rec.Pos.X, rec.Pos.Y, rec.Pos.Z},
			idx: i,
		}
	}
	return &spatialIndex{tree: kdtree.New(pts, true), table: t}, nil
}

// nearest returns the record closest to target and the Euclidean distance to
// its position. Exact lookup only: the result is always a real recorded
// sample, never an interpolation.
func (ix *spatialIndex) nearest(target r3.Vector) (Record, float64) {
	got, distSq := ix.tree.Nearest(recordPoint{
		pos: [3]float64{target.X, target.Y, target.Z},
		idx: -1,
	})
	rp := got.(recordPoint)
	return ix.table.Records[rp.idx], math.Sqrt(distSq)
}
