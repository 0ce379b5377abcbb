package cdt

import (
	"math/rand"

	"github.com/delaunaygo/dcdt/types"
	"github.com/delaunaygo/dcdt/validation"
)

// Triangulation bundles the topology Index with the point store, the
// current convex hull, the representative-point list, and the
// configuration needed to keep performing incremental edits consistently
// (spec.md §3's "Triangulation container"). Grounded in shape on the
// teacher's mesh.Mesh: a thin struct wrapping the active index plus the
// knobs later operations need, rather than a God object.
type Triangulation struct {
	idx    *Index
	points []types.Point

	// inserted holds every real vertex currently part of the
	// triangulation, in insertion order; Locator samples from it.
	inserted []types.VertexID
	lastIns  types.VertexID

	hull []types.VertexID

	// repPoint is the running mean of every inserted vertex's coordinates,
	// for the single connected region this core triangulation can have absent
	// polygon-hole bookkeeping (out of scope per spec.md §1).
	repPoint    types.Point
	repCount    int
	hullLocked  bool
	cfg         config

	// boundaryLoop holds the coordinates of the WithBoundaryNodes loop, if
	// one was supplied, for later point-in-polygon containment queries.
	boundaryLoop []types.Point
}

// Points returns the backing point store. Index 0 is the unused sentinel
// per spec.md §3.
func (t *Triangulation) Points() []types.Point { return t.points }

// GetPoint returns the coordinates of vertex v.
func (t *Triangulation) GetPoint(v types.VertexID) types.Point { return t.points[v] }

// NumPoints returns the number of real vertices currently in the
// triangulation.
func (t *Triangulation) NumPoints() int { return len(t.inserted) }

// NumTriangles returns the number of triangles currently stored, solid and
// ghost combined.
func (t *Triangulation) NumTriangles() int { return t.idx.NumTriangles() }

// Ghost returns the sentinel vertex used for the unbounded face.
func (t *Triangulation) Ghost() types.VertexID { return t.idx.Ghost() }

func (t *Triangulation) rng() *rand.Rand {
	if t.cfg.rng == nil {
		t.cfg.rng = rand.New(rand.NewSource(1))
	}
	return t.cfg.rng
}

// locator builds a fresh Locator bound to this triangulation's live vertex
// population. Locator itself is stateless between calls, so there is no
// cost to constructing one per query.
func (t *Triangulation) locator() *Locator {
	return NewLocator(t.idx, t.points, &t.inserted, t.rng())
}

func (t *Triangulation) accumulateRepresentativePoint(p types.Point) {
	n := float64(t.repCount + 1)
	t.repPoint.X += (p.X - t.repPoint.X) / n
	t.repPoint.Y += (p.Y - t.repPoint.Y) / n
	t.repCount++
}

// RepresentativePoint returns the current representative point for the
// triangulation's (single, since region-splitting is out of scope) connected
// area.
func (t *Triangulation) RepresentativePoint() types.Point { return t.repPoint }

// ContainsPoint reports whether p lies inside (or on the boundary of) the
// loop supplied via WithBoundaryNodes, the region the representative point
// seeds containment tests for. Returns false if the triangulation was built
// without a boundary loop, since the convex hull alone isn't the region
// spec.md's containment test refers to.
func (t *Triangulation) ContainsPoint(p types.Point, eps float64) bool {
	if len(t.boundaryLoop) < 3 {
		return false
	}
	return validation.PolygonContains(t.boundaryLoop, p, eps)
}
