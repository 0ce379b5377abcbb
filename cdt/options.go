package cdt

import (
	"math/rand"

	"github.com/delaunaygo/dcdt/types"
)

// Option configures a call to Triangulate. Grounded in style on the
// mesh package's functional-options pattern (mesh/options.go).
type Option func(*config)

// WithRandomise shuffles the point order before insertion using the
// configured random source (or one seeded with 1 if none is given).
func WithRandomise(enable bool) Option {
	return func(c *config) { c.randomise = enable }
}

// WithDeleteGhosts removes ghost triangles from the finished triangulation.
func WithDeleteGhosts(enable bool) Option {
	return func(c *config) { c.deleteGhosts = enable }
}

// WithDeleteEmptyFeatures clears representative-point slots left empty by
// regions that ended up degenerate.
func WithDeleteEmptyFeatures(enable bool) Option {
	return func(c *config) { c.deleteEmptyFeatures = enable }
}

// WithTryLastInsertedPoint seeds each point location walk from the
// previously inserted vertex instead of resampling; on by default since
// insertion order is usually spatially coherent.
func WithTryLastInsertedPoint(enable bool) Option {
	return func(c *config) { c.tryLastInsertedPoint = enable }
}

// WithSkipPoints excludes the given indices from insertion entirely.
func WithSkipPoints(skip []types.VertexID) Option {
	return func(c *config) {
		c.skipPoints = make(map[types.VertexID]struct{}, len(skip))
		for _, v := range skip {
			c.skipPoints[v] = struct{}{}
		}
	}
}

// WithNumSampleRule overrides the seed-candidate-count rule used by point
// location (default NumSampleRule).
func WithNumSampleRule(rule func(int) int) Option {
	return func(c *config) {
		if rule != nil {
			c.numSampleRule = rule
		}
	}
}

// WithRNG supplies the explicit random source every randomised operation
// draws from (point-order shuffle, sample selection, walk tie-breaks). The
// triangulation never reaches for package-level math/rand.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithPointOrder supplies a precomputed insertion order, overriding
// WithRandomise and WithSkipPoints.
func WithPointOrder(order []types.VertexID) Option {
	return func(c *config) { c.pointOrder = order }
}

// WithRecomputeRepresentativePoint recomputes representative points from
// scratch (rather than trusting the incrementally accumulated centroid) once
// insertion finishes.
func WithRecomputeRepresentativePoint(enable bool) Option {
	return func(c *config) { c.recomputeRepresentativePoint = enable }
}

// WithConstrainedEdges requests a constrained Delaunay triangulation: each
// edge is forced into the mesh and marked as a user constraint after the
// unconstrained triangulation completes.
func WithConstrainedEdges(edges []types.Edge) Option {
	return func(c *config) { c.constrainedEdges = edges }
}

// WithBoundaryNodes supplies a cyclic vertex sequence whose consecutive
// edges are forced and constrained as the triangulation's outer boundary.
func WithBoundaryNodes(nodes []types.VertexID) Option {
	return func(c *config) { c.boundaryNodes = nodes }
}

// WithStrictDuplicates turns a point that coincides with an existing vertex
// into a DuplicatePoint error instead of a silent no-op.
func WithStrictDuplicates(enable bool) Option {
	return func(c *config) { c.strictDuplicates = enable }
}

// WithGhostVertex overrides the sentinel vertex index used for the
// unbounded face (default -1).
func WithGhostVertex(ghost types.VertexID) Option {
	return func(c *config) { c.ghost = ghost }
}
