package cdt

import (
	"math/rand"

	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
	"github.com/delaunaygo/dcdt/validation"
)

// Triangulate builds a Delaunay triangulation of points (the triangulate
// construction operation of spec.md §6), following the driver shape of
// §4.6: compute point order, seed the initial triangle, insert the
// remaining points one at a time, then reconstruct the hull and apply any
// requested finishing touches. points is 1-based; index 0 is reserved and
// never triangulated, matching the point-index convention of spec.md §3.
//
// Grounded in *shape* on the teacher's builder.go Build pipeline, reduced to
// the steps this spec actually calls for (no PSLG normalisation, flood-fill
// classification, or cover removal — this triangulator has no notion of
// holes or an outer perimeter beyond constrained edges the caller supplies).
func Triangulate(points []types.Point, opts ...Option) (*Triangulation, error) {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	order := pointOrder(len(points), cfg)

	t := &Triangulation{
		idx:    NewIndex(cfg.ghost),
		points: points,
		cfg:    cfg,
	}

	first, rest, err := seedInitialTriangle(points, order)
	if err != nil {
		return nil, err
	}
	if err := t.idx.AddTriangle(first[0], first[1], first[2], true); err != nil {
		return nil, err
	}
	for _, v := range first {
		t.inserted = append(t.inserted, v)
		t.accumulateRepresentativePoint(points[v])
	}
	t.lastIns = first[2]

	for _, r := range rest {
		if err := t.insertVertex(r); err != nil {
			return nil, err
		}
	}

	t.hull = t.idx.ConvexHull()

	if len(cfg.boundaryNodes) >= 3 {
		nodes := cfg.boundaryNodes
		loop := make([]types.Point, len(nodes))
		for i, v := range nodes {
			loop[i] = points[v]
		}
		if err := validation.ValidateBoundaryLoop(loop, types.DefaultEpsilon()); err != nil {
			return nil, &ConstraintViolationError{U: nodes[0], V: nodes[len(nodes)-1], Reason: err.Error()}
		}
		// ValidateBoundaryLoop already rejected self-intersection; this pass
		// adds the winding check the degenerate/crossing checks don't cover,
		// since every other orientation test in this package treats positive
		// area as the canonical direction.
		if err := validation.ValidatePolygonLoop(t, types.PolygonLoop(nodes),
			validation.WithRequireCCW(true), validation.WithAllowSelfIntersection(true)); err != nil {
			return nil, &ConstraintViolationError{U: nodes[0], V: nodes[len(nodes)-1], Reason: err.Error()}
		}
		for i := range nodes {
			u, v := nodes[i], nodes[(i+1)%len(nodes)]
			if err := t.idx.AddEdge(points, u, v, true); err != nil {
				return nil, err
			}
		}
		t.hull = nil
		t.boundaryLoop = loop
	}

	for _, e := range cfg.constrainedEdges {
		if err := t.idx.AddEdge(points, e.V1(), e.V2(), true); err != nil {
			return nil, err
		}
	}

	if cfg.recomputeRepresentativePoint {
		t.ComputeRepresentativePoints()
	}
	if cfg.deleteEmptyFeatures {
		t.ClearEmptyFeatures()
	}
	if cfg.deleteGhosts {
		if t.hull == nil {
			t.hull = t.idx.ConvexHull()
		}
		if err := t.idx.DeleteGhostTriangles(); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// pointOrder computes the initial insertion order of spec.md §4.6 step 1:
// a precomputed order overrides shuffling and the skip set entirely;
// otherwise every index but 0 and the skip set is included, optionally
// shuffled with the configured random source.
func pointOrder(n int, cfg config) []types.VertexID {
	if cfg.pointOrder != nil {
		return cfg.pointOrder
	}

	order := make([]types.VertexID, 0, n-1)
	for i := 1; i < n; i++ {
		v := types.VertexID(i)
		if _, skip := cfg.skipPoints[v]; skip {
			continue
		}
		order = append(order, v)
	}
	if cfg.randomise {
		cfg.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return order
}

// seedInitialTriangle finds the first three non-collinear points in order,
// rotating past any leading collinear run (spec.md §4.6 step 2), and
// returns them as a positively oriented triangle plus the remaining order.
func seedInitialTriangle(points []types.Point, order []types.VertexID) (types.Triangle, []types.VertexID, error) {
	if len(order) < 3 {
		return types.Triangle{}, nil, &DegenerateInputError{NumPoints: len(order)}
	}

	for start := 0; start+2 < len(order); start++ {
		a, b, c := order[start], order[start+1], order[start+2]
		switch predicates.TriangleOrientation(points[a], points[b], points[c]) {
		case predicates.PositivelyOriented:
			return types.NewTriangle(a, b, c), spliceOut(order, start, start+1, start+2), nil
		case predicates.NegativelyOriented:
			return types.NewTriangle(a, c, b), spliceOut(order, start, start+1, start+2), nil
		}
	}
	return types.Triangle{}, nil, &DegenerateInputError{NumPoints: len(order)}
}

// spliceOut returns order with the three given indices removed, preserving
// the relative order of everything else.
func spliceOut(order []types.VertexID, i, j, k int) []types.VertexID {
	drop := map[int]bool{i: true, j: true, k: true}
	out := make([]types.VertexID, 0, len(order)-3)
	for idx, v := range order {
		if !drop[idx] {
			out = append(out, v)
		}
	}
	return out
}
