package cdt

import (
	"sort"

	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// AddEdge forces edge (u,v) to exist in the triangulation and marks it
// constrained, splitting on any vertex that already lies exactly on the
// segment and using the Lawson channel algorithm — repeatedly flipping
// edges that cross the segment — to create it otherwise. Grounded on the
// teacher's constraint.go InsertConstraintEdge/forceEdge, adapted from the
// TriID+EdgeKey model to the map-based Index and from a hand-rolled
// intersection test to predicates.SegmentMeet.
//
// user marks whether this is a caller-supplied constraint (landing in both
// constrained-edge sets) or one promoted automatically, e.g. by hull or
// hole bookkeeping (landing only in all-constraints, per I6).
func (idx *Index) AddEdge(points []types.Point, u, v types.VertexID, user bool) error {
	if u == v {
		return &ConstraintViolationError{U: u, V: v, Reason: "zero-length constraint edge"}
	}

	if idx.GetAdjacent(u, v) != noVertex || idx.GetAdjacent(v, u) != noVertex {
		idx.AddConstraint(u, v, user)
		return nil
	}

	if onSegment := idx.verticesOnSegment(points, u, v); len(onSegment) > 0 {
		current := u
		for _, mid := range onSegment {
			if err := idx.AddEdge(points, current, mid, user); err != nil {
				return err
			}
			current = mid
		}
		if err := idx.AddEdge(points, current, v, user); err != nil {
			return err
		}
		// The sub-segments already carry the constraint; (u,v) itself was
		// never a triangulation edge and needn't be recorded separately.
		return nil
	}

	if err := idx.forceEdge(points, u, v); err != nil {
		return err
	}
	idx.AddConstraint(u, v, user)
	return nil
}

// verticesOnSegment returns the real vertices, other than u and v, that lie
// strictly between them on segment (u,v), ordered by distance from u.
// Grounded on the teacher's SplitConstraintByVertices.
func (idx *Index) verticesOnSegment(points []types.Point, u, v types.VertexID) []types.VertexID {
	pu, pv := points[u], points[v]
	type hit struct {
		id   types.VertexID
		dist float64
	}
	var hits []hit
	for w := range idx.graph {
		if w == u || w == v || w == idx.ghost {
			continue
		}
		p := points[w]
		if predicates.PointVsLine(pu, pv, p) != predicates.Collinear {
			continue
		}
		if predicates.PointPositionOnLineSegment(pu, pv, p) != predicates.SegmentPointOn {
			continue
		}
		dx, dy := p.X-pu.X, p.Y-pu.Y
		hits = append(hits, hit{w, dx*dx + dy*dy})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]types.VertexID, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}
	return out
}

// forceEdge repeatedly flips edges that properly cross segment (u,v) until
// (u,v) becomes a triangulation edge. Grounded on the teacher's forceEdge.
func (idx *Index) forceEdge(points []types.Point, u, v types.VertexID) error {
	queue := idx.findCrossingEdges(points, u, v)
	maxFlips := 3*idx.NumTriangles() + 64

	for flips := 0; len(queue) > 0; {
		e := queue[0]
		queue = queue[1:]

		k := idx.GetAdjacent(e.U, e.V)
		l := idx.GetAdjacent(e.V, e.U)
		if k == noVertex || l == noVertex || k == idx.ghost || l == idx.ghost {
			continue
		}
		if idx.IsConstrained(e.U, e.V) {
			return &ConstraintViolationError{U: u, V: v, Reason: "crosses an existing constrained edge"}
		}

		newK, newL, err := idx.FlipEdge(e.U, e.V)
		if err != nil {
			continue
		}
		flips++
		if flips > maxFlips {
			return &ConstraintViolationError{U: u, V: v, Reason: "exceeded maximum flip count while forcing edge"}
		}

		for _, cand := range [4]DirectedEdge{
			{U: e.U, V: newK}, {U: newK, V: e.V},
			{U: e.V, V: newL}, {U: newL, V: e.U},
		} {
			if idx.crossesSegment(points, cand.U, cand.V, u, v) {
				queue = append(queue, cand)
			}
		}
	}

	if idx.GetAdjacent(u, v) == noVertex && idx.GetAdjacent(v, u) == noVertex {
		return &ConstraintViolationError{U: u, V: v, Reason: "failed to create edge after forcing"}
	}
	return nil
}

func (idx *Index) findCrossingEdges(points []types.Point, u, v types.VertexID) []DirectedEdge {
	var out []DirectedEdge
	seen := make(map[types.Edge]bool)
	for e := range idx.adjacent {
		canon := types.NewEdge(e.U, e.V)
		if seen[canon] {
			continue
		}
		seen[canon] = true
		if idx.crossesSegment(points, e.U, e.V, u, v) {
			out = append(out, e)
		}
	}
	return out
}

// crossesSegment reports whether edge (a,b) properly crosses segment (u,v):
// a transversal intersection, not a shared endpoint or collinear overlap.
func (idx *Index) crossesSegment(points []types.Point, a, b, u, v types.VertexID) bool {
	if a == idx.ghost || b == idx.ghost {
		return false
	}
	if a == u || a == v || b == u || b == v {
		return false
	}
	return predicates.SegmentMeet(points[a], points[b], points[u], points[v]) == predicates.SegmentSingle
}
