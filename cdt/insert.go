package cdt

import (
	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// digCavity implements the recursive cavity excavation of spec.md §4.4,
// converted to an explicit work stack per spec.md §9 so its depth is
// bounded by the cavity size rather than Go's default stack growth.
// Grounded in *style* on the teacher's legalize.go BFS-frontier pattern,
// though the algorithm itself — recursive delete-and-retriangulate rather
// than insert-then-flip — is different from the teacher's insert_point.go.
//
// The ghost vertex is handled uniformly, not as a special case: when one of
// the circle's three defining points is the ghost vertex, the circumcircle
// test degenerates to the half-plane test predicates.InCircleGhostLast
// describes, which is exactly what makes the same recursion widen the
// triangle fan around the ghost vertex when r lies outside the convex hull.
func (idx *Index) digCavity(points []types.Point, r, i, j types.VertexID) error {
	type frame struct{ i, j types.VertexID }
	stack := []frame{{i, j}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := f.i, f.j

		l := idx.GetAdjacent(j, i)
		if l == noVertex {
			// The edge opposite l has already been consumed by a sibling
			// branch of the recursion; nothing left to do here.
			continue
		}

		if l != idx.ghost && !idx.IsConstrained(i, j) && idx.inCircleAware(points, r, i, j, l) {
			if err := idx.DeleteTriangle(j, i, l, true, false); err != nil {
				return err
			}
			stack = append(stack, frame{i, l}, frame{l, j})
			continue
		}

		if i != idx.ghost && j != idx.ghost && collinearBetween(points[i], points[j], points[r]) {
			// Degenerate triangle guard (spec.md §4.4 step 4): r sits
			// exactly on edge (i,j), usually because (i,j) is a
			// constrained edge that blocked recursion above. The caller
			// (AddPointBowyerWatson) is responsible for excavating the far
			// side of that edge and splitting the constraint.
			continue
		}

		if err := idx.AddTriangle(r, i, j, false); err != nil {
			return err
		}
	}
	return nil
}

// inCircleAware evaluates incircle(r,i,j,l), reducing to the ghost
// half-plane convention when i or j is the ghost vertex (l is guaranteed
// real by the caller).
func (idx *Index) inCircleAware(points []types.Point, r, i, j, l types.VertexID) bool {
	switch idx.ghost {
	case i:
		// (r,i,j) cyclically rotated to bring ghost last: (j,r,i) -> (j,r,ghost).
		return predicates.InCircleGhostLast(points[j], points[r], points[l]) == predicates.CircleInside
	case j:
		return predicates.InCircleGhostLast(points[r], points[i], points[l]) == predicates.CircleInside
	default:
		return predicates.InCircle(points[r], points[i], points[j], points[l]) == predicates.CircleInside
	}
}

func collinearBetween(a, b, p types.Point) bool {
	if predicates.PointVsLine(a, b, p) != predicates.Collinear {
		return false
	}
	return predicates.PointPositionOnLineSegment(a, b, p) == predicates.SegmentPointOn
}

// duplicateVertex reports the real vertex of v that coincides with r's
// point, if any.
func (idx *Index) duplicateVertex(points []types.Point, r types.VertexID, v types.Triangle) (types.VertexID, bool) {
	for _, vert := range v {
		if vert == idx.ghost {
			continue
		}
		if points[vert] == points[r] {
			return vert, true
		}
	}
	return 0, false
}

// supportingEdge finds the real edge of v that r (known collinear with it)
// lies on, for flag == On locations.
func (idx *Index) supportingEdge(points []types.Point, r types.VertexID, v types.Triangle) (types.VertexID, types.VertexID) {
	verts := [3]types.VertexID{v[0], v[1], v[2]}
	for e := 0; e < 3; e++ {
		a, b := verts[e], verts[(e+1)%3]
		if a == idx.ghost || b == idx.ghost {
			continue
		}
		if predicates.PointVsLine(points[a], points[b], points[r]) == predicates.Collinear {
			return a, b
		}
	}
	return noVertex, noVertex
}

// AddPointBowyerWatson inserts vertex r, already known to sit at flag's
// position relative to triangle v, into the triangulation (spec.md §4.4).
// strictDuplicates controls whether a coincident existing vertex is an
// error (true) or a silent no-op (false, the default per spec.md §7).
func (idx *Index) AddPointBowyerWatson(points []types.Point, r types.VertexID, v types.Triangle, flag PointFlag, strictDuplicates bool) error {
	if flag != Outside {
		if existing, ok := idx.duplicateVertex(points, r, v); ok {
			if strictDuplicates {
				return &DuplicatePointError{Point: points[r], Existing: existing}
			}
			return nil
		}
	}

	var onU, onV types.VertexID
	var onConstrained bool
	var farApex types.VertexID = noVertex
	if flag == On {
		onU, onV = idx.supportingEdge(points, r, v)
		if onU != noVertex {
			onConstrained = idx.IsConstrained(onU, onV)
			// Capture the far side's apex (real vertex or the ghost
			// sentinel) before anything is deleted; dig_cavity never looks
			// at it on its own because the supporting edge blocks recursion
			// from v's side.
			farApex = idx.GetAdjacent(onV, onU)
		}
	}

	a, b, c := v[0], v[1], v[2]
	if err := idx.DeleteTriangle(a, b, c, true, false); err != nil {
		return err
	}
	for _, e := range [3][2]types.VertexID{{a, b}, {b, c}, {c, a}} {
		if err := idx.digCavity(points, r, e[0], e[1]); err != nil {
			return err
		}
	}

	if flag == On && onU != noVertex {
		switch {
		case onConstrained:
			if farApex != noVertex {
				if err := idx.DeleteTriangle(onV, onU, farApex, true, false); err != nil {
					return err
				}
				if err := idx.digCavity(points, r, onU, farApex); err != nil {
					return err
				}
				if err := idx.digCavity(points, r, farApex, onV); err != nil {
					return err
				}
			}
			idx.DeleteConstraint(onU, onV)
			idx.AddConstraint(onU, r, true)
			idx.AddConstraint(r, onV, true)

		case farApex == idx.ghost:
			// Unconstrained boundary edge: (onU,onV) fronted the unbounded
			// face before the split. That front no longer fronts anything
			// once r sits between onU and onV, so it is replaced with fresh
			// fronts over (onU,r) and (r,onV) to keep I5 holding.
			if err := idx.DeleteTriangle(onV, onU, idx.ghost, false, false); err != nil {
				return err
			}
			if err := idx.addGhostTriangle(r, onU); err != nil {
				return err
			}
			if err := idx.addGhostTriangle(onV, r); err != nil {
				return err
			}

		case farApex != noVertex && idx.HasTriangle(onV, onU, farApex):
			// Unconstrained interior edge whose far triangle digCavity did
			// not already excavate: without excavating it, r would sit as a
			// T-junction on an edge of a triangle it isn't a vertex of.
			if err := idx.DeleteTriangle(onV, onU, farApex, true, false); err != nil {
				return err
			}
			if err := idx.digCavity(points, r, onU, farApex); err != nil {
				return err
			}
			if err := idx.digCavity(points, r, farApex, onV); err != nil {
				return err
			}
		}
	}

	return nil
}
