package cdt

import "github.com/delaunaygo/dcdt/types"

// insertVertex runs the shared point-location-then-insert sequence used by
// both the driver's bulk loop and the incremental AddPoint edit.
func (t *Triangulation) insertVertex(r types.VertexID) error {
	seed := t.seedVertex(t.points[r])
	tri, flag, err := t.locator().Locate(seed, t.points[r])
	if err != nil {
		return err
	}
	if err := t.idx.AddPointBowyerWatson(t.points, r, tri, flag, t.cfg.strictDuplicates); err != nil {
		return err
	}
	if len(t.idx.graph[r]) == 0 {
		return nil // r duplicated an existing vertex and was silently skipped
	}
	t.inserted = append(t.inserted, r)
	t.lastIns = r
	if !t.cfg.recomputeRepresentativePoint {
		t.accumulateRepresentativePoint(t.points[r])
	}
	t.hull = nil // stale until the next GetConvexHull recomputes it
	return nil
}

func (t *Triangulation) seedVertex(q types.Point) types.VertexID {
	if t.cfg.tryLastInsertedPoint && t.lastIns != 0 {
		return t.lastIns
	}
	return t.locator().SelectInitialPoint(q, nil, t.cfg.numSampleRule)
}

// AddPoint appends p to the point store and inserts it into the
// triangulation (the add_point! operation of spec.md §6), returning its new
// vertex index.
func (t *Triangulation) AddPoint(p types.Point) (types.VertexID, error) {
	r := types.VertexID(len(t.points))
	t.points = append(t.points, p)
	if err := t.insertVertex(r); err != nil {
		t.points = t.points[:r]
		return 0, err
	}
	return r, nil
}

// AddEdge forces edge (u,v) into the triangulation and marks it as a user
// constraint (the add_edge! operation of spec.md §6).
func (t *Triangulation) AddEdge(u, v types.VertexID) error {
	return t.idx.AddEdge(t.points, u, v, true)
}

// FlipEdge flips the diagonal shared by the two triangles incident to
// (u,v) (the flip_edge! operation).
func (t *Triangulation) FlipEdge(u, v types.VertexID) error {
	_, _, err := t.idx.FlipEdge(u, v)
	return err
}

// LegaliseEdge re-legalises (u,v) and its neighbourhood (the
// legalise_edge! operation). r is accepted for interface symmetry with
// spec.md §6's legalise_edge!(tri, u, v, r) but is not needed by this
// index's incircle test, which reads opposite vertices directly from the
// topology.
func (t *Triangulation) LegaliseEdge(u, v, r types.VertexID) error {
	_ = r
	return t.idx.LegaliseEdge(t.points, u, v)
}

// SplitTriangle inserts new point p strictly inside triangle (a,b,c),
// skipping point location since the caller already knows the containing
// triangle (the split_triangle! operation).
func (t *Triangulation) SplitTriangle(a, b, c types.VertexID, p types.Point) (types.VertexID, error) {
	r := types.VertexID(len(t.points))
	t.points = append(t.points, p)
	tri := types.NewTriangle(a, b, c)
	if err := t.idx.AddPointBowyerWatson(t.points, r, tri, Inside, t.cfg.strictDuplicates); err != nil {
		t.points = t.points[:r]
		return 0, err
	}
	t.inserted = append(t.inserted, r)
	t.lastIns = r
	t.accumulateRepresentativePoint(p)
	t.hull = nil
	return r, nil
}

// SplitEdge inserts new point p exactly on edge (u,v), replacing it with
// (u,p) and (p,v) — constrained the same way (u,v) was, if it was
// constrained (the split_edge! operation).
func (t *Triangulation) SplitEdge(u, v types.VertexID, p types.Point) (types.VertexID, error) {
	k := t.idx.GetAdjacent(u, v)
	if k == noVertex {
		k = t.idx.GetAdjacent(v, u)
		u, v = v, u
	}
	if k == noVertex {
		return 0, &InternalInvariantError{
			Reason:  "split_edge: edge is not part of the triangulation",
			Indices: []types.VertexID{u, v},
		}
	}

	r := types.VertexID(len(t.points))
	t.points = append(t.points, p)
	tri := types.NewTriangle(u, v, k)
	if err := t.idx.AddPointBowyerWatson(t.points, r, tri, On, t.cfg.strictDuplicates); err != nil {
		t.points = t.points[:r]
		return 0, err
	}
	t.inserted = append(t.inserted, r)
	t.lastIns = r
	t.accumulateRepresentativePoint(p)
	t.hull = nil
	return r, nil
}

// DeletePoint removes vertex v and its incident triangles, then
// re-triangulates the resulting star-shaped hole by fanning from one of its
// boundary vertices and legalising the new interior edges (the
// delete_point! operation). v must not be an endpoint of a constrained
// edge.
func (t *Triangulation) DeletePoint(v types.VertexID) error {
	for _, e := range t.idx.ConstrainedEdges() {
		if e.V1() == v || e.V2() == v {
			return &ConstraintViolationError{U: v, V: v, Reason: "vertex is an endpoint of a constrained edge"}
		}
	}

	ring, err := t.idx.starRing(v)
	if err != nil {
		return err
	}
	if err := t.idx.deleteStar(v, ring); err != nil {
		return err
	}

	apex := ring[0]
	var newEdges []DirectedEdge
	for i := 1; i+1 < len(ring); i++ {
		b, c := ring[i], ring[i+1]
		if err := t.idx.AddTriangle(apex, b, c, true); err != nil {
			return err
		}
		newEdges = append(newEdges, DirectedEdge{U: apex, V: b}, DirectedEdge{U: b, V: c}, DirectedEdge{U: c, V: apex})
	}
	for _, e := range newEdges {
		if err := t.idx.LegaliseEdge(t.points, e.U, e.V); err != nil {
			return err
		}
	}

	for i, id := range t.inserted {
		if id == v {
			t.inserted = append(t.inserted[:i], t.inserted[i+1:]...)
			break
		}
	}
	t.hull = nil
	return nil
}

// LockConvexHull promotes every current hull edge to a (non-user)
// constraint, so later insertion and legalisation never flip it away.
func (t *Triangulation) LockConvexHull() {
	hull := t.GetConvexHull()
	for i := range hull {
		u, v := hull[i], hull[(i+1)%len(hull)]
		t.idx.AddConstraint(u, v, false)
	}
	t.hullLocked = true
}

// UnlockConvexHull removes the automatic hull constraints LockConvexHull
// added, leaving any user constraints on those edges untouched.
func (t *Triangulation) UnlockConvexHull() {
	hull := t.GetConvexHull()
	for i := range hull {
		u, v := hull[i], hull[(i+1)%len(hull)]
		if !t.idx.IsUserConstrained(u, v) {
			t.idx.DeleteConstraint(u, v)
		}
	}
	t.hullLocked = false
}

// ClearEmptyFeatures resets representative-point accumulation if no
// triangles remain (the clear_empty_features! operation). With a single
// connected region this is the only degenerate case to reclaim.
func (t *Triangulation) ClearEmptyFeatures() {
	if t.idx.NumTriangles() == 0 {
		t.repPoint = types.Point{}
		t.repCount = 0
	}
}

// DeleteGhostTriangles removes every ghost triangle (the
// delete_ghost_triangles! operation). The convex hull, once read via
// GetConvexHull, remains valid afterward.
func (t *Triangulation) DeleteGhostTriangles() error {
	t.hull = t.GetConvexHull()
	return t.idx.DeleteGhostTriangles()
}

// AddGhostTriangles restores any missing ghost fronts along the boundary
// (the add_ghost_triangles! operation).
func (t *Triangulation) AddGhostTriangles() error {
	t.hull = nil
	return t.idx.AddGhostTriangles()
}

// ComputeRepresentativePoints recomputes the representative point from
// scratch over every currently inserted vertex (the
// compute_representative_points! operation).
func (t *Triangulation) ComputeRepresentativePoints() {
	t.repPoint = types.Point{}
	t.repCount = 0
	for _, v := range t.inserted {
		t.accumulateRepresentativePoint(t.points[v])
	}
}
