package cdt

import (
	"fmt"

	"github.com/delaunaygo/dcdt/types"
)

// Index is the topological backbone of a triangulation: three mutually
// consistent maps (adjacent, adjacentToVertex, graph) plus the triangle set
// and the two constrained-edge sets, grounded on the teacher's edge-keyed
// reverse index in adjacency.go, generalized from a triangle-ID +
// neighbor-array model to directed-edge-keyed maps over vertex indices.
//
// Ghost triangles participate exactly like solid ones: the ghost vertex is
// a normal (negative) entry in every map. Index never mutates a triangle in
// place — triangles are added whole and deleted whole.
type Index struct {
	ghost types.VertexID

	adjacent         map[DirectedEdge]types.VertexID
	adjacentToVertex map[types.VertexID]map[DirectedEdge]struct{}
	graph            map[types.VertexID]map[types.VertexID]struct{}
	triangles        map[types.Triangle]struct{}

	userConstraints map[types.Edge]struct{}
	allConstraints  map[types.Edge]struct{}
}

// NewIndex creates an empty topology index using ghost as the sentinel
// vertex shared by every unbounded face.
func NewIndex(ghost types.VertexID) *Index {
	return &Index{
		ghost:            ghost,
		adjacent:         make(map[DirectedEdge]types.VertexID),
		adjacentToVertex: make(map[types.VertexID]map[DirectedEdge]struct{}),
		graph:            make(map[types.VertexID]map[types.VertexID]struct{}),
		triangles:        make(map[types.Triangle]struct{}),
		userConstraints:  make(map[types.Edge]struct{}),
		allConstraints:   make(map[types.Edge]struct{}),
	}
}

// Ghost returns the sentinel vertex used for the unbounded face.
func (idx *Index) Ghost() types.VertexID {
	return idx.ghost
}

// storageKey normalizes a triangle to its canonical storage rotation: ghost
// last for ghost triangles, smallest-vertex-first otherwise.
func (idx *Index) storageKey(t types.Triangle) types.Triangle {
	if t.IsGhost(idx.ghost) {
		return t.RotateGhostLast(idx.ghost)
	}
	return t.Canonical()
}

// GetAdjacent returns the vertex w such that (u,v,w) is a triangle of the
// triangulation, or the empty sentinel if edge (u,v) has no recorded
// opposite vertex.
func (idx *Index) GetAdjacent(u, v types.VertexID) types.VertexID {
	if w, ok := idx.adjacent[DirectedEdge{U: u, V: v}]; ok {
		return w
	}
	return noVertex
}

// HasTriangle reports whether (u,v,w) (in this exact winding) is currently a
// triangle of the triangulation.
func (idx *Index) HasTriangle(u, v, w types.VertexID) bool {
	return idx.GetAdjacent(u, v) == w && idx.GetAdjacent(v, w) == u && idx.GetAdjacent(w, u) == v
}

// AddTriangle registers (u,v,w) as a positively-wound triangle: it writes
// the three adjacent entries, the three adjacent-to-vertex memberships, and
// the three undirected graph edges. If updateGhostEdges is set and an edge
// of the new triangle has no opposite solid neighbor, the matching ghost
// triangle is created or left alone if already present, and a ghost
// triangle that occupied one of the new triangle's own edges is replaced,
// maintaining I5.
//
// AddTriangle fails without mutating the index if any of the three directed
// edges already has a different recorded opposite vertex (other than a ghost
// front being replaced as above).
func (idx *Index) AddTriangle(u, v, w types.VertexID, updateGhostEdges bool) error {
	edges := [3]DirectedEdge{{U: u, V: v}, {U: v, V: w}, {U: w, V: u}}
	opp := [3]types.VertexID{w, u, v}
	tri := types.Triangle{u, v, w}
	refreshGhosts := updateGhostEdges && !tri.IsGhost(idx.ghost)

	for i, e := range edges {
		if existing, ok := idx.adjacent[e]; ok && existing != opp[i] && !(refreshGhosts && existing == idx.ghost) {
			return &InternalInvariantError{
				Reason:  fmt.Sprintf("add_triangle(%d,%d,%d): edge (%d,%d) already maps to %d", u, v, w, e.U, e.V, existing),
				Indices: []types.VertexID{u, v, w},
			}
		}
	}
	if refreshGhosts {
		for _, e := range edges {
			if existing, ok := idx.adjacent[e]; ok && existing == idx.ghost {
				// e fronted the unbounded face; the new triangle takes its place.
				idx.removeGhostTriangle(e.U, e.V)
			}
		}
	}

	for i, e := range edges {
		idx.adjacent[e] = opp[i]
		idx.addAdjacentToVertex(opp[i], e)
	}
	idx.addGraphEdge(u, v)
	idx.addGraphEdge(v, w)
	idx.addGraphEdge(w, u)
	idx.triangles[idx.storageKey(tri)] = struct{}{}

	if updateGhostEdges && !tri.IsGhost(idx.ghost) {
		for _, e := range edges {
			rev := e.Reversed()
			if _, ok := idx.adjacent[rev]; !ok {
				// (e.V, e.U) has no neighbor on the other side: it is now a
				// boundary edge and must be fronted by a ghost triangle.
				if err := idx.addGhostTriangle(e.V, e.U); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addGhostTriangle installs (v,u,ghost) for newly exposed boundary edge
// (u,v); it is a no-op if the ghost triangle already exists.
func (idx *Index) addGhostTriangle(v, u types.VertexID) error {
	if idx.HasTriangle(v, u, idx.ghost) {
		return nil
	}
	edges := [3]DirectedEdge{{U: v, V: u}, {U: u, V: idx.ghost}, {U: idx.ghost, V: v}}
	opp := [3]types.VertexID{idx.ghost, v, u}
	for i, e := range edges {
		idx.adjacent[e] = opp[i]
		idx.addAdjacentToVertex(opp[i], e)
	}
	idx.addGraphEdge(v, u)
	idx.addGraphEdge(u, idx.ghost)
	idx.addGraphEdge(idx.ghost, v)
	idx.triangles[idx.storageKey(types.Triangle{v, u, idx.ghost})] = struct{}{}
	return nil
}

// DeleteTriangle removes (u,v,w) from the index: the reverse of AddTriangle.
// With protectBoundary set, any ghost triangle that would otherwise be
// implied stale by this deletion is left in place; the driver uses this
// while a cavity is transiently open across several calls.
func (idx *Index) DeleteTriangle(u, v, w types.VertexID, protectBoundary, updateGhostEdges bool) error {
	if !idx.HasTriangle(u, v, w) {
		return &InternalInvariantError{
			Reason:  fmt.Sprintf("delete_triangle(%d,%d,%d): triangle not present", u, v, w),
			Indices: []types.VertexID{u, v, w},
		}
	}

	edges := [3]DirectedEdge{{U: u, V: v}, {U: v, V: w}, {U: w, V: u}}
	opp := [3]types.VertexID{w, u, v}
	tri := types.Triangle{u, v, w}

	delete(idx.triangles, idx.storageKey(tri))
	for i, e := range edges {
		delete(idx.adjacent, e)
		idx.removeAdjacentToVertex(opp[i], e)
	}
	idx.removeGraphEdge(u, v)
	idx.removeGraphEdge(v, w)
	idx.removeGraphEdge(w, u)

	if updateGhostEdges && !protectBoundary && !tri.IsGhost(idx.ghost) {
		for _, e := range edges {
			// If the far side used to be fronted by a ghost triangle, that
			// ghost triangle's sole solid neighbor is now gone and it must
			// be removed too.
			if opp, ok := idx.adjacent[e.Reversed()]; ok && opp == idx.ghost {
				idx.removeGhostTriangle(e.V, e.U)
			}
		}
	}

	return nil
}

// removeGhostTriangle removes ghost triangle (v,u,ghost), the front for
// boundary edge (u,v), without cascading further ghost bookkeeping.
func (idx *Index) removeGhostTriangle(v, u types.VertexID) {
	if !idx.HasTriangle(v, u, idx.ghost) {
		return
	}
	edges := [3]DirectedEdge{{U: v, V: u}, {U: u, V: idx.ghost}, {U: idx.ghost, V: v}}
	opp := [3]types.VertexID{idx.ghost, v, u}
	delete(idx.triangles, idx.storageKey(types.Triangle{v, u, idx.ghost}))
	for i, e := range edges {
		delete(idx.adjacent, e)
		idx.removeAdjacentToVertex(opp[i], e)
	}
	idx.removeGraphEdge(v, u)
	idx.removeGraphEdge(u, idx.ghost)
	idx.removeGraphEdge(idx.ghost, v)
}

func (idx *Index) addAdjacentToVertex(w types.VertexID, e DirectedEdge) {
	set, ok := idx.adjacentToVertex[w]
	if !ok {
		set = make(map[DirectedEdge]struct{})
		idx.adjacentToVertex[w] = set
	}
	set[e] = struct{}{}
}

func (idx *Index) removeAdjacentToVertex(w types.VertexID, e DirectedEdge) {
	set, ok := idx.adjacentToVertex[w]
	if !ok {
		return
	}
	delete(set, e)
	if len(set) == 0 {
		delete(idx.adjacentToVertex, w)
	}
}

func (idx *Index) addGraphEdge(a, b types.VertexID) {
	idx.addHalfGraphEdge(a, b)
	idx.addHalfGraphEdge(b, a)
}

func (idx *Index) addHalfGraphEdge(a, b types.VertexID) {
	set, ok := idx.graph[a]
	if !ok {
		set = make(map[types.VertexID]struct{})
		idx.graph[a] = set
	}
	set[b] = struct{}{}
}

func (idx *Index) removeGraphEdge(a, b types.VertexID) {
	idx.removeHalfGraphEdge(a, b)
	idx.removeHalfGraphEdge(b, a)
}

func (idx *Index) removeHalfGraphEdge(a, b types.VertexID) {
	set, ok := idx.graph[a]
	if !ok {
		return
	}
	delete(set, b)
	if len(set) == 0 {
		delete(idx.graph, a)
	}
}

// Neighbours returns the (solid and ghost) vertices adjacent to v in the
// undirected graph.
func (idx *Index) Neighbours(v types.VertexID) []types.VertexID {
	set := idx.graph[v]
	out := make([]types.VertexID, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	return out
}

// IncidentEdges returns the directed edges (u,v) such that adjacent[(u,v)]
// == w, for w == v.
func (idx *Index) IncidentEdges(v types.VertexID) []DirectedEdge {
	set := idx.adjacentToVertex[v]
	out := make([]DirectedEdge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

// NumTriangles returns the number of triangles currently stored, solid and
// ghost combined.
func (idx *Index) NumTriangles() int {
	return len(idx.triangles)
}

// Triangles returns every stored triangle in canonical storage rotation.
func (idx *Index) Triangles() []types.Triangle {
	out := make([]types.Triangle, 0, len(idx.triangles))
	for t := range idx.triangles {
		out = append(out, t)
	}
	return out
}

// SolidTriangles returns every triangle with no ghost vertex.
func (idx *Index) SolidTriangles() []types.Triangle {
	out := make([]types.Triangle, 0, len(idx.triangles))
	for t := range idx.triangles {
		if !t.IsGhost(idx.ghost) {
			out = append(out, t)
		}
	}
	return out
}

// GhostTriangles returns every triangle containing the ghost vertex, in
// (v,u,ghost) storage form.
func (idx *Index) GhostTriangles() []types.Triangle {
	out := make([]types.Triangle, 0)
	for t := range idx.triangles {
		if t.IsGhost(idx.ghost) {
			out = append(out, t)
		}
	}
	return out
}

// RotateGhostTriangleToStandardForm returns t rotated (preserving winding)
// so the ghost vertex, if present, is last.
func (idx *Index) RotateGhostTriangleToStandardForm(t types.Triangle) types.Triangle {
	return t.RotateGhostLast(idx.ghost)
}

// AddConstraint records edge (u,v) as a constraint. When user is true the
// edge is added to both the user-constraints and all-constraints sets
// (I6's stronger promise); boundary-only constraints (hull or hole edges
// promoted automatically) pass user=false and land only in all-constraints.
func (idx *Index) AddConstraint(u, v types.VertexID, user bool) {
	e := types.NewEdge(u, v)
	idx.allConstraints[e] = struct{}{}
	if user {
		idx.userConstraints[e] = struct{}{}
	}
}

// DeleteConstraint removes edge (u,v) from both constrained-edge sets.
func (idx *Index) DeleteConstraint(u, v types.VertexID) {
	e := types.NewEdge(u, v)
	delete(idx.allConstraints, e)
	delete(idx.userConstraints, e)
}

// IsConstrained reports whether (u,v) is a member of all-constraints.
func (idx *Index) IsConstrained(u, v types.VertexID) bool {
	_, ok := idx.allConstraints[types.NewEdge(u, v)]
	return ok
}

// IsUserConstrained reports whether (u,v) is a member of user-constraints.
func (idx *Index) IsUserConstrained(u, v types.VertexID) bool {
	_, ok := idx.userConstraints[types.NewEdge(u, v)]
	return ok
}

// ConstrainedEdges returns every edge in all-constraints.
func (idx *Index) ConstrainedEdges() []types.Edge {
	out := make([]types.Edge, 0, len(idx.allConstraints))
	for e := range idx.allConstraints {
		out = append(out, e)
	}
	return out
}

// starRing returns the ordered ring of vertices surrounding v, traced by
// walking the sequence of triangles (v, ring[i], ring[i+1]) incident to v.
// Used by DeletePoint to find the polygon left behind once v's triangles
// are removed.
func (idx *Index) starRing(v types.VertexID) ([]types.VertexID, error) {
	neighbours := idx.graph[v]
	if len(neighbours) == 0 {
		return nil, &InternalInvariantError{
			Reason:  "delete_point: vertex has no incident triangles",
			Indices: []types.VertexID{v},
		}
	}

	var start types.VertexID
	for n := range neighbours {
		start = n
		break
	}

	ring := []types.VertexID{start}
	cur := start
	limit := len(idx.triangles) + 1
	for {
		next := idx.GetAdjacent(v, cur)
		if next == noVertex {
			return nil, &InternalInvariantError{
				Reason:  "delete_point: incomplete star around vertex",
				Indices: []types.VertexID{v},
			}
		}
		if next == start {
			return ring, nil
		}
		ring = append(ring, next)
		cur = next
		if len(ring) > limit {
			return nil, &InternalInvariantError{
				Reason:  "delete_point: star ring failed to close",
				Indices: []types.VertexID{v},
			}
		}
	}
}

// deleteStar removes every triangle (v, ring[i], ring[i+1]) of v's star.
func (idx *Index) deleteStar(v types.VertexID, ring []types.VertexID) error {
	n := len(ring)
	for i := 0; i < n; i++ {
		b, c := ring[i], ring[(i+1)%n]
		if err := idx.DeleteTriangle(v, b, c, true, false); err != nil {
			return err
		}
	}
	return nil
}
