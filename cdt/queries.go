package cdt

import (
	"github.com/delaunaygo/dcdt/intersections"
	"github.com/delaunaygo/dcdt/types"
)

// GetVertex resolves v to its coordinates, satisfying types.VertexProvider.
func (t *Triangulation) GetVertex(v types.VertexID) types.Point { return t.points[v] }

// GetAdjacent returns the vertex w such that (u,v,w) is a triangle, or the
// empty sentinel if (u,v) has no recorded opposite vertex.
func (t *Triangulation) GetAdjacent(u, v types.VertexID) types.VertexID {
	return t.idx.GetAdjacent(u, v)
}

// GetNeighbours returns the vertices adjacent to v in the undirected graph,
// ghost included if v borders the hull.
func (t *Triangulation) GetNeighbours(v types.VertexID) []types.VertexID {
	return t.idx.Neighbours(v)
}

// SolidTriangles returns every triangle with no ghost vertex.
func (t *Triangulation) SolidTriangles() []types.Triangle { return t.idx.SolidTriangles() }

// GhostTriangles returns every triangle containing the ghost vertex, in
// (v,u,ghost) storage form.
func (t *Triangulation) GhostTriangles() []types.Triangle { return t.idx.GhostTriangles() }

// SolidEdges enumerates the undirected edges of every solid triangle, each
// edge reported once.
func (t *Triangulation) SolidEdges() []types.Edge {
	seen := make(map[types.Edge]struct{})
	for _, tri := range t.idx.SolidTriangles() {
		for _, e := range tri.Edges() {
			seen[e] = struct{}{}
		}
	}
	out := make([]types.Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	return out
}

// GhostEdges enumerates the undirected edges of every ghost triangle,
// including the ghost vertex itself, each edge reported once.
func (t *Triangulation) GhostEdges() []types.Edge {
	seen := make(map[types.Edge]struct{})
	for _, tri := range t.idx.GhostTriangles() {
		for _, e := range tri.Edges() {
			seen[e] = struct{}{}
		}
	}
	out := make([]types.Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	return out
}

// SolidVertices returns every real vertex currently part of the
// triangulation.
func (t *Triangulation) SolidVertices() []types.VertexID {
	out := make([]types.VertexID, len(t.inserted))
	copy(out, t.inserted)
	return out
}

// ConstrainedEdges returns every edge in the all-constraints set.
func (t *Triangulation) ConstrainedEdges() []types.Edge { return t.idx.ConstrainedEdges() }

// UserConstrainedEdges returns every edge in the user-constraints set.
func (t *Triangulation) UserConstrainedEdges() []types.Edge {
	out := make([]types.Edge, 0)
	for _, e := range t.idx.ConstrainedEdges() {
		if t.idx.IsUserConstrained(e.V1(), e.V2()) {
			out = append(out, e)
		}
	}
	return out
}

// GetConvexHull returns the ordered cyclic sequence of vertex indices on the
// current outer boundary.
func (t *Triangulation) GetConvexHull() []types.VertexID {
	if t.hull != nil {
		return t.hull
	}
	return t.idx.ConvexHull()
}

// IsDelaunay reports whether every unconstrained interior edge currently
// satisfies the Delaunay criterion. Intended for tests and diagnostics.
func (t *Triangulation) IsDelaunay() bool { return t.idx.IsDelaunay(t.points) }

// TrianglesInRegion returns every solid triangle whose extent intersects box,
// a coarse region query useful for rendering or incremental re-meshing over
// a bounded area rather than the whole triangulation.
func (t *Triangulation) TrianglesInRegion(box types.AABB, eps float64) []types.Triangle {
	var out []types.Triangle
	for _, tri := range t.idx.SolidTriangles() {
		if intersections.TriangleIntersectsAABB(t.points[tri.V1()], t.points[tri.V2()], t.points[tri.V3()], box, eps) {
			out = append(out, tri)
		}
	}
	return out
}
