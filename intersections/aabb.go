package intersections

import (
	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// TriangleIntersectsAABB tests if a triangle intersects an AABB.
func TriangleIntersectsAABB(a, b, c types.Point, box types.AABB, eps float64) bool {
	return predicates.TriangleAABBIntersect(a, b, c, box, eps)
}

// TrianglesIntersectAABB tests if any of the given triangles intersects an AABB.
func TrianglesIntersectAABB(triangles []types.Triangle, vp types.VertexProvider, box types.AABB, eps float64) bool {
	for _, tri := range triangles {
		a, b, c := vp.GetVertex(tri.V1()), vp.GetVertex(tri.V2()), vp.GetVertex(tri.V3())
		if predicates.TriangleAABBIntersect(a, b, c, box, eps) {
			return true
		}
	}
	return false
}
