package intersections

import (
	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// PointInTriangleSet tests if a point is inside any of the given triangles.
func PointInTriangleSet(p types.Point, triangles []types.Triangle, vp types.VertexProvider, eps float64) bool {
	for _, tri := range triangles {
		a, b, c := vp.GetVertex(tri.V1()), vp.GetVertex(tri.V2()), vp.GetVertex(tri.V3())
		if predicates.PointInTriangle(p, a, b, c, eps) {
			return true
		}
	}
	return false
}
