package predicates

import (
	"math"

	"github.com/delaunaygo/dcdt/types"
)

// PolygonArea returns the signed area of a simple polygon (positive for CCW).
func PolygonArea(poly []types.Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}

// PolygonBounds returns the axis-aligned bounding box of a polygon.
func PolygonBounds(poly []types.Point) types.AABB {
	if len(poly) == 0 {
		return types.AABB{}
	}
	box := types.AABB{Min: poly[0], Max: poly[0]}
	for _, p := range poly[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}

// PolygonSelfIntersects reports whether any non-adjacent edge pair of the
// polygon intersects: a proper crossing, a touch at one point, or a
// collinear overlap.
func PolygonSelfIntersects(poly []types.Point, eps float64) bool {
	n := len(poly)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := poly[i], poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := poly[j], poly[(j+1)%n]
			if intersects, _ := SegmentsIntersect(a1, a2, b1, b2, eps); intersects {
				return true
			}
		}
	}
	return false
}

// PointInPolygonRayCast tests if a point is inside a polygon using ray casting.
func PointInPolygonRayCast(p types.Point, poly []types.Point, eps float64) bool {
	n := len(poly)
	if n == 0 {
		return false
	}

	// Boundary check first.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointOnSegment(p, poly[i], poly[j], eps) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		iP := poly[i]
		jP := poly[j]
		diff := (iP.Y > p.Y) != (jP.Y > p.Y)
		if diff {
			t := (p.Y - iP.Y) / (jP.Y - iP.Y)
			x := iP.X + t*(jP.X-iP.X)
			if x > p.X {
				inside = !inside
			}
		}
	}

	return inside
}

// PolygonContainsPolygon reports whether inner lies entirely within outer:
// every vertex of inner is inside or on outer, and no edge of inner properly
// crosses an edge of outer.
func PolygonContainsPolygon(outer, inner []types.Point, eps float64) bool {
	if len(outer) < 3 || len(inner) < 3 {
		return false
	}

	for _, p := range inner {
		if !PointInPolygonRayCast(p, outer, eps) {
			return false
		}
	}

	no, ni := len(outer), len(inner)
	for i := 0; i < no; i++ {
		a1, a2 := outer[i], outer[(i+1)%no]
		for j := 0; j < ni; j++ {
			b1, b2 := inner[j], inner[(j+1)%ni]
			if intersects, proper := SegmentsIntersect(a1, a2, b1, b2, eps); intersects && proper {
				return false
			}
		}
	}
	return true
}

// PolygonsIntersect reports whether two simple polygons share any area or
// boundary: either an edge pair crosses/touches, or one polygon's vertices
// lie inside the other.
func PolygonsIntersect(a, b []types.Point, eps float64) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}

	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1, b2 := b[j], b[(j+1)%nb]
			if intersects, _ := SegmentsIntersect(a1, a2, b1, b2, eps); intersects {
				return true
			}
		}
	}

	return PointInPolygonRayCast(a[0], b, eps) || PointInPolygonRayCast(b[0], a, eps)
}

// PolygonAABBIntersect tests if a polygon intersects an AABB.
func PolygonAABBIntersect(poly []types.Point, box types.AABB, eps float64) bool {
	n := len(poly)
	if n == 0 {
		return false
	}

	for _, v := range poly {
		if PointInAABB(v, box, eps) {
			return true
		}
	}

	corners := []types.Point{
		{X: box.Min.X, Y: box.Min.Y},
		{X: box.Max.X, Y: box.Min.Y},
		{X: box.Max.X, Y: box.Max.Y},
		{X: box.Min.X, Y: box.Max.Y},
	}

	for _, corner := range corners {
		if PointInPolygonRayCast(corner, poly, eps) {
			return true
		}
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if SegmentAABBIntersect(poly[i], poly[j], box, eps) {
			return true
		}
	}

	return false
}
