package intersections

import (
	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// SegmentIntersection computes the intersection of two segments given by coordinates.
func SegmentIntersection(p1, p2, p3, p4 types.Point, eps float64) (types.Point, types.IntersectionType) {
	return predicates.SegmentIntersectionPoint(p1, p2, p3, p4, eps)
}
