package predicates

import (
	"github.com/delaunaygo/dcdt/algorithm/robust"
	"github.com/delaunaygo/dcdt/types"
)

// Orientation classifies the signed turn made by three points, per
// robust.Orient2D.
type Orientation int

const (
	PositivelyOriented Orientation = iota
	OrientationDegenerate
	NegativelyOriented
)

func (o Orientation) String() string {
	switch o {
	case PositivelyOriented:
		return "PositivelyOriented"
	case NegativelyOriented:
		return "NegativelyOriented"
	default:
		return "Degenerate"
	}
}

// TriangleOrientation classifies the orientation of triangle (p,q,r). Named
// distinctly from the package's teacher-inherited, epsilon-based Orient (see
// triangle.go) so the two precision tiers never collide under one name.
func TriangleOrientation(p, q, r types.Point) Orientation {
	switch robust.Orient2D(p, q, r) {
	case 1:
		return PositivelyOriented
	case -1:
		return NegativelyOriented
	default:
		return OrientationDegenerate
	}
}

// CirclePosition classifies a point against a circumcircle.
type CirclePosition int

const (
	CircleInside CirclePosition = iota
	CircleOn
	CircleOutside
)

func (c CirclePosition) String() string {
	switch c {
	case CircleInside:
		return "Inside"
	case CircleOutside:
		return "Outside"
	default:
		return "On"
	}
}

// InCircle classifies p against the circumcircle of the positively oriented
// triangle (a,b,c).
func InCircle(a, b, c, p types.Point) CirclePosition {
	switch robust.InCircle(a, b, c, p) {
	case 1:
		return CircleInside
	case -1:
		return CircleOutside
	default:
		return CircleOn
	}
}

// InCircleGhostLast classifies p against the degenerate "circumcircle" of a
// triangle (x,y,ghost) whose third vertex has been sent to infinity. In the
// limit the circumcircle becomes the line through x,y, and the side that
// reads as Inside is the one consistent with (x,y,ghost) being positively
// oriented by convention: the open half-plane left of the directed line x->y.
func InCircleGhostLast(x, y, p types.Point) CirclePosition {
	switch robust.Orient2D(x, y, p) {
	case 1:
		return CircleInside
	case -1:
		return CircleOutside
	default:
		return CircleOn
	}
}

// LinePosition classifies a point against a directed line p->q.
type LinePosition int

const (
	Left LinePosition = iota
	Collinear
	Right
)

func (l LinePosition) String() string {
	switch l {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Collinear"
	}
}

// PointVsLine classifies r against the directed line p->q.
func PointVsLine(p, q, r types.Point) LinePosition {
	switch robust.Orient2D(p, q, r) {
	case 1:
		return Left
	case -1:
		return Right
	default:
		return Collinear
	}
}

// SegmentPointPosition classifies a point already known to be collinear with
// segment (a,b).
type SegmentPointPosition int

const (
	// SegmentPointOn means p lies strictly between a and b.
	SegmentPointOn SegmentPointPosition = iota
	// SegmentPointDegenerate means p coincides with a or b.
	SegmentPointDegenerate
	// SegmentPointBeforeA means p lies on the ray from b through a, beyond a.
	SegmentPointBeforeA
	// SegmentPointAfterB means p lies on the ray from a through b, beyond b.
	SegmentPointAfterB
)

func (s SegmentPointPosition) String() string {
	switch s {
	case SegmentPointOn:
		return "On"
	case SegmentPointDegenerate:
		return "Degenerate"
	case SegmentPointBeforeA:
		return "Left"
	default:
		return "Right"
	}
}

// PointPositionOnLineSegment classifies p, assumed collinear with a and b,
// relative to the closed segment [a,b]. Callers that only care whether p is
// strictly interior to the segment should treat both SegmentPointBeforeA and
// SegmentPointAfterB as "off segment".
func PointPositionOnLineSegment(a, b, p types.Point) SegmentPointPosition {
	if p == a || p == b {
		return SegmentPointDegenerate
	}
	t := paramOnSegment(a, b, p)
	switch {
	case t < 0:
		return SegmentPointBeforeA
	case t > 1:
		return SegmentPointAfterB
	default:
		return SegmentPointOn
	}
}

func paramOnSegment(a, b, p types.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return 0
	}
	return ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / length2
}

// SegmentRelation classifies how two segments relate to one another.
type SegmentRelation int

const (
	// SegmentNone means the segments are disjoint.
	SegmentNone SegmentRelation = iota
	// SegmentSingle means the open segments strictly cross at one point.
	SegmentSingle
	// SegmentMultiple means the closed segments are collinear and overlap
	// along more than one point.
	SegmentMultiple
	// SegmentTouching means the segments meet at exactly one point, which is
	// an endpoint of at least one of them.
	SegmentTouching
)

func (s SegmentRelation) String() string {
	switch s {
	case SegmentSingle:
		return "Single"
	case SegmentMultiple:
		return "Multiple"
	case SegmentTouching:
		return "Touching"
	default:
		return "None"
	}
}

// SegmentMeet classifies the relationship between closed segments [p,q] and
// [a,b].
func SegmentMeet(p, q, a, b types.Point) SegmentRelation {
	if (p == a && q == b) || (p == b && q == a) {
		return SegmentMultiple
	}
	sharesEndpoint := p == a || p == b || q == a || q == b

	op1 := robust.Orient2D(p, q, a)
	op2 := robust.Orient2D(p, q, b)
	oa1 := robust.Orient2D(a, b, p)
	oa2 := robust.Orient2D(a, b, q)

	if sharesEndpoint {
		// Shared endpoint: touching unless the segments are collinear and
		// overlap beyond that shared point.
		if op1 == 0 && op2 == 0 {
			if segmentsOverlapBeyondSharedEndpoint(p, q, a, b) {
				return SegmentMultiple
			}
		}
		return SegmentTouching
	}

	if op1 == 0 && op2 == 0 && oa1 == 0 && oa2 == 0 {
		if segmentOverlapLength(p, q, a, b) > 0 {
			return SegmentMultiple
		}
		return SegmentNone
	}

	if op1*op2 < 0 && oa1*oa2 < 0 {
		return SegmentSingle
	}

	// One segment's endpoint lies exactly on the other (but isn't a shared
	// vertex) — treated as a touching configuration.
	if op1 == 0 && onClosedSegment(p, q, a) {
		return SegmentTouching
	}
	if op2 == 0 && onClosedSegment(p, q, b) {
		return SegmentTouching
	}
	if oa1 == 0 && onClosedSegment(a, b, p) {
		return SegmentTouching
	}
	if oa2 == 0 && onClosedSegment(a, b, q) {
		return SegmentTouching
	}

	return SegmentNone
}

func onClosedSegment(a, b, p types.Point) bool {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	const eps = 1e-12
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func segmentOverlapLength(p, q, a, b types.Point) float64 {
	// p,q,a,b are collinear here; project onto the dominant axis.
	dx, dy := q.X-p.X, q.Y-p.Y
	var pp, pq, pa, pb float64
	if dx*dx >= dy*dy {
		pp, pq, pa, pb = p.X, q.X, a.X, b.X
	} else {
		pp, pq, pa, pb = p.Y, q.Y, a.Y, b.Y
	}
	lo1, hi1 := minMax(pp, pq)
	lo2, hi2 := minMax(pa, pb)
	lo := lo1
	if lo2 > lo {
		lo = lo2
	}
	hi := hi1
	if hi2 < hi {
		hi = hi2
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func segmentsOverlapBeyondSharedEndpoint(p, q, a, b types.Point) bool {
	return segmentOverlapLength(p, q, a, b) > 1e-12
}

// TrianglePosition classifies a point against a positively oriented triangle.
type TrianglePosition int

const (
	TriangleInside TrianglePosition = iota
	TriangleOn
	TriangleOutside
)

func (t TrianglePosition) String() string {
	switch t {
	case TriangleInside:
		return "Inside"
	case TriangleOutside:
		return "Outside"
	default:
		return "On"
	}
}

// PointVsTriangle classifies p against the positively oriented triangle
// (a,b,c).
func PointVsTriangle(a, b, c, p types.Point) TrianglePosition {
	o1 := robust.Orient2D(a, b, p)
	o2 := robust.Orient2D(b, c, p)
	o3 := robust.Orient2D(c, a, p)

	if o1 < 0 || o2 < 0 || o3 < 0 {
		return TriangleOutside
	}
	if o1 == 0 || o2 == 0 || o3 == 0 {
		return TriangleOn
	}
	return TriangleInside
}

// HalfplanePosition classifies a point against the oriented outer halfplane
// of a directed boundary edge: the region to the left of p->q union the
// closed segment [p,q] itself.
type HalfplanePosition int

const (
	HalfplaneInside HalfplanePosition = iota
	HalfplaneOn
	HalfplaneOutside
)

func (h HalfplanePosition) String() string {
	switch h {
	case HalfplaneInside:
		return "Inside"
	case HalfplaneOutside:
		return "Outside"
	default:
		return "On"
	}
}

// PointVsOuterHalfplane classifies r against the directed edge p->q,
// composing PointVsLine with PointPositionOnLineSegment for the collinear
// case: a collinear point on the closed segment [p,q] is On, and a collinear
// point beyond either endpoint is not in the region and is Outside.
func PointVsOuterHalfplane(p, q, r types.Point) HalfplanePosition {
	switch PointVsLine(p, q, r) {
	case Left:
		return HalfplaneInside
	case Right:
		return HalfplaneOutside
	default:
		switch PointPositionOnLineSegment(p, q, r) {
		case SegmentPointOn, SegmentPointDegenerate:
			return HalfplaneOn
		default:
			return HalfplaneOutside
		}
	}
}

// EdgeLegality classifies whether the edge shared by two triangles satisfies
// the Delaunay criterion.
type EdgeLegality int

const (
	Legal EdgeLegality = iota
	Illegal
)

func (e EdgeLegality) String() string {
	if e == Illegal {
		return "Illegal"
	}
	return "Legal"
}

// ClassifyEdgeLegality reports whether the edge (i,j) shared by triangle
// (i,j,k) and the opposing vertex l is legal: illegal iff l lies strictly
// inside the circumcircle of (i,j,k).
func ClassifyEdgeLegality(i, j, k, l types.Point) EdgeLegality {
	if InCircle(i, j, k, l) == CircleInside {
		return Illegal
	}
	return Legal
}

// TriangleSegmentRelation classifies how a line segment intersects a
// triangle, covering interior containment, boundary-only contact, and
// disjointness in addition to the crossing counts SegmentMeet reports for a
// single edge.
type TriangleSegmentRelation int

const (
	TriangleSegmentInside TriangleSegmentRelation = iota
	TriangleSegmentSingle
	TriangleSegmentMultiple
	TriangleSegmentOutside
	TriangleSegmentTouching
)

func (t TriangleSegmentRelation) String() string {
	switch t {
	case TriangleSegmentInside:
		return "Inside"
	case TriangleSegmentSingle:
		return "Single"
	case TriangleSegmentMultiple:
		return "Multiple"
	case TriangleSegmentTouching:
		return "Touching"
	default:
		return "Outside"
	}
}

// TriangleLineSegmentIntersection classifies the intersection of segment
// [p,q] against the positively oriented triangle (a,b,c), composing
// PointVsTriangle and SegmentMeet against each edge per spec.md §4.1.
func TriangleLineSegmentIntersection(a, b, c, p, q types.Point) TriangleSegmentRelation {
	posP := PointVsTriangle(a, b, c, p)
	posQ := PointVsTriangle(a, b, c, q)

	if posP != TriangleOutside && posQ != TriangleOutside {
		return TriangleSegmentInside
	}

	edges := [3][2]types.Point{{a, b}, {b, c}, {c, a}}
	crossings := 0
	touching := false
	for _, e := range edges {
		switch SegmentMeet(p, q, e[0], e[1]) {
		case SegmentSingle:
			crossings++
		case SegmentMultiple:
			return TriangleSegmentMultiple
		case SegmentTouching:
			touching = true
		}
	}

	switch {
	case crossings >= 2:
		return TriangleSegmentMultiple
	case crossings == 1:
		return TriangleSegmentSingle
	case touching:
		return TriangleSegmentTouching
	case posP == TriangleOutside && posQ == TriangleOutside:
		return TriangleSegmentOutside
	default:
		return TriangleSegmentTouching
	}
}
