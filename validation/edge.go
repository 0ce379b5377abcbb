// Package validation provides geometric sanity checks used ahead of and
// during triangulation: boundary loop self-intersection and segment-crossing
// detection.
package validation

import (
	"errors"

	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// ErrSegmentCrossing indicates a new segment properly crosses an existing one.
var ErrSegmentCrossing = errors.New("validation: segment crosses an existing edge")

// Config captures the tolerance used by the checks in this package.
type Config struct {
	Epsilon float64
}

// SegmentCrossesAny reports whether segment (a,b) properly crosses or
// collinearly overlaps any of the existing segments.
//
// Shared-endpoint touches and exact edge reuse are allowed; a proper crossing
// or a collinear overlap beyond the shared endpoints is not.
func SegmentCrossesAny(a, b types.Point, existing [][2]types.Point, cfg Config) error {
	for _, seg := range existing {
		p1, p2 := seg[0], seg[1]
		_, kind := predicates.SegmentIntersectionPoint(a, b, p1, p2, cfg.Epsilon)
		if sharesEndpoint(a, b, p1, p2, cfg.Epsilon) {
			reused := sharesEndpoint(a, a, p1, p2, cfg.Epsilon) && sharesEndpoint(b, b, p1, p2, cfg.Epsilon)
			if kind == types.IntersectCollinearOverlap && !reused {
				return ErrSegmentCrossing
			}
			continue
		}

		intersects, proper := predicates.SegmentsIntersect(a, b, p1, p2, cfg.Epsilon)
		if !intersects {
			continue
		}
		if proper {
			return ErrSegmentCrossing
		}

		if kind == types.IntersectCollinearOverlap {
			return ErrSegmentCrossing
		}
	}

	return nil
}

func sharesEndpoint(a, b, p1, p2 types.Point, eps float64) bool {
	return almostEqualPoints(a, p1, eps) || almostEqualPoints(a, p2, eps) ||
		almostEqualPoints(b, p1, eps) || almostEqualPoints(b, p2, eps)
}

func almostEqualPoints(p, q types.Point, eps float64) bool {
	return predicates.Dist2(p, q) <= eps*eps
}
