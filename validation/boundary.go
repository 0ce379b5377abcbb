package validation

import (
	"fmt"

	"github.com/delaunaygo/dcdt/algorithm/pslg"
	"github.com/delaunaygo/dcdt/types"
)

// ValidateBoundaryLoop checks that a sequence of points forming a closed
// boundary loop is usable as a set of constrained edges: at least three
// vertices, no degenerate (zero-length) edges, and no self-intersections.
func ValidateBoundaryLoop(points []types.Point, eps types.Epsilon) error {
	if len(points) < 3 {
		return fmt.Errorf("boundary loop must have at least 3 vertices, got %d", len(points))
	}

	n := len(points)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		tol := eps.MergeDistance(points[i], points[next])
		dx := points[i].X - points[next].X
		dy := points[i].Y - points[next].Y
		if dx*dx+dy*dy <= tol*tol {
			return fmt.Errorf("boundary loop edge %d-%d is degenerate", i, next)
		}
	}

	if err := pslg.LoopSelfIntersections(points); err != nil {
		return fmt.Errorf("boundary loop is invalid: %w", err)
	}

	return nil
}
