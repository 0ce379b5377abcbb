package cdt

import (
	"math"
	"math/rand"

	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
)

// Locator performs the jump-and-march point-location walk of spec.md §4.3:
// nearest-of-sample seed selection followed by a straight-line walk across
// solid triangles that stops the instant it steps into a ghost triangle
// (q is then known to be outside the hull, and cavity digging's own
// ghost-aware incircle test takes over from there). Grounded in *shape* on
// the teacher's cdt/locate.go (visited-set + step-cap walk loop).
type Locator struct {
	idx            *Index
	points         []types.Point
	insertedSoFar  *[]types.VertexID
	rng            *rand.Rand
	maxSteps       int
	checkExistence bool
}

// NewLocator builds a locator over idx and points (1-based, index 0
// unused). insertedSoFar is a pointer to the driver's live list of vertices
// already part of the triangulation so sampling always sees the current
// population without the caller needing to rebuild the locator per insert.
func NewLocator(idx *Index, points []types.Point, insertedSoFar *[]types.VertexID, rng *rand.Rand) *Locator {
	return &Locator{idx: idx, points: points, insertedSoFar: insertedSoFar, rng: rng}
}

// SetCheckExistence toggles guard 5 of spec.md §4.3: when constrained edges
// may have left transient gaps in the adjacent map, a missing entry
// encountered mid-walk restarts from a fresh seed instead of failing.
func (l *Locator) SetCheckExistence(check bool) { l.checkExistence = check }

// SetMaxSteps overrides the walk's safety step bound (0 selects a default
// scaled to the triangle count).
func (l *Locator) SetMaxSteps(n int) { l.maxSteps = n }

func (l *Locator) point(v types.VertexID) types.Point {
	return l.points[v]
}

// NumSampleRule is the default seed-sample-count rule from spec.md §4.3:
// m = ceil(cbrt(n)/4), capped at n itself.
func NumSampleRule(n int) int {
	if n <= 0 {
		return 0
	}
	m := int(math.Ceil(math.Cbrt(float64(n)) / 4))
	if m < 1 {
		m = 1
	}
	if m > n {
		m = n
	}
	return m
}

// SelectInitialPoint samples candidates from the vertices inserted so far
// (count given by numSampleRule, defaulting to NumSampleRule) plus any
// caller-supplied tryPoints, and returns whichever is nearest to q.
func (l *Locator) SelectInitialPoint(q types.Point, tryPoints []types.VertexID, numSampleRule func(int) int) types.VertexID {
	if numSampleRule == nil {
		numSampleRule = NumSampleRule
	}
	pool := *l.insertedSoFar
	n := len(pool)

	var best types.VertexID
	bestDist := math.Inf(1)
	haveBest := false

	if n > 0 {
		m := numSampleRule(n)
		for i := 0; i < m; i++ {
			cand := pool[l.rng.Intn(n)]
			if d := squaredDistance(q, l.point(cand)); !haveBest || d < bestDist {
				best, bestDist, haveBest = cand, d, true
			}
		}
	}
	for _, cand := range tryPoints {
		if d := squaredDistance(q, l.point(cand)); !haveBest || d < bestDist {
			best, bestDist, haveBest = cand, d, true
		}
	}
	return best
}

func squaredDistance(a, b types.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Locate walks from seed vertex k to find the triangle containing q. It
// returns the containing triangle and q's classification relative to it;
// Outside is only possible when the returned triangle is a ghost triangle.
func (l *Locator) Locate(k types.VertexID, q types.Point) (types.Triangle, PointFlag, error) {
	const maxRestarts = 8
	seed := k
	for attempt := 0; attempt < maxRestarts; attempt++ {
		tri, flag, err := l.walk(seed, q)
		if err == nil {
			return tri, flag, nil
		}
		if !l.checkExistence {
			return types.Triangle{}, Inside, err
		}
		// Restart from a freshly sampled candidate; the adjacent map may
		// have a transient gap left by a recent constrained-edge edit.
		seed = l.SelectInitialPoint(q, nil, nil)
	}
	return types.Triangle{}, Inside, &WalkFailureError{Query: q, StepLimit: -1}
}

func (l *Locator) walk(k types.VertexID, q types.Point) (types.Triangle, PointFlag, error) {
	current, ok := l.initialTriangle(k, q)
	if !ok {
		return types.Triangle{}, Inside, &WalkFailureError{Query: q, StepLimit: 0}
	}

	maxSteps := l.maxSteps
	if maxSteps <= 0 {
		maxSteps = 4*(l.idx.NumTriangles()+8) + 64
	}
	visited := make(map[types.Triangle]bool, maxSteps)

	for step := 0; step < maxSteps; step++ {
		if current.IsGhost(l.idx.ghost) {
			return current, Outside, nil
		}
		if visited[current] {
			return types.Triangle{}, Inside, &WalkFailureError{Query: q, StepLimit: maxSteps}
		}
		visited[current] = true

		verts := [3]types.VertexID{current[0], current[1], current[2]}
		var onEdges, outsideEdges []int
		for e := 0; e < 3; e++ {
			a, b := l.point(verts[e]), l.point(verts[(e+1)%3])
			switch predicates.PointVsLine(a, b, q) {
			case predicates.Right:
				outsideEdges = append(outsideEdges, e)
			case predicates.Collinear:
				// Deterministic collinearity resolution per spec.md §4.3
				// step 4: decide whether q is on this edge's span or past
				// one of its endpoints. Past an endpoint, q is strictly right
				// of one of the triangle's other edges, so this edge is not
				// crossed.
				switch predicates.PointPositionOnLineSegment(a, b, q) {
				case predicates.SegmentPointOn, predicates.SegmentPointDegenerate:
					onEdges = append(onEdges, e)
				}
			}
		}

		if len(outsideEdges) == 0 {
			if len(onEdges) > 0 {
				return current, On, nil
			}
			return current, Inside, nil
		}

		e := outsideEdges[0]
		if len(outsideEdges) > 1 {
			e = outsideEdges[l.rng.Intn(len(outsideEdges))]
		}
		u, v := verts[e], verts[(e+1)%3]
		apex := l.idx.GetAdjacent(v, u)
		if apex == noVertex {
			return types.Triangle{}, Inside, &WalkFailureError{Query: q, StepLimit: maxSteps}
		}
		current = types.Triangle{v, u, apex}
	}

	return types.Triangle{}, Inside, &WalkFailureError{Query: q, StepLimit: maxSteps}
}

// initialTriangle implements spec.md §4.3 step 2: from seed k, pick an
// incident triangle whose opposite halfplane plausibly contains q. The walk
// loop corrects for an imperfect choice, so this only needs to be a
// reasonable direction, not an exact one.
func (l *Locator) initialTriangle(k types.VertexID, q types.Point) (types.Triangle, bool) {
	edges := l.idx.IncidentEdges(k)
	if len(edges) == 0 {
		return types.Triangle{}, false
	}

	pk := l.point(k)
	var fallback types.Triangle
	haveFallback := false
	for _, e := range edges {
		cand := types.Triangle{e.U, e.V, k}
		if cand.IsGhost(l.idx.ghost) {
			continue
		}
		if !haveFallback {
			fallback, haveFallback = cand, true
		}
		if predicates.PointVsLine(pk, l.point(e.U), q) != predicates.Right {
			return cand, true
		}
	}
	return fallback, haveFallback
}
