package cdt

import (
	"github.com/delaunaygo/dcdt/types"
)

// IsIllegal reports whether directed edge (i,j) violates the Delaunay
// criterion: it is illegal iff it is unconstrained, both of its incident
// triangles are solid, and the far triangle's apex lies strictly inside the
// circumcircle of the near one. Grounded on the teacher's legalize.go
// IsIllegal, adapted from the TriSoup neighbor-array model to GetAdjacent
// lookups and generalized with the ghost-aware incircle test so an edge
// bordering the unbounded face is never considered illegal — it has no
// finite circumcircle to violate.
func (idx *Index) IsIllegal(points []types.Point, i, j types.VertexID) bool {
	if idx.IsConstrained(i, j) {
		return false
	}
	k := idx.GetAdjacent(i, j)
	l := idx.GetAdjacent(j, i)
	if k == noVertex || l == noVertex {
		return false
	}
	if k == idx.ghost || l == idx.ghost || i == idx.ghost || j == idx.ghost {
		return false
	}
	// l is illegal iff it lies inside the circumcircle of (i,j,k); (k,i,j) is
	// a cyclic rotation of (i,j,k), so it names the same oriented circle, and
	// the query point l must come last.
	return idx.inCircleAware(points, k, i, j, l)
}

// FlipEdge replaces diagonal (i,j) of the quadrilateral formed by triangles
// (i,j,k) and (j,i,l) with diagonal (k,l), producing triangles (i,l,k) and
// (j,k,l). Grounded on the teacher's adjacency.go FlipEdge, adapted from
// array-indexed neighbor swaps to delete/add pairs over the map-based
// index. Fails without mutating the index if (i,j) is not an interior edge
// shared by two solid triangles.
func (idx *Index) FlipEdge(i, j types.VertexID) (k, l types.VertexID, err error) {
	k = idx.GetAdjacent(i, j)
	l = idx.GetAdjacent(j, i)
	if k == noVertex || l == noVertex || k == idx.ghost || l == idx.ghost {
		return noVertex, noVertex, &InternalInvariantError{
			Reason:  "flip_edge: edge is not shared by two solid triangles",
			Indices: []types.VertexID{i, j},
		}
	}
	if err := idx.DeleteTriangle(i, j, k, false, false); err != nil {
		return noVertex, noVertex, err
	}
	if err := idx.DeleteTriangle(j, i, l, false, false); err != nil {
		return noVertex, noVertex, err
	}
	// The quadrilateral i,j,k,l's boundary (diagonal ij removed) traverses
	// CCW as j,k,i,l; splitting it along the new diagonal k-l yields (i,l,k)
	// and (j,k,l).
	if err := idx.AddTriangle(i, l, k, false); err != nil {
		return noVertex, noVertex, err
	}
	if err := idx.AddTriangle(j, k, l, false); err != nil {
		return noVertex, noVertex, err
	}
	return k, l, nil
}

// LegaliseEdge flips (i,j) if illegal, then recursively re-examines the four
// edges of the resulting quadrilateral that weren't just checked, using an
// explicit work queue and a processed-set to avoid reprocessing an edge
// already settled this pass. Grounded on the teacher's LegalizeAround
// BFS-frontier shape.
func (idx *Index) LegaliseEdge(points []types.Point, i, j types.VertexID) error {
	return idx.legaliseAround([]DirectedEdge{{U: i, V: j}}, points)
}

func (idx *Index) legaliseAround(seeds []DirectedEdge, points []types.Point) error {
	queue := append([]DirectedEdge(nil), seeds...)
	processed := make(map[DirectedEdge]bool)

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if processed[e] {
			continue
		}
		processed[e] = true

		if !idx.IsIllegal(points, e.U, e.V) {
			continue
		}

		k, l, err := idx.FlipEdge(e.U, e.V)
		if err != nil {
			return err
		}
		// The new diagonal is (k,l); the four surrounding edges of the
		// re-triangulated quadrilateral may now be illegal.
		queue = append(queue,
			DirectedEdge{U: e.U, V: k}, DirectedEdge{U: k, V: e.V},
			DirectedEdge{U: e.V, V: l}, DirectedEdge{U: l, V: e.U},
		)
	}
	return nil
}

// IsDelaunay reports whether every unconstrained interior edge of the
// triangulation satisfies the Delaunay criterion. Intended for tests and
// diagnostics, not the hot insertion path.
func (idx *Index) IsDelaunay(points []types.Point) bool {
	for e := range idx.adjacent {
		if idx.IsIllegal(points, e.U, e.V) {
			return false
		}
	}
	return true
}
