package cdt

import "github.com/delaunaygo/dcdt/types"

// ConvexHull reconstructs the ordered cyclic sequence of vertex indices on
// the outer boundary from the current ghost envelope (spec.md §4.6 step 5):
// every ghost triangle (v,u,ghost) fronts solid boundary edge (u,v), so
// chaining u -> v across every ghost triangle traces the hull.
func (idx *Index) ConvexHull() []types.VertexID {
	next := make(map[types.VertexID]types.VertexID)
	for _, g := range idx.GhostTriangles() {
		std := idx.RotateGhostTriangleToStandardForm(g)
		v, u := std[0], std[1]
		next[u] = v
	}
	if len(next) == 0 {
		return nil
	}

	var start types.VertexID
	for k := range next {
		start = k
		break
	}

	hull := []types.VertexID{start}
	for cur := next[start]; cur != start; {
		hull = append(hull, cur)
		nxt, ok := next[cur]
		if !ok {
			break
		}
		cur = nxt
	}
	return hull
}

// DeleteGhostTriangles removes every ghost triangle from the index. Used by
// WithDeleteGhosts and the delete_ghost_triangles! maintenance operation;
// the convex hull, once computed, remains valid afterward even though the
// envelope that produced it is gone.
func (idx *Index) DeleteGhostTriangles() error {
	for _, g := range idx.GhostTriangles() {
		if err := idx.DeleteTriangle(g[0], g[1], g[2], true, false); err != nil {
			return err
		}
	}
	return nil
}

// AddGhostTriangles re-derives the ghost envelope for every boundary edge
// currently missing its ghost front, by scanning for directed edges with no
// recorded opposite vertex. Used by add_ghost_triangles! to restore I5 after
// DeleteGhostTriangles, or after edits made with updateGhostEdges disabled.
func (idx *Index) AddGhostTriangles() error {
	var boundary []DirectedEdge
	for e := range idx.adjacent {
		rev := e.Reversed()
		if _, ok := idx.adjacent[rev]; !ok {
			boundary = append(boundary, rev)
		}
	}
	for _, e := range boundary {
		if err := idx.addGhostTriangle(e.U, e.V); err != nil {
			return err
		}
	}
	return nil
}
