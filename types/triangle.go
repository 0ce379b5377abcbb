package types

// Triangle represents an ordered triplet of vertices forming a triangle.
//
// The order of vertices determines the winding direction:
//   - Counter-clockwise (CCW) order yields positive signed area
//   - Clockwise (CW) order yields negative signed area
//   - Collinear vertices yield zero (or near-zero) signed area
//
// Triangles are stored exactly as provided; no automatic reordering
// is performed. Use predicates.Area2 or predicates.TriangleOrientation to determine
// winding.
//
// Example:
//
//	t := types.Triangle{0, 1, 2}  // CCW if vertices are positioned appropriately
type Triangle [3]VertexID

// NewTriangle creates a triangle from three vertex IDs.
func NewTriangle(v1, v2, v3 VertexID) Triangle {
	return Triangle{v1, v2, v3}
}

// V1 returns the first vertex.
func (t Triangle) V1() VertexID {
	return t[0]
}

// V2 returns the second vertex.
func (t Triangle) V2() VertexID {
	return t[1]
}

// V3 returns the third vertex.
func (t Triangle) V3() VertexID {
	return t[2]
}

// Vertices returns all three vertex IDs as a slice.
func (t Triangle) Vertices() []VertexID {
	return []VertexID{t[0], t[1], t[2]}
}

// Edges returns the three edges of this triangle in canonical form.
//
// The edges are returned in the order: (v1,v2), (v2,v3), (v3,v1).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t[0], t[1]),
		NewEdge(t[1], t[2]),
		NewEdge(t[2], t[0]),
	}
}

// Directed returns the three directed edges of this triangle in winding
// order, each paired with the vertex opposite it.
func (t Triangle) Directed() [3]struct {
	Edge Segment
	Opp  VertexID
} {
	return [3]struct {
		Edge Segment
		Opp  VertexID
	}{
		{NewSegment(t[0], t[1]), t[2]},
		{NewSegment(t[1], t[2]), t[0]},
		{NewSegment(t[2], t[0]), t[1]},
	}
}

// Canonical rotates the triangle so its smallest vertex ID comes first,
// without changing winding. Triangles that differ only by a cyclic shift
// compare equal after canonicalization; a triangle and its reverse winding
// do not.
func (t Triangle) Canonical() Triangle {
	switch {
	case t[0] <= t[1] && t[0] <= t[2]:
		return t
	case t[1] <= t[0] && t[1] <= t[2]:
		return Triangle{t[1], t[2], t[0]}
	default:
		return Triangle{t[2], t[0], t[1]}
	}
}

// SameOrientation reports whether two triangles describe the same cyclic
// vertex sequence (possibly rotated) rather than merely the same vertex set.
func (t Triangle) SameOrientation(other Triangle) bool {
	return t.Canonical() == other.Canonical()
}

// HasVertex reports whether v is one of the triangle's three vertices.
func (t Triangle) HasVertex(v VertexID) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

// IsGhost reports whether any of the triangle's vertices equals the supplied
// ghost vertex index.
func (t Triangle) IsGhost(ghost VertexID) bool {
	return t.HasVertex(ghost)
}

// RotateGhostLast rotates the triangle (preserving winding) so that, if it
// contains the ghost vertex, the ghost vertex is the last of the three.
// This is the canonical storage form for ghost triangles.
func (t Triangle) RotateGhostLast(ghost VertexID) Triangle {
	switch ghost {
	case t[0]:
		return Triangle{t[1], t[2], t[0]}
	case t[1]:
		return Triangle{t[2], t[0], t[1]}
	default:
		return t
	}
}
