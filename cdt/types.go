package cdt

import (
	"math"

	"github.com/delaunaygo/dcdt/types"
)

// noVertex is the sentinel opposite-vertex value returned by Index.GetAdjacent
// for a directed edge that has no recorded triangle. It is distinct from
// types.NilVertex (which callers outside this package already use to mean
// "no such vertex exists") and from any configured ghost vertex, so the three
// "not a real point" meanings never collide.
const noVertex = types.VertexID(math.MinInt32)

// DirectedEdge is an ordered pair of vertex indices used as the key of the
// adjacent map. (u,v) and (v,u) are distinct keys.
type DirectedEdge struct {
	U, V types.VertexID
}

// NewDirectedEdge constructs a directed edge from u to v.
func NewDirectedEdge(u, v types.VertexID) DirectedEdge {
	return DirectedEdge{U: u, V: v}
}

// Reversed returns the directed edge traversed the other way.
func (e DirectedEdge) Reversed() DirectedEdge {
	return DirectedEdge{U: e.V, V: e.U}
}

// PointFlag classifies where a located query point sits relative to the
// triangle returned by point location.
type PointFlag int

const (
	// Inside means the point is strictly interior to the triangle.
	Inside PointFlag = iota
	// On means the point lies on one of the triangle's edges.
	On
	// Outside means the point lies outside the convex hull; the returned
	// triangle is a ghost triangle, and this flag is only possible then.
	Outside
)

func (f PointFlag) String() string {
	switch f {
	case Inside:
		return "Inside"
	case On:
		return "On"
	case Outside:
		return "Outside"
	default:
		return "Unknown"
	}
}
