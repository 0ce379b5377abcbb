// Package mesh provides an append-only vertex store with distance-based
// deduplication, used by the triangulation core as its point table.
package mesh

import (
	"github.com/delaunaygo/dcdt/spatial"
	"github.com/delaunaygo/dcdt/types"
)

// Mesh is an append-only store of vertex coordinates with optional
// spatial-hash-backed merge deduplication.
type Mesh struct {
	vertices []types.Point

	cfg config

	vertexIndex spatial.Index
}

// NumVertices returns the number of vertices in the store.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// GetVertex returns the coordinates of a vertex by ID.
func (m *Mesh) GetVertex(id types.VertexID) types.Point {
	return m.vertices[id]
}

// GetVertices returns a copy of all vertex coordinates.
func (m *Mesh) GetVertices() []types.Point {
	out := make([]types.Point, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// IsValidVertexID reports whether the supplied ID references an existing vertex.
func (m *Mesh) IsValidVertexID(id types.VertexID) bool {
	return id >= 0 && int(id) < len(m.vertices)
}

// Epsilon returns the configured epsilon tolerance.
func (m *Mesh) Epsilon() float64 {
	return m.cfg.epsilon
}
