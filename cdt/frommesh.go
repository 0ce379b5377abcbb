package cdt

import (
	"github.com/delaunaygo/dcdt/mesh"
	"github.com/delaunaygo/dcdt/types"
)

// TriangulateMesh builds a Delaunay triangulation over the vertices already
// collected in m, letting callers use mesh.Mesh's hash-grid-backed merge
// deduplication (mesh/vertex_ops.go) as their point-collection front end
// before handing the deduplicated point set to Triangulate. m's vertex IDs
// are 0-based; the returned Triangulation renumbers them 1-based with the
// sentinel at index 0, per spec.md §3's point-index convention.
func TriangulateMesh(m *mesh.Mesh, opts ...Option) (*Triangulation, error) {
	verts := m.GetVertices()
	points := make([]types.Point, 0, len(verts)+1)
	points = append(points, types.Point{})
	points = append(points, verts...)
	return Triangulate(points, opts...)
}
