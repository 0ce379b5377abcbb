package cdt

import (
	"math/rand"

	"github.com/delaunaygo/dcdt/types"
)

// config holds every tunable of the triangulate driver (spec.md §6's
// Construction options), assembled from Option values the way the mesh
// package's config.go assembles vertex-store tunables.
type config struct {
	randomise                    bool
	deleteGhosts                 bool
	deleteEmptyFeatures          bool
	tryLastInsertedPoint         bool
	skipPoints                   map[types.VertexID]struct{}
	numSampleRule                func(int) int
	rng                          *rand.Rand
	pointOrder                   []types.VertexID
	recomputeRepresentativePoint bool
	constrainedEdges             []types.Edge
	boundaryNodes                []types.VertexID
	strictDuplicates             bool
	ghost                        types.VertexID
}

// DefaultGhostVertex is the boundary index used for the unbounded face when
// the caller doesn't override it with WithGhostVertex.
const DefaultGhostVertex = types.VertexID(-1)

func newDefaultConfig() config {
	return config{
		tryLastInsertedPoint: true,
		numSampleRule:        NumSampleRule,
		ghost:                DefaultGhostVertex,
	}
}
