package mesh

import (
	"github.com/delaunaygo/dcdt/spatial"
	"github.com/delaunaygo/dcdt/types"
)

// NewMesh creates a new empty vertex store with the given options.
func NewMesh(opts ...Option) *Mesh {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Mesh{
		vertices: make([]types.Point, 0, 64),
		cfg:      cfg,
	}

	if cfg.mergeVertices {
		m.vertexIndex = spatial.NewHashGrid(cfg.effectiveMergeDistance())
	}

	return m
}
