package cdt

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/delaunaygo/dcdt/types"
)

// TriangleAll applies fn to every solid triangle of the triangulation
// concurrently and returns the first error any call reports. Every call is
// started regardless; a failure only cancels the ctx passed to the other
// calls, per errgroup's usual semantics. Per spec.md §5, the
// triangulation itself is never touched from more than one goroutine: fn
// must only read (via Triangulation's query methods or the supplied point
// slice), never call an editing operation.
func TriangleAll(ctx context.Context, t *Triangulation, fn func(ctx context.Context, tri types.Triangle) error) error {
	triangles := t.SolidTriangles()
	g, ctx := errgroup.WithContext(ctx)
	for _, tri := range triangles {
		tri := tri
		g.Go(func() error {
			return fn(ctx, tri)
		})
	}
	return g.Wait()
}
