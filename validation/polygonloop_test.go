package validation_test

import (
	"testing"

	"github.com/delaunaygo/dcdt/mesh"
	"github.com/delaunaygo/dcdt/predicates"
	"github.com/delaunaygo/dcdt/types"
	"github.com/delaunaygo/dcdt/validation"
)

// TestPolygonLoopSelfIntersects tests self-intersection with PolygonLoop.
func TestPolygonLoopSelfIntersects(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 0, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 10, Y: 10})

	bowtie := types.NewPolygonLoop(v0, v1, v2, v3)
	if !predicates.PolygonSelfIntersects(bowtie.ToPoints(m), 1e-9) {
		t.Error("expected bowtie to self-intersect")
	}

	m2 := mesh.NewMesh()
	s0, _ := m2.AddVertex(types.Point{X: 0, Y: 0})
	s1, _ := m2.AddVertex(types.Point{X: 10, Y: 0})
	s2, _ := m2.AddVertex(types.Point{X: 10, Y: 10})
	s3, _ := m2.AddVertex(types.Point{X: 0, Y: 10})

	square := types.NewPolygonLoop(s0, s1, s2, s3)
	if predicates.PolygonSelfIntersects(square.ToPoints(m2), 1e-9) {
		t.Error("expected square not to self-intersect")
	}
}

// TestPolygonLoopContains tests point-in-polygon with PolygonLoop.
func TestPolygonLoopContains(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 10, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 0, Y: 10})

	loop := types.NewPolygonLoop(v0, v1, v2, v3)
	points := loop.ToPoints(m)

	tests := []struct {
		name     string
		point    types.Point
		expected bool
	}{
		{"center", types.Point{X: 5, Y: 5}, true},
		{"outside", types.Point{X: 15, Y: 15}, false},
		{"on edge", types.Point{X: 0, Y: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validation.PolygonContains(points, tt.point, 1e-9)
			if result != tt.expected {
				t.Errorf("PolygonContains(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}

// TestPolygonLoopArea tests area calculation.
func TestPolygonLoopArea(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 10, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 0, Y: 10})

	loop := types.NewPolygonLoop(v0, v1, v2, v3)

	area := predicates.PolygonArea(loop.ToPoints(m))
	expected := 100.0

	if area != expected {
		t.Errorf("PolygonArea() = %f, want %f", area, expected)
	}
}

// TestPolygonLoopBounds tests bounds calculation.
func TestPolygonLoopBounds(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 5, Y: 3})
	v1, _ := m.AddVertex(types.Point{X: 15, Y: 7})
	v2, _ := m.AddVertex(types.Point{X: 12, Y: 18})
	v3, _ := m.AddVertex(types.Point{X: 2, Y: 10})

	loop := types.NewPolygonLoop(v0, v1, v2, v3)

	bounds := predicates.PolygonBounds(loop.ToPoints(m))

	if bounds.Min.X != 2 || bounds.Min.Y != 3 {
		t.Errorf("Min = (%f, %f), want (2, 3)", bounds.Min.X, bounds.Min.Y)
	}

	if bounds.Max.X != 15 || bounds.Max.Y != 18 {
		t.Errorf("Max = (%f, %f), want (15, 18)", bounds.Max.X, bounds.Max.Y)
	}
}

// TestValidatePolygonLoop tests validation with PolygonLoop.
func TestValidatePolygonLoop(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 10, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 0, Y: 10})

	loop := types.NewPolygonLoop(v0, v1, v2, v3)

	err := validation.ValidatePolygonLoop(m, loop,
		validation.WithPolygonMinArea(50),
		validation.WithPolygonMinWidth(5),
	)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err = validation.ValidatePolygonLoop(m, loop, validation.WithPolygonMinArea(200))
	if err == nil {
		t.Error("expected validation to fail")
	}
}

// TestValidatePolygonLoopDetailed tests detailed validation.
func TestValidatePolygonLoopDetailed(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 10, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 0, Y: 10})

	loop := types.NewPolygonLoop(v0, v1, v2, v3)

	result := validation.ValidatePolygonLoopDetailed(m, loop)

	if !result.Valid {
		t.Error("expected loop to be valid")
	}
	if result.VertexCount != 4 {
		t.Errorf("VertexCount = %d, want 4", result.VertexCount)
	}
	if result.Area != 100.0 {
		t.Errorf("Area = %f, want 100", result.Area)
	}
}

// TestPolygonLoopIsValid tests the quick validity check.
func TestPolygonLoopIsValid(t *testing.T) {
	m := mesh.NewMesh()
	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 10, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 0, Y: 10})
	square := types.NewPolygonLoop(v0, v1, v2, v3)

	if !validation.PolygonLoopIsValid(m, square, 1e-9) {
		t.Error("expected square to be valid")
	}

	m2 := mesh.NewMesh()
	b0, _ := m2.AddVertex(types.Point{X: 0, Y: 0})
	b1, _ := m2.AddVertex(types.Point{X: 10, Y: 0})
	b2, _ := m2.AddVertex(types.Point{X: 0, Y: 10})
	b3, _ := m2.AddVertex(types.Point{X: 10, Y: 10})
	bowtie := types.NewPolygonLoop(b0, b1, b2, b3)

	if validation.PolygonLoopIsValid(m2, bowtie, 1e-9) {
		t.Error("expected bowtie to be invalid")
	}
}

// TestToPoints tests conversion to a coordinate slice.
func TestToPoints(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 1, Y: 2})
	v1, _ := m.AddVertex(types.Point{X: 3, Y: 4})
	v2, _ := m.AddVertex(types.Point{X: 5, Y: 6})

	loop := types.NewPolygonLoop(v0, v1, v2)
	points := loop.ToPoints(m)

	if len(points) != 3 {
		t.Errorf("len(points) = %d, want 3", len(points))
	}

	expected := []types.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	for i, p := range points {
		if p.X != expected[i].X || p.Y != expected[i].Y {
			t.Errorf("points[%d] = (%f, %f), want (%f, %f)", i, p.X, p.Y, expected[i].X, expected[i].Y)
		}
	}
}

// TestPolygonLoopReversedFlipsWinding tests that reversing flips winding direction.
func TestPolygonLoopReversedFlipsWinding(t *testing.T) {
	m := mesh.NewMesh()

	v0, _ := m.AddVertex(types.Point{X: 0, Y: 0})
	v1, _ := m.AddVertex(types.Point{X: 10, Y: 0})
	v2, _ := m.AddVertex(types.Point{X: 10, Y: 10})
	v3, _ := m.AddVertex(types.Point{X: 0, Y: 10})

	ccwLoop := types.NewPolygonLoop(v0, v1, v2, v3)
	cwLoop := ccwLoop.Reversed()

	ccwArea := predicates.PolygonArea(ccwLoop.ToPoints(m))
	cwArea := predicates.PolygonArea(cwLoop.ToPoints(m))

	if ccwArea <= 0 {
		t.Errorf("CCW loop area should be positive, got %f", ccwArea)
	}
	if cwArea >= 0 {
		t.Errorf("CW loop area should be negative, got %f", cwArea)
	}
	if ccwArea != -cwArea {
		t.Errorf("areas should be opposite: CCW=%f, CW=%f", ccwArea, cwArea)
	}

	doubleReversed := cwLoop.Reversed()
	doubleReversedArea := predicates.PolygonArea(doubleReversed.ToPoints(m))
	if doubleReversedArea != ccwArea {
		t.Errorf("double reversal should restore original area: original=%f, double=%f", ccwArea, doubleReversedArea)
	}
}
