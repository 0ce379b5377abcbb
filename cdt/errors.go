package cdt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/delaunaygo/dcdt/formatting"
	"github.com/delaunaygo/dcdt/types"
)

// Sentinel errors for each tagged error kind in spec.md §7. Every concrete
// error below wraps one of these via Unwrap, so callers can test kind with
// errors.Is regardless of the offending indices or coordinates attached.
var (
	// ErrDegenerateInput means every input point is collinear, so no valid
	// initial triangle exists.
	ErrDegenerateInput = errors.New("dcdt: degenerate input (all points collinear)")

	// ErrDuplicatePoint means the point to insert coincides with an
	// existing vertex and strict mode rejected it.
	ErrDuplicatePoint = errors.New("dcdt: duplicate point")

	// ErrConstraintViolation means a constrained edge could not be added:
	// its endpoints aren't both in the vertex set, or its segment crosses
	// an existing constraint in a configuration the inserter can't resolve.
	ErrConstraintViolation = errors.New("dcdt: constraint violation")

	// ErrInternalInvariantViolation means a topology edit detected I1-I6
	// broken. This indicates a library bug and should not be caught.
	ErrInternalInvariantViolation = errors.New("dcdt: internal invariant violation")

	// ErrWalkFailure means point location exceeded its safety step bound.
	ErrWalkFailure = errors.New("dcdt: point location walk failure")
)

// DegenerateInputError reports that the input point set has no non-collinear
// triple to seed the initial triangle.
type DegenerateInputError struct {
	NumPoints int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("dcdt: degenerate input: all %d points are collinear", e.NumPoints)
}

func (e *DegenerateInputError) Unwrap() error { return ErrDegenerateInput }

// DuplicatePointError reports that a point to insert coincides with vertex
// Existing.
type DuplicatePointError struct {
	Point    types.Point
	Existing types.VertexID
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("dcdt: point %s duplicates existing %s", formatting.PointString(e.Point), formatting.VertexIDString(e.Existing))
}

func (e *DuplicatePointError) Unwrap() error { return ErrDuplicatePoint }

// ConstraintViolationError reports that a requested constrained edge could
// not be honored.
type ConstraintViolationError struct {
	U, V   types.VertexID
	Reason string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("dcdt: cannot constrain %s: %s", formatting.EdgeString(types.NewEdge(e.U, e.V)), e.Reason)
}

func (e *ConstraintViolationError) Unwrap() error { return ErrConstraintViolation }

// InternalInvariantError reports that a topology edit would have broken
// I1-I6. Offending indices are attached for diagnosis; the triangulation is
// left in its pre-edit state whenever the check runs before mutation.
type InternalInvariantError struct {
	Reason  string
	Indices []types.VertexID
}

func (e *InternalInvariantError) Error() string {
	ids := make([]string, len(e.Indices))
	for i, v := range e.Indices {
		ids[i] = formatting.VertexIDString(v)
	}
	return fmt.Sprintf("dcdt: internal invariant violation: %s (indices=[%s])", e.Reason, strings.Join(ids, ", "))
}

func (e *InternalInvariantError) Unwrap() error { return ErrInternalInvariantViolation }

// WalkFailureError reports that jump-and-march exceeded its step bound,
// protecting against infinite loops on corrupted topology.
type WalkFailureError struct {
	Query     types.Point
	StepLimit int
}

func (e *WalkFailureError) Error() string {
	return fmt.Sprintf("dcdt: point location for %s exceeded %d steps", formatting.PointString(e.Query), e.StepLimit)
}

func (e *WalkFailureError) Unwrap() error { return ErrWalkFailure }
