package mesh

import "errors"

// ErrInvalidVertexID indicates a vertex ID is out of range or negative.
var ErrInvalidVertexID = errors.New("dcdt: invalid vertex id")
