package pairfinder

import "errors"

// ErrInvalidFace is returned by Find when a candidate face references
// a point index outside its soup's point list. Wrapped into
// kerr.InvalidInputMesh at the boolean.Run boundary.
var ErrInvalidFace = errors.New("pairfinder: face index out of range")
