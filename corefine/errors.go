package corefine

import "errors"

// ErrInvalidFace is returned by the pair-intersection and
// triangulation steps when a face references a point index outside its
// soup's point list. Run checks both soups through pairfinder.Find
// first, so an invalid face reaches Run's caller as
// pairfinder.ErrInvalidFace. Either is wrapped into
// kerr.InvalidInputMesh at the boolean.Run boundary.
var ErrInvalidFace = errors.New("corefine: face index out of range")
