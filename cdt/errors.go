package cdt

import "errors"

// ErrIntersectionOfConstraints is returned by InsertConstraint when the
// new constraint segment properly crosses a previously inserted
// constraint at a point that is not already a vertex. The offending
// constraint is not recorded; callers are expected to drop it and
// continue (spec.md §4.6).
var ErrIntersectionOfConstraints = errors.New("cdt: intersection of constraints")
