package classify

import "errors"

// ErrInconsistentTags is returned by AroundEdges when the cyclic walk
// of step 6 (spec.md §4.10) revisits a face that the same edge's pass
// already assigned Union or Intersection, but the walk wants to assign
// it the other tag. A tag left by an earlier edge's pass is not
// compared; the current pass overwrites it. Wrapped into
// kerr.InvalidInputMesh at the boolean.Run boundary.
var ErrInconsistentTags = errors.New("classify: inconsistent face tags around shared edge")

// ErrSeedNotTagged is returned by PropagateFrom when the seed face is
// not already tagged Union or Intersection (spec.md §4.11). Indicates
// a programming error in the caller. GlobalClassify, the only caller
// in the module, tags its seed first and discards the returned error,
// so this error is not mapped to a kerr kind anywhere.
var ErrSeedNotTagged = errors.New("classify: propagation seed is not tagged Union or Intersection")

// ErrAmbiguousRay is returned internally by the global classifier's
// single ray-cast attempt when the ray grazes a face edge or hits a
// coplanar face; callers retry rather than surfacing it (spec.md §7).
var ErrAmbiguousRay = errors.New("classify: ray cast was ambiguous")
