// Package point is the exact arithmetic facade of the kigumi boolean
// engine. It wraps an exact rational kernel (math/big.Rat) behind the
// handful of 3D primitives — points, vectors, segments, rays, lines,
// triangles and planes — and the exact predicates and constructions the
// rest of the pipeline relies on: orientation, sidedness, coplanarity,
// squared distance, triangle/triangle intersection and triangle/ray
// intersection.
//
// Every predicate here is exact: there is no floating-point
// tie-breaking anywhere in this package. Coordinates are arbitrary
// precision rationals, so results are exact for any rational input,
// at the cost of speed relative to a filtered (float-then-exact-
// fallback) kernel. See DESIGN.md for why math/big is used instead of
// a third-party geometry library.
package point

import "errors"

// ErrArithmeticOverflow is returned when the underlying kernel cannot
// represent an exact result. math/big.Rat is unbounded, so this is
// never expected to surface for well-formed rational input; it exists
// to satisfy the error surface spec.md §6/§7 requires at the boundary
// (e.g. a Point constructed from a non-finite float64).
var ErrArithmeticOverflow = errors.New("point: arithmetic overflow")
