package point

import "math/big"

// Point2 is a point in a 2D projection of 3D space, the representation
// packages that triangulate a single planar face work in (spec.md
// §4.6).
type Point2 struct{ U, V big.Rat }

// BestDropAxis returns the index (0=x, 1=y, 2=z) of n's
// largest-magnitude component: dropping that axis gives the
// best-conditioned 2D view of a plane with normal n.
func BestDropAxis(n Vector) int { return bestDropAxis(n) }

// Project2 projects p to 2D by dropping coordinate `drop`.
func Project2(p Point, drop int) Point2 {
	return Point2(project2(p, drop))
}

// Unproject2 reconstructs the 3D point that projects to q under drop
// and lies on the plane through origin with normal n.
func Unproject2(q Point2, drop int, origin Point, n Vector) Point {
	return unproject2(pt2(q), drop, origin, n)
}
