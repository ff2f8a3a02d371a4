// SPDX-License-Identifier: MIT
package meshfixture

import (
	"math/big"

	"github.com/kigumi-go/kigumi/bbox"
	"github.com/kigumi-go/kigumi/point"
	"github.com/kigumi-go/kigumi/soup"
)

// UnitCube returns the cube [-1,1]^3 as a 12-triangle polygon soup,
// CCW-wound from outside (spec.md §6's input convention).
func UnitCube() *soup.Soup {
	pts := []point.Point{
		point.NewPoint(-1, -1, -1), // 0
		point.NewPoint(1, -1, -1),  // 1
		point.NewPoint(1, 1, -1),   // 2
		point.NewPoint(-1, 1, -1),  // 3
		point.NewPoint(-1, -1, 1),  // 4
		point.NewPoint(1, -1, 1),   // 5
		point.NewPoint(1, 1, 1),    // 6
		point.NewPoint(-1, 1, 1),   // 7
	}
	quads := [][]int{
		{0, 3, 2, 1}, // bottom, z = -1
		{4, 5, 6, 7}, // top, z = +1
		{0, 1, 5, 4}, // front, y = -1
		{2, 3, 7, 6}, // back, y = +1
		{0, 4, 7, 3}, // left, x = -1
		{1, 2, 6, 5}, // right, x = +1
	}
	return buildConvex(pts, point.NewPoint(0, 0, 0), quads)
}

// RegularTetrahedron returns the regular tetrahedron formed by
// alternating vertices of a cube — (1,1,1), (1,-1,-1), (-1,1,-1),
// (-1,-1,1). This is the only way to give a regular tetrahedron exact
// rational vertex coordinates: its edge length (sqrt(8)) is
// irrational, but the coordinates the exact kernel needs are not.
func RegularTetrahedron() *soup.Soup {
	return Tetrahedron(
		point.NewPoint(1, 1, 1),
		point.NewPoint(1, -1, -1),
		point.NewPoint(-1, 1, -1),
		point.NewPoint(-1, -1, 1),
	)
}

// Tetrahedron returns the (possibly irregular) tetrahedron with
// vertices a, b, c, d, with each face's winding corrected so its
// normal points away from the tetrahedron's centroid.
func Tetrahedron(a, b, c, d point.Point) *soup.Soup {
	pts := []point.Point{a, b, c, d}
	tris := [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
		{1, 2, 3},
	}
	return buildConvex(pts, averagePoint(pts), tris)
}

// Volume returns the exact signed volume of a closed triangle mesh via
// the divergence theorem: sum over faces of dot(v0, cross(v1-v0,
// v2-v0)) / 6. CCW-from-outside winding (spec.md §6) makes the sum
// positive for a closed, outward-wound solid (a single term can be
// negative when the origin lies outside the solid), so spec.md §8's S1-S6
// scenarios can assert an exact rational volume against boolean.Run's
// output.
func Volume(s *soup.Soup) *big.Rat {
	total := new(big.Rat)
	origin := point.NewPoint(0, 0, 0)
	for i := 0; i < s.NumFaces(); i++ {
		t := s.Triangle(i)
		e1 := point.Sub(t.B, t.A)
		e2 := point.Sub(t.C, t.A)
		n := point.Cross(e1, e2)
		term := point.Dot(point.Sub(t.A, origin), n)
		total.Add(total, term)
	}
	return total.Quo(total, big.NewRat(6, 1))
}

// BoundingBox returns the axis-aligned bounding box of every vertex in
// s, used by spec.md §8 scenario S1 to assert an intersection's exact
// extent rather than just its volume.
func BoundingBox(s *soup.Soup) bbox.Box {
	box := bbox.Empty()
	for _, p := range s.Points() {
		box = box.Union(bbox.OfPoint(p))
	}
	return box
}

func averagePoint(pts []point.Point) point.Point {
	var sum point.Vector
	origin := point.NewPoint(0, 0, 0)
	for _, p := range pts {
		sum = point.AddVec(sum, point.Sub(p, origin))
	}
	n := big.NewRat(int64(len(pts)), 1)
	return point.Add(origin, point.Scale(sum, new(big.Rat).Inv(n)))
}

// buildConvex fans each face into triangles, flipping its winding
// first if needed, so every emitted triangle's normal points away from
// centroid (spec.md §6: faces must wind CCW viewed from outside).
func buildConvex(pts []point.Point, centroid point.Point, faces [][]int) *soup.Soup {
	var out []soup.Face
	for _, f := range faces {
		face := f
		if !facesOutward(pts, centroid, face) {
			face = reversed(face)
		}
		for i := 1; i+1 < len(face); i++ {
			out = append(out, soup.Face{face[0], face[i], face[i+1]})
		}
	}
	return soup.New(pts, out)
}

func facesOutward(pts []point.Point, centroid point.Point, face []int) bool {
	a, b, c := pts[face[0]], pts[face[1]], pts[face[2]]
	n := point.Normal(a, b, c)
	toCentroid := point.Sub(centroid, a)
	return point.Dot(n, toCentroid).Sign() < 0
}

func reversed(face []int) []int {
	out := make([]int, len(face))
	for i, v := range face {
		out[len(face)-1-i] = v
	}
	return out
}

// Translate returns a copy of s with every vertex offset by (dx, dy,
// dz). Winding and face indices are unchanged.
func Translate(s *soup.Soup, dx, dy, dz int64) *soup.Soup {
	d := point.NewVector(dx, dy, dz)
	pts := make([]point.Point, len(s.Points()))
	for i, p := range s.Points() {
		pts[i] = point.Add(p, d)
	}
	return soup.New(pts, append([]soup.Face(nil), s.Faces()...))
}

// Scale returns a copy of s with every vertex scaled by the exact
// rational factor num/den about the origin. Winding is unaffected by a
// positive scale; a negative scale would invert every face, which
// callers needing that should combine with an explicit Invert.
func Scale(s *soup.Soup, num, den int64) *soup.Soup {
	k := big.NewRat(num, den)
	origin := point.NewPoint(0, 0, 0)
	pts := make([]point.Point, len(s.Points()))
	for i, p := range s.Points() {
		pts[i] = point.Add(origin, point.Scale(point.Sub(p, origin), k))
	}
	return soup.New(pts, append([]soup.Face(nil), s.Faces()...))
}

// RotateZ90 returns a copy of s rotated 90 degrees counter-clockwise
// about the z axis (x, y, z) -> (-y, x, z), which only swaps and
// negates coordinates and so keeps them exactly rational (for other
// rational-cosine angles see RotateZRational). Winding is preserved
// (the map is orientation-preserving).
func RotateZ90(s *soup.Soup) *soup.Soup {
	pts := make([]point.Point, len(s.Points()))
	for i, p := range s.Points() {
		pts[i] = point.NewPointFrac(
			numOf(p.Y, -1), denOf(p.Y),
			numOf(p.X, 1), denOf(p.X),
			numOf(p.Z, 1), denOf(p.Z),
		)
	}
	return soup.New(pts, append([]soup.Face(nil), s.Faces()...))
}

// numOf/denOf extract an int64 numerator (optionally sign-flipped) and
// denominator from a big.Rat that NewPoint/NewPointFrac always produce
// with a small integer value, so the round trip through NewPointFrac
// is exact.
func numOf(r big.Rat, sign int64) int64 {
	return sign * r.Num().Int64()
}

func denOf(r big.Rat) int64 {
	return r.Denom().Int64()
}

// RotateZRational returns a copy of s rotated about the z axis by the
// angle whose cosine is cosN/cosD and sine is sinN/sinD. Since an
// exact rational kernel cannot represent an irrational angle like 45
// degrees, callers wanting a "roughly diagonal" rotation (spec.md §8
// scenario S4) use a rational (cos, sin) pair satisfying cos²+sin²=1 —
// e.g. the 3-4-5 Pythagorean angle (3/5, 4/5) — instead of the
// irrational 45-degree one.
func RotateZRational(s *soup.Soup, cosN, cosD, sinN, sinD int64) *soup.Soup {
	cos := big.NewRat(cosN, cosD)
	sin := big.NewRat(sinN, sinD)
	pts := make([]point.Point, len(s.Points()))
	for i, p := range s.Points() {
		x, y := p.X, p.Y
		xNew := new(big.Rat).Sub(new(big.Rat).Mul(cos, &x), new(big.Rat).Mul(sin, &y))
		yNew := new(big.Rat).Add(new(big.Rat).Mul(sin, &x), new(big.Rat).Mul(cos, &y))
		pts[i] = point.NewPointFrac(
			xNew.Num().Int64(), xNew.Denom().Int64(),
			yNew.Num().Int64(), yNew.Denom().Int64(),
			numOf(p.Z, 1), denOf(p.Z),
		)
	}
	return soup.New(pts, append([]soup.Face(nil), s.Faces()...))
}
