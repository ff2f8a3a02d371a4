// Package bbox implements exact axis-aligned bounding boxes and the
// overlap/ray predicates the AABB tree (spec.md §4.2) is built on.
package bbox

import (
	"math/big"

	"github.com/kigumi-go/kigumi/point"
)

// Box is an exact axis-aligned bounding box, possibly empty.
type Box struct {
	empty    bool
	Min, Max point.Point
}

// Empty returns the empty box, which overlaps nothing.
func Empty() Box { return Box{empty: true} }

// IsEmpty reports whether b has no extent.
func (b Box) IsEmpty() bool { return b.empty }

// OfPoint returns the degenerate box containing exactly p.
func OfPoint(p point.Point) Box {
	return Box{Min: p, Max: p}
}

// OfTriangle returns the bounding box of a triangle's three vertices.
func OfTriangle(t point.Triangle) Box {
	b := OfPoint(t.A)
	b = b.Union(OfPoint(t.B))
	b = b.Union(OfPoint(t.C))
	return b
}

// Union returns the smallest box containing both a and b.
func (b Box) Union(o Box) Box {
	if b.empty {
		return o
	}
	if o.empty {
		return b
	}
	return Box{
		Min: point.Point{X: *minRat(&b.Min.X, &o.Min.X), Y: *minRat(&b.Min.Y, &o.Min.Y), Z: *minRat(&b.Min.Z, &o.Min.Z)},
		Max: point.Point{X: *maxRat(&b.Max.X, &o.Max.X), Y: *maxRat(&b.Max.Y, &o.Max.Y), Z: *maxRat(&b.Max.Z, &o.Max.Z)},
	}
}

func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Centroid returns the midpoint of the box, used to partition leaves
// when building the AABB tree.
func (b Box) Centroid() point.Point {
	var mid point.Point
	mid.X.Add(&b.Min.X, &b.Max.X)
	mid.X.Quo(&mid.X, big.NewRat(2, 1))
	mid.Y.Add(&b.Min.Y, &b.Max.Y)
	mid.Y.Quo(&mid.Y, big.NewRat(2, 1))
	mid.Z.Add(&b.Min.Z, &b.Max.Z)
	mid.Z.Quo(&mid.Z, big.NewRat(2, 1))
	return mid
}

// LongestAxis returns the index (0=x, 1=y, 2=z) of the box's longest
// extent, the split axis the AABB tree builder uses.
func (b Box) LongestAxis() int {
	dx := new(big.Rat).Sub(&b.Max.X, &b.Min.X)
	dy := new(big.Rat).Sub(&b.Max.Y, &b.Min.Y)
	dz := new(big.Rat).Sub(&b.Max.Z, &b.Min.Z)
	axis := 0
	best := dx
	if dy.Cmp(best) > 0 {
		axis, best = 1, dy
	}
	if dz.Cmp(best) > 0 {
		axis = 2
	}
	return axis
}

func axisOf(p point.Point, i int) *big.Rat {
	switch i {
	case 0:
		return &p.X
	case 1:
		return &p.Y
	default:
		return &p.Z
	}
}

// CentroidAxis returns the box's centroid coordinate along axis i.
func (b Box) CentroidAxis(i int) *big.Rat {
	c := b.Centroid()
	return axisOf(c, i)
}

// Overlaps reports whether two boxes intersect (closed, so touching
// boxes count as overlapping).
func Overlaps(a, b Box) bool {
	if a.empty || b.empty {
		return false
	}
	return axisOverlap(&a.Min.X, &a.Max.X, &b.Min.X, &b.Max.X) &&
		axisOverlap(&a.Min.Y, &a.Max.Y, &b.Min.Y, &b.Max.Y) &&
		axisOverlap(&a.Min.Z, &a.Max.Z, &b.Min.Z, &b.Max.Z)
}

func axisOverlap(amin, amax, bmin, bmax *big.Rat) bool {
	return amin.Cmp(bmax) <= 0 && bmin.Cmp(amax) <= 0
}

// OverlapsRay reports whether the ray (origin, through) intersects b,
// using the exact slab method described in spec.md §4.2.
func OverlapsRay(b Box, r point.Ray) bool {
	if b.empty {
		return false
	}
	dir := r.Direction()
	tmin := big.NewRat(0, 1)
	var tmax *big.Rat // nil means +infinity
	axes := [3]*big.Rat{&dir.X, &dir.Y, &dir.Z}
	mins := [3]*big.Rat{&b.Min.X, &b.Min.Y, &b.Min.Z}
	maxs := [3]*big.Rat{&b.Max.X, &b.Max.Y, &b.Max.Z}
	origins := [3]*big.Rat{&r.Origin.X, &r.Origin.Y, &r.Origin.Z}

	for i := 0; i < 3; i++ {
		d := axes[i]
		o := origins[i]
		if d.Sign() == 0 {
			if o.Cmp(mins[i]) < 0 || o.Cmp(maxs[i]) > 0 {
				return false
			}
			continue
		}
		t0 := new(big.Rat).Sub(mins[i], o)
		t0.Quo(t0, d)
		t1 := new(big.Rat).Sub(maxs[i], o)
		t1.Quo(t1, d)
		if t0.Cmp(t1) > 0 {
			t0, t1 = t1, t0
		}
		if t0.Cmp(tmin) > 0 {
			tmin = t0
		}
		if tmax == nil || t1.Cmp(tmax) < 0 {
			tmax = t1
		}
		if tmax != nil && tmin.Cmp(tmax) > 0 {
			return false
		}
	}
	return tmax == nil || tmax.Sign() >= 0
}

// OverlapsTriangle reports whether b's box overlaps t's bounding box.
// This is the conservative (bbox-vs-bbox) overlap test spec.md §4.5
// describes: the AABB tree only ever tests box-against-box, never the
// exact triangle shape, by design.
func OverlapsTriangle(b Box, t point.Triangle) bool {
	return Overlaps(b, OfTriangle(t))
}
