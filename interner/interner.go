// Package interner implements the point interner of spec.md §4.3: a
// deduplicating table from exact points to dense integer vertex
// handles.
package interner

import "github.com/kigumi-go/kigumi/point"

type approxKey struct {
	x, y, z float64
}

// Interner deduplicates points into dense handles. The zero value is
// ready to use.
type Interner struct {
	buckets map[approxKey][]int
	points  []point.Point
}

// Insert returns the existing handle for p if already present,
// otherwise appends p and returns its new handle. Collisions on the
// approximate hash key are resolved by exact comparison, so Insert
// never returns the wrong handle regardless of hash collisions.
//
// Complexity: O(1) expected.
func (in *Interner) Insert(p point.Point) int {
	if in.buckets == nil {
		in.buckets = make(map[approxKey][]int)
	}
	x, y, z := p.ApproxLowerBound()
	key := approxKey{x, y, z}
	for _, h := range in.buckets[key] {
		if in.points[h].Equal(p) {
			return h
		}
	}
	h := len(in.points)
	in.points = append(in.points, p)
	in.buckets[key] = append(in.buckets[key], h)
	return h
}

// Len returns the number of distinct points interned so far.
func (in *Interner) Len() int { return len(in.points) }

// Point returns the point for a previously returned handle.
func (in *Interner) Point(handle int) point.Point { return in.points[handle] }

// IntoVector moves the owned point list out of the interner, leaving
// it empty and ready for reuse.
func (in *Interner) IntoVector() []point.Point {
	out := in.points
	in.points = nil
	in.buckets = nil
	return out
}
