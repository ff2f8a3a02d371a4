// Package soup implements the polygon soup of spec.md §4.4: an
// indexed triangle mesh with a lazily built AABB tree.
package soup

import (
	"fmt"
	"sync"

	"github.com/kigumi-go/kigumi/aabbtree"
	"github.com/kigumi-go/kigumi/bbox"
	"github.com/kigumi-go/kigumi/point"
)

// Face is a triangle as three indices into a Soup's point list.
type Face [3]int

// Soup is an indexed triangle mesh. The zero value is not valid; build
// one with New. A Soup's point and face lists are immutable after
// construction, so every accessor is safe for concurrent use.
type Soup struct {
	points []point.Point
	faces  []Face

	treeOnce sync.Once
	tree     *aabbtree.Tree
}

// New builds a Soup over points and faces. It takes ownership of both
// slices; callers should not mutate them afterward.
func New(points []point.Point, faces []Face) *Soup {
	return &Soup{points: points, faces: faces}
}

// NumFaces returns the number of triangles in the soup.
func (s *Soup) NumFaces() int { return len(s.faces) }

// Points returns the soup's point list.
func (s *Soup) Points() []point.Point { return s.points }

// Faces returns the soup's face list.
func (s *Soup) Faces() []Face { return s.faces }

// Triangle returns face i as a geometric triangle.
func (s *Soup) Triangle(i int) point.Triangle {
	f := s.faces[i]
	return point.Triangle{A: s.points[f[0]], B: s.points[f[1]], C: s.points[f[2]]}
}

// CheckFace reports whether i is a valid face index and its three
// point indices all lie within [0, len(points)), the structural
// precondition every exact kernel call in corefine/pairfinder relies
// on before it ever touches the triangle's coordinates.
func (s *Soup) CheckFace(i int) error {
	if i < 0 || i >= len(s.faces) {
		return fmt.Errorf("soup: face index %d out of range [0,%d)", i, len(s.faces))
	}
	for _, idx := range s.faces[i] {
		if idx < 0 || idx >= len(s.points) {
			return fmt.Errorf("soup: face %d references point index %d out of range [0,%d)", i, idx, len(s.points))
		}
	}
	return nil
}

// Invert returns a new soup with every face's winding reversed, a
// fresh value sharing the same point list.
func (s *Soup) Invert() *Soup {
	inverted := make([]Face, len(s.faces))
	for i, f := range s.faces {
		inverted[i] = Face{f[0], f[2], f[1]}
	}
	return New(s.points, inverted)
}

// AABBTree returns the soup's AABB tree over its faces, building it on
// first access under a mutual-exclusion guard. Subsequent calls are
// lock-free.
func (s *Soup) AABBTree() *aabbtree.Tree {
	s.treeOnce.Do(func() {
		leaves := make([]aabbtree.Leaf, len(s.faces))
		for i := range s.faces {
			leaves[i] = aabbtree.Leaf{Box: bbox.OfTriangle(s.Triangle(i)), Handle: i}
		}
		s.tree = aabbtree.New(leaves)
	})
	return s.tree
}
