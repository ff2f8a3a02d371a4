package aabbtree

import (
	"sort"

	"github.com/kigumi-go/kigumi/bbox"
	"github.com/kigumi-go/kigumi/point"
)

// Leaf is one triangle leaf of the tree: a bounding box and the
// opaque handle (a face index) it stands for.
type Leaf struct {
	Box    bbox.Box
	Handle int
}

// Tree is a static AABB tree over a fixed set of leaves.
//
// Complexity: New is O(N log N); each query descends O(log N) nodes
// per matching region, visiting more for queries that overlap many
// leaves.
type Tree struct {
	root *node
}

type node struct {
	box         bbox.Box
	left, right *node
	leaf        Leaf
	isLeaf      bool
}

// New builds a tree over leaves in O(N log N) by recursively
// partitioning by bounding-box centroid along the longest axis (spec
// §4.2). Empty input yields an empty tree that answers "no hits" to
// every query.
func New(leaves []Leaf) *Tree {
	if len(leaves) == 0 {
		return &Tree{}
	}
	cp := make([]Leaf, len(leaves))
	copy(cp, leaves)
	return &Tree{root: build(cp)}
}

func build(leaves []Leaf) *node {
	if len(leaves) == 1 {
		return &node{box: leaves[0].Box, leaf: leaves[0], isLeaf: true}
	}
	box := bbox.Empty()
	for _, l := range leaves {
		box = box.Union(l.Box)
	}
	axis := box.LongestAxis()
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].Box.CentroidAxis(axis).Cmp(leaves[j].Box.CentroidAxis(axis)) < 0
	})
	mid := len(leaves) / 2
	return &node{
		box:   box,
		left:  build(leaves[:mid]),
		right: build(leaves[mid:]),
	}
}

// IsEmpty reports whether the tree has no leaves.
func (t *Tree) IsEmpty() bool { return t == nil || t.root == nil }

// GetIntersectingLeavesTriangle descends into every subtree whose box
// overlaps tri's bounding box and passes each overlapping leaf to
// sink. The triangle itself is only ever tested as a bounding box
// against boxes (spec §4.5): the tree never evaluates exact
// triangle/triangle geometry.
func (t *Tree) GetIntersectingLeavesTriangle(tri point.Triangle, sink func(Leaf)) {
	if t.IsEmpty() {
		return
	}
	qbox := bbox.OfTriangle(tri)
	walk(t.root, func(b bbox.Box) bool { return bbox.Overlaps(b, qbox) }, sink)
}

// GetIntersectingLeavesRay descends into every subtree whose box
// overlaps the ray (exact slab test, spec §4.2) and passes each
// overlapping leaf to sink.
func (t *Tree) GetIntersectingLeavesRay(r point.Ray, sink func(Leaf)) {
	if t.IsEmpty() {
		return
	}
	walk(t.root, func(b bbox.Box) bool { return bbox.OverlapsRay(b, r) }, sink)
}

func walk(n *node, overlaps func(bbox.Box) bool, sink func(Leaf)) {
	if n == nil || !overlaps(n.box) {
		return
	}
	if n.isLeaf {
		sink(n.leaf)
		return
	}
	walk(n.left, overlaps, sink)
	walk(n.right, overlaps, sink)
}
