package cdt

import (
	"github.com/kigumi-go/kigumi/point"
)

// VertexHandle identifies a vertex previously inserted into a
// Triangulator.
type VertexHandle int

type vertex struct {
	pos  point.Point2
	info point.Point
}

// tri holds three vertex handles in 2D-CCW order.
type tri [3]int

type edgeKey struct{ a, b int }

func sortedEdge(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Triangulator is the constrained Delaunay triangulation of spec.md
// §4.6, seeded from one 3D triangle.
type Triangulator struct {
	verts  []vertex
	tris   []tri
	constr map[edgeKey]struct{}

	drop   int
	swap   bool
	origin point.Point
	normal point.Vector
}

// New constructs an empty triangulation and inserts t's three
// vertices, preserving t's original winding (spec.md §4.6: "a
// dimension is swapped when the corresponding normal component is
// negative").
func New(t point.Triangle) *Triangulator {
	n := point.Normal(t.A, t.B, t.C)
	drop := point.BestDropAxis(n)

	c := &Triangulator{
		constr: make(map[edgeKey]struct{}),
		drop:   drop,
		origin: t.A,
		normal: n,
	}
	// Calibrate swap against the seed triangle itself: project A, B, C
	// without swapping and check whether they come out CCW. If not,
	// swap U/V for every future projection so our own 2D convention
	// always agrees with the 3D winding it was built from.
	a0 := point.Project2(t.A, drop)
	b0 := point.Project2(t.B, drop)
	c0 := point.Project2(t.C, drop)
	if orient(a0, b0, c0) < 0 {
		c.swap = true
	}

	ha := c.Insert(t.A)
	hb := c.Insert(t.B)
	hc := c.Insert(t.C)
	c.tris = append(c.tris, tri{int(ha), int(hb), int(hc)})
	return c
}

func (c *Triangulator) project(p point.Point) point.Point2 {
	q := point.Project2(p, c.drop)
	if c.swap {
		q.U, q.V = q.V, q.U
	}
	return q
}

func (c *Triangulator) unproject(q point.Point2) point.Point {
	if c.swap {
		q.U, q.V = q.V, q.U
	}
	return point.Unproject2(q, c.drop, c.origin, c.normal)
}

// Insert projects p to 2D and inserts it, returning a handle. A point
// that exactly matches one already inserted returns the existing
// handle instead of creating a duplicate vertex.
func (c *Triangulator) Insert(p point.Point) VertexHandle {
	q := c.project(p)
	for i, v := range c.verts {
		if v.pos.U.Cmp(&q.U) == 0 && v.pos.V.Cmp(&q.V) == 0 {
			return VertexHandle(i)
		}
	}
	h := len(c.verts)
	c.verts = append(c.verts, vertex{pos: q, info: p})
	if h >= 3 {
		c.insertIntoMesh(h)
	}
	return VertexHandle(h)
}

// insertIntoMesh runs one Bowyer-Watson step for vertex h, which must
// already lie within the current triangulation's hull.
func (c *Triangulator) insertIntoMesh(h int) {
	q := c.verts[h].pos

	var cavity []int
	for i, t := range c.tris {
		a, b, cc := c.verts[t[0]].pos, c.verts[t[1]].pos, c.verts[t[2]].pos
		if inCircle(a, b, cc, q) >= 0 {
			cavity = append(cavity, i)
		}
	}
	if len(cavity) == 0 {
		return
	}

	seen := make(map[[2]int]bool)
	for _, i := range cavity {
		t := c.tris[i]
		for k := 0; k < 3; k++ {
			seen[[2]int{t[k], t[(k+1)%3]}] = true
		}
	}
	var boundary [][2]int
	for e := range seen {
		rev := [2]int{e[1], e[0]}
		if !seen[rev] {
			boundary = append(boundary, e)
		}
	}

	c.removeTris(cavity)
	for _, e := range boundary {
		c.tris = append(c.tris, tri{e[0], e[1], h})
	}
}

// removeTris deletes the tris at the given indices (not necessarily
// sorted), preserving the rest in arbitrary order.
func (c *Triangulator) removeTris(idx []int) {
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	out := c.tris[:0]
	for i, t := range c.tris {
		if !drop[i] {
			out = append(out, t)
		}
	}
	c.tris = out
}

// InsertConstraint inserts a polyline constraint between two
// previously inserted vertices. It fails with
// ErrIntersectionOfConstraints if the new segment properly crosses a
// previously recorded constraint at a point that is not already a
// vertex; the constraint is not recorded in that case.
func (c *Triangulator) InsertConstraint(vh0, vh1 VertexHandle) error {
	a, b := int(vh0), int(vh1)
	if a == b {
		return nil
	}
	pa, pb := c.verts[a].pos, c.verts[b].pos

	for e := range c.constr {
		if e.a == a || e.a == b || e.b == a || e.b == b {
			continue
		}
		pc, pd := c.verts[e.a].pos, c.verts[e.b].pos
		if properlyCross(pa, pb, pc, pd) {
			return ErrIntersectionOfConstraints
		}
	}

	c.recoverEdge(a, b)
	c.constr[sortedEdge(a, b)] = struct{}{}
	return nil
}

// recoverEdge ensures (a,b) exists as a mesh edge, retriangulating the
// cavity it crosses if necessary.
func (c *Triangulator) recoverEdge(a, b int) {
	if c.hasEdge(a, b) {
		return
	}

	pa, pb := c.verts[a].pos, c.verts[b].pos
	var cavity []int
	for i, t := range c.tris {
		verts := [3]point.Point2{c.verts[t[0]].pos, c.verts[t[1]].pos, c.verts[t[2]].pos}
		lo, hi, ok := clipSegmentToTriangle(pa, pb, verts)
		if ok && lo.Cmp(hi) < 0 {
			cavity = append(cavity, i)
		}
	}
	if len(cavity) == 0 {
		return
	}

	seen := make(map[[2]int]bool)
	for _, i := range cavity {
		t := c.tris[i]
		for k := 0; k < 3; k++ {
			seen[[2]int{t[k], t[(k+1)%3]}] = true
		}
	}
	var boundary [][2]int
	for e := range seen {
		rev := [2]int{e[1], e[0]}
		if !seen[rev] && e != [2]int{a, b} && e != [2]int{b, a} {
			boundary = append(boundary, e)
		}
	}
	c.removeTris(cavity)

	left, right := splitBoundaryBySide(c.verts, a, b, boundary)
	for _, ring := range [][]int{left, right} {
		if len(ring) < 3 {
			continue
		}
		for _, tr := range earClip(c.verts, ring) {
			c.tris = append(c.tris, tri(tr))
		}
	}
}

func (c *Triangulator) hasEdge(a, b int) bool {
	for _, t := range c.tris {
		for k := 0; k < 3; k++ {
			if t[k] == a && t[(k+1)%3] == b {
				return true
			}
			if t[k] == b && t[(k+1)%3] == a {
				return true
			}
		}
	}
	return false
}

// splitBoundaryBySide partitions the cavity's boundary edges into the
// two chains running from a to b, each closed by the direct a-b edge
// into an ear-clippable polygon.
func splitBoundaryBySide(verts []vertex, a, b int, boundary [][2]int) (left, right []int) {
	// Classify each boundary edge by which side of the line a->b its
	// non-endpoint vertex falls on.
	sideOf := func(u int) int {
		if u == a || u == b {
			return 0
		}
		return orient(verts[a].pos, verts[b].pos, verts[u].pos)
	}

	var leftEdges, rightEdges [][2]int
	for _, e := range boundary {
		s := sideOf(e[0])
		if s == 0 {
			s = sideOf(e[1])
		}
		if s > 0 {
			leftEdges = append(leftEdges, e)
		} else {
			rightEdges = append(rightEdges, e)
		}
	}

	left = traceChain(leftEdges, a, b)
	right = traceChain(rightEdges, a, b)
	return left, right
}

// traceChain follows a set of directed edges forming a single simple
// path and returns it as an ordered vertex list from whichever of a, b
// has no incoming edge in this subset to the other.
func traceChain(edges [][2]int, a, b int) []int {
	if len(edges) == 0 {
		return nil
	}
	next := make(map[int]int, len(edges))
	incoming := make(map[int]bool, len(edges))
	for _, e := range edges {
		next[e[0]] = e[1]
		incoming[e[1]] = true
	}
	start := a
	if incoming[a] && !incoming[b] {
		start = b
	}
	chain := []int{start}
	cur := start
	for {
		n, ok := next[cur]
		if !ok {
			break
		}
		chain = append(chain, n)
		cur = n
	}
	return chain
}

// GetTriangles emits every finite face as a 3D triangle built from its
// three vertex infos.
func (c *Triangulator) GetTriangles(sink func(point.Triangle)) {
	for _, t := range c.tris {
		sink(point.Triangle{A: c.verts[t[0]].info, B: c.verts[t[1]].info, C: c.verts[t[2]].info})
	}
}
