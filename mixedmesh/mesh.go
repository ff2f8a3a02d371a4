package mixedmesh

import (
	"sort"
	"sync"

	"github.com/kigumi-go/kigumi/aabbtree"
	"github.com/kigumi-go/kigumi/bbox"
	"github.com/kigumi-go/kigumi/interner"
	"github.com/kigumi-go/kigumi/point"
)

// VertexHandle is an opaque, dense index into a Mesh's point list.
type VertexHandle int

// FaceHandle is an opaque, dense index into a Mesh's face list.
type FaceHandle int

// FaceTag is one of the five semantic tags spec.md §3 assigns to a
// face during classification.
type FaceTag int

const (
	Unknown FaceTag = iota
	Union
	Intersection
	Coplanar
	Opposite
)

func (t FaceTag) String() string {
	switch t {
	case Union:
		return "Union"
	case Intersection:
		return "Intersection"
	case Coplanar:
		return "Coplanar"
	case Opposite:
		return "Opposite"
	default:
		return "Unknown"
	}
}

// Edge is an ordered pair of vertex handles (v_lo, v_hi) with
// v_lo < v_hi, derived rather than stored (spec.md §3).
type Edge struct{ Lo, Hi VertexHandle }

// NewEdge builds the canonical Edge for an unordered vertex pair.
func NewEdge(a, b VertexHandle) Edge {
	if a < b {
		return Edge{Lo: a, Hi: b}
	}
	return Edge{Lo: b, Hi: a}
}

// Face is the payload of one mixed-mesh triangle: its three vertices
// in their original cyclic (winding) order, which operand it came
// from, and its current semantic tag.
type Face struct {
	V        [3]VertexHandle
	FromLeft bool
	Tag      FaceTag
}

// Edges returns f's three edges in winding order: (V0,V1), (V1,V2),
// (V2,V0).
func (f Face) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(f.V[0], f.V[1]),
		NewEdge(f.V[1], f.V[2]),
		NewEdge(f.V[2], f.V[0]),
	}
}

// ThirdVertex returns the vertex of f that is neither a nor b, or -1
// if f is not incident to edge (a,b).
func (f Face) ThirdVertex(a, b VertexHandle) VertexHandle {
	for _, v := range f.V {
		if v != a && v != b {
			return v
		}
	}
	return -1
}

// WindsForward reports whether f's winding visits a immediately before
// b (i.e. the face contains the directed edge a->b), as opposed to
// b->a.
func (f Face) WindsForward(a, b VertexHandle) bool {
	for i := 0; i < 3; i++ {
		if f.V[i] == a && f.V[(i+1)%3] == b {
			return true
		}
	}
	return false
}

// vfEntry pairs a vertex with an incident face, the unit of sort used
// to build the starts/faceIndices auxiliary arrays (spec.md §4.8).
type vfEntry struct {
	v VertexHandle
	f FaceHandle
}

// Mesh is the indexed mesh of spec.md §3/§4.8: a point interner plus a
// face list, with provenance and tag per face. Finalize must be
// called once after all faces are added, before any traversal query.
type Mesh struct {
	in    interner.Interner
	faces []Face

	finalized bool
	starts    []int
	faceIdx   []FaceHandle

	treeOnce sync.Once
	tree     *aabbtree.Tree
}

// New returns an empty Mesh ready for AddVertex/AddFace calls.
func New() *Mesh { return &Mesh{} }

// AddVertex interns p and returns its (possibly pre-existing) handle.
func (m *Mesh) AddVertex(p point.Point) VertexHandle {
	return VertexHandle(m.in.Insert(p))
}

// AddFace appends a face with the given winding and provenance,
// defaulting its tag to Unknown. Must be called before Finalize.
func (m *Mesh) AddFace(v0, v1, v2 VertexHandle, fromLeft bool) FaceHandle {
	m.faces = append(m.faces, Face{V: [3]VertexHandle{v0, v1, v2}, FromLeft: fromLeft, Tag: Unknown})
	return FaceHandle(len(m.faces) - 1)
}

// NumFaces returns the number of faces in the mesh.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumVertices returns the number of distinct vertices interned so far.
func (m *Mesh) NumVertices() int { return m.in.Len() }

// Face returns face f's data.
func (m *Mesh) Face(f FaceHandle) Face { return m.faces[f] }

// SetTag updates face f's tag.
func (m *Mesh) SetTag(f FaceHandle, tag FaceTag) { m.faces[f].Tag = tag }

// Point returns the interned point for vertex handle v.
func (m *Mesh) Point(v VertexHandle) point.Point { return m.in.Point(int(v)) }

// Triangle returns face f as a geometric triangle.
func (m *Mesh) Triangle(f FaceHandle) point.Triangle {
	fd := m.faces[f]
	return point.Triangle{A: m.Point(fd.V[0]), B: m.Point(fd.V[1]), C: m.Point(fd.V[2])}
}

// Finalize builds the starts/faceIndices auxiliary arrays described in
// spec.md §4.8: for every face (v0,v1,v2), the triples
// {(v0,f),(v1,f),(v2,f)} are sorted by vertex then face, giving O(1)
// lookup of the faces incident to a vertex. Idempotent.
func (m *Mesh) Finalize() {
	if m.finalized {
		return
	}
	entries := make([]vfEntry, 0, len(m.faces)*3)
	for fi, fd := range m.faces {
		for _, v := range fd.V {
			entries = append(entries, vfEntry{v: v, f: FaceHandle(fi)})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].v != entries[j].v {
			return entries[i].v < entries[j].v
		}
		return entries[i].f < entries[j].f
	})

	numVerts := m.in.Len()
	m.faceIdx = make([]FaceHandle, len(entries))
	for i, e := range entries {
		m.faceIdx[i] = e.f
	}
	m.starts = make([]int, numVerts+1)
	ei := 0
	for v := 0; v < numVerts; v++ {
		m.starts[v] = ei
		for ei < len(entries) && int(entries[ei].v) == v {
			ei++
		}
	}
	m.starts[numVerts] = ei
	m.finalized = true
}

// FacesAroundVertex returns every face incident to v, in ascending
// FaceHandle order. Finalize must have been called.
func (m *Mesh) FacesAroundVertex(v VertexHandle) []FaceHandle {
	return m.faceIdx[m.starts[v]:m.starts[v+1]]
}

// FacesAroundEdge passes every face incident to both endpoints of e to
// sink, found by merge-joining the two endpoints' (ascending) face
// lists. Finalize must have been called.
func (m *Mesh) FacesAroundEdge(e Edge, sink func(FaceHandle)) {
	a := m.FacesAroundVertex(e.Lo)
	b := m.FacesAroundVertex(e.Hi)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			sink(a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
}

// FacesAroundEdgeSlice is a convenience wrapper returning
// FacesAroundEdge's results as a slice.
func (m *Mesh) FacesAroundEdgeSlice(e Edge) []FaceHandle {
	var out []FaceHandle
	m.FacesAroundEdge(e, func(f FaceHandle) { out = append(out, f) })
	return out
}

// FacesAroundFace passes every face sharing an edge of f to sink,
// except edges in border (the intersection-skeleton barrier) and f
// itself. This is the propagation-respecting adjacency spec.md §4.8
// describes.
func (m *Mesh) FacesAroundFace(f FaceHandle, border map[Edge]struct{}, sink func(FaceHandle)) {
	fd := m.faces[f]
	for _, e := range fd.Edges() {
		if _, blocked := border[e]; blocked {
			continue
		}
		m.FacesAroundEdge(e, func(nf FaceHandle) {
			if nf != f {
				sink(nf)
			}
		})
	}
}

// AABBTree returns the mesh's AABB tree over its faces, built on first
// access under a mutual-exclusion guard (spec.md §4.4's pattern,
// reused here since mixedmesh plays the same "lazily-built tree over
// triangle leaves" role soup.Soup does for the un-corefined inputs).
func (m *Mesh) AABBTree() *aabbtree.Tree {
	m.treeOnce.Do(func() {
		leaves := make([]aabbtree.Leaf, len(m.faces))
		for i := range m.faces {
			leaves[i] = aabbtree.Leaf{Box: bbox.OfTriangle(m.Triangle(FaceHandle(i))), Handle: i}
		}
		m.tree = aabbtree.New(leaves)
	})
	return m.tree
}
