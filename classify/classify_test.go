package classify_test

import (
	"testing"

	"github.com/kigumi-go/kigumi/classify"
	"github.com/kigumi-go/kigumi/mixedmesh"
	"github.com/kigumi-go/kigumi/point"
	"github.com/stretchr/testify/require"
)

// coincidentSquares builds a mixed mesh of two unit squares in the z=0
// plane, split into triangles along the same diagonal, one from each
// operand: every face has an exact duplicate on the other side, so
// every face should end up Coplanar.
func coincidentSquares() (*mixedmesh.Mesh, map[mixedmesh.Edge]struct{}) {
	m := mixedmesh.New()
	p00 := point.NewPoint(0, 0, 0)
	p10 := point.NewPoint(1, 0, 0)
	p11 := point.NewPoint(1, 1, 0)
	p01 := point.NewPoint(0, 1, 0)

	addSquare := func(fromLeft bool) {
		v00 := m.AddVertex(p00)
		v10 := m.AddVertex(p10)
		v11 := m.AddVertex(p11)
		v01 := m.AddVertex(p01)
		m.AddFace(v00, v10, v11, fromLeft)
		m.AddFace(v00, v11, v01, fromLeft)
	}
	addSquare(true)
	addSquare(false)
	m.Finalize()

	border := mixedmesh.FindSharedEdges(m)
	return m, border
}

func TestAroundEdgesTagsCoincidentFacesCoplanar(t *testing.T) {
	m, border := coincidentSquares()
	require.NoError(t, classify.AroundEdges(m, border))

	for fh := 0; fh < m.NumFaces(); fh++ {
		require.Equal(t, mixedmesh.Coplanar, m.Face(mixedmesh.FaceHandle(fh)).Tag)
	}
}

// oppositeWindingAroundSharedEdge builds two triangles from different
// operands sharing an edge, winding it in opposite directions with
// distinct (non-coincident) third vertices: the configuration
// spec.md §4.10 step 5 assigns Intersection/Union to.
func oppositeWindingAroundSharedEdge() (*mixedmesh.Mesh, map[mixedmesh.Edge]struct{}) {
	m := mixedmesh.New()
	v0 := m.AddVertex(point.NewPoint(0, 0, 0))
	v1 := m.AddVertex(point.NewPoint(1, 0, 0))
	vL := m.AddVertex(point.NewPoint(0, 1, 0))
	vR := m.AddVertex(point.NewPoint(0, -1, 1))
	m.AddFace(v0, v1, vL, true)
	m.AddFace(v1, v0, vR, false)
	m.Finalize()
	border := mixedmesh.FindSharedEdges(m)
	return m, border
}

func TestAroundEdgesAssignsUnionIntersectionForDistinctThirdVertices(t *testing.T) {
	m, border := oppositeWindingAroundSharedEdge()
	require.NoError(t, classify.AroundEdges(m, border))

	tags := map[mixedmesh.FaceTag]int{}
	for fh := 0; fh < m.NumFaces(); fh++ {
		tags[m.Face(mixedmesh.FaceHandle(fh)).Tag]++
	}
	require.Equal(t, 1, tags[mixedmesh.Union])
	require.Equal(t, 1, tags[mixedmesh.Intersection])
}

func TestPropagateSpreadsTagAcrossNonBorderAdjacency(t *testing.T) {
	m := mixedmesh.New()
	// Two left-provenance triangles sharing a non-border edge; face 0
	// seeded Union should propagate to face 1.
	v0 := m.AddVertex(point.NewPoint(0, 0, 0))
	v1 := m.AddVertex(point.NewPoint(1, 0, 0))
	v2 := m.AddVertex(point.NewPoint(1, 1, 0))
	v3 := m.AddVertex(point.NewPoint(0, 1, 0))
	m.AddFace(v0, v1, v2, true)
	m.AddFace(v0, v2, v3, true)
	m.Finalize()
	m.SetTag(0, mixedmesh.Union)

	classify.Propagate(m, map[mixedmesh.Edge]struct{}{})
	require.Equal(t, mixedmesh.Union, m.Face(1).Tag)
}

func TestPropagateFromRejectsUntaggedSeed(t *testing.T) {
	m := mixedmesh.New()
	v0 := m.AddVertex(point.NewPoint(0, 0, 0))
	v1 := m.AddVertex(point.NewPoint(1, 0, 0))
	v2 := m.AddVertex(point.NewPoint(1, 1, 0))
	m.AddFace(v0, v1, v2, true)
	m.Finalize()

	err := classify.PropagateFrom(m, nil, 0)
	require.ErrorIs(t, err, classify.ErrSeedNotTagged)
}

func TestUnknownComponentsGroupsDisjointRegions(t *testing.T) {
	m := mixedmesh.New()
	// Component A: two adjacent triangles, both Unknown.
	a0 := m.AddVertex(point.NewPoint(0, 0, 0))
	a1 := m.AddVertex(point.NewPoint(1, 0, 0))
	a2 := m.AddVertex(point.NewPoint(1, 1, 0))
	a3 := m.AddVertex(point.NewPoint(0, 1, 0))
	m.AddFace(a0, a1, a2, true)
	m.AddFace(a0, a2, a3, true)
	// Component B: one isolated triangle, far away, also Unknown.
	b0 := m.AddVertex(point.NewPoint(10, 0, 0))
	b1 := m.AddVertex(point.NewPoint(11, 0, 0))
	b2 := m.AddVertex(point.NewPoint(11, 1, 0))
	m.AddFace(b0, b1, b2, true)
	m.Finalize()

	comps := classify.UnknownComponents(m, map[mixedmesh.Edge]struct{}{})
	require.Len(t, comps, 2)
}
