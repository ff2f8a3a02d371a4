package corefine_test

import (
	"testing"

	"github.com/kigumi-go/kigumi/corefine"
	"github.com/kigumi-go/kigumi/point"
	"github.com/kigumi-go/kigumi/soup"
	"github.com/stretchr/testify/require"
)

func singleTriangleSoup(a, b, c point.Point) *soup.Soup {
	return soup.New([]point.Point{a, b, c}, []soup.Face{{0, 1, 2}})
}

func TestRunDisjointTrianglesLeavesBothSidesUnchanged(t *testing.T) {
	left := singleTriangleSoup(point.NewPoint(0, 0, 0), point.NewPoint(1, 0, 0), point.NewPoint(0, 1, 0))
	right := singleTriangleSoup(point.NewPoint(10, 10, 10), point.NewPoint(11, 10, 10), point.NewPoint(10, 11, 10))

	res, err := corefine.Run(left, right)
	require.NoError(t, err)
	require.Equal(t, 0, res.DroppedConstraints)
	require.Equal(t, 1, res.Left.NumFaces())
	require.Equal(t, 1, res.Right.NumFaces())
}

func TestRunCrossingTrianglesRetriangulatesBothSides(t *testing.T) {
	// A known-crossing pair (point/intersect_test.go): t1 in the z=0
	// plane, t2 piercing it along the segment (1,0,0)-(2,0,0).
	left := singleTriangleSoup(point.NewPoint(0, 0, 0), point.NewPoint(4, 0, 0), point.NewPoint(0, 4, 0))
	right := singleTriangleSoup(point.NewPoint(1, 0, -2), point.NewPoint(3, 0, -2), point.NewPoint(1, 0, 2))

	res, err := corefine.Run(left, right)
	require.NoError(t, err)
	require.Equal(t, 0, res.DroppedConstraints)

	// Each original face is cut by a shared segment constraint, so both
	// sides must come out with more than one triangle.
	require.Greater(t, res.Left.NumFaces(), 1)
	require.Greater(t, res.Right.NumFaces(), 1)

	// The two new segment endpoints (1,0,0) and (2,0,0) must appear as
	// vertices on both sides (the corefinement invariant of spec.md
	// §4.7: every intersection edge is a mesh edge in both outputs).
	requireHasVertex(t, res.Left, point.NewPoint(1, 0, 0))
	requireHasVertex(t, res.Left, point.NewPoint(2, 0, 0))
	requireHasVertex(t, res.Right, point.NewPoint(1, 0, 0))
	requireHasVertex(t, res.Right, point.NewPoint(2, 0, 0))
}

func TestRunRejectsFaceWithOutOfRangePointIndex(t *testing.T) {
	left := singleTriangleSoup(point.NewPoint(0, 0, 0), point.NewPoint(4, 0, 0), point.NewPoint(0, 4, 0))
	// right's only face references point index 5, which does not exist
	// in its 3-point list.
	right := soup.New(
		[]point.Point{point.NewPoint(1, 0, -2), point.NewPoint(3, 0, -2), point.NewPoint(1, 0, 2)},
		[]soup.Face{{0, 1, 5}},
	)

	_, err := corefine.Run(left, right)
	require.Error(t, err)
}

func requireHasVertex(t *testing.T, s *soup.Soup, p point.Point) {
	t.Helper()
	for _, q := range s.Points() {
		if q.Equal(p) {
			return
		}
	}
	t.Fatalf("expected vertex %+v in soup, points were %+v", p, s.Points())
}

func TestRunPreservesUntouchedFacesOfMultiTriangleSoup(t *testing.T) {
	// left has two faces; only the first is touched by right's single
	// crossing triangle, so the second must be emitted unchanged.
	left := soup.New(
		[]point.Point{
			point.NewPoint(0, 0, 0), point.NewPoint(4, 0, 0), point.NewPoint(0, 4, 0),
			point.NewPoint(100, 100, 100), point.NewPoint(101, 100, 100), point.NewPoint(100, 101, 100),
		},
		[]soup.Face{{0, 1, 2}, {3, 4, 5}},
	)
	right := singleTriangleSoup(point.NewPoint(1, 0, -2), point.NewPoint(3, 0, -2), point.NewPoint(1, 0, 2))

	res, err := corefine.Run(left, right)
	require.NoError(t, err)
	require.Equal(t, 0, res.DroppedConstraints)
	require.Greater(t, res.Left.NumFaces(), 2)

	requireHasVertex(t, res.Left, point.NewPoint(100, 100, 100))
	requireHasVertex(t, res.Left, point.NewPoint(101, 100, 100))
	requireHasVertex(t, res.Left, point.NewPoint(100, 101, 100))
}
