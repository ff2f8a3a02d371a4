package meshfixture_test

import (
	"math/big"
	"testing"

	"github.com/kigumi-go/kigumi/meshfixture"
	"github.com/kigumi-go/kigumi/point"
	"github.com/stretchr/testify/require"
)

func TestUnitCubeHasTwelveOutwardTriangles(t *testing.T) {
	c := meshfixture.UnitCube()
	require.Equal(t, 8, len(c.Points()))
	require.Equal(t, 12, c.NumFaces())
	requireWindsOutward(t, c)
}

func TestRegularTetrahedronHasFourOutwardTriangles(t *testing.T) {
	tet := meshfixture.RegularTetrahedron()
	require.Equal(t, 4, len(tet.Points()))
	require.Equal(t, 4, tet.NumFaces())
	requireWindsOutward(t, tet)
}

func TestTranslateShiftsEveryVertex(t *testing.T) {
	c := meshfixture.UnitCube()
	moved := meshfixture.Translate(c, 5, 0, 0)
	for i, p := range c.Points() {
		want := point.Add(p, point.NewVector(5, 0, 0))
		require.True(t, moved.Points()[i].Equal(want))
	}
	require.Equal(t, c.Faces(), moved.Faces())
}

func TestScaleMultipliesEveryVertex(t *testing.T) {
	c := meshfixture.UnitCube()
	scaled := meshfixture.Scale(c, 3, 1)
	require.True(t, scaled.Points()[1].Equal(point.NewPoint(3, -3, -3)))
}

func TestRotateZ90PreservesWindingAndExactness(t *testing.T) {
	c := meshfixture.UnitCube()
	rotated := meshfixture.RotateZ90(c)
	require.Equal(t, c.NumFaces(), rotated.NumFaces())
	requireWindsOutward(t, rotated)
	// (1,-1,-1) rotates to (1,1,-1).
	require.True(t, rotated.Points()[1].Equal(point.NewPoint(1, 1, -1)))
}

func TestRotateZRationalPreservesWinding(t *testing.T) {
	c := meshfixture.UnitCube()
	rotated := meshfixture.RotateZRational(c, 3, 5, 4, 5)
	require.Equal(t, c.NumFaces(), rotated.NumFaces())
	requireWindsOutward(t, rotated)
	// (1,-1,-1) -> x' = 3/5*1 - 4/5*-1 = 7/5, y' = 4/5*1 + 3/5*-1 = 1/5.
	require.True(t, rotated.Points()[1].Equal(point.NewPointFrac(7, 5, 1, 5, -1, 1)))
}

// requireWindsOutward checks that every triangle's normal points away
// from the solid's centroid (spec.md §6's CCW-from-outside convention).
func requireWindsOutward(t *testing.T, s interface {
	NumFaces() int
	Triangle(int) point.Triangle
	Points() []point.Point
}) {
	t.Helper()
	var sum point.Vector
	for _, p := range s.Points() {
		sum = point.AddVec(sum, point.Sub(p, point.NewPoint(0, 0, 0)))
	}
	n := big.NewRat(int64(len(s.Points())), 1)
	centroid := point.Add(point.NewPoint(0, 0, 0), point.Scale(sum, new(big.Rat).Inv(n)))

	for i := 0; i < s.NumFaces(); i++ {
		tri := s.Triangle(i)
		normal := point.Normal(tri.A, tri.B, tri.C)
		toCentroid := point.Sub(centroid, tri.A)
		require.True(t, point.Dot(normal, toCentroid).Sign() < 0, "face %d should wind outward", i)
	}
}
