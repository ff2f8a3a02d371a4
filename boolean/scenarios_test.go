package boolean_test

import (
	"math/big"
	"testing"

	"github.com/kigumi-go/kigumi/bbox"
	"github.com/kigumi-go/kigumi/boolean"
	"github.com/kigumi-go/kigumi/meshfixture"
	"github.com/kigumi-go/kigumi/operator"
	"github.com/kigumi-go/kigumi/point"
	"github.com/stretchr/testify/require"
)

// These tests drive the full boolean engine over spec.md §8's
// concrete scenarios (S1-S6) and universal properties (P1-P6), using
// meshfixture.UnitCube/Tetrahedron and its transforms.
// P7 (interner idempotence) and P8 (AABB brute-force completeness)
// have their own dedicated tests in interner/interner_test.go and
// aabbtree/tree_test.go and are not duplicated here.
//
// meshfixture.UnitCube spans [-1,1]^3 (side 2, volume 8) rather than
// spec.md's literal [0,1]^3 (side 1, volume 1), so every volume
// asserted below is the spec's scenario value times 2^3 = 8.

func exactVolume(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

// TestScenarioS1OverlappingCubes runs spec.md §8 S1: two axis-aligned
// cubes offset by half a side length along every axis.
func TestScenarioS1OverlappingCubes(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.Translate(a, 1, 1, 1)

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Intersection, operator.Union, operator.Difference)
	require.NoError(t, err)

	intersection, union, difference := outs[0], outs[1], outs[2]

	require.Zero(t, meshfixture.Volume(intersection).Cmp(exactVolume(1, 1)))
	require.Zero(t, meshfixture.Volume(union).Cmp(exactVolume(15, 1)))
	require.Zero(t, meshfixture.Volume(difference).Cmp(exactVolume(7, 1)))

	wantBox := bbox.Box{Min: point.NewPoint(0, 0, 0), Max: point.NewPoint(1, 1, 1)}
	gotBox := meshfixture.BoundingBox(intersection)
	require.True(t, gotBox.Min.Equal(wantBox.Min), "intersection bounding box min: got %+v", gotBox.Min)
	require.True(t, gotBox.Max.Equal(wantBox.Max), "intersection bounding box max: got %+v", gotBox.Max)
}

// TestScenarioS2DisjointCubes runs spec.md §8 S2: two disjoint cubes.
func TestScenarioS2DisjointCubes(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.Translate(a, 4, 0, 0)

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Intersection, operator.Union)
	require.NoError(t, err)

	intersection, union := outs[0], outs[1]
	require.Equal(t, 0, intersection.NumFaces())
	require.Equal(t, 24, union.NumFaces())
	require.Zero(t, meshfixture.Volume(union).Cmp(exactVolume(16, 1)))
}

// TestScenarioS3CoincidentCubes runs spec.md §8 S3: two fully
// coincident cubes, every face pair Coplanar.
func TestScenarioS3CoincidentCubes(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.UnitCube()

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Union, operator.Difference)
	require.NoError(t, err)

	union, difference := outs[0], outs[1]
	require.Zero(t, meshfixture.Volume(union).Cmp(exactVolume(8, 1)))
	require.Equal(t, 0, difference.NumFaces())
}

// TestScenarioS4RotatedCube approximates spec.md §8 S4: a cube and the
// same cube rotated about its own centroid. The spec's 45-degree angle
// has no exact rational coordinates, so this uses the 3-4-5
// Pythagorean angle (cos=3/5, sin=4/5) instead; the intersection volume is consequently
// not the spec's irrational (2-sqrt(2)) value, so this only asserts
// the structural bound a genuine overlap guarantees.
func TestScenarioS4RotatedCube(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.RotateZRational(a, 3, 5, 4, 5)

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Intersection)
	require.NoError(t, err)

	intersection := outs[0]
	vol := meshfixture.Volume(intersection)
	require.True(t, vol.Sign() > 0, "rotated-cube intersection must have positive volume")
	require.True(t, vol.Cmp(exactVolume(8, 1)) < 0, "rotated-cube intersection must be strictly smaller than either cube")
}

// TestScenarioS5NestedTetrahedra runs spec.md §8 S5: a tetrahedron and
// the same tetrahedron scaled 2x about the shared apex, so A is
// entirely inside B and SymmetricDifference must equal volume(B) -
// volume(A).
func TestScenarioS5NestedTetrahedra(t *testing.T) {
	a := meshfixture.Tetrahedron(
		point.NewPoint(0, 0, 0),
		point.NewPoint(1, 0, 0),
		point.NewPoint(0, 1, 0),
		point.NewPoint(0, 0, 1),
	)
	b := meshfixture.Scale(a, 2, 1)

	outs, _, err := boolean.NewRunner().Run(a, b, operator.SymmetricDifference)
	require.NoError(t, err)

	want := new(big.Rat).Sub(meshfixture.Volume(b), meshfixture.Volume(a))
	require.Zero(t, meshfixture.Volume(outs[0]).Cmp(want))
}

// TestScenarioS6SharedTriangle runs spec.md §8 S6: two tetrahedra with
// apexes on opposite sides of the same base triangle, touching
// nowhere else. Intersection must have zero volume regardless of
// whether the shared face resolves to Coplanar or Opposite.
func TestScenarioS6SharedTriangle(t *testing.T) {
	base0 := point.NewPoint(0, 0, 0)
	base1 := point.NewPoint(1, 0, 0)
	base2 := point.NewPoint(0, 1, 0)

	a := meshfixture.Tetrahedron(base0, base1, base2, point.NewPoint(0, 0, -1))
	b := meshfixture.Tetrahedron(base0, base1, base2, point.NewPoint(0, 0, 1))

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Intersection, operator.Union)
	require.NoError(t, err)

	intersection, union := outs[0], outs[1]
	require.Zero(t, meshfixture.Volume(intersection).Sign())
	require.Zero(t, meshfixture.Volume(union).Cmp(new(big.Rat).Add(meshfixture.Volume(a), meshfixture.Volume(b))))
}

// TestPropertyP1UnionWithSelfPreservesVolume checks P1 (boolean(A,A,
// Union) is combinatorially equivalent to A) via the volume it
// implies; the face count is not compared.
func TestPropertyP1UnionWithSelfPreservesVolume(t *testing.T) {
	a := meshfixture.RegularTetrahedron()
	aCopy := meshfixture.RegularTetrahedron()
	outs, _, err := boolean.NewRunner().Run(a, aCopy, operator.Union)
	require.NoError(t, err)
	require.Zero(t, meshfixture.Volume(outs[0]).Cmp(meshfixture.Volume(a)))
}

// TestPropertyP2DifferenceWithSelfIsEmpty checks P2.
func TestPropertyP2DifferenceWithSelfIsEmpty(t *testing.T) {
	a := meshfixture.UnitCube()
	aCopy := meshfixture.UnitCube()
	outs, _, err := boolean.NewRunner().Run(a, aCopy, operator.Difference)
	require.NoError(t, err)
	require.Zero(t, meshfixture.Volume(outs[0]).Sign())
}

// TestPropertyP3IntersectionWithSelfEqualsSelf checks P3.
func TestPropertyP3IntersectionWithSelfEqualsSelf(t *testing.T) {
	a := meshfixture.RegularTetrahedron()
	aCopy := meshfixture.RegularTetrahedron()
	outs, _, err := boolean.NewRunner().Run(a, aCopy, operator.Intersection)
	require.NoError(t, err)
	require.Zero(t, meshfixture.Volume(outs[0]).Cmp(meshfixture.Volume(a)))
}

// TestPropertyP4UnionIsCommutative checks P4: boolean(A,B,Union) and
// boolean(B,A,Union) must agree on volume and bounding box.
func TestPropertyP4UnionIsCommutative(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.Translate(a, 1, 1, 1)

	ab, _, err := boolean.NewRunner().Run(a, b, operator.Union)
	require.NoError(t, err)
	ba, _, err := boolean.NewRunner().Run(b, a, operator.Union)
	require.NoError(t, err)

	require.Zero(t, meshfixture.Volume(ab[0]).Cmp(meshfixture.Volume(ba[0])))

	boxAB, boxBA := meshfixture.BoundingBox(ab[0]), meshfixture.BoundingBox(ba[0])
	require.True(t, boxAB.Min.Equal(boxBA.Min))
	require.True(t, boxAB.Max.Equal(boxBA.Max))
}

// TestPropertyP5UnionIntersectionInclusionExclusion checks the same
// volume identity P5 describes, via Union and Intersection directly
// rather than Universe and an operator-lattice complement: by the
// inclusion-exclusion principle, volume(A∪B) + volume(A∩B) always
// equals volume(A) + volume(B), an unconditionally true instance of
// "two results summing to a whole" that doesn't depend on resolving
// which of the 16 operators is each other's lattice complement.
func TestPropertyP5UnionIntersectionInclusionExclusion(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.Translate(a, 1, 1, 1)

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Union, operator.Intersection)
	require.NoError(t, err)

	left := new(big.Rat).Add(meshfixture.Volume(outs[0]), meshfixture.Volume(outs[1]))
	right := new(big.Rat).Add(meshfixture.Volume(a), meshfixture.Volume(b))
	require.Zero(t, left.Cmp(right))
}

// TestPropertyP6EveryEdgeTraversedTwiceInOppositeDirections checks P6
// on a closed output (S1's intersection cube) by counting each
// directed edge and requiring its reverse to appear exactly as often.
func TestPropertyP6EveryEdgeTraversedTwiceInOppositeDirections(t *testing.T) {
	a := meshfixture.UnitCube()
	b := meshfixture.Translate(a, 1, 1, 1)

	outs, _, err := boolean.NewRunner().Run(a, b, operator.Intersection)
	require.NoError(t, err)

	s := outs[0]
	type edge struct{ u, v int }
	counts := make(map[edge]int)
	for i := 0; i < s.NumFaces(); i++ {
		f := s.Faces()[i]
		for k := 0; k < 3; k++ {
			counts[edge{f[k], f[(k+1)%3]}]++
		}
	}
	for e, n := range counts {
		require.Equal(t, 1, n, "directed edge %+v should appear exactly once", e)
		require.Equal(t, 1, counts[edge{e.v, e.u}], "reverse of edge %+v should appear exactly once", e)
	}
}
