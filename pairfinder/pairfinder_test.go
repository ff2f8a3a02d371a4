package pairfinder_test

import (
	"sort"
	"testing"

	"github.com/kigumi-go/kigumi/pairfinder"
	"github.com/kigumi-go/kigumi/point"
	"github.com/kigumi-go/kigumi/soup"
	"github.com/stretchr/testify/require"
)

func twoTriSoup(offset int64) *soup.Soup {
	pts := []point.Point{
		point.NewPoint(0+offset, 0, 0),
		point.NewPoint(2+offset, 0, 0),
		point.NewPoint(0+offset, 2, 0),
		point.NewPoint(4+offset, 0, 0),
		point.NewPoint(4+offset, 2, 0),
		point.NewPoint(2+offset, 2, 0),
	}
	faces := []soup.Face{{0, 1, 2}, {3, 4, 5}}
	return soup.New(pts, faces)
}

func sortPairs(p []pairfinder.Pair) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].I != p[j].I {
			return p[i].I < p[j].I
		}
		return p[i].J < p[j].J
	})
}

func TestFindOverlappingPairsSymmetric(t *testing.T) {
	// Right soup is shifted by 1 along x, so by bounding box its first
	// triangle overlaps both of the left soup's triangles and its
	// second overlaps the left soup's second.
	left := twoTriSoup(0)
	right := twoTriSoup(1)

	ab, err := pairfinder.Find(left, right)
	require.NoError(t, err)
	ba, err := pairfinder.Find(right, left)
	require.NoError(t, err)

	sortPairs(ab)
	flipped := make([]pairfinder.Pair, len(ba))
	for i, p := range ba {
		flipped[i] = pairfinder.Pair{I: p.J, J: p.I}
	}
	sortPairs(flipped)

	require.Equal(t, ab, flipped, "Find(a,b) and flipped Find(b,a) must agree")
	require.Contains(t, ab, pairfinder.Pair{I: 0, J: 0})
}

func TestFindNoOverlap(t *testing.T) {
	left := twoTriSoup(0)
	right := twoTriSoup(100)
	pairs, err := pairfinder.Find(left, right)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestFindEmptySoup(t *testing.T) {
	left := soup.New(nil, nil)
	right := twoTriSoup(0)
	pairs, err := pairfinder.Find(left, right)
	require.NoError(t, err)
	require.Empty(t, pairs)
	pairs, err = pairfinder.Find(right, left)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestFindRejectsFaceWithOutOfRangePointIndex(t *testing.T) {
	left := twoTriSoup(0)
	// right's second face references point index 9, which does not
	// exist in its 6-point list.
	right := soup.New(
		twoTriSoup(0).Points(),
		[]soup.Face{{0, 1, 2}, {3, 4, 9}},
	)

	_, err := pairfinder.Find(left, right)
	require.ErrorIs(t, err, pairfinder.ErrInvalidFace)
}
