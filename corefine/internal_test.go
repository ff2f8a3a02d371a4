package corefine

import (
	"errors"
	"testing"

	"github.com/kigumi-go/kigumi/pairfinder"
	"github.com/kigumi-go/kigumi/point"
	"github.com/kigumi-go/kigumi/soup"
	"github.com/stretchr/testify/require"
)

func oneTriSoup() *soup.Soup {
	return soup.New(
		[]point.Point{point.NewPoint(0, 0, 0), point.NewPoint(1, 0, 0), point.NewPoint(0, 1, 0)},
		[]soup.Face{{0, 1, 2}},
	)
}

// TestIntersectPairsRejectsOutOfRangePair exercises intersectPairs
// directly with a hand-built Pair that pairfinder.Find would never
// produce, proving its own CheckFace guard (not just pairfinder's) is
// a genuine, reachable failure rather than dead code behind Find's
// validation.
func TestIntersectPairsRejectsOutOfRangePair(t *testing.T) {
	left, right := oneTriSoup(), oneTriSoup()
	pairs := []pairfinder.Pair{{I: 7, J: 0}}

	_, err := intersectPairs(left, right, pairs)
	require.True(t, errors.Is(err, ErrInvalidFace))
}

// TestTriangulateSideRejectsOutOfRangeHit exercises triangulateSide
// directly with a hand-built hit naming a face Run would never
// produce, proving its own seeding-stage guard is genuine.
func TestTriangulateSideRejectsOutOfRangeHit(t *testing.T) {
	s := oneTriSoup()
	hits := []hit{{leftFace: 3, rightFace: 0, tri: point.TriTriResult{Kind: point.NoIntersection}}}
	var dropped int64

	_, err := triangulateSide(s, hits, func(h hit) int { return h.leftFace }, &dropped)
	require.True(t, errors.Is(err, ErrInvalidFace))
}
