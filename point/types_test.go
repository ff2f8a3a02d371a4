package point_test

import (
	"testing"

	"github.com/kigumi-go/kigumi/point"
	"github.com/stretchr/testify/require"
)

func TestPointEqual(t *testing.T) {
	p := point.NewPoint(1, 2, 3)
	q := point.NewPointFrac(2, 2, 4, 2, 6, 2)
	require.True(t, p.Equal(q), "1 == 2/2, 2 == 4/2, 3 == 6/2")
}

func TestPointFromFloatOverflow(t *testing.T) {
	_, err := point.NewPointFloat(1, 2, pointNaN())
	require.ErrorIs(t, err, point.ErrArithmeticOverflow)
}

func pointNaN() float64 {
	var zero float64
	return zero / zero
}

func TestVectorArithmetic(t *testing.T) {
	u := point.NewVector(1, 0, 0)
	v := point.NewVector(0, 1, 0)
	cross := point.Cross(u, v)
	want := point.NewVector(0, 0, 1)
	require.True(t, cross.Equal(want))

	dot := point.Dot(u, v)
	require.Equal(t, "0", dot.RatString())
}

func TestSubAdd(t *testing.T) {
	p := point.NewPoint(3, 4, 5)
	q := point.NewPoint(1, 1, 1)
	v := point.Sub(p, q)
	r := point.Add(q, v)
	require.True(t, r.Equal(p))
}
