package operator_test

import (
	"testing"

	"github.com/kigumi-go/kigumi/mixedmesh"
	"github.com/kigumi-go/kigumi/operator"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrips(t *testing.T) {
	for code := uint8(0); code < 16; code++ {
		op, err := operator.Decode(code)
		require.NoError(t, err)
		require.Equal(t, code, op.Encode())
	}
}

func TestDecodeRejectsOutOfRangeCode(t *testing.T) {
	_, err := operator.Decode(16)
	require.ErrorIs(t, err, operator.ErrUnknownOperator)
}

func TestUniverseEmitsBothSidesForEveryTag(t *testing.T) {
	masks, err := operator.MasksFor(operator.V, true)
	require.NoError(t, err)
	for _, tag := range []mixedmesh.FaceTag{mixedmesh.Union, mixedmesh.Intersection, mixedmesh.Coplanar, mixedmesh.Opposite} {
		m := masks.MaskFor(tag)
		require.True(t, m.Has(operator.SideA))
		require.True(t, m.Has(operator.SideB))
	}
}

func TestEmptyOperatorEmitsNothing(t *testing.T) {
	masks, err := operator.MasksFor(operator.O, true)
	require.NoError(t, err)
	for _, tag := range []mixedmesh.FaceTag{mixedmesh.Union, mixedmesh.Intersection, mixedmesh.Coplanar, mixedmesh.Opposite} {
		require.Equal(t, operator.Mask(0), masks.MaskFor(tag))
	}
}

func TestIntersectionOperatorEmitsBothOnIntersectionTag(t *testing.T) {
	masks, err := operator.MasksFor(operator.Intersection, true)
	require.NoError(t, err)
	m := masks.MaskFor(mixedmesh.Intersection)
	require.True(t, m.Has(operator.SideA))
	require.True(t, m.Has(operator.SideB))
	require.Equal(t, operator.Mask(0), masks.MaskFor(mixedmesh.Union))
}

func TestCoplanarTieBreakByPreferA(t *testing.T) {
	masksA, _ := operator.MasksFor(operator.Union, true)
	masksB, _ := operator.MasksFor(operator.Union, false)
	require.True(t, masksA.MaskFor(mixedmesh.Coplanar).Has(operator.SideA))
	require.False(t, masksA.MaskFor(mixedmesh.Coplanar).Has(operator.SideB))
	require.True(t, masksB.MaskFor(mixedmesh.Coplanar).Has(operator.SideB))
	require.False(t, masksB.MaskFor(mixedmesh.Coplanar).Has(operator.SideA))
}
