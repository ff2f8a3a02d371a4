package operator

import "github.com/kigumi-go/kigumi/mixedmesh"

// Side is one bit of a face-output mask: which operand's winding to
// emit a tagged face as.
type Side uint8

const (
	SideA Side = 1 << iota
	SideAInv
	SideB
	SideBInv
)

// Mask is a set of Sides; a face is emitted once per Side it matches
// (spec.md §4.13 steps 2-3).
type Mask uint8

// Has reports whether s is set in m.
func (m Mask) Has(s Side) bool { return Mask(s)&m != 0 }

func maskOf(sides ...Side) Mask {
	var m Mask
	for _, s := range sides {
		m |= Mask(s)
	}
	return m
}

// pick resolves an "X|Y" table cell (a tie broken by prefer_a) to a
// single Side.
func pick(preferA bool, ifA, ifNotA Side) Mask {
	if preferA {
		return maskOf(ifA)
	}
	return maskOf(ifNotA)
}

// Masks holds the four per-tag output masks for one operator
// evaluation (spec.md §4.13): which Side(s) to emit a face as, keyed
// by its FaceTag. A face whose tag's mask is empty is skipped.
type Masks struct {
	Union, Intersection, Coplanar, Opposite Mask
}

// MaskFor returns the mask for one FaceTag; Unknown always yields the
// empty mask (spec.md §4.13: unresolved components are skipped at
// extraction).
func (m Masks) MaskFor(tag mixedmesh.FaceTag) Mask {
	switch tag {
	case mixedmesh.Union:
		return m.Union
	case mixedmesh.Intersection:
		return m.Intersection
	case mixedmesh.Coplanar:
		return m.Coplanar
	case mixedmesh.Opposite:
		return m.Opposite
	default:
		return 0
	}
}

// MasksFor evaluates the Face Output Table of spec.md §4.13 for
// operator o, breaking Coplanar/Opposite ties with preferA.
// Reproduced from
// _examples/original_source/libraries/kigumi/Operator.h, which
// spells out the mask triple per tag per operator explicitly.
func MasksFor(o Operator, preferA bool) (Masks, error) {
	both := maskOf(SideA, SideB)
	bothInv := maskOf(SideAInv, SideBInv)

	switch o {
	case V:
		return Masks{Union: both, Intersection: both, Coplanar: both, Opposite: both}, nil
	case A: // Union
		return Masks{
			Union:    both,
			Coplanar: pick(preferA, SideA, SideB),
			Opposite: pick(preferA, SideA, SideBInv),
		}, nil
	case B:
		return Masks{
			Union:        maskOf(SideBInv),
			Intersection: maskOf(SideA),
			Opposite:     pick(preferA, SideA, SideBInv),
		}, nil
	case C:
		return Masks{
			Union:        maskOf(SideAInv),
			Intersection: maskOf(SideB),
			Opposite:     pick(preferA, SideAInv, SideB),
		}, nil
	case D:
		return Masks{
			Intersection: bothInv,
			Coplanar:     pick(preferA, SideAInv, SideBInv),
		}, nil
	case E:
		return Masks{
			Union:        bothInv,
			Intersection: both,
		}, nil
	case F: // complement of A
		return Masks{Union: maskOf(SideAInv), Intersection: maskOf(SideAInv), Coplanar: maskOf(SideAInv), Opposite: maskOf(SideAInv)}, nil
	case G: // complement of B
		return Masks{Union: maskOf(SideBInv), Intersection: maskOf(SideBInv), Coplanar: maskOf(SideBInv), Opposite: maskOf(SideBInv)}, nil
	case H: // B
		return Masks{Union: maskOf(SideB), Intersection: maskOf(SideB), Coplanar: maskOf(SideB), Opposite: maskOf(SideB)}, nil
	case I: // A
		return Masks{Union: maskOf(SideA), Intersection: maskOf(SideA), Coplanar: maskOf(SideA), Opposite: maskOf(SideA)}, nil
	case J: // SymmetricDifference
		return Masks{
			Union:        both,
			Intersection: bothInv,
		}, nil
	case K: // Intersection
		return Masks{
			Intersection: both,
			Coplanar:     pick(preferA, SideA, SideB),
		}, nil
	case L: // A \ B
		return Masks{
			Union:        maskOf(SideA),
			Intersection: maskOf(SideBInv),
			Opposite:     pick(preferA, SideA, SideBInv),
		}, nil
	case M: // B \ A
		return Masks{
			Union:        maskOf(SideB),
			Intersection: maskOf(SideAInv),
			Opposite:     pick(preferA, SideAInv, SideB),
		}, nil
	case X: // complement of the union
		return Masks{
			Union:    bothInv,
			Coplanar: pick(preferA, SideAInv, SideBInv),
		}, nil
	case O:
		return Masks{}, nil
	default:
		return Masks{}, ErrUnknownOperator
	}
}
