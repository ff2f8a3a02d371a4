package extract

import (
	"github.com/kigumi-go/kigumi/interner"
	"github.com/kigumi-go/kigumi/mixedmesh"
	"github.com/kigumi-go/kigumi/operator"
	"github.com/kigumi-go/kigumi/soup"
)

// Extract evaluates operator o against m's classified faces (spec.md
// §4.13 steps 1-5), interning fresh vertex indices into a new soup —
// it never preserves input indices, per spec.md §6. preferA breaks
// the Coplanar/Opposite tie the mask table leaves open.
func Extract(m *mixedmesh.Mesh, o operator.Operator, preferA bool) (*soup.Soup, error) {
	masks, err := operator.MasksFor(o, preferA)
	if err != nil {
		return nil, err
	}

	var in interner.Interner
	var faces []soup.Face

	for fh := 0; fh < m.NumFaces(); fh++ {
		handle := mixedmesh.FaceHandle(fh)
		f := m.Face(handle)
		mask := masks.MaskFor(f.Tag)
		if mask == 0 {
			continue
		}

		identitySide, invertedSide := operator.SideA, operator.SideAInv
		if !f.FromLeft {
			identitySide, invertedSide = operator.SideB, operator.SideBInv
		}
		emitIdentity := mask.Has(identitySide)
		emitInverted := mask.Has(invertedSide)
		if !emitIdentity && !emitInverted {
			continue
		}

		tri := m.Triangle(handle)
		v0 := in.Insert(tri.A)
		v1 := in.Insert(tri.B)
		v2 := in.Insert(tri.C)
		if emitIdentity {
			faces = append(faces, soup.Face{v0, v1, v2})
		}
		if emitInverted {
			faces = append(faces, soup.Face{v0, v2, v1})
		}
	}

	return soup.New(in.IntoVector(), faces), nil
}

// ExtractAll evaluates every operator in ops against the same mixed
// mesh in one pass, the shape _examples/original_source/libraries/
// kigumi/boolean.h's top-level entry point uses: corefine and
// classify once, extract once per requested operator.
func ExtractAll(m *mixedmesh.Mesh, preferA bool, ops ...operator.Operator) ([]*soup.Soup, error) {
	out := make([]*soup.Soup, len(ops))
	for i, o := range ops {
		s, err := Extract(m, o, preferA)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
