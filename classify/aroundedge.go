package classify

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/kigumi-go/kigumi/mixedmesh"
	"github.com/kigumi-go/kigumi/point"
)

// vec2 is a 2D vector in the local frame built around a shared edge
// (spec.md §4.10 step 1): the two basis axes (u, v) of the plane
// perpendicular to the edge direction, at whatever linear
// reparametrization point.BestDropAxis picks. Since every face around
// one edge shares the same frame, the reparametrization keeps
// radial adjacency and equality comparisons; it may mirror the frame,
// which reverses the cyclic direction but not which faces are
// neighbours.
type vec2 struct{ U, V big.Rat }

func (a vec2) equal(b vec2) bool { return a.U.Cmp(&b.U) == 0 && a.V.Cmp(&b.V) == 0 }

// cross2 returns the sign of the 2D cross product u1*v2 - u2*v1,
// spec.md §4.10 step 3's tie-break within a radial bin.
func cross2(a, b vec2) int {
	t1 := new(big.Rat).Mul(&a.U, &b.V)
	t2 := new(big.Rat).Mul(&a.V, &b.U)
	return t1.Sub(t1, t2).Sign()
}

// octant buckets a vec2 into one of 8 radial bins by the sign of its
// components, the transcendental-function-free binning spec.md §4.10
// step 3 and the GLOSSARY's "Radial bin" describe.
func octant(p vec2) int {
	su, sv := p.U.Sign(), p.V.Sign()
	if su == 0 && sv == 0 {
		return 0
	}
	absU := new(big.Rat).Abs(&p.U)
	absV := new(big.Rat).Abs(&p.V)
	uGeV := absU.Cmp(absV) >= 0
	switch {
	case su > 0 && sv >= 0 && uGeV:
		return 0
	case su > 0 && sv > 0 && !uGeV:
		return 1
	case su <= 0 && sv > 0 && !uGeV:
		return 2
	case su < 0 && sv > 0 && uGeV:
		return 3
	case su < 0 && sv <= 0 && uGeV:
		return 4
	case su < 0 && sv < 0 && !uGeV:
		return 5
	case su >= 0 && sv < 0 && !uGeV:
		return 6
	default:
		return 7
	}
}

// incident is one face incident to the shared edge, with its radial
// coordinate and the direction it winds around the edge relative to
// (p, q).
type incident struct {
	face    mixedmesh.FaceHandle
	uv      vec2
	forward bool // true: face winds (p,q,r); false: winds (q,p,r)
}

// radialCoordinate computes face f's third-vertex projection into the
// local frame perpendicular to edge (p,q) at origin p, with direction
// axis dropped (spec.md §4.10 steps 1-2). w is r-p decomposed into its
// component along the edge direction (discarded) and the perpendicular
// remainder (kept), computed exactly via Gram-Schmidt over
// math/big.Rat.
func radialCoordinate(p, q, r point.Point, axis int) vec2 {
	d := point.Sub(q, p)
	w := point.Sub(r, p)
	dd := point.Dot(d, d)
	t := new(big.Rat).Quo(point.Dot(w, d), dd)
	perp := point.AddVec(w, point.Scale(d, new(big.Rat).Neg(t)))

	pr2 := point.Project2(point.Add(p, perp), axis)
	p2 := point.Project2(p, axis)
	var out vec2
	out.U.Sub(&pr2.U, &p2.U)
	out.V.Sub(&pr2.V, &p2.V)
	return out
}

// AroundEdges runs the faces-around-edge classifier (spec.md §4.10)
// for every edge in border, radially sorting incident faces and
// assigning local tags. It returns ErrInconsistentTags (step 6) if the
// cyclic walk revisits a face that the same edge's pass already tagged
// differently; tags left by earlier edges' passes are overwritten, not
// compared.
func AroundEdges(m *mixedmesh.Mesh, border map[mixedmesh.Edge]struct{}) error {
	for e := range border {
		if err := classifyOneEdge(m, e); err != nil {
			return err
		}
	}
	return nil
}

func classifyOneEdge(m *mixedmesh.Mesh, e mixedmesh.Edge) error {
	p, q := m.Point(e.Lo), m.Point(e.Hi)
	axis := point.BestDropAxis(point.Sub(q, p))

	var incs []incident
	m.FacesAroundEdge(e, func(fh mixedmesh.FaceHandle) {
		f := m.Face(fh)
		r := f.ThirdVertex(e.Lo, e.Hi)
		if r < 0 {
			return
		}
		uv := radialCoordinate(p, q, m.Point(r), axis)
		incs = append(incs, incident{face: fh, uv: uv, forward: f.WindsForward(e.Lo, e.Hi)})
	})
	if len(incs) < 2 {
		return nil
	}

	sort.SliceStable(incs, func(i, j int) bool {
		oi, oj := octant(incs[i].uv), octant(incs[j].uv)
		if oi != oj {
			return oi < oj
		}
		return cross2(incs[i].uv, incs[j].uv) > 0
	})
	n := len(incs)

	// Step 4: any two radially adjacent faces with equal r_uv are a
	// coplanar pair (the same third-vertex offset perpendicular to the
	// edge, in direction and magnitude; the third vertices may still
	// differ along the edge).
	handled := make([]bool, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if handled[i] || handled[j] || !incs[i].uv.equal(incs[j].uv) {
			continue
		}
		if incs[i].forward == incs[j].forward {
			m.SetTag(incs[i].face, mixedmesh.Coplanar)
			m.SetTag(incs[j].face, mixedmesh.Coplanar)
		} else {
			m.SetTag(incs[i].face, mixedmesh.Opposite)
			m.SetTag(incs[j].face, mixedmesh.Opposite)
		}
		handled[i], handled[j] = true, true
	}

	// Step 5: find a seed adjacent pair, both unhandled, whose winding
	// directions around e differ (a genuine transversal crossing: one
	// face enters the wedge as (p,q,r), the next leaves it as
	// (q,p,r')). A cyclic sequence of forward/backward flags always
	// flips an even number of times walking the full ring, so seeding
	// Union/Intersection on a flip (rather than a match) is what keeps
	// step 6's alternation consistent all the way around — see
	// DESIGN.md's Open Question resolution for §4.10.
	seed := -1
	var seedTagFirst, seedTagSecond mixedmesh.FaceTag
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if handled[i] || handled[j] || incs[i].forward == incs[j].forward {
			continue
		}
		if incs[i].forward {
			seedTagFirst, seedTagSecond = mixedmesh.Intersection, mixedmesh.Union
		} else {
			seedTagFirst, seedTagSecond = mixedmesh.Union, mixedmesh.Intersection
		}
		m.SetTag(incs[i].face, seedTagFirst)
		m.SetTag(incs[j].face, seedTagSecond)
		handled[i], handled[j] = true, true
		seed = i
		break
	}
	if seed < 0 {
		// Step 7: no defined configuration; leave the rest Unknown for
		// the global classifier.
		return nil
	}

	// Step 6: walk the full cycle from the seed, alternating tags
	// whenever the winding orientation switches, verifying consistency
	// on revisit.
	cur := seed
	curTag := seedTagFirst
	for steps := 0; steps < n; steps++ {
		next := (cur + 1) % n
		if handled[next] {
			// Already assigned by step 4/5; verify it matches what this
			// walk would assign, unless it switched winding, in which
			// case it should hold the opposite tag.
			want := curTag
			if incs[next].forward != incs[cur].forward {
				want = other(curTag)
			}
			if incs[next].face != incs[cur].face {
				got := m.Face(incs[next].face).Tag
				if got == mixedmesh.Union || got == mixedmesh.Intersection {
					if got != want {
						return fmt.Errorf("%w: face %d expected %s got %s", ErrInconsistentTags, incs[next].face, want, got)
					}
				}
			}
			curTag = want
			cur = next
			continue
		}
		if incs[next].forward != incs[cur].forward {
			curTag = other(curTag)
		}
		m.SetTag(incs[next].face, curTag)
		handled[next] = true
		cur = next
	}
	return nil
}

func other(t mixedmesh.FaceTag) mixedmesh.FaceTag {
	if t == mixedmesh.Union {
		return mixedmesh.Intersection
	}
	return mixedmesh.Union
}
