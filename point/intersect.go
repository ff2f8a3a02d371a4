package point

import "math/big"

// IntersectionKind tags the shape of an exact intersection result.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointResult
	SegmentResult
	TriangleResult
	PolygonResult
)

// TriTriResult is the exact result of intersecting two triangles.
// Points, when present, are listed in a consistent (cyclic, for
// Polygon) order; there is no implied orientation.
type TriTriResult struct {
	Kind   IntersectionKind
	Points []Point
}

// TriRayResult is the exact result of intersecting a triangle with a
// ray. Only NoIntersection, PointResult and SegmentResult occur.
type TriRayResult struct {
	Kind   IntersectionKind
	Points []Point
}

// axisOf returns the i'th coordinate (0=x, 1=y, 2=z) of p.
func axisOf(p Point, i int) *big.Rat {
	switch i {
	case 0:
		return &p.X
	case 1:
		return &p.Y
	default:
		return &p.Z
	}
}

func axisOfVec(v Vector, i int) *big.Rat {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	default:
		return &v.Z
	}
}

// bestDropAxis returns the index of the normal's largest-magnitude
// component: dropping that axis and keeping the other two gives the
// best-conditioned 2D projection of the plane, the same heuristic
// spec.md §4.6 describes for the triangulator's projection choice.
func bestDropAxis(n Vector) int {
	ax, ay, az := new(big.Rat).Abs(&n.X), new(big.Rat).Abs(&n.Y), new(big.Rat).Abs(&n.Z)
	drop := 2
	best := az
	if ax.Cmp(best) > 0 {
		drop, best = 0, ax
	}
	if ay.Cmp(best) > 0 {
		drop = 1
	}
	return drop
}

type pt2 struct{ U, V big.Rat }

func project2(p Point, drop int) pt2 {
	var a pt2
	idx := 0
	for i := 0; i < 3; i++ {
		if i == drop {
			continue
		}
		if idx == 0 {
			a.U = *axisOf(p, i)
		} else {
			a.V = *axisOf(p, i)
		}
		idx++
	}
	return a
}

// unproject2 reconstructs the 3D point that projects to q under
// `drop` and lies on the plane through origin with normal n.
func unproject2(q pt2, drop int, origin Point, n Vector) Point {
	kept := [2]int{}
	idx := 0
	for i := 0; i < 3; i++ {
		if i != drop {
			kept[idx] = i
			idx++
		}
	}
	var p Point
	setAxis(&p, kept[0], q.U)
	setAxis(&p, kept[1], q.V)
	// Solve n . (p - origin) = 0 for the dropped axis.
	nk0 := axisOfVec(n, kept[0])
	nk1 := axisOfVec(n, kept[1])
	ndrop := axisOfVec(n, drop)
	d0 := new(big.Rat).Sub(&q.U, axisOf(origin, kept[0]))
	d1 := new(big.Rat).Sub(&q.V, axisOf(origin, kept[1]))
	num := new(big.Rat).Mul(nk0, d0)
	t := new(big.Rat).Mul(nk1, d1)
	num.Add(num, t)
	num.Neg(num)
	frac := new(big.Rat).Quo(num, ndrop)
	frac.Add(frac, axisOf(origin, drop))
	setAxis(&p, drop, *frac)
	return p
}

func setAxis(p *Point, i int, val big.Rat) {
	switch i {
	case 0:
		p.X = val
	case 1:
		p.Y = val
	default:
		p.Z = val
	}
}

// TriangleTriangleIntersection computes the exact intersection of two
// (assumed non-degenerate) triangles.
func TriangleTriangleIntersection(t1, t2 Triangle) TriTriResult {
	n1 := Normal(t1.A, t1.B, t1.C)
	n2 := Normal(t2.A, t2.B, t2.C)
	parallel := Cross(n1, n2).IsZero()

	if parallel && OrientedSide(t1.PlaneOf(), t2.A) == Zero {
		return coplanarIntersection(t1, t2, n1)
	}
	if parallel {
		// Parallel, distinct planes: no possible overlap.
		return TriTriResult{Kind: NoIntersection}
	}

	i1 := crossingsOfTriangleWithPlane(t1, t2.PlaneOf())
	i2 := crossingsOfTriangleWithPlane(t2, t1.PlaneOf())
	if len(i1) == 0 || len(i2) == 0 {
		return TriTriResult{Kind: NoIntersection}
	}

	dir := Cross(n1, n2)
	param := func(p Point) *big.Rat { return Dot(Sub(p, i1[0]), dir) }

	a0, a1 := param(i1[0]), param(i1[len(i1)-1])
	if a0.Cmp(a1) > 0 {
		a0, a1 = a1, a0
	}
	b0, b1 := param(i2[0]), param(i2[len(i2)-1])
	if b0.Cmp(b1) > 0 {
		b0, b1 = b1, b0
	}

	lo := a0
	if b0.Cmp(lo) > 0 {
		lo = b0
	}
	hi := a1
	if b1.Cmp(hi) < 0 {
		hi = b1
	}
	if lo.Cmp(hi) > 0 {
		return TriTriResult{Kind: NoIntersection}
	}

	toPoint := func(s *big.Rat) Point {
		den := Dot(dir, dir)
		scale := new(big.Rat).Quo(s, den)
		return Add(i1[0], Scale(dir, scale))
	}
	if lo.Cmp(hi) == 0 {
		return TriTriResult{Kind: PointResult, Points: []Point{toPoint(lo)}}
	}
	return TriTriResult{Kind: SegmentResult, Points: []Point{toPoint(lo), toPoint(hi)}}
}

// crossingsOfTriangleWithPlane returns the (at most two, generically)
// points where t's boundary meets pl, assuming t is not contained in
// pl. The points are returned in no particular winding order; callers
// that need a direction sort by a line parameter.
func crossingsOfTriangleWithPlane(t Triangle, pl Plane) []Point {
	verts := [3]Point{t.A, t.B, t.C}
	n := Normal(pl.A, pl.B, pl.C)
	dist := func(p Point) *big.Rat { return Dot(n, Sub(p, pl.A)) }
	d := [3]*big.Rat{dist(verts[0]), dist(verts[1]), dist(verts[2])}

	var out []Point
	add := func(p Point) {
		for _, q := range out {
			if q.Equal(p) {
				return
			}
		}
		out = append(out, p)
	}
	for i := 0; i < 3; i++ {
		if d[i].Sign() == 0 {
			add(verts[i])
		}
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if d[i].Sign() != 0 && d[j].Sign() != 0 && d[i].Sign() != d[j].Sign() {
			// Linear interpolation along the edge at the exact zero crossing.
			denom := new(big.Rat).Sub(d[i], d[j])
			k := new(big.Rat).Quo(d[i], denom)
			p := Add(verts[i], Scale(Sub(verts[j], verts[i]), k))
			add(p)
		}
	}
	return out
}

// coplanarIntersection handles two triangles lying in the same plane
// via 2D convex-polygon clipping (Sutherland-Hodgman), with t1 as the
// (convex) clip polygon.
func coplanarIntersection(t1, t2 Triangle, n Vector) TriTriResult {
	drop := bestDropAxis(n)
	clip := []pt2{project2(t1.A, drop), project2(t1.B, drop), project2(t1.C, drop)}
	subj := []pt2{project2(t2.A, drop), project2(t2.B, drop), project2(t2.C, drop)}
	if signedArea2(clip) < 0 {
		clip[1], clip[2] = clip[2], clip[1]
	}

	out := sutherlandHodgman(subj, clip)
	out = dedupCyclic(out)

	origin := t1.A
	pts := make([]Point, len(out))
	for i, q := range out {
		pts[i] = unproject2(q, drop, origin, n)
	}

	switch len(pts) {
	case 0:
		return TriTriResult{Kind: NoIntersection}
	case 1:
		return TriTriResult{Kind: PointResult, Points: pts}
	case 2:
		return TriTriResult{Kind: SegmentResult, Points: pts}
	case 3:
		return TriTriResult{Kind: TriangleResult, Points: pts}
	default:
		return TriTriResult{Kind: PolygonResult, Points: pts}
	}
}

func signedArea2(p []pt2) int {
	sum := new(big.Rat)
	for i := range p {
		j := (i + 1) % len(p)
		t := new(big.Rat).Mul(&p[i].U, &p[j].V)
		s := new(big.Rat).Mul(&p[j].U, &p[i].V)
		t.Sub(t, s)
		sum.Add(sum, t)
	}
	return sum.Sign()
}

func cross2(o, a, b pt2) *big.Rat {
	ax := new(big.Rat).Sub(&a.U, &o.U)
	ay := new(big.Rat).Sub(&a.V, &o.V)
	bx := new(big.Rat).Sub(&b.U, &o.U)
	by := new(big.Rat).Sub(&b.V, &o.V)
	t1 := new(big.Rat).Mul(ax, by)
	t2 := new(big.Rat).Mul(ay, bx)
	return t1.Sub(t1, t2)
}

// sutherlandHodgman clips `subject` against the convex, CCW-wound
// `clip` polygon.
func sutherlandHodgman(subject, clip []pt2) []pt2 {
	out := subject
	for i := range clip {
		if len(out) == 0 {
			break
		}
		a, b := clip[i], clip[(i+1)%len(clip)]
		in := out
		out = nil
		for j := range in {
			cur := in[j]
			prev := in[(j-1+len(in))%len(in)]
			curIn := cross2(a, b, cur).Sign() >= 0
			prevIn := cross2(a, b, prev).Sign() >= 0
			if curIn {
				if !prevIn {
					out = append(out, lineIntersect2(prev, cur, a, b))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, lineIntersect2(prev, cur, a, b))
			}
		}
	}
	return out
}

func lineIntersect2(p1, p2, p3, p4 pt2) pt2 {
	x1, y1 := &p1.U, &p1.V
	x2, y2 := &p2.U, &p2.V
	x3, y3 := &p3.U, &p3.V
	x4, y4 := &p4.U, &p4.V

	a := new(big.Rat).Sub(x1, x2)
	b := new(big.Rat).Sub(x3, x4)
	c := new(big.Rat).Sub(y1, y2)
	d := new(big.Rat).Sub(y3, y4)
	denom := new(big.Rat).Mul(a, d)
	t := new(big.Rat).Mul(c, b)
	denom.Sub(denom, t)

	t12 := new(big.Rat).Mul(x1, y2)
	t2v := new(big.Rat).Mul(y1, x2)
	t12.Sub(t12, t2v) // x1y2 - y1x2

	t34 := new(big.Rat).Mul(x3, y4)
	t4v := new(big.Rat).Mul(y3, x4)
	t34.Sub(t34, t4v) // x3y4 - y3x4

	numU := new(big.Rat).Mul(t12, b)
	u2 := new(big.Rat).Mul(a, t34)
	numU.Sub(numU, u2)

	numV := new(big.Rat).Mul(t12, d)
	v2 := new(big.Rat).Mul(c, t34)
	numV.Sub(numV, v2)

	var out pt2
	out.U.Quo(numU, denom)
	out.V.Quo(numV, denom)
	return out
}

func dedupCyclic(p []pt2) []pt2 {
	var out []pt2
	for i, q := range p {
		prev := p[(i-1+len(p))%len(p)]
		if i > 0 && q.U.Cmp(&prev.U) == 0 && q.V.Cmp(&prev.V) == 0 {
			continue
		}
		out = append(out, q)
	}
	if len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if first.U.Cmp(&last.U) == 0 && first.V.Cmp(&last.V) == 0 {
			out = out[:len(out)-1]
		}
	}
	return out
}

// TriangleRayIntersection computes the exact intersection of a
// triangle with a ray.
func TriangleRayIntersection(t Triangle, r Ray) TriRayResult {
	n := Normal(t.A, t.B, t.C)
	dir := r.Direction()
	denom := Dot(n, dir)

	if denom.Sign() == 0 {
		if OrientedSide(t.PlaneOf(), r.Origin) != Zero {
			return TriRayResult{Kind: NoIntersection}
		}
		return coplanarRayIntersection(t, r, n)
	}

	num := Dot(n, Sub(t.A, r.Origin))
	tt := new(big.Rat).Quo(num, denom)
	if tt.Sign() < 0 {
		return TriRayResult{Kind: NoIntersection}
	}
	p := Add(r.Origin, Scale(dir, tt))
	if !pointInTriangle(p, t) {
		return TriRayResult{Kind: NoIntersection}
	}
	return TriRayResult{Kind: PointResult, Points: []Point{p}}
}

func pointInTriangle(p Point, t Triangle) bool {
	n := Normal(t.A, t.B, t.C)
	s0 := SignOf(Dot(n, Cross(Sub(t.B, t.A), Sub(p, t.A))))
	s1 := SignOf(Dot(n, Cross(Sub(t.C, t.B), Sub(p, t.B))))
	s2 := SignOf(Dot(n, Cross(Sub(t.A, t.C), Sub(p, t.C))))
	neg, pos := false, false
	for _, s := range []Sign{s0, s1, s2} {
		if s == Negative {
			neg = true
		}
		if s == Positive {
			pos = true
		}
	}
	return !(neg && pos)
}

func coplanarRayIntersection(t Triangle, r Ray, n Vector) TriRayResult {
	drop := bestDropAxis(n)
	clip := []pt2{project2(t.A, drop), project2(t.B, drop), project2(t.C, drop)}
	if signedArea2(clip) < 0 {
		clip[1], clip[2] = clip[2], clip[1]
	}
	o := project2(r.Origin, drop)
	thr := project2(r.Through, drop)

	lo, hi, ok := clipHalfLine(o, thr, clip)
	if !ok {
		return TriRayResult{Kind: NoIntersection}
	}
	zero := new(big.Rat)
	if hi.Cmp(zero) < 0 {
		return TriRayResult{Kind: NoIntersection}
	}
	if lo.Cmp(zero) < 0 {
		lo = zero
	}

	toPoint := func(s *big.Rat) Point {
		dir := Sub(r.Through, r.Origin)
		return Add(r.Origin, Scale(dir, s))
	}
	if lo.Cmp(hi) == 0 {
		return TriRayResult{Kind: PointResult, Points: []Point{toPoint(lo)}}
	}
	return TriRayResult{Kind: SegmentResult, Points: []Point{toPoint(lo), toPoint(hi)}}
}

// clipHalfLine clips the infinite line through (o, through) against
// the convex polygon `clip`, then returns the resulting parameter
// interval [lo,hi] (o corresponds to t=0, through to t=1).
func clipHalfLine(o, through pt2, clip []pt2) (lo, hi *big.Rat, ok bool) {
	hiR := (*big.Rat)(nil)
	loR := (*big.Rat)(nil)
	dU := new(big.Rat).Sub(&through.U, &o.U)
	dV := new(big.Rat).Sub(&through.V, &o.V)
	for i := range clip {
		a, b := clip[i], clip[(i+1)%len(clip)]
		edgeU := new(big.Rat).Sub(&b.U, &a.U)
		edgeV := new(big.Rat).Sub(&b.V, &a.V)
		// Outward-pointing test value at o: cross(edge, o-a)
		woU := new(big.Rat).Sub(&o.U, &a.U)
		woV := new(big.Rat).Sub(&o.V, &a.V)
		num := new(big.Rat).Mul(edgeU, woV)
		t2 := new(big.Rat).Mul(edgeV, woU)
		num.Sub(num, t2) // f(o)

		den := new(big.Rat).Mul(edgeU, dV)
		t3 := new(big.Rat).Mul(edgeV, dU)
		den.Sub(den, t3) // rate of change of f along the line

		// Inside condition along the line is f(o) + t*den >= 0.
		if den.Sign() == 0 {
			if num.Sign() < 0 {
				return nil, nil, false
			}
			continue
		}
		num.Neg(num)
		t := new(big.Rat).Quo(num, den)
		if den.Sign() > 0 {
			// den>0: inside requires t >= t, a lower bound.
			if loR == nil || t.Cmp(loR) > 0 {
				loR = t
			}
		} else {
			// den<0: inside requires t <= t, an upper bound.
			if hiR == nil || t.Cmp(hiR) < 0 {
				hiR = t
			}
		}
	}
	if loR == nil || hiR == nil {
		// The line never entered/exited the (bounded, convex)
		// triangle, so there is nothing to clip.
		return nil, nil, false
	}
	if loR.Cmp(hiR) > 0 {
		return nil, nil, false
	}
	return loR, hiR, true
}
