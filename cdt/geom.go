package cdt

import (
	"math/big"

	"github.com/kigumi-go/kigumi/point"
)

// cross2 returns the signed 2D cross product (b-a) x (c-a) as an exact
// rational value: positive when a, b, c turn left (CCW).
func cross2(a, b, c point.Point2) big.Rat {
	var abu, abv, acu, acv big.Rat
	abu.Sub(&b.U, &a.U)
	abv.Sub(&b.V, &a.V)
	acu.Sub(&c.U, &a.U)
	acv.Sub(&c.V, &a.V)

	var t1, t2, out big.Rat
	t1.Mul(&abu, &acv)
	t2.Mul(&abv, &acu)
	out.Sub(&t1, &t2)
	return out
}

// orient returns the sign of cross2(a, b, c): +1 CCW, -1 CW, 0 collinear.
func orient(a, b, c point.Point2) int {
	v := cross2(a, b, c)
	return v.Sign()
}

// inCircle returns the sign of the standard in-circle determinant for
// d against the circle through a, b, c, assumed CCW. Positive means d
// lies strictly inside that circle.
func inCircle(a, b, c, d point.Point2) int {
	var ax, ay, bx, by, cx, cy big.Rat
	ax.Sub(&a.U, &d.U)
	ay.Sub(&a.V, &d.V)
	bx.Sub(&b.U, &d.U)
	by.Sub(&b.V, &d.V)
	cx.Sub(&c.U, &d.U)
	cy.Sub(&c.V, &d.V)

	sq := func(r big.Rat) big.Rat {
		var out big.Rat
		out.Mul(&r, &r)
		return out
	}
	ax2, ay2 := sq(ax), sq(ay)
	bx2, by2 := sq(bx), sq(by)
	cx2, cy2 := sq(cx), sq(cy)

	var aLen, bLen, cLen big.Rat
	aLen.Add(&ax2, &ay2)
	bLen.Add(&bx2, &by2)
	cLen.Add(&cx2, &cy2)

	// det = aLen*(bx*cy - cx*by) - bLen*(ax*cy - cx*ay) + cLen*(ax*by - bx*ay)
	term := func(len big.Rat, p1, p2, p3, p4 big.Rat) big.Rat {
		var t1, t2, out big.Rat
		t1.Mul(&p1, &p2)
		t2.Mul(&p3, &p4)
		out.Sub(&t1, &t2)
		out.Mul(&out, &len)
		return out
	}
	t1 := term(aLen, bx, cy, cx, by)
	t2 := term(bLen, ax, cy, cx, ay)
	t3 := term(cLen, ax, by, bx, ay)

	var det big.Rat
	det.Sub(&t1, &t2)
	det.Add(&det, &t3)
	return det.Sign()
}

// properlyCross reports whether segment pa-pb crosses segment pc-pd at
// a point interior to both (collinear touches and shared endpoints do
// not count).
func properlyCross(pa, pb, pc, pd point.Point2) bool {
	d1 := orient(pc, pd, pa)
	d2 := orient(pc, pd, pb)
	d3 := orient(pa, pb, pc)
	d4 := orient(pa, pb, pd)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// clipSegmentToTriangle clips the parameter interval [0,1] of the
// segment pa + t*(pb-pa) against tri's three (assumed CCW) half-planes,
// returning the sub-interval [lo, hi] that lies inside or on tri. ok is
// false when the segment misses the triangle entirely.
func clipSegmentToTriangle(pa, pb point.Point2, tri [3]point.Point2) (*big.Rat, *big.Rat, bool) {
	lo := big.NewRat(0, 1)
	hi := big.NewRat(1, 1)

	for i := 0; i < 3; i++ {
		e0, e1 := tri[i], tri[(i+1)%3]
		a := cross2(e0, e1, pa)
		b := cross2(e0, e1, pb)
		var slope big.Rat
		slope.Sub(&b, &a)

		switch slope.Sign() {
		case 0:
			if a.Sign() < 0 {
				return nil, nil, false
			}
		case 1:
			t := new(big.Rat).Neg(&a)
			t.Quo(t, &slope)
			if t.Cmp(lo) > 0 {
				lo = t
			}
		case -1:
			t := new(big.Rat).Neg(&a)
			t.Quo(t, &slope)
			if t.Cmp(hi) < 0 {
				hi = t
			}
		}
		if lo.Cmp(hi) > 0 {
			return nil, nil, false
		}
	}
	return lo, hi, true
}

// pointInTriangleStrict reports whether p lies inside or on the
// boundary of the CCW triangle a, b, c.
func pointInTriangleStrict(a, b, c, p point.Point2) bool {
	return orient(a, b, p) >= 0 && orient(b, c, p) >= 0 && orient(c, a, p) >= 0
}

func signedArea(idx []int, verts []vertex) big.Rat {
	var sum big.Rat
	n := len(idx)
	for i := 0; i < n; i++ {
		a := verts[idx[i]].pos
		b := verts[idx[(i+1)%n]].pos
		var t1, t2, d big.Rat
		t1.Mul(&a.U, &b.V)
		t2.Mul(&a.V, &b.U)
		d.Sub(&t1, &t2)
		sum.Add(&sum, &d)
	}
	return sum
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// earClip triangulates the simple polygon formed by ring (a closed
// loop of vertex handles into verts) by repeated ear removal, returning
// triangles as CCW vertex-handle triples.
func earClip(verts []vertex, ring []int) [][3]int {
	n := len(ring)
	if n < 3 {
		return nil
	}

	idx := append([]int(nil), ring...)
	area := signedArea(idx, verts)
	if area.Sign() < 0 {
		reverseInts(idx)
	}

	var tris [][3]int
	guard := 0
	for len(idx) > 3 && guard < n*n+16 {
		guard++
		m := len(idx)
		found := false
		for i := 0; i < m; i++ {
			prev := idx[(i-1+m)%m]
			cur := idx[i]
			next := idx[(i+1)%m]
			a, b, c := verts[prev].pos, verts[cur].pos, verts[next].pos
			if orient(a, b, c) <= 0 {
				continue
			}

			ear := true
			for j := 0; j < m; j++ {
				if j == (i-1+m)%m || j == i || j == (i+1)%m {
					continue
				}
				if pointInTriangleStrict(a, b, c, verts[idx[j]].pos) {
					ear = false
					break
				}
			}
			if ear {
				tris = append(tris, [3]int{prev, cur, next})
				idx = append(idx[:i], idx[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	if len(idx) == 3 {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	return tris
}
