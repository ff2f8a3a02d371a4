package point

import (
	"fmt"
	"math"
	"math/big"
)

// Point is an exact 3D point in a rational coordinate system. Two
// points are equal iff their three exact coordinates are equal.
type Point struct {
	X, Y, Z big.Rat
}

// Vector is an exact 3D displacement.
type Vector struct {
	X, Y, Z big.Rat
}

// NewPoint builds a Point from integer coordinates, the common case in
// tests and fixture builders.
func NewPoint(x, y, z int64) Point {
	var p Point
	p.X.SetInt64(x)
	p.Y.SetInt64(y)
	p.Z.SetInt64(z)
	return p
}

// NewPointFrac builds a Point from rational coordinates given as
// (numerator, denominator) pairs.
func NewPointFrac(xn, xd, yn, yd, zn, zd int64) Point {
	var p Point
	p.X.SetFrac64(xn, xd)
	p.Y.SetFrac64(yn, yd)
	p.Z.SetFrac64(zn, zd)
	return p
}

// NewPointFloat builds a Point from a float64 triple. Returns
// ErrArithmeticOverflow if any coordinate is not finite (NaN or ±Inf),
// since such a value has no exact rational representation.
func NewPointFloat(x, y, z float64) (Point, error) {
	var p Point
	rx, okx := ratFromFloat(x)
	ry, oky := ratFromFloat(y)
	rz, okz := ratFromFloat(z)
	if !okx || !oky || !okz {
		return Point{}, ErrArithmeticOverflow
	}
	p.X = *rx
	p.Y = *ry
	p.Z = *rz
	return p, nil
}

func ratFromFloat(f float64) (*big.Rat, bool) {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return nil, false
	}
	return r, true
}

// Equal reports exact equality of two points.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(&q.X) == 0 && p.Y.Cmp(&q.Y) == 0 && p.Z.Cmp(&q.Z) == 0
}

// String renders a point as "(x, y, z)" using rational notation.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X.RatString(), p.Y.RatString(), p.Z.RatString())
}

// ApproxLowerBound returns a float64 approximation of each coordinate,
// rounded toward -Inf. Used only for hashing (interner.Interner); it must
// never be used in a predicate, since predicates must stay exact.
func (p Point) ApproxLowerBound() (x, y, z float64) {
	return floorApprox(&p.X), floorApprox(&p.Y), floorApprox(&p.Z)
}

func floorApprox(r *big.Rat) float64 {
	f, exact := r.Float64()
	if !exact {
		// Float64 rounds to nearest; step down when that landed above r.
		var fr big.Rat
		if fr.SetFloat64(f) != nil && fr.Cmp(r) > 0 {
			f = math.Nextafter(f, math.Inf(-1))
		}
	}
	return f
}

// NewVector builds a Vector from integer components.
func NewVector(x, y, z int64) Vector {
	var v Vector
	v.X.SetInt64(x)
	v.Y.SetInt64(y)
	v.Z.SetInt64(z)
	return v
}

// Sub returns the displacement from q to p, i.e. p - q.
func Sub(p, q Point) Vector {
	var v Vector
	v.X.Sub(&p.X, &q.X)
	v.Y.Sub(&p.Y, &q.Y)
	v.Z.Sub(&p.Z, &q.Z)
	return v
}

// Add returns the point p translated by v.
func Add(p Point, v Vector) Point {
	var q Point
	q.X.Add(&p.X, &v.X)
	q.Y.Add(&p.Y, &v.Y)
	q.Z.Add(&p.Z, &v.Z)
	return q
}

// Scale returns v scaled by the rational factor k.
func Scale(v Vector, k *big.Rat) Vector {
	var r Vector
	r.X.Mul(&v.X, k)
	r.Y.Mul(&v.Y, k)
	r.Z.Mul(&v.Z, k)
	return r
}

// AddVec returns u + v.
func AddVec(u, v Vector) Vector {
	var r Vector
	r.X.Add(&u.X, &v.X)
	r.Y.Add(&u.Y, &v.Y)
	r.Z.Add(&u.Z, &v.Z)
	return r
}

// Dot returns the exact dot product of u and v.
func Dot(u, v Vector) *big.Rat {
	r := new(big.Rat)
	t := new(big.Rat)
	r.Mul(&u.X, &v.X)
	t.Mul(&u.Y, &v.Y)
	r.Add(r, t)
	t.Mul(&u.Z, &v.Z)
	r.Add(r, t)
	return r
}

// Cross returns the exact cross product u × v.
func Cross(u, v Vector) Vector {
	var r Vector
	var a, b big.Rat
	a.Mul(&u.Y, &v.Z)
	b.Mul(&u.Z, &v.Y)
	r.X.Sub(&a, &b)
	a.Mul(&u.Z, &v.X)
	b.Mul(&u.X, &v.Z)
	r.Y.Sub(&a, &b)
	a.Mul(&u.X, &v.Y)
	b.Mul(&u.Y, &v.X)
	r.Z.Sub(&a, &b)
	return r
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v.X.Sign() == 0 && v.Y.Sign() == 0 && v.Z.Sign() == 0
}

// Equal reports exact equality of two vectors.
func (v Vector) Equal(w Vector) bool {
	return v.X.Cmp(&w.X) == 0 && v.Y.Cmp(&w.Y) == 0 && v.Z.Cmp(&w.Z) == 0
}

// Segment is an exact closed line segment [A, B].
type Segment struct {
	A, B Point
}

// Ray is an exact ray starting at Origin heading toward (and through)
// Through.
type Ray struct {
	Origin  Point
	Through Point
}

// Direction returns Through - Origin.
func (r Ray) Direction() Vector {
	return Sub(r.Through, r.Origin)
}

// Line is an infinite exact line through two distinct points.
type Line struct {
	A, B Point
}

// Direction returns B - A.
func (l Line) Direction() Vector {
	return Sub(l.B, l.A)
}

// Triangle is an exact 3D triangle with vertices wound as stored (no
// implied orientation at this layer; orientation is a property the
// caller assigns via winding order, per spec.md §3).
type Triangle struct {
	A, B, C Point
}

// Plane is the exact plane through three points, represented
// implicitly by those points (rather than a normal + offset) so it
// carries no redundant, independently-invalid state.
type Plane struct {
	A, B, C Point
}

// Normal returns the exact (unnormalized) normal vector of the plane
// through p, q, r, i.e. (q-p) × (r-p).
func Normal(p, q, r Point) Vector {
	return Cross(Sub(q, p), Sub(r, p))
}

// PlaneOf returns the supporting plane of a triangle.
func (t Triangle) PlaneOf() Plane {
	return Plane{t.A, t.B, t.C}
}
