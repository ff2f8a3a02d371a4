package classify

import (
	"math/big"
	"math/rand"
	"sync"

	"github.com/kigumi-go/kigumi/aabbtree"
	"github.com/kigumi-go/kigumi/mixedmesh"
	"github.com/kigumi-go/kigumi/point"
)

// Diagnostics exposes the best-effort recovery counters spec.md §9's
// Open Questions leaves undocumented in the original: how many
// ambiguous-ray retries the global classifier burned, and how many
// connected components it could not resolve within the retry budget.
type Diagnostics struct {
	AmbiguousRayRetries  int
	UnresolvedComponents int
}

// Options configures the global classifier. The 100-retry cap is
// inherited from spec.md §4.12/§9 ("a magic number... the
// specification inherits it but does not mandate it") rather than
// hardcoded, so callers can raise it for adversarial inputs.
type Options struct {
	Rand          *rand.Rand
	MaxRayRetries int
}

// DefaultOptions returns the spec's defaults: a seeded (reproducible)
// RNG and a 100-retry cap.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(1)), MaxRayRetries: 100}
}

// GlobalClassify resolves every connected component of still-Unknown
// faces (spec.md §4.12) by ray-casting a representative face against
// the opposite operand, then single-seed-propagating the result
// across the component. Ray-casting for distinct components is
// parallelized (spec.md §5 phase (c)); each task only reads shared
// state and writes nothing, so the tag assignment and propagation
// that follows runs sequentially with no risk of disjoint writes
// racing each other.
func GlobalClassify(m *mixedmesh.Mesh, border map[mixedmesh.Edge]struct{}, opts Options) Diagnostics {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.MaxRayRetries <= 0 {
		opts.MaxRayRetries = 100
	}

	var leftFaces, rightFaces []mixedmesh.FaceHandle
	for fh := 0; fh < m.NumFaces(); fh++ {
		f := mixedmesh.FaceHandle(fh)
		if m.Face(f).FromLeft {
			leftFaces = append(leftFaces, f)
		} else {
			rightFaces = append(rightFaces, f)
		}
	}

	components := UnknownComponents(m, border)
	type result struct {
		tag     mixedmesh.FaceTag
		retries int
		err     error
	}
	results := make([]result, len(components))

	var wg sync.WaitGroup
	for i, comp := range components {
		i, rep := i, comp[0]
		// Derive a per-task RNG deterministically from the shared one,
		// drawn sequentially on the caller's goroutine so the overall
		// sequence stays reproducible under a fixed seed regardless of
		// goroutine scheduling (spec.md §5: "Randomness... must be
		// reproducible under a seeded generator for testing").
		taskRand := rand.New(rand.NewSource(opts.Rand.Int63()))
		wg.Add(1)
		go func() {
			defer wg.Done()
			tag, retries, err := classifyComponent(m, rep, leftFaces, rightFaces, taskRand, opts.MaxRayRetries)
			results[i] = result{tag: tag, retries: retries, err: err}
		}()
	}
	wg.Wait()

	var diag Diagnostics
	for i, comp := range components {
		r := results[i]
		diag.AmbiguousRayRetries += r.retries
		if r.err != nil {
			diag.UnresolvedComponents++
			continue
		}
		rep := comp[0]
		m.SetTag(rep, r.tag)
		_ = PropagateFrom(m, border, rep) // rep was just tagged Union/Intersection, so this cannot fail
	}
	return diag
}

// classifyComponent runs spec.md §4.12's per-representative-face
// protocol: repeatedly draw a random ray from a random point on rep to
// a random point on a random opposite-provenance face, and classify
// rep by the oriented side of the nearest unambiguous hit. Returns the
// resolved tag, the number of retries consumed, and ErrAmbiguousRay if
// every attempt up to maxRetries failed.
func classifyComponent(
	m *mixedmesh.Mesh,
	rep mixedmesh.FaceHandle,
	leftFaces, rightFaces []mixedmesh.FaceHandle,
	rng *rand.Rand,
	maxRetries int,
) (mixedmesh.FaceTag, int, error) {
	fromLeft := m.Face(rep).FromLeft
	opposite := rightFaces
	if !fromLeft {
		opposite = leftFaces
	}
	if len(opposite) == 0 {
		return mixedmesh.Unknown, 0, ErrAmbiguousRay
	}

	retries := 0
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			retries++
		}
		target := opposite[rng.Intn(len(opposite))]
		p := randomPointInTriangle(m.Triangle(rep), rng)
		p2 := randomPointInTriangle(m.Triangle(target), rng)
		ray := point.Ray{Origin: p, Through: p2}

		tag, ok := castClassificationRay(m, ray, p, fromLeft)
		if ok {
			return tag, retries, nil
		}
	}
	return mixedmesh.Unknown, retries, ErrAmbiguousRay
}

// castClassificationRay queries the mixed mesh's AABB tree for
// opposite-provenance candidates overlapping ray, keeps the nearest
// exact hit, and reports whether the attempt was unambiguous.
func castClassificationRay(m *mixedmesh.Mesh, ray point.Ray, origin point.Point, fromLeft bool) (mixedmesh.FaceTag, bool) {
	type hit struct {
		dist *big.Rat
		face mixedmesh.FaceHandle
	}
	var hits []hit
	ambiguous := false

	m.AABBTree().GetIntersectingLeavesRay(ray, func(l aabbtree.Leaf) {
		if ambiguous {
			return
		}
		fh := mixedmesh.FaceHandle(l.Handle)
		if m.Face(fh).FromLeft == fromLeft {
			return // only the opposite operand can bound rep
		}
		res := point.TriangleRayIntersection(m.Triangle(fh), ray)
		switch res.Kind {
		case point.SegmentResult:
			// Ray lies in the face's plane: abort this attempt (spec.md
			// §4.12 step 3).
			ambiguous = true
		case point.PointResult:
			hits = append(hits, hit{dist: point.SquaredDistance(origin, res.Points[0]), face: fh})
		}
	})
	if ambiguous || len(hits) == 0 {
		return mixedmesh.Unknown, false
	}

	best := hits[0]
	tie := false
	for _, h := range hits[1:] {
		switch h.dist.Cmp(best.dist) {
		case -1:
			best, tie = h, false
		case 0:
			tie = true
		}
	}
	if tie {
		return mixedmesh.Unknown, false
	}

	switch point.OrientedSide(m.Triangle(best.face).PlaneOf(), origin) {
	case point.Positive:
		return mixedmesh.Union, true
	case point.Negative:
		return mixedmesh.Intersection, true
	default:
		return mixedmesh.Unknown, false
	}
}

// randomPointInTriangle draws a random point in t using random
// positive-integer barycentric weights coerced to exact rationals
// (spec.md §4.12 step 1: "low-bit floats coerced to exact"; integer
// weights are used directly here instead of routing through float64,
// since math/big.Rat can represent the exact result of the division
// with no intermediate rounding).
func randomPointInTriangle(t point.Triangle, rng *rand.Rand) point.Point {
	const scale = 1000
	wa := int64(rng.Intn(scale) + 1)
	wb := int64(rng.Intn(scale) + 1)
	wc := int64(rng.Intn(scale) + 1)
	sum := big.NewRat(wa+wb+wc, 1)

	ka := new(big.Rat).Quo(big.NewRat(wa, 1), sum)
	kb := new(big.Rat).Quo(big.NewRat(wb, 1), sum)
	kc := new(big.Rat).Quo(big.NewRat(wc, 1), sum)

	origin := point.NewPoint(0, 0, 0)
	va := point.Scale(point.Sub(t.A, origin), ka)
	vb := point.Scale(point.Sub(t.B, origin), kb)
	vc := point.Scale(point.Sub(t.C, origin), kc)
	return point.Add(origin, point.AddVec(point.AddVec(va, vb), vc))
}
