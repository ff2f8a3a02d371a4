package corefine

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/kigumi-go/kigumi/cdt"
	"github.com/kigumi-go/kigumi/interner"
	"github.com/kigumi-go/kigumi/pairfinder"
	"github.com/kigumi-go/kigumi/point"
	"github.com/kigumi-go/kigumi/soup"
	"golang.org/x/sync/errgroup"
)

// Result is the corefiner's output: a retriangulated triangle stream
// per input soup, plus the best-effort degradation diagnostic spec.md
// §9 leaves to the implementation to expose.
type Result struct {
	Left, Right *soup.Soup

	// DroppedConstraints counts InsertConstraint calls swallowed after
	// cdt.ErrIntersectionOfConstraints (spec.md §4.7 step 5).
	DroppedConstraints int
}

// hit is one (left_face, right_face, intersection) tuple from spec.md
// §4.7 step 2.
type hit struct {
	leftFace, rightFace int
	tri                 point.TriTriResult
}

// Run retriangulates left and right (spec.md §4.7 steps 1-6) so that
// every edge of the intersection curve between them appears as a mesh
// edge in both outputs, up to the rare dropped-constraint exception
// counted in Result.DroppedConstraints.
func Run(left, right *soup.Soup) (*Result, error) {
	pairs, err := pairfinder.Find(left, right)
	if err != nil {
		return nil, err
	}
	hits, err := intersectPairs(left, right, pairs)
	if err != nil {
		return nil, err
	}

	var dropped int64
	leftOut, err := triangulateSide(left, hits, func(h hit) int { return h.leftFace }, &dropped)
	if err != nil {
		return nil, err
	}
	rightOut, err := triangulateSide(right, hits, func(h hit) int { return h.rightFace }, &dropped)
	if err != nil {
		return nil, err
	}

	return &Result{
		Left:               leftOut,
		Right:              rightOut,
		DroppedConstraints: int(dropped),
	}, nil
}

// intersectPairs computes the exact intersection of every candidate
// pair, skipping degenerate triangles and non-intersecting pairs
// (spec.md §4.7 step 2). It runs in parallel across goroutines with
// thread-local buffers merged under a mutual-exclusion guard, the same
// shape as pairfinder.findAsymmetric. Fails with ErrInvalidFace if a
// candidate pair references a face index out of range on either side.
func intersectPairs(left, right *soup.Soup, pairs []pairfinder.Pair) ([]hit, error) {
	n := len(pairs)
	if n == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var mu sync.Mutex
	var all []hit

	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		lo, hi := lo, hi
		g.Go(func() error {
			local := make([]hit, 0, hi-lo)
			for i := lo; i < hi; i++ {
				p := pairs[i]
				if err := left.CheckFace(p.I); err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidFace, err)
				}
				if err := right.CheckFace(p.J); err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidFace, err)
				}
				lt := left.Triangle(p.I)
				rt := right.Triangle(p.J)
				if point.IsDegenerate(lt) || point.IsDegenerate(rt) {
					continue
				}
				res := point.TriangleTriangleIntersection(lt, rt)
				if res.Kind == point.NoIntersection {
					continue
				}
				local = append(local, hit{leftFace: p.I, rightFace: p.J, tri: res})
			}
			mu.Lock()
			all = append(all, local...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// triangulateSide runs spec.md §4.7 steps 3-6 for one soup: build a
// triangulator per affected face, feed it every hit naming that face,
// and emit the resulting triangle stream (or the original triangle,
// for faces no hit touched) into a fresh interned soup. faceOf selects
// which side of a hit names this soup's face. Fails with ErrInvalidFace
// if a hit names a face index out of range for s; in the normal Run
// path every hit already passed intersectPairs's own check, so this
// fires only if a caller feeds triangulateSide hits built some other
// way, an independent precondition check rather than trusting the
// caller.
func triangulateSide(s *soup.Soup, hits []hit, faceOf func(hit) int, dropped *int64) (*soup.Soup, error) {
	byFace := make(map[int][]int)
	for hi, h := range hits {
		f := faceOf(h)
		byFace[f] = append(byFace[f], hi)
	}

	faces := make([]int, 0, len(byFace))
	for f := range byFace {
		faces = append(faces, f)
	}
	sort.Ints(faces)

	// Seeding each face's triangulator is independent, so it runs in
	// its own parallel stage; a face index out of range for s is a
	// genuine ErrInvalidFace, the first goroutine to hit one wins via
	// errgroup's cancellation and every other result is discarded.
	var tmu sync.Mutex
	triangulators := make(map[int]*cdt.Triangulator, len(faces))
	seedGroup, _ := errgroup.WithContext(context.Background())
	for _, f := range faces {
		f := f
		seedGroup.Go(func() error {
			if err := s.CheckFace(f); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidFace, err)
			}
			tri := s.Triangle(f)
			if point.IsDegenerate(tri) {
				return nil
			}
			seed := cdt.New(tri)
			tmu.Lock()
			triangulators[f] = seed
			tmu.Unlock()
			return nil
		})
	}
	if err := seedGroup.Wait(); err != nil {
		return nil, err
	}

	// Each face's triangulator is independent (spec.md §5 phase (b));
	// groups run in parallel, writing only to their own triangulator.
	g, _ := errgroup.WithContext(context.Background())
	for _, f := range faces {
		tr, ok := triangulators[f]
		if !ok {
			continue
		}
		tr, idxs := tr, byFace[f]
		g.Go(func() error {
			local := 0
			for _, hi := range idxs {
				local += applyIntersection(tr, hits[hi].tri)
			}
			if local > 0 {
				atomic.AddInt64(dropped, int64(local))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var in interner.Interner
	var outFaces []soup.Face
	for i := 0; i < s.NumFaces(); i++ {
		tr, ok := triangulators[i]
		if !ok {
			appendTriangle(&in, &outFaces, s.Triangle(i))
			continue
		}
		tr.GetTriangles(func(t point.Triangle) {
			appendTriangle(&in, &outFaces, t)
		})
	}

	return soup.New(in.IntoVector(), outFaces), nil
}

// applyIntersection translates one intersection result into
// triangulator operations (spec.md §4.7 step 5), swallowing any
// ErrIntersectionOfConstraints and reporting how many constraints it
// dropped.
func applyIntersection(tr *cdt.Triangulator, res point.TriTriResult) int {
	switch res.Kind {
	case point.NoIntersection:
		return 0
	case point.PointResult:
		tr.Insert(res.Points[0])
		return 0
	case point.SegmentResult:
		p := tr.Insert(res.Points[0])
		q := tr.Insert(res.Points[1])
		if err := tr.InsertConstraint(p, q); err != nil {
			return 1
		}
		return 0
	case point.TriangleResult, point.PolygonResult:
		handles := make([]cdt.VertexHandle, len(res.Points))
		for i, pt := range res.Points {
			handles[i] = tr.Insert(pt)
		}
		dropped := 0
		for i := range handles {
			j := (i + 1) % len(handles)
			if err := tr.InsertConstraint(handles[i], handles[j]); err != nil {
				dropped++
			}
		}
		return dropped
	default:
		return 0
	}
}

func appendTriangle(in *interner.Interner, faces *[]soup.Face, t point.Triangle) {
	a := in.Insert(t.A)
	b := in.Insert(t.B)
	c := in.Insert(t.C)
	*faces = append(*faces, soup.Face{a, b, c})
}
