// Package pairfinder implements the face-pair finder of spec.md §4.5:
// candidate (i, j) triangle pairs between two polygon soups whose
// bounding boxes overlap.
package pairfinder

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/kigumi-go/kigumi/aabbtree"
	"github.com/kigumi-go/kigumi/soup"
	"golang.org/x/sync/errgroup"
)

// Pair is a candidate overlapping face pair: i indexes the left soup,
// j indexes the right soup.
type Pair struct {
	I, J int
}

// Find emits every (i, j) such that the AABBs of left.Triangle(i) and
// right.Triangle(j) overlap. To minimize tree-descent cost, it queries
// the smaller side's tree with each triangle of the larger side. The
// outer loop runs in parallel across goroutines, with per-goroutine
// scratch lists concatenated under a mutual-exclusion guard.
//
// The result may contain duplicates in adversarial cases but never
// omits an overlapping pair, since bounding-box overlap is symmetric
// and conservative. Fails with ErrInvalidFace if either soup has a
// face referencing a point index out of range.
func Find(left, right *soup.Soup) ([]Pair, error) {
	for _, s := range []*soup.Soup{left, right} {
		for i := 0; i < s.NumFaces(); i++ {
			if err := s.CheckFace(i); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidFace, err)
			}
		}
	}
	if left.NumFaces() <= right.NumFaces() {
		// left is the smaller side: findAsymmetric(left, right) queries
		// left's tree with right's triangles and returns (right-index,
		// left-index) pairs, so flip them to (left-index, right-index).
		raw, err := findAsymmetric(left, right)
		if err != nil {
			return nil, err
		}
		pairs := make([]Pair, len(raw))
		for i, p := range raw {
			pairs[i] = Pair{I: p.J, J: p.I}
		}
		return pairs, nil
	}
	// right is the smaller side: findAsymmetric(right, left) queries
	// right's tree with left's triangles and already returns
	// (left-index, right-index) pairs.
	return findAsymmetric(right, left)
}

// findAsymmetric queries small's tree with each triangle of large,
// returning pairs as (large-index, small-index).
func findAsymmetric(small, large *soup.Soup) ([]Pair, error) {
	tree := small.AABBTree()
	n := large.NumFaces()
	if n == 0 || tree.IsEmpty() {
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
	var all []Pair

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
			local := make([]Pair, 0, hi-lo)
			for i := lo; i < hi; i++ {
				if err := large.CheckFace(i); err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidFace, err)
				}
				tree.GetIntersectingLeavesTriangle(large.Triangle(i), func(l aabbtree.Leaf) {
					local = append(local, Pair{I: i, J: l.Handle})
				})
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
