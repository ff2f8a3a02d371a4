// Package corefine implements the corefiner of spec.md §4.7: it drives
// exact triangle-triangle intersection between two polygon soups,
// dispatches each affected face to a per-face cdt.Triangulator, and
// emits a retriangulated stream for each soup such that every edge of
// the intersection curve appears as a mesh edge on both sides (up to
// the rare, diagnosed exception of a dropped constraint).
//
// The three expensive steps — candidate-pair intersection, per-face
// triangulation, and (in classify) global-classifier seeding — are the
// three parallel phases spec.md §5 names; this package owns the first
// two, following the teacher's goroutine+mutex and errgroup idioms
// (core/concurrency_test.go, and golang.org/x/sync/errgroup as used by
// iceisfun/gomesh and taigrr/trophy in the retrieved pack).
package corefine
