package boolean

import (
	"math/rand"

	"github.com/kigumi-go/kigumi/classify"
	"github.com/kigumi-go/kigumi/corefine"
	"github.com/kigumi-go/kigumi/extract"
	"github.com/kigumi-go/kigumi/kerr"
	"github.com/kigumi-go/kigumi/mixedmesh"
	"github.com/kigumi-go/kigumi/operator"
	"github.com/kigumi-go/kigumi/soup"
)

// Diagnostics aggregates the best-effort degradation counters spec.md
// §9 leaves undocumented in the original: dropped corefinement
// constraints (corefine.Result.DroppedConstraints) and the global
// classifier's retry/unresolved counts (classify.Diagnostics).
type Diagnostics struct {
	DroppedConstraints   int
	AmbiguousRayRetries  int
	UnresolvedComponents int
}

// Runner holds configuration built via functional options (the
// builder.Constructor/core.GraphOption shape the teacher uses for its
// own top-level constructors), reused across multiple Run calls.
type Runner struct {
	preferA  bool
	classify classify.Options
}

// Option configures a Runner.
type Option func(*Runner)

// WithPreferA sets the tie-break used for Coplanar/Opposite face
// output cells (spec.md §4.13). Default true.
func WithPreferA(preferA bool) Option {
	return func(r *Runner) { r.preferA = preferA }
}

// WithRandSeed sets the deterministic seed driving the global
// classifier's ray casts (spec.md §5 phase (c)). Default seed is 1.
func WithRandSeed(seed int64) Option {
	return func(r *Runner) { r.classify.Rand = rand.New(rand.NewSource(seed)) }
}

// WithMaxRayRetries overrides the global classifier's ambiguous-ray
// retry cap (spec.md §4.12/§9). Default 100.
func WithMaxRayRetries(n int) Option {
	return func(r *Runner) { r.classify.MaxRayRetries = n }
}

// NewRunner builds a Runner with the spec's defaults, as modified by
// opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{preferA: true, classify: classify.DefaultOptions()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run executes the full pipeline of spec.md §2: corefinement, mixed-
// mesh assembly, local classification, propagation and global
// classification run once; the classified mesh is then extracted once
// per operator in ops, in order. Returns one soup per operator plus
// the run's diagnostics.
func (r *Runner) Run(left, right *soup.Soup, ops ...operator.Operator) ([]*soup.Soup, Diagnostics, error) {
	var diag Diagnostics

	cr, err := corefine.Run(left, right)
	if err != nil {
		return nil, diag, kerr.New(kerr.InvalidInputMesh, "corefinement failed", err)
	}
	diag.DroppedConstraints = cr.DroppedConstraints

	m := assemble(cr)
	border := mixedmesh.FindSharedEdges(m)

	if err := classify.AroundEdges(m, border); err != nil {
		return nil, diag, kerr.New(kerr.InvalidInputMesh, "faces-around-edge classification failed", err)
	}
	classify.Propagate(m, border)

	gdiag := classify.GlobalClassify(m, border, r.classify)
	diag.AmbiguousRayRetries = gdiag.AmbiguousRayRetries
	diag.UnresolvedComponents = gdiag.UnresolvedComponents

	out := make([]*soup.Soup, len(ops))
	for i, o := range ops {
		s, err := extract.Extract(m, o, r.preferA)
		if err != nil {
			return nil, diag, err
		}
		out[i] = s
	}
	return out, diag, nil
}

// assemble builds the mixed mesh of spec.md §3/§4.8 from a corefiner
// result: every refined triangle of cr.Left is added with FromLeft
// true, every triangle of cr.Right with FromLeft false, sharing one
// point interner so intersection-curve vertices that are exactly equal
// on both sides collapse to the same handle.
func assemble(cr *corefine.Result) *mixedmesh.Mesh {
	m := mixedmesh.New()
	addSide(m, cr.Left, true)
	addSide(m, cr.Right, false)
	m.Finalize()
	return m
}

func addSide(m *mixedmesh.Mesh, s *soup.Soup, fromLeft bool) {
	for i := 0; i < s.NumFaces(); i++ {
		tri := s.Triangle(i)
		v0 := m.AddVertex(tri.A)
		v1 := m.AddVertex(tri.B)
		v2 := m.AddVertex(tri.C)
		m.AddFace(v0, v1, v2, fromLeft)
	}
}

// Run is the package-level convenience entry point matching spec.md
// §6's signature, using the spec's default options (preferA, seed 1,
// 100 ray retries).
func Run(left, right *soup.Soup, ops ...operator.Operator) ([]*soup.Soup, error) {
	out, _, err := NewRunner().Run(left, right, ops...)
	return out, err
}
