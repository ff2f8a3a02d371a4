// Package kerr implements the boundary error surface of spec.md §6/§7:
// a small error kind enumeration plus a wrapping struct that carries a
// human-readable message and, when available, the offending face or
// edge handles. Internal packages return their own sentinel errors
// (see each package's errors.go); callers at the boolean.Run boundary
// see those sentinels wrapped into one of the kinds here via New,
// WithFace or WithFaces, the
// same "sentinel + wrapf" shape builder/errors.go uses in the teacher
// repo.
package kerr

import (
	"errors"
	"fmt"
)

// Kind is one of the three error kinds the core boundary surfaces.
type Kind int

const (
	// InvalidInputMesh covers a non-triangle face or a conflicting
	// faces-around-edge tag assignment (spec.md §4.10 step 6).
	InvalidInputMesh Kind = iota
	// ArithmeticOverflow covers a kernel failure (spec.md §4.1).
	ArithmeticOverflow
	// InternalInvariantViolated covers a propagator invariant failure,
	// e.g. SeedNotTagged reaching the boundary (spec.md §7).
	InternalInvariantViolated
)

func (k Kind) String() string {
	switch k {
	case InvalidInputMesh:
		return "invalid input mesh"
	case ArithmeticOverflow:
		return "arithmetic overflow"
	case InternalInvariantViolated:
		return "internal invariant violated"
	default:
		return "unknown error kind"
	}
}

// Error is the boundary error type of spec.md §7: a kind, a
// human-readable message, and the wrapped underlying sentinel (when
// one exists), plus the offending face/edge handles when available.
type Error struct {
	Kind    Kind
	Message string
	Face    int // -1 when not applicable
	Face2   int // -1 when not applicable (e.g. the other face of a conflicting edge)
	Err     error
}

func (e *Error) Error() string {
	if e.Face >= 0 {
		return fmt.Sprintf("kigumi: %s: %s (face %d)", e.Kind, e.Message, e.Face)
	}
	return fmt.Sprintf("kigumi: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped sentinel so errors.Is/As keep working
// through the boundary, the same shape builderErrorf/wrapf give the
// teacher's builder package.
func (e *Error) Unwrap() error { return e.Err }

// New builds a boundary Error with no associated face handle.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Face: -1, Face2: -1, Err: err}
}

// WithFace attaches a face handle to a boundary Error.
func WithFace(kind Kind, message string, face int, err error) *Error {
	return &Error{Kind: kind, Message: message, Face: face, Face2: -1, Err: err}
}

// WithFaces attaches two face handles (e.g. a conflicting pair) to a
// boundary Error.
func WithFaces(kind Kind, message string, face, face2 int, err error) *Error {
	return &Error{Kind: kind, Message: message, Face: face, Face2: face2, Err: err}
}

// Is supports errors.Is(err, kerr.New(kerr.InvalidInputMesh, "", nil))
// style checks by comparing kinds, in addition to the usual
// Unwrap-based chain match against the wrapped sentinel.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}
