package operator

import (
	"errors"
	"fmt"
)

// Operator is one of the 16 elements of the Bocheński boolean algebra
// over two operands (spec.md §6), encoded 0..15 in the order V, A, B,
// C, D, E, F, G, H, I, J, K, L, M, X, O.
type Operator int

const (
	V Operator = iota // the universe: accept everything from both sides
	A                 // Union
	B
	C
	D
	E
	F // complement of A
	G // complement of B
	H // B itself
	I // A itself
	J // SymmetricDifference
	K // Intersection
	L // Difference: A \ B
	M // Difference: B \ A
	X // complement of the union (neither A nor B)
	O // the empty set: reject everything
)

// Aliases for the operators spec.md names explicitly.
const (
	Union               = A
	SymmetricDifference = J
	Intersection        = K
	Difference          = L
	ReverseDifference   = M
	Universe            = V
	Empty               = O
	ComplementOfA       = F
	ComplementOfB       = G
	ComplementOfUnion   = X
)

// ErrUnknownOperator is returned by Decode for a 4-bit field outside
// 0..15's defined operators (all 16 values are defined, so this only
// fires for out-of-range input).
var ErrUnknownOperator = errors.New("operator: unknown operator code")

var names = [16]string{
	"V", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "X", "O",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(names) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return names[o]
}

// Encode returns o's 4-bit wire encoding (spec.md §6).
func (o Operator) Encode() uint8 { return uint8(o) }

// Decode maps a 4-bit wire code back to an Operator.
func Decode(code uint8) (Operator, error) {
	if code > 15 {
		return 0, fmt.Errorf("operator: code %d: %w", code, ErrUnknownOperator)
	}
	return Operator(code), nil
}
