// Package operator implements the 16-element Bocheński boolean
// algebra of spec.md §6/§4.13: the operator enumeration, its 4-bit
// wire encoding, and the per-operator face-output mask table the
// extractor evaluates.
//
// Grounded on builder/letters_spec.go's pattern of a closed
// enumeration backed by a lookup table with a sentinel error for
// unknown values (ErrUnknownLetter there, ErrUnknownOperator here).
// The table itself is reproduced from
// _examples/original_source/libraries/kigumi/Operator.h, which
// defines the full 16-entry mask table spec.md §4.13 only sketches.
package operator
