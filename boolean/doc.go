// Package boolean is the top-level facade of spec.md §2/§6: given two
// polygon soups and a list of Bocheński operators, it runs corefinement,
// mixed-mesh assembly, local and global classification once, then
// extracts one output soup per operator — following
// _examples/original_source/libraries/kigumi/boolean.h's shape of
// building the classified mesh once and evaluating N times rather than
// re-running the pipeline per operator.
package boolean
