// Package extract implements the extractor of spec.md §4.13: given a
// classified mixed mesh and an operator, emit the selected faces
// (possibly with inverted winding) as a new polygon soup.
package extract
