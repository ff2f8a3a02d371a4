// Package classify implements the three classification passes of
// spec.md §4.10-§4.12: the faces-around-edge local classifier, the
// BFS tag propagator, and the ray-casting global classifier. Together
// they take a mixed mesh from "every face Unknown" to "every face
// Union, Intersection, Coplanar or Opposite" (spec.md invariant I4).
package classify
