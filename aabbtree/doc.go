// Package aabbtree implements the static AABB tree of spec.md §4.2: a
// binary bounding-volume hierarchy over a fixed set of leaves, built
// once and queried many times with either a triangle or a ray.
//
// Leaves carry an opaque integer handle rather than a reference back
// to their owning mesh (spec.md §9's guidance against ownership
// cycles): the tree never needs to know what a handle means, only its
// bounding box.
package aabbtree
