// Package cdt implements the 2D constrained triangulator of spec.md
// §4.6: given a 3D triangle, project it to the best-conditioned
// axis-aligned plane, incrementally insert extra points and polyline
// constraints, and emit the resulting triangles lifted back to 3D.
//
// Every point ever inserted into a Triangulator is assumed to lie
// within the original triangle's convex hull — true for corefinement,
// whose extra points are always intersections with another triangle
// and therefore already inside this one. The triangulator never grows
// its hull, which lets it skip the bounding super-triangle a general
// Delaunay triangulator needs.
package cdt
