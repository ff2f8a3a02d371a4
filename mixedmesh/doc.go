// Package mixedmesh implements the mixed mesh of spec.md §3 and §4.8,
// and the shared-edge finder of §4.9: an indexed mesh assembled from
// both corefined operands, carrying per-face provenance
// ("from_left") and a semantic FaceTag, with the traversal primitives
// the classification passes walk.
//
// Faces around a vertex are sorted index ranges into a flat auxiliary
// array (spec.md §9), never a linked adjacency list: Finalize builds
// two parallel slices, starts and faceIndices, the same shape
// Mesh_iterators.h's Faces_around_vertex uses in the original C++
// source this spec distills.
package mixedmesh
