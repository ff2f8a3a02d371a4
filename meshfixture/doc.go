// Package meshfixture builds small, exactly-representable polygon
// soups for tests and examples: a unit cube and a regular tetrahedron,
// plus translate/scale/90-degree-rotate transforms. Grounded on the
// teacher's builder.PlatonicSolid (builder/impl_platonic.go): a
// deterministic vertex list plus a pre-sorted face/edge set, built
// once and reused, rather than a general mesh-import path.
package meshfixture
