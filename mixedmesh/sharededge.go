package mixedmesh

// sideFlags tracks, for one edge, whether it has been seen on a
// left-provenance face and/or a right-provenance face.
type sideFlags struct{ left, right bool }

// FindSharedEdges scans every face's three edges and returns the set
// of edges incident to at least one left (A) face and at least one
// right (B) face (spec.md §4.9). This border set is both the barrier
// tag propagation stops at (spec.md §4.11) and the input to the
// faces-around-edge classifier (spec.md §4.10).
func FindSharedEdges(m *Mesh) map[Edge]struct{} {
	seen := make(map[Edge]*sideFlags)
	for fi := range m.faces {
		fd := m.faces[fi]
		for _, e := range fd.Edges() {
			s, ok := seen[e]
			if !ok {
				s = &sideFlags{}
				seen[e] = s
			}
			if fd.FromLeft {
				s.left = true
			} else {
				s.right = true
			}
		}
	}

	border := make(map[Edge]struct{})
	for e, s := range seen {
		if s.left && s.right {
			border[e] = struct{}{}
		}
	}
	return border
}
