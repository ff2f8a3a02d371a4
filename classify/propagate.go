package classify

import "github.com/kigumi-go/kigumi/mixedmesh"

// Propagate runs the full-seed tag propagator (spec.md §4.11): every
// face already tagged Union or Intersection is enqueued, and the BFS
// spreads each face's tag to Unknown neighbors across non-border
// adjacency until the queue is empty.
func Propagate(m *mixedmesh.Mesh, border map[mixedmesh.Edge]struct{}) {
	w := &propagationWalker{mesh: m, border: border}
	for fh := 0; fh < m.NumFaces(); fh++ {
		f := mixedmesh.FaceHandle(fh)
		if tag := m.Face(f).Tag; tag == mixedmesh.Union || tag == mixedmesh.Intersection {
			w.enqueue(f)
		}
	}
	w.loop()
}

// PropagateFrom runs the single-seed variant: only seed is enqueued.
// Returns ErrSeedNotTagged if seed is not already tagged Union or
// Intersection (spec.md §4.11).
func PropagateFrom(m *mixedmesh.Mesh, border map[mixedmesh.Edge]struct{}, seed mixedmesh.FaceHandle) error {
	tag := m.Face(seed).Tag
	if tag != mixedmesh.Union && tag != mixedmesh.Intersection {
		return ErrSeedNotTagged
	}
	w := &propagationWalker{mesh: m, border: border}
	w.enqueue(seed)
	w.loop()
	return nil
}

// propagationWalker holds the BFS queue, mirroring the
// algorithms/bfs.go walker idiom (init/dequeue/visit/enqueueNeighbors)
// generalized from vertex IDs to mixed-mesh face handles and from a
// visit hook to tag inheritance.
type propagationWalker struct {
	mesh   *mixedmesh.Mesh
	border map[mixedmesh.Edge]struct{}
	queue  []mixedmesh.FaceHandle
}

func (w *propagationWalker) enqueue(f mixedmesh.FaceHandle) {
	w.queue = append(w.queue, f)
}

func (w *propagationWalker) loop() {
	for len(w.queue) > 0 {
		f := w.dequeue()
		w.visit(f)
	}
}

func (w *propagationWalker) dequeue() mixedmesh.FaceHandle {
	f := w.queue[0]
	w.queue = w.queue[1:]
	return f
}

func (w *propagationWalker) visit(f mixedmesh.FaceHandle) {
	tag := w.mesh.Face(f).Tag
	w.mesh.FacesAroundFace(f, w.border, func(nf mixedmesh.FaceHandle) {
		if w.mesh.Face(nf).Tag == mixedmesh.Unknown {
			w.mesh.SetTag(nf, tag)
			w.enqueue(nf)
		}
	})
}
