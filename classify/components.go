package classify

import "github.com/kigumi-go/kigumi/mixedmesh"

// UnknownComponents finds the connected components, under non-border
// face adjacency, of faces still tagged Unknown after local
// classification and propagation (spec.md §4.12: "Connected
// components are discovered by BFS that respects border edges, the
// same way §4.11 walks adjacency"). Grounded on
// gridgraph/components.go's flood-fill over equal-valued grid cells:
// the border-edge predicate here plays the role the land-value
// equality test plays there.
func UnknownComponents(m *mixedmesh.Mesh, border map[mixedmesh.Edge]struct{}) [][]mixedmesh.FaceHandle {
	visited := make([]bool, m.NumFaces())
	var components [][]mixedmesh.FaceHandle

	for fh := 0; fh < m.NumFaces(); fh++ {
		start := mixedmesh.FaceHandle(fh)
		if visited[start] || m.Face(start).Tag != mixedmesh.Unknown {
			continue
		}
		queue := []mixedmesh.FaceHandle{start}
		visited[start] = true
		var comp []mixedmesh.FaceHandle
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			comp = append(comp, cur)
			m.FacesAroundFace(cur, border, func(nf mixedmesh.FaceHandle) {
				if !visited[nf] && m.Face(nf).Tag == mixedmesh.Unknown {
					visited[nf] = true
					queue = append(queue, nf)
				}
			})
		}
		components = append(components, comp)
	}
	return components
}
