package halfedge

import "github.com/chazu/meshkit/pkg/kernel"

// ToKernelMesh flattens the interior faces of m into an indexed triangle
// mesh with per-vertex normals. Polygons with more than three sides are fan
// triangulated from their representative corner. Vertex i of the result is
// vertex i of m.
func (m *Mesh) ToKernelMesh() *kernel.Mesh {
	km := &kernel.Mesh{
		Vertices: make([]float32, 0, 3*len(m.Vertices)),
		Normals:  make([]float32, 0, 3*len(m.Vertices)),
	}
	for i, v := range m.Vertices {
		n := m.VertexNormal(VertexID(i))
		km.Vertices = append(km.Vertices, float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z))
		km.Normals = append(km.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	for i, f := range m.Faces {
		if f.Boundary {
			continue
		}
		vs := m.FaceVertices(FaceID(i))
		for j := 1; j+1 < len(vs); j++ {
			km.Indices = append(km.Indices, uint32(vs[0]), uint32(vs[j]), uint32(vs[j+1]))
		}
	}
	return km
}

// Stats summarises the size of a mesh.
type Stats struct {
	Vertices  int `json:"vertices"`
	Edges     int `json:"edges"`
	Faces     int `json:"faces"`
	Boundary  int `json:"boundaryFaces"`
	Halfedges int `json:"halfedges"`
}

// Stats returns element counts. Faces excludes boundary faces.
func (m *Mesh) Stats() Stats {
	interior := m.InteriorFaceCount()
	return Stats{
		Vertices:  len(m.Vertices),
		Edges:     len(m.Edges),
		Faces:     interior,
		Boundary:  len(m.Faces) - interior,
		Halfedges: len(m.Halfedges),
	}
}

// EulerCharacteristic returns V - E + F counting interior faces only, which
// is 2 for a closed sphere-like surface and 1 for a disc.
func (m *Mesh) EulerCharacteristic() int {
	return len(m.Vertices) - len(m.Edges) + m.InteriorFaceCount()
}
