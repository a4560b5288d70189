package kernel

import v3 "github.com/deadsy/sdfx/vec/v3"

// Mesh is an indexed triangle mesh in flat arrays, the exchange format between
// solid sources, the half-edge store and the host program.
// Vertices has 3 floats per vertex (x,y,z), Normals has 3 floats per vertex
// (may be empty until topology is known), Indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Position returns vertex i as a vector.
func (m *Mesh) Position(i int) v3.Vec {
	return v3.Vec{
		X: float64(m.Vertices[3*i]),
		Y: float64(m.Vertices[3*i+1]),
		Z: float64(m.Vertices[3*i+2]),
	}
}

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]int {
	return [3]int{int(m.Indices[3*i]), int(m.Indices[3*i+1]), int(m.Indices[3*i+2])}
}

// FromPolyhedron packs positions and triangles into a Mesh.
func FromPolyhedron(positions []v3.Vec, triangles [][3]int) *Mesh {
	m := &Mesh{
		Vertices: make([]float32, 0, len(positions)*3),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for _, p := range positions {
		m.Vertices = append(m.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
	}
	for _, t := range triangles {
		m.Indices = append(m.Indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return m
}
