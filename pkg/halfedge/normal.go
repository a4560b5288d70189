package halfedge

import (
	"github.com/chazu/meshkit/pkg/vecmath"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// FaceNormal returns the area-weighted normal of f: the sum of the cross
// products of consecutive corner positions. Its length is twice the area of
// the polygon and it points away from the counter-clockwise side.
func (m *Mesh) FaceNormal(f FaceID) v3.Vec {
	var n v3.Vec
	start := m.Faces[f].Halfedge
	h := start
	for {
		next := m.Halfedges[h].Next
		p := m.Vertices[m.Halfedges[h].Vertex].Position
		q := m.Vertices[m.Halfedges[next].Vertex].Position
		n = n.Add(p.Cross(q))
		h = next
		if h == start {
			return n
		}
	}
}

// FaceArea returns the area of f.
func (m *Mesh) FaceArea(f FaceID) float64 {
	return m.FaceNormal(f).Length() / 2
}

// FaceCentroid returns the average of the corner positions of f.
func (m *Mesh) FaceCentroid(f FaceID) v3.Vec {
	vs := m.FaceVertices(f)
	var c v3.Vec
	for _, v := range vs {
		c = c.Add(m.Vertices[v].Position)
	}
	return c.MulScalar(1 / float64(len(vs)))
}

// VertexNormal returns the unit area-weighted average of the normals of the
// faces around v. Boundary faces contribute nothing. The zero vector is
// returned when the surrounding faces cancel or have no area.
func (m *Mesh) VertexNormal(v VertexID) v3.Vec {
	var sum v3.Vec
	start := m.Vertices[v].Halfedge
	h := start
	for {
		if f := m.Halfedges[h].Face; !m.Faces[f].Boundary {
			sum = sum.Add(m.FaceNormal(f))
		}
		h = m.Halfedges[m.Halfedges[h].Twin].Next
		if h == start {
			break
		}
	}
	return vecmath.Unit(sum)
}
