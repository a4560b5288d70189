package halfedge

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Element handles. A handle indexes into the matching Mesh slice.
type (
	HalfedgeID int32
	VertexID   int32
	EdgeID     int32
	FaceID     int32
)

// Sentinel handles for unset links.
const (
	NoHalfedge HalfedgeID = -1
	NoVertex   VertexID   = -1
	NoEdge     EdgeID     = -1
	NoFace     FaceID     = -1
)

// Halfedge is one directed side of an edge.
type Halfedge struct {
	Next   HalfedgeID
	Twin   HalfedgeID
	Vertex VertexID // origin
	Edge   EdgeID
	Face   FaceID
}

// Vertex is a mesh corner. Halfedge is any half-edge originating here.
type Vertex struct {
	Position v3.Vec
	Halfedge HalfedgeID

	// Subdivision scratch state.
	NewPosition v3.Vec
	IsNew       bool
}

// Edge is an undirected edge. Halfedge is either of its two half-edges.
type Edge struct {
	Halfedge HalfedgeID

	// Subdivision scratch state.
	NewPosition v3.Vec
	IsNew       bool
}

// Face is a loop of half-edges. Boundary faces fill holes in the surface.
type Face struct {
	Halfedge HalfedgeID
	Boundary bool
}

// Mesh is a half-edge mesh. The zero value is an empty mesh ready to use.
type Mesh struct {
	Halfedges []Halfedge
	Vertices  []Vertex
	Edges     []Edge
	Faces     []Face
}

// ----------------------------------------------------------------------------
// Allocation
// ----------------------------------------------------------------------------

// NewHalfedge appends an unlinked half-edge.
func (m *Mesh) NewHalfedge() HalfedgeID {
	m.Halfedges = append(m.Halfedges, Halfedge{
		Next:   NoHalfedge,
		Twin:   NoHalfedge,
		Vertex: NoVertex,
		Edge:   NoEdge,
		Face:   NoFace,
	})
	return HalfedgeID(len(m.Halfedges) - 1)
}

// NewVertex appends an unlinked vertex at the origin.
func (m *Mesh) NewVertex() VertexID {
	m.Vertices = append(m.Vertices, Vertex{Halfedge: NoHalfedge})
	return VertexID(len(m.Vertices) - 1)
}

// NewEdge appends an unlinked edge.
func (m *Mesh) NewEdge() EdgeID {
	m.Edges = append(m.Edges, Edge{Halfedge: NoHalfedge})
	return EdgeID(len(m.Edges) - 1)
}

// NewFace appends an unlinked face.
func (m *Mesh) NewFace(boundary bool) FaceID {
	m.Faces = append(m.Faces, Face{Halfedge: NoHalfedge, Boundary: boundary})
	return FaceID(len(m.Faces) - 1)
}

// SetNeighbors sets every link of h at once.
func (m *Mesh) SetNeighbors(h, next, twin HalfedgeID, vertex VertexID, edge EdgeID, face FaceID) {
	m.Halfedges[h] = Halfedge{Next: next, Twin: twin, Vertex: vertex, Edge: edge, Face: face}
}

// ----------------------------------------------------------------------------
// Traversal
// ----------------------------------------------------------------------------

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumEdges returns the number of edges.
func (m *Mesh) NumEdges() int { return len(m.Edges) }

// NumFaces returns the number of faces, boundary faces included.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// NumHalfedges returns the number of half-edges.
func (m *Mesh) NumHalfedges() int { return len(m.Halfedges) }

// Next returns the half-edge after h around its face.
func (m *Mesh) Next(h HalfedgeID) HalfedgeID { return m.Halfedges[h].Next }

// Twin returns the opposite half-edge of h.
func (m *Mesh) Twin(h HalfedgeID) HalfedgeID { return m.Halfedges[h].Twin }

// Origin returns the vertex h starts at.
func (m *Mesh) Origin(h HalfedgeID) VertexID { return m.Halfedges[h].Vertex }

// Dest returns the vertex h points to.
func (m *Mesh) Dest(h HalfedgeID) VertexID { return m.Halfedges[m.Halfedges[h].Twin].Vertex }

// EdgeOf returns the edge h belongs to.
func (m *Mesh) EdgeOf(h HalfedgeID) EdgeID { return m.Halfedges[h].Edge }

// FaceOf returns the face h bounds.
func (m *Mesh) FaceOf(h HalfedgeID) FaceID { return m.Halfedges[h].Face }

// Position returns the position of v.
func (m *Mesh) Position(v VertexID) v3.Vec { return m.Vertices[v].Position }

// Prev returns the half-edge before h around its face. It walks the face
// loop, so it costs the face degree.
func (m *Mesh) Prev(h HalfedgeID) HalfedgeID {
	p := h
	for {
		n := m.Halfedges[p].Next
		if n == h {
			return p
		}
		p = n
	}
}

// FaceHalfedges returns the half-edges of f in Next order.
func (m *Mesh) FaceHalfedges(f FaceID) []HalfedgeID {
	start := m.Faces[f].Halfedge
	var hs []HalfedgeID
	h := start
	for {
		hs = append(hs, h)
		h = m.Halfedges[h].Next
		if h == start {
			return hs
		}
	}
}

// FaceVertices returns the corner vertices of f in Next order.
func (m *Mesh) FaceVertices(f FaceID) []VertexID {
	hs := m.FaceHalfedges(f)
	vs := make([]VertexID, len(hs))
	for i, h := range hs {
		vs[i] = m.Halfedges[h].Vertex
	}
	return vs
}

// Degree returns the number of sides of f.
func (m *Mesh) Degree(f FaceID) int {
	start := m.Faces[f].Halfedge
	n := 0
	h := start
	for {
		n++
		h = m.Halfedges[h].Next
		if h == start {
			return n
		}
	}
}

// Outgoing returns the half-edges leaving v, visited as h -> Twin(h).Next.
func (m *Mesh) Outgoing(v VertexID) []HalfedgeID {
	start := m.Vertices[v].Halfedge
	var hs []HalfedgeID
	h := start
	for {
		hs = append(hs, h)
		h = m.Halfedges[m.Halfedges[h].Twin].Next
		if h == start {
			return hs
		}
	}
}

// VertexDegree returns the number of edges incident to v.
func (m *Mesh) VertexDegree(v VertexID) int {
	start := m.Vertices[v].Halfedge
	n := 0
	h := start
	for {
		n++
		h = m.Halfedges[m.Halfedges[h].Twin].Next
		if h == start {
			return n
		}
	}
}

// Neighbors returns the vertices adjacent to v.
func (m *Mesh) Neighbors(v VertexID) []VertexID {
	hs := m.Outgoing(v)
	vs := make([]VertexID, len(hs))
	for i, h := range hs {
		vs[i] = m.Dest(h)
	}
	return vs
}

// EdgeVertices returns the two endpoints of e.
func (m *Mesh) EdgeVertices(e EdgeID) (VertexID, VertexID) {
	h := m.Edges[e].Halfedge
	return m.Origin(h), m.Dest(h)
}

// EdgeIsBoundary reports whether e touches a boundary face.
func (m *Mesh) EdgeIsBoundary(e EdgeID) bool {
	h := m.Edges[e].Halfedge
	return m.Faces[m.Halfedges[h].Face].Boundary ||
		m.Faces[m.Halfedges[m.Halfedges[h].Twin].Face].Boundary
}

// VertexIsBoundary reports whether any face around v is a boundary face.
func (m *Mesh) VertexIsBoundary(v VertexID) bool {
	for _, h := range m.Outgoing(v) {
		if m.Faces[m.Halfedges[h].Face].Boundary {
			return true
		}
	}
	return false
}

// HasBoundary reports whether the mesh has any boundary face.
func (m *Mesh) HasBoundary() bool {
	for _, f := range m.Faces {
		if f.Boundary {
			return true
		}
	}
	return false
}

// InteriorFaceCount returns the number of non-boundary faces.
func (m *Mesh) InteriorFaceCount() int {
	n := 0
	for _, f := range m.Faces {
		if !f.Boundary {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Halfedges: append([]Halfedge(nil), m.Halfedges...),
		Vertices:  append([]Vertex(nil), m.Vertices...),
		Edges:     append([]Edge(nil), m.Edges...),
		Faces:     append([]Face(nil), m.Faces...),
	}
}
