package halfedge

import (
	"github.com/chazu/meshkit/pkg/vecmath"
)

// splittable reports whether e separates two interior triangles that share
// no edge other than e.
func (m *Mesh) splittable(e EdgeID) bool {
	if m.EdgeIsBoundary(e) {
		return false
	}
	h0 := m.Edges[e].Halfedge
	h3 := m.Twin(h0)
	if m.Degree(m.FaceOf(h0)) != 3 || m.Degree(m.FaceOf(h3)) != 3 {
		return false
	}
	h1 := m.Next(h0)
	h2 := m.Next(h1)
	h4 := m.Next(h3)
	h5 := m.Next(h4)
	inner := [6]HalfedgeID{h0, h1, h2, h3, h4, h5}
	for _, h := range [4]HalfedgeID{h1, h2, h4, h5} {
		for _, g := range inner {
			if m.Twin(h) == g {
				return false
			}
		}
	}
	return true
}

// flippable reports whether e can be flipped without doubling an edge: the
// apices of its two triangles must be distinct and not yet adjacent.
func (m *Mesh) flippable(e EdgeID) bool {
	if !m.splittable(e) {
		return false
	}
	h0 := m.Edges[e].Halfedge
	a := m.Origin(m.Prev(h0))
	b := m.Origin(m.Prev(m.Twin(h0)))
	if a == b {
		return false
	}
	start := m.Vertices[a].Halfedge
	for h := start; ; {
		if m.Dest(h) == b {
			return false
		}
		h = m.Next(m.Twin(h))
		if h == start {
			return true
		}
	}
}

// FlipEdge replaces e, the shared diagonal of two triangles, with the
// diagonal joining their opposite apices. It returns e, which keeps its
// handle. Edges on a boundary, next to a non-triangle, or whose apices are
// already joined are left untouched.
func (m *Mesh) FlipEdge(e EdgeID) EdgeID {
	if !m.flippable(e) {
		return e
	}

	// Before: h0 = v0 -> v1, f0 = (v0, v1, v2), f1 = (v1, v0, v3).
	h0 := m.Edges[e].Halfedge
	h1 := m.Next(h0)
	h2 := m.Next(h1)
	h3 := m.Twin(h0)
	h4 := m.Next(h3)
	h5 := m.Next(h4)
	h6 := m.Twin(h1)
	h7 := m.Twin(h2)
	h8 := m.Twin(h4)
	h9 := m.Twin(h5)

	v0 := m.Origin(h0)
	v1 := m.Origin(h3)
	v2 := m.Origin(h6)
	v3 := m.Origin(h5)

	e1 := m.EdgeOf(h1)
	e2 := m.EdgeOf(h2)
	e3 := m.EdgeOf(h4)
	e4 := m.EdgeOf(h5)

	f0 := m.FaceOf(h0)
	f1 := m.FaceOf(h3)

	// After: f0 = (v3, v2, v0), f1 = (v2, v3, v1).
	m.SetNeighbors(h0, h1, h3, v3, e, f0)
	m.SetNeighbors(h1, h2, h7, v2, e2, f0)
	m.SetNeighbors(h2, h0, h8, v0, e3, f0)
	m.SetNeighbors(h3, h4, h0, v2, e, f1)
	m.SetNeighbors(h4, h5, h9, v3, e4, f1)
	m.SetNeighbors(h5, h3, h6, v1, e1, f1)

	m.Halfedges[h6].Twin = h5
	m.Halfedges[h7].Twin = h1
	m.Halfedges[h8].Twin = h2
	m.Halfedges[h9].Twin = h4

	m.Vertices[v0].Halfedge = h2
	m.Vertices[v1].Halfedge = h5
	m.Vertices[v2].Halfedge = h3
	m.Vertices[v3].Halfedge = h0

	m.Edges[e].Halfedge = h0
	m.Edges[e1].Halfedge = h5
	m.Edges[e2].Halfedge = h1
	m.Edges[e3].Halfedge = h2
	m.Edges[e4].Halfedge = h4

	m.Faces[f0].Halfedge = h0
	m.Faces[f1].Halfedge = h3

	return e
}

// SplitEdge inserts a vertex at the midpoint of e and connects it to the
// apex of both incident triangles, turning two triangles into four. The new
// vertex is returned; its half-edge runs along e, which keeps its handle for
// the half nearest the destination. Boundary edges, edges next to a
// non-triangle, and edges whose triangles share a second edge are left
// untouched and NoVertex is returned.
//
// The new vertex and the two edges to the apices are marked IsNew. Both
// halves of e are marked not new.
func (m *Mesh) SplitEdge(e EdgeID) VertexID {
	if !m.splittable(e) {
		return NoVertex
	}

	// Before: h0 = v0 -> v1, f0 = (v0, v1, v2), f1 = (v1, v0, v3).
	h0 := m.Edges[e].Halfedge
	h1 := m.Next(h0)
	h2 := m.Next(h1)
	h3 := m.Twin(h0)
	h4 := m.Next(h3)
	h5 := m.Next(h4)
	h6 := m.Twin(h1)
	h7 := m.Twin(h2)
	h8 := m.Twin(h4)
	h9 := m.Twin(h5)

	v0 := m.Origin(h0)
	v1 := m.Origin(h3)
	v2 := m.Origin(h2)
	v3 := m.Origin(h5)

	e1 := m.EdgeOf(h1)
	e2 := m.EdgeOf(h2)
	e3 := m.EdgeOf(h4)
	e4 := m.EdgeOf(h5)

	f0 := m.FaceOf(h0)
	f1 := m.FaceOf(h3)

	h10 := m.NewHalfedge()
	h11 := m.NewHalfedge()
	h12 := m.NewHalfedge()
	h13 := m.NewHalfedge()
	h14 := m.NewHalfedge()
	h15 := m.NewHalfedge()

	v4 := m.NewVertex()
	e5 := m.NewEdge() // v4 - v2
	e6 := m.NewEdge() // v0 - v4
	e7 := m.NewEdge() // v4 - v3
	f2 := m.NewFace(false)
	f3 := m.NewFace(false)

	// f0 = (v0, v4, v2), f1 = (v4, v0, v3), f2 = (v4, v3, v1), f3 = (v4, v1, v2).
	m.SetNeighbors(h0, h1, h3, v0, e6, f0)
	m.SetNeighbors(h1, h2, h15, v4, e5, f0)
	m.SetNeighbors(h2, h0, h7, v2, e2, f0)
	m.SetNeighbors(h3, h4, h0, v4, e6, f1)
	m.SetNeighbors(h4, h5, h8, v0, e3, f1)
	m.SetNeighbors(h5, h3, h10, v3, e7, f1)
	m.SetNeighbors(h10, h11, h5, v4, e7, f2)
	m.SetNeighbors(h11, h12, h9, v3, e4, f2)
	m.SetNeighbors(h12, h10, h13, v1, e, f2)
	m.SetNeighbors(h13, h14, h12, v4, e, f3)
	m.SetNeighbors(h14, h15, h6, v1, e1, f3)
	m.SetNeighbors(h15, h13, h1, v2, e5, f3)

	m.Halfedges[h6].Twin = h14
	m.Halfedges[h7].Twin = h2
	m.Halfedges[h8].Twin = h4
	m.Halfedges[h9].Twin = h11

	p := vecmath.Midpoint3(m.Vertices[v0].Position, m.Vertices[v1].Position)
	m.Vertices[v4] = Vertex{Position: p, Halfedge: h13, NewPosition: p, IsNew: true}
	m.Vertices[v0].Halfedge = h4
	m.Vertices[v1].Halfedge = h14
	m.Vertices[v2].Halfedge = h2
	m.Vertices[v3].Halfedge = h11

	m.Edges[e].Halfedge = h13
	m.Edges[e].IsNew = false
	m.Edges[e1].Halfedge = h14
	m.Edges[e2].Halfedge = h2
	m.Edges[e3].Halfedge = h4
	m.Edges[e4].Halfedge = h11
	m.Edges[e5] = Edge{Halfedge: h1, IsNew: true}
	m.Edges[e6] = Edge{Halfedge: h0, NewPosition: m.Edges[e].NewPosition}
	m.Edges[e7] = Edge{Halfedge: h5, IsNew: true}

	m.Faces[f0].Halfedge = h0
	m.Faces[f1].Halfedge = h3
	m.Faces[f2].Halfedge = h10
	m.Faces[f3].Halfedge = h13

	return v4
}
