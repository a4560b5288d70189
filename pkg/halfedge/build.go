package halfedge

import (
	"errors"
	"fmt"

	"github.com/chazu/meshkit/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Build errors.
var (
	ErrBadIndex       = errors.New("halfedge: vertex index out of range")
	ErrDegenerateFace = errors.New("halfedge: degenerate face")
	ErrNonManifold    = errors.New("halfedge: non-manifold input")
	ErrIsolatedVertex = errors.New("halfedge: isolated vertex")
)

type directed struct {
	from, to int
}

// Build links indexed polygons into a half-edge mesh. Polygons are lists of
// vertex indices in counter-clockwise order. Every loop of unmatched
// half-edges is closed with a boundary face.
func Build(positions []v3.Vec, polygons [][]int) (*Mesh, error) {
	m := &Mesh{}
	for _, p := range positions {
		v := m.NewVertex()
		m.Vertices[v].Position = p
	}

	byDirection := make(map[directed]HalfedgeID)
	for fi, poly := range polygons {
		if len(poly) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", ErrDegenerateFace, fi, len(poly))
		}
		seen := make(map[int]bool, len(poly))
		for _, vi := range poly {
			if vi < 0 || vi >= len(positions) {
				return nil, fmt.Errorf("%w: face %d references vertex %d", ErrBadIndex, fi, vi)
			}
			if seen[vi] {
				return nil, fmt.Errorf("%w: face %d repeats vertex %d", ErrDegenerateFace, fi, vi)
			}
			seen[vi] = true
		}

		f := m.NewFace(false)
		first := HalfedgeID(len(m.Halfedges))
		for i, vi := range poly {
			h := m.NewHalfedge()
			next := first + HalfedgeID((i+1)%len(poly))
			m.Halfedges[h].Next = next
			m.Halfedges[h].Vertex = VertexID(vi)
			m.Halfedges[h].Face = f

			d := directed{vi, poly[(i+1)%len(poly)]}
			if prev, dup := byDirection[d]; dup {
				return nil, fmt.Errorf("%w: edge %d->%d used by faces %d and %d",
					ErrNonManifold, d.from, d.to, m.Halfedges[prev].Face, f)
			}
			byDirection[d] = h
			if m.Vertices[vi].Halfedge == NoHalfedge {
				m.Vertices[vi].Halfedge = h
			}
		}
		m.Faces[f].Halfedge = first
	}

	// Pair twins; unmatched half-edges get a boundary twin.
	interior := len(m.Halfedges)
	boundaryFrom := make(map[VertexID]HalfedgeID)
	for i := 0; i < interior; i++ {
		h := HalfedgeID(i)
		if m.Halfedges[h].Twin != NoHalfedge {
			continue
		}
		from := int(m.Halfedges[h].Vertex)
		to := int(m.Halfedges[m.Halfedges[h].Next].Vertex)
		e := m.NewEdge()
		m.Edges[e].Halfedge = h
		m.Halfedges[h].Edge = e

		if t, ok := byDirection[directed{to, from}]; ok {
			m.Halfedges[h].Twin = t
			m.Halfedges[t].Twin = h
			m.Halfedges[t].Edge = e
			continue
		}

		t := m.NewHalfedge()
		m.SetNeighbors(t, NoHalfedge, h, VertexID(to), e, NoFace)
		m.Halfedges[h].Twin = t
		if _, dup := boundaryFrom[VertexID(to)]; dup {
			return nil, fmt.Errorf("%w: vertex %d joins more than one boundary loop", ErrNonManifold, to)
		}
		boundaryFrom[VertexID(to)] = t
	}

	// Boundary half-edge b->a continues with the boundary half-edge leaving a.
	for i := interior; i < len(m.Halfedges); i++ {
		t := HalfedgeID(i)
		a := m.Halfedges[m.Halfedges[t].Twin].Vertex
		next, ok := boundaryFrom[a]
		if !ok {
			return nil, fmt.Errorf("%w: boundary does not close at vertex %d", ErrNonManifold, a)
		}
		m.Halfedges[t].Next = next
	}
	for i := interior; i < len(m.Halfedges); i++ {
		t := HalfedgeID(i)
		if m.Halfedges[t].Face != NoFace {
			continue
		}
		f := m.NewFace(true)
		m.Faces[f].Halfedge = t
		for h := t; m.Halfedges[h].Face == NoFace; h = m.Halfedges[h].Next {
			m.Halfedges[h].Face = f
		}
	}

	// Each vertex must be a single fan.
	outgoing := make([]int, len(m.Vertices))
	for _, h := range m.Halfedges {
		outgoing[h.Vertex]++
	}
	for i := range m.Vertices {
		v := VertexID(i)
		if m.Vertices[v].Halfedge == NoHalfedge {
			return nil, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v)
		}
		if n := m.VertexDegree(v); n != outgoing[v] {
			return nil, fmt.Errorf("%w: vertex %d has %d edges but its fan reaches %d",
				ErrNonManifold, v, outgoing[v], n)
		}
	}
	return m, nil
}

// FromMesh links the triangles of a kernel mesh.
func FromMesh(km *kernel.Mesh) (*Mesh, error) {
	positions := make([]v3.Vec, km.VertexCount())
	for i := range positions {
		positions[i] = km.Position(i)
	}
	polygons := make([][]int, km.TriangleCount())
	for i := range polygons {
		t := km.Triangle(i)
		polygons[i] = t[:]
	}
	m, err := Build(positions, polygons)
	if err != nil {
		return nil, fmt.Errorf("building %q: %w", km.PartName, err)
	}
	return m, nil
}
