// Package resample refines triangle meshes with Loop subdivision built from
// the half-edge split and flip operators.
package resample

import (
	"errors"
	"fmt"

	"github.com/chazu/meshkit/pkg/halfedge"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
)

var (
	// ErrBoundary is returned for meshes with holes.
	ErrBoundary = errors.New("resample: mesh has boundary faces")
	// ErrNotTriangles is returned when an interior face is not a triangle.
	ErrNotTriangles = errors.New("resample: mesh has non-triangle faces")
)

// Beta returns the Loop weight applied to each neighbour of a vertex with n
// neighbours.
func Beta(n int) float64 {
	if n == 3 {
		return 3.0 / 16.0
	}
	return 3.0 / (8.0 * float64(n))
}

// CheckSubdividable reports why m cannot be subdivided, or nil.
func CheckSubdividable(m *halfedge.Mesh) error {
	for i, f := range m.Faces {
		if f.Boundary {
			return fmt.Errorf("%w: face %d", ErrBoundary, i)
		}
		if d := m.Degree(halfedge.FaceID(i)); d != 3 {
			return fmt.Errorf("%w: face %d has %d sides", ErrNotTriangles, i, d)
		}
	}
	return nil
}

// Upsample applies one pass of Loop subdivision to m in place. Every
// triangle becomes four. Old vertices move to a weighted average of
// themselves and their neighbours; new vertices are placed by the edge rule.
// m is left unchanged when an error is returned.
func Upsample(m *halfedge.Mesh) error {
	if err := CheckSubdividable(m); err != nil {
		return err
	}

	// Stage positions for old vertices.
	for i := range m.Vertices {
		v := halfedge.VertexID(i)
		neighbors := m.Neighbors(v)
		sum := lo.Reduce(neighbors, func(acc v3.Vec, n halfedge.VertexID, _ int) v3.Vec {
			return acc.Add(m.Position(n))
		}, v3.Vec{})
		n := len(neighbors)
		beta := Beta(n)
		m.Vertices[v].NewPosition = m.Position(v).MulScalar(1 - float64(n)*beta).Add(sum.MulScalar(beta))
		m.Vertices[v].IsNew = false
	}

	// Stage positions for the vertices each edge will gain.
	for i := range m.Edges {
		e := halfedge.EdgeID(i)
		m.Edges[e].NewPosition = edgePoint(m, e)
		m.Edges[e].IsNew = false
	}

	// Split the original edges only; splitting appends new edges.
	original := m.NumEdges()
	for i := 0; i < original; i++ {
		e := halfedge.EdgeID(i)
		v := m.SplitEdge(e)
		if v == halfedge.NoVertex {
			return fmt.Errorf("resample: split of edge %d refused", e)
		}
		m.Vertices[v].NewPosition = m.Edges[e].NewPosition
	}

	// Flip new edges that connect an old and a new vertex.
	cross := lo.Filter(lo.Range(m.NumEdges()), func(i int, _ int) bool {
		e := halfedge.EdgeID(i)
		if !m.Edges[e].IsNew {
			return false
		}
		a, b := m.EdgeVertices(e)
		return m.Vertices[a].IsNew != m.Vertices[b].IsNew
	})
	for _, i := range cross {
		m.FlipEdge(halfedge.EdgeID(i))
	}

	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].NewPosition
	}
	return nil
}

// edgePoint returns 3/8 (A + B) + 1/8 (C + D) for edge A-B with opposite
// apices C and D.
func edgePoint(m *halfedge.Mesh, e halfedge.EdgeID) v3.Vec {
	h := m.Edges[e].Halfedge
	t := m.Twin(h)
	a := m.Position(m.Origin(h))
	b := m.Position(m.Origin(t))
	c := m.Position(m.Origin(m.Next(m.Next(h))))
	d := m.Position(m.Origin(m.Next(m.Next(t))))
	return a.Add(b).MulScalar(3.0 / 8.0).Add(c.Add(d).MulScalar(1.0 / 8.0))
}

// UpsampleN applies levels passes of Upsample.
func UpsampleN(m *halfedge.Mesh, levels int) error {
	for i := 0; i < levels; i++ {
		if err := Upsample(m); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}
