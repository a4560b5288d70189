package halfedge

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/google/go-cmp/cmp"
)

func TestBuildClosed(t *testing.T) {
	tests := []struct {
		name              string
		mesh              func(*testing.T) *Mesh
		verts, edges, fcs int
	}{
		{"tetrahedron", tetra, 4, 6, 4},
		{"octahedron", octa, 6, 12, 8},
		{"icosahedron", icosa, 12, 30, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh(t)
			assertValid(t, m)
			got := m.Stats()
			want := Stats{Vertices: tt.verts, Edges: tt.edges, Faces: tt.fcs, Halfedges: 2 * tt.edges}
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("Stats() mismatch (-want +got):\n%s", d)
			}
			if m.HasBoundary() {
				t.Error("HasBoundary() = true for closed mesh")
			}
			if got := m.EulerCharacteristic(); got != 2 {
				t.Errorf("EulerCharacteristic() = %d, want 2", got)
			}
		})
	}
}

func TestBuildOpen(t *testing.T) {
	m := quad(t)
	assertValid(t, m)

	want := Stats{Vertices: 4, Edges: 5, Faces: 2, Boundary: 1, Halfedges: 10}
	if d := cmp.Diff(want, m.Stats()); d != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", d)
	}
	if got := m.EulerCharacteristic(); got != 1 {
		t.Errorf("EulerCharacteristic() = %d, want 1", got)
	}

	var boundary FaceID = NoFace
	for i, f := range m.Faces {
		if f.Boundary {
			boundary = FaceID(i)
		}
	}
	if boundary == NoFace {
		t.Fatal("no boundary face")
	}
	if got := m.Degree(boundary); got != 4 {
		t.Errorf("boundary Degree() = %d, want 4", got)
	}
	// The hole runs clockwise around the square.
	if d := cmp.Diff([]VertexID{0, 3, 2, 1}, rotateTo(m.FaceVertices(boundary), 0)); d != "" {
		t.Errorf("boundary loop mismatch (-want +got):\n%s", d)
	}
}

func rotateTo(vs []VertexID, first VertexID) []VertexID {
	for i, v := range vs {
		if v == first {
			return append(append([]VertexID(nil), vs[i:]...), vs[:i]...)
		}
	}
	return vs
}

func TestBuildTwoHoles(t *testing.T) {
	// A ring of four quads around a square hole.
	pos := []v3.Vec{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3},
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
	}
	ring := [][]int{
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	m, err := Build(pos, ring)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	assertValid(t, m)
	if got := m.Stats().Boundary; got != 2 {
		t.Errorf("boundary faces = %d, want 2", got)
	}
	if got := m.EulerCharacteristic(); got != 0 {
		t.Errorf("EulerCharacteristic() = %d, want 0", got)
	}
}

func TestBuildErrors(t *testing.T) {
	pos := []v3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1}, {X: -1}, {Y: -1}}
	tests := []struct {
		name     string
		polygons [][]int
		want     error
	}{
		{"negative index", [][]int{{0, 1, -1}}, ErrBadIndex},
		{"index too large", [][]int{{0, 1, 9}}, ErrBadIndex},
		{"two vertices", [][]int{{0, 1}}, ErrDegenerateFace},
		{"repeated vertex", [][]int{{0, 1, 1}}, ErrDegenerateFace},
		{"flipped neighbour", [][]int{{0, 1, 2}, {0, 1, 3}}, ErrNonManifold},
		{"three faces on an edge", [][]int{{0, 1, 2}, {1, 0, 3}, {1, 0, 4}}, ErrNonManifold},
		{"bowtie", [][]int{{0, 1, 2}, {0, 5, 6}, {3, 4, 1}}, ErrNonManifold},
		{"isolated vertex", [][]int{{0, 1, 2}}, ErrIsolatedVertex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(pos, tt.polygons)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildPinchedVertex(t *testing.T) {
	// Two closed tetrahedra sharing vertex 0.
	pos := []v3.Vec{
		{}, {X: 1}, {Y: 1}, {Z: 1},
		{X: -1}, {Y: -1}, {Z: -1},
	}
	polys := [][]int{
		{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3},
		{0, 4, 5}, {0, 5, 6}, {0, 6, 4}, {4, 6, 5},
	}
	_, err := Build(pos, polys)
	if !errors.Is(err, ErrNonManifold) {
		t.Errorf("Build() error = %v, want %v", err, ErrNonManifold)
	}
}

func TestBuildVertexRepresentatives(t *testing.T) {
	m := icosa(t)
	for i, v := range m.Vertices {
		if got := m.Origin(v.Halfedge); got != VertexID(i) {
			t.Errorf("vertex %d: representative starts at %d", i, got)
		}
		if got := m.VertexDegree(VertexID(i)); got != 5 {
			t.Errorf("VertexDegree(%d) = %d, want 5", i, got)
		}
	}
}
