package halfedge

import (
	"math"
	"testing"

	"github.com/chazu/meshkit/pkg/vecmath"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const eps = 1e-9

func TestFaceNormalAndArea(t *testing.T) {
	m, err := Build(unitSquare(), [][]int{{0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := m.FaceNormal(0); !vecmath.ApproxEqual3(got, v3.Vec{Z: 2}, eps) {
		t.Errorf("FaceNormal(0) = %v, want (0, 0, 2)", got)
	}
	if got := m.FaceArea(0); math.Abs(got-1) > eps {
		t.Errorf("FaceArea(0) = %f, want 1", got)
	}
	if got := m.FaceCentroid(0); !vecmath.ApproxEqual3(got, v3.Vec{X: 0.5, Y: 0.5}, eps) {
		t.Errorf("FaceCentroid(0) = %v, want (0.5, 0.5, 0)", got)
	}
}

func TestVertexNormalTetrahedron(t *testing.T) {
	m := tetra(t)
	want := vecmath.Unit(v3.Vec{X: 1, Y: 1, Z: 1})
	if got := m.VertexNormal(0); !vecmath.ApproxEqual3(got, want, eps) {
		t.Errorf("VertexNormal(0) = %v, want %v", got, want)
	}
	for i := range m.Vertices {
		n := m.VertexNormal(VertexID(i))
		if math.Abs(n.Length()-1) > eps {
			t.Errorf("VertexNormal(%d) length = %f, want 1", i, n.Length())
		}
		// Symmetric solid: the normal points along the position.
		p := vecmath.Unit(m.Position(VertexID(i)))
		if !vecmath.ApproxEqual3(n, p, eps) {
			t.Errorf("VertexNormal(%d) = %v, want %v", i, n, p)
		}
	}
}

func TestVertexNormalSkipsBoundary(t *testing.T) {
	m := quad(t)
	for i := range m.Vertices {
		if got := m.VertexNormal(VertexID(i)); !vecmath.ApproxEqual3(got, v3.Vec{Z: 1}, eps) {
			t.Errorf("VertexNormal(%d) = %v, want (0, 0, 1)", i, got)
		}
	}
}

func TestVertexNormalAreaWeighted(t *testing.T) {
	// A large face in the XY plane and a small one in the XZ plane meeting
	// at vertex 0.
	pos := []v3.Vec{{}, {X: 1}, {Y: 10}, {Z: -1}}
	m, err := Build(pos, [][]int{{0, 1, 2}, {0, 3, 1}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	n := m.VertexNormal(0)
	want := vecmath.Unit(v3.Vec{Y: -1, Z: 10})
	if !vecmath.ApproxEqual3(n, want, eps) {
		t.Errorf("VertexNormal(0) = %v, want %v", n, want)
	}
}
