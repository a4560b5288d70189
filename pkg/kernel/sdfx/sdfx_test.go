package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/meshkit/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func mustMesh(t *testing.T, k *SdfxKernel, s kernel.Solid) *kernel.Mesh {
	t.Helper()
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	return mesh
}

func TestNewDefaults(t *testing.T) {
	tests := []struct {
		cells int
		want  int
	}{
		{0, DefaultMeshCells},
		{-3, DefaultMeshCells},
		{16, 16},
	}
	for _, tt := range tests {
		if got := New(tt.cells).Cells(); got != tt.want {
			t.Errorf("New(%d).Cells() = %d, want %d", tt.cells, got, tt.want)
		}
	}
}

func TestBox(t *testing.T) {
	k := New(32)
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	mesh := mustMesh(t, k, box)
	triCount := mesh.TriangleCount()
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
	// Welding shares corners between neighbouring triangles.
	if mesh.VertexCount() >= triCount*3 {
		t.Fatalf("vertex count %d not welded (triangles %d)", mesh.VertexCount(), triCount)
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= mesh.VertexCount() {
			t.Fatalf("index %d = %d out of range (%d vertices)", i, idx, mesh.VertexCount())
		}
	}
	t.Logf("box: %d vertices, %d triangles", mesh.VertexCount(), triCount)
}

func TestBadDimensions(t *testing.T) {
	k := New(16)
	if _, err := k.Box(-1, 1, 1); err == nil {
		t.Error("Box(-1, 1, 1) succeeded, want error")
	}
	if _, err := k.Sphere(-2); err == nil {
		t.Error("Sphere(-2) succeeded, want error")
	}
	if _, err := k.Cylinder(10, -1); err == nil {
		t.Error("Cylinder(10, -1) succeeded, want error")
	}
}

func TestSphereRadius(t *testing.T) {
	k := New(48)
	s, err := k.Sphere(10)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	mesh := mustMesh(t, k, s)
	// Every marching cubes vertex lies on the surface to within a cell.
	cell := 20.0 / 48
	for i := 0; i < mesh.VertexCount(); i++ {
		r := mesh.Position(i).Length()
		if math.Abs(r-10) > cell {
			t.Fatalf("vertex %d radius %f, want 10 +/- %f", i, r, cell)
		}
	}
}

func TestCylinder(t *testing.T) {
	k := New(32)
	cyl, err := k.Cylinder(50, 10)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	mesh := mustMesh(t, k, cyl)
	t.Logf("cylinder triangle count: %d", mesh.TriangleCount())
}

func TestDifference(t *testing.T) {
	k := New(32)

	box, err := k.Box(100, 100, 100)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	boxMesh := mustMesh(t, k, box)

	cyl, err := k.Cylinder(120, 20)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	diffMesh := mustMesh(t, k, k.Difference(box, cyl))
	// A box with a hole should have more triangles than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestUnion(t *testing.T) {
	k := New(32)
	a, _ := k.Box(10, 10, 10)
	b, _ := k.Box(10, 10, 10)
	u := k.Union(a, k.Translate(b, 20, 0, 0))

	min, max := u.BoundingBox()
	if math.Abs(min[0]+5) > 1e-9 || math.Abs(max[0]-25) > 1e-9 {
		t.Fatalf("union x range = [%f, %f], want [-5, 25]", min[0], max[0])
	}
	mustMesh(t, k, u)
}

func TestTranslate(t *testing.T) {
	k := New(16)
	box, _ := k.Box(10, 10, 10)
	moved := k.Translate(box, 100, 200, 300)

	min, max := moved.BoundingBox()
	const tol = 1e-9
	want := [3]float64{100, 200, 300}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-(want[i]-5)) > tol || math.Abs(max[i]-(want[i]+5)) > tol {
			t.Errorf("axis %d: [%f, %f], want [%f, %f]", i, min[i], max[i], want[i]-5, want[i]+5)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	k := New(16)
	box, _ := k.Box(10, 20, 30)
	min, max := box.BoundingBox()
	wantMin := [3]float64{-5, -10, -15}
	wantMax := [3]float64{5, 10, 15}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 0.01 {
			t.Errorf("min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 0.01 {
			t.Errorf("max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestWelder(t *testing.T) {
	w := newWelder(1e-3)
	a := v3.Vec{X: 0, Y: 0, Z: 0}
	b := v3.Vec{X: 1, Y: 0, Z: 0}
	c := v3.Vec{X: 0, Y: 1, Z: 0}
	d := v3.Vec{X: 1, Y: 1, Z: 0}

	w.add(a, b, c)
	w.add(c, b.Add(v3.Vec{X: 1e-5}), d)
	// Collapses to a segment after welding.
	w.add(a, a.Add(v3.Vec{Y: 1e-5}), d)

	m := w.mesh()
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount() = %d, want 4", got)
	}
	if got := m.TriangleCount(); got != 2 {
		t.Errorf("TriangleCount() = %d, want 2", got)
	}
	if got := m.Triangle(1); got != [3]int{2, 1, 3} {
		t.Errorf("Triangle(1) = %v, want [2 1 3]", got)
	}
}

func TestWelderCompactsUnusedVertices(t *testing.T) {
	w := newWelder(1e-3)
	p := v3.Vec{X: 5, Y: 5, Z: 5}
	w.add(p, p, v3.Vec{X: 6})
	w.add(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1})

	m := w.mesh()
	if got := m.VertexCount(); got != 3 {
		t.Fatalf("VertexCount() = %d, want 3", got)
	}
	if got := m.Triangle(0); got != [3]int{0, 1, 2} {
		t.Errorf("Triangle(0) = %v, want [0 1 2]", got)
	}
}

func TestWelderKeyCells(t *testing.T) {
	w := newWelder(1)
	tests := []struct {
		a, b v3.Vec
		same bool
	}{
		{v3.Vec{X: 3, Y: -2, Z: 7}, v3.Vec{X: 3, Y: -2, Z: 7}, true},
		{v3.Vec{X: 0.1}, v3.Vec{X: 0.4}, true},
		// Either side of a rounding boundary stays apart.
		{v3.Vec{X: 0.49}, v3.Vec{X: 0.51}, false},
	}
	for _, tt := range tests {
		if got := w.key(tt.a) == w.key(tt.b); got != tt.same {
			t.Errorf("key(%v) == key(%v) is %v, want %v", tt.a, tt.b, got, tt.same)
		}
	}
}
