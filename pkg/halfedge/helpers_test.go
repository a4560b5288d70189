package halfedge

import (
	"sort"
	"testing"

	"github.com/chazu/meshkit/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// --- Fixtures ---

func unitSquare() []v3.Vec {
	return []v3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// quad is the unit square split along the 0-2 diagonal.
func quad(t *testing.T) *Mesh {
	t.Helper()
	m, err := Build(unitSquare(), [][]int{{0, 1, 2}, {0, 2, 3}})
	if err != nil {
		t.Fatalf("Build(quad) failed: %v", err)
	}
	return m
}

func fromKernel(t *testing.T, km *kernel.Mesh) *Mesh {
	t.Helper()
	m, err := FromMesh(km)
	if err != nil {
		t.Fatalf("FromMesh failed: %v", err)
	}
	return m
}

func tetra(t *testing.T) *Mesh { return fromKernel(t, kernel.Tetrahedron(1)) }
func octa(t *testing.T) *Mesh  { return fromKernel(t, kernel.Octahedron(1)) }
func icosa(t *testing.T) *Mesh { return fromKernel(t, kernel.Icosahedron(1)) }

// --- Assertions ---

func assertValid(t *testing.T, m *Mesh) {
	t.Helper()
	for _, e := range Validate(m) {
		if e.Severity == SeverityError {
			t.Errorf("validation: %v", e)
		}
	}
}

// findEdge returns the edge joining a and b.
func findEdge(t *testing.T, m *Mesh, a, b VertexID) EdgeID {
	t.Helper()
	for i := range m.Edges {
		x, y := m.EdgeVertices(EdgeID(i))
		if (x == a && y == b) || (x == b && y == a) {
			return EdgeID(i)
		}
	}
	t.Fatalf("no edge %d-%d", a, b)
	return NoEdge
}

// faceSet lists interior faces as vertex loops rotated to start at their
// smallest vertex, sorted. Orientation is preserved.
func faceSet(m *Mesh) [][]int {
	var out [][]int
	for i, f := range m.Faces {
		if f.Boundary {
			continue
		}
		vs := m.FaceVertices(FaceID(i))
		min := 0
		for j := range vs {
			if vs[j] < vs[min] {
				min = j
			}
		}
		loop := make([]int, len(vs))
		for j := range vs {
			loop[j] = int(vs[(min+j)%len(vs)])
		}
		out = append(out, loop)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}
