package bezier

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshkit/pkg/kernel"
	"github.com/chazu/meshkit/pkg/vecmath"
)

// Patch is a tensor-product Bézier patch. ControlPoints is a rectangular grid;
// each row is a curve in u and the rows are blended in v.
type Patch struct {
	ControlPoints [][]v3.Vec
}

// EvaluateStep performs one de Casteljau step at t.
func (p *Patch) EvaluateStep(points []v3.Vec, t float64) []v3.Vec {
	if len(points) < 2 {
		return []v3.Vec{}
	}
	out := make([]v3.Vec, len(points)-1)
	for i := range out {
		out[i] = vecmath.Lerp3(points[i], points[i+1], t)
	}
	return out
}

// Evaluate1D fully evaluates the curve given by points at t. A single point is
// returned as is.
func (p *Patch) Evaluate1D(points []v3.Vec, t float64) v3.Vec {
	cur := points
	for len(cur) > 1 {
		cur = p.EvaluateStep(cur, t)
	}
	return cur[0]
}

// Evaluate returns the patch point at (u, v): every row is reduced at u, then
// the resulting curve is reduced at v.
func (p *Patch) Evaluate(u, v float64) v3.Vec {
	curve := make([]v3.Vec, len(p.ControlPoints))
	for i, row := range p.ControlPoints {
		curve[i] = p.Evaluate1D(row, u)
	}
	return p.Evaluate1D(curve, v)
}

// MaxTessellateSteps bounds the grid resolution accepted by Tessellate.
const MaxTessellateSteps = 1024

// Tessellate samples the patch on a (steps+1) x (steps+1) grid and returns an
// open triangle mesh with two triangles per grid cell. steps is clamped to
// [1, MaxTessellateSteps]. Normals are left empty; they are filled in once the
// mesh has topology.
func (p *Patch) Tessellate(steps int) *kernel.Mesh {
	steps = max(1, min(steps, MaxTessellateSteps))
	n := steps + 1
	m := &kernel.Mesh{
		Vertices: make([]float32, 0, n*n*3),
		Indices:  make([]uint32, 0, steps*steps*6),
	}
	for j := 0; j < n; j++ {
		v := float64(j) / float64(steps)
		for i := 0; i < n; i++ {
			u := float64(i) / float64(steps)
			pt := p.Evaluate(u, v)
			m.Vertices = append(m.Vertices, float32(pt.X), float32(pt.Y), float32(pt.Z))
		}
	}
	for j := 0; j < steps; j++ {
		for i := 0; i < steps; i++ {
			a := uint32(j*n + i)
			b := a + 1
			c := a + uint32(n) + 1
			d := a + uint32(n)
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}
