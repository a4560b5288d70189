// Package bezier evaluates Bézier curves and tensor-product Bézier patches
// with de Casteljau's algorithm. Evaluation is an explicit iterative
// reduction: the working sequence is repeatedly replaced by its one-shorter
// interpolation until a single point remains.
package bezier

import (
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/meshkit/pkg/vecmath"
)

// Curve is a 2D Bézier curve evaluated at the member parameter T.
type Curve struct {
	ControlPoints []v2.Vec
	T             float64 // in [0, 1]
}

// NewCurve returns a curve over a copy of points, evaluated at t.
func NewCurve(points []v2.Vec, t float64) *Curve {
	cp := make([]v2.Vec, len(points))
	copy(cp, points)
	return &Curve{ControlPoints: cp, T: t}
}

// EvaluateStep performs one de Casteljau step at c.T. For N input points it
// returns the N-1 interpolated points; one or zero inputs give an empty slice.
func (c *Curve) EvaluateStep(points []v2.Vec) []v2.Vec {
	if len(points) < 2 {
		return []v2.Vec{}
	}
	out := make([]v2.Vec, len(points)-1)
	for i := range out {
		out[i] = vecmath.Lerp2(points[i], points[i+1], c.T)
	}
	return out
}

// Levels returns every reduction level, starting with the control points and
// ending with the single evaluated point.
func (c *Curve) Levels() [][]v2.Vec {
	if len(c.ControlPoints) == 0 {
		return nil
	}
	levels := [][]v2.Vec{c.ControlPoints}
	for cur := c.ControlPoints; len(cur) > 1; {
		cur = c.EvaluateStep(cur)
		levels = append(levels, cur)
	}
	return levels
}

// Evaluate returns the point on the curve at c.T.
func (c *Curve) Evaluate() v2.Vec {
	cur := c.ControlPoints
	for len(cur) > 1 {
		cur = c.EvaluateStep(cur)
	}
	if len(cur) == 0 {
		return v2.Vec{}
	}
	return cur[0]
}
