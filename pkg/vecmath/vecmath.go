// Package vecmath holds the handful of interpolation helpers shared by the
// curve evaluator and the mesh operators. Vectors are the sdfx v2/v3 value
// types so that geometry coming out of the solid kernel needs no conversion.
package vecmath

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// unitEpsilon is the length below which a vector is treated as zero.
const unitEpsilon = 1e-12

// Lerp2 linearly interpolates between two 2D points: (1-t)*p0 + t*p1.
func Lerp2(p0, p1 v2.Vec, t float64) v2.Vec {
	return p0.MulScalar(1 - t).Add(p1.MulScalar(t))
}

// Lerp3 linearly interpolates between two 3D points: (1-t)*p0 + t*p1.
func Lerp3(p0, p1 v3.Vec, t float64) v3.Vec {
	return p0.MulScalar(1 - t).Add(p1.MulScalar(t))
}

// Midpoint3 returns the point halfway between a and b.
func Midpoint3(a, b v3.Vec) v3.Vec {
	return Lerp3(a, b, 0.5)
}

// Unit returns v scaled to length 1. The zero vector is returned unchanged.
func Unit(v v3.Vec) v3.Vec {
	l := v.Length()
	if l < unitEpsilon {
		return v3.Vec{}
	}
	return v.MulScalar(1 / l)
}

// ApproxEqual3 reports whether a and b differ by at most eps in every component.
func ApproxEqual3(a, b v3.Vec, eps float64) bool {
	d := a.Sub(b)
	return abs(d.X) <= eps && abs(d.Y) <= eps && abs(d.Z) <= eps
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
