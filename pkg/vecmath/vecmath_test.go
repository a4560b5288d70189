package vecmath

import (
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestLerp2(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want v2.Vec
	}{
		{"start", 0, v2.Vec{X: 1, Y: 2}},
		{"end", 1, v2.Vec{X: 3, Y: 6}},
		{"middle", 0.5, v2.Vec{X: 2, Y: 4}},
		{"quarter", 0.25, v2.Vec{X: 1.5, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp2(v2.Vec{X: 1, Y: 2}, v2.Vec{X: 3, Y: 6}, tt.t)
			if got != tt.want {
				t.Errorf("Lerp2(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestLerp3Endpoints(t *testing.T) {
	a := v3.Vec{X: -1, Y: 0, Z: 4}
	b := v3.Vec{X: 3, Y: 2, Z: 0}
	if got := Lerp3(a, b, 0); got != a {
		t.Errorf("Lerp3(t=0) = %v, want %v", got, a)
	}
	if got := Lerp3(a, b, 1); got != b {
		t.Errorf("Lerp3(t=1) = %v, want %v", got, b)
	}
	if got, want := Midpoint3(a, b), (v3.Vec{X: 1, Y: 1, Z: 2}); got != want {
		t.Errorf("Midpoint3 = %v, want %v", got, want)
	}
}

func TestUnit(t *testing.T) {
	u := Unit(v3.Vec{X: 3, Y: 0, Z: 4})
	if math.Abs(u.Length()-1) > 1e-12 {
		t.Errorf("|Unit| = %v, want 1", u.Length())
	}
	if !ApproxEqual3(u, v3.Vec{X: 0.6, Y: 0, Z: 0.8}, 1e-12) {
		t.Errorf("Unit = %v, want (0.6, 0, 0.8)", u)
	}
	if z := Unit(v3.Vec{}); z != (v3.Vec{}) {
		t.Errorf("Unit(zero) = %v, want zero", z)
	}
}
