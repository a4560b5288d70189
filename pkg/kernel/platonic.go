package kernel

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Closed, outward-oriented (counter-clockwise seen from outside) platonic
// solids centred on the origin with all vertices at distance radius.

// Tetrahedron returns a regular tetrahedron.
func Tetrahedron(radius float64) *Mesh {
	s := radius / math.Sqrt(3)
	pos := []v3.Vec{
		{X: s, Y: s, Z: s},
		{X: s, Y: -s, Z: -s},
		{X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s},
	}
	tris := [][3]int{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2},
	}
	return FromPolyhedron(pos, tris)
}

// Octahedron returns a regular octahedron with vertices on the axes.
func Octahedron(radius float64) *Mesh {
	r := radius
	pos := []v3.Vec{
		{X: r}, {X: -r},
		{Y: r}, {Y: -r},
		{Z: r}, {Z: -r},
	}
	tris := [][3]int{
		{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {1, 3, 4},
		{0, 5, 2}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
	}
	return FromPolyhedron(pos, tris)
}

// Icosahedron returns a regular icosahedron.
func Icosahedron(radius float64) *Mesh {
	t := (1 + math.Sqrt(5)) / 2
	raw := []v3.Vec{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	scale := radius / math.Sqrt(1+t*t)
	pos := make([]v3.Vec, len(raw))
	for i, p := range raw {
		pos[i] = p.MulScalar(scale)
	}
	tris := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return FromPolyhedron(pos, tris)
}
