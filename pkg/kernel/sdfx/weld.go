package sdfx

import (
	"math"

	"github.com/chazu/meshkit/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// weldFraction is the weld tolerance as a fraction of one marching cubes cell.
const weldFraction = 1e-4

// welder merges coincident corners of a triangle soup into shared vertices.
type welder struct {
	tol     float64
	index   map[[3]int64]uint32
	verts   []float32
	indices []uint32
}

func newWelder(tol float64) *welder {
	if tol <= 0 {
		tol = 1e-9
	}
	return &welder{tol: tol, index: make(map[[3]int64]uint32)}
}

// key snaps p onto a grid of spacing tol. Corners that round into different
// cells are not merged; marching cubes emits shared corners bit-identical.
func (w *welder) key(p v3.Vec) [3]int64 {
	return [3]int64{
		int64(math.Round(p.X / w.tol)),
		int64(math.Round(p.Y / w.tol)),
		int64(math.Round(p.Z / w.tol)),
	}
}

func (w *welder) vertex(p v3.Vec) uint32 {
	k := w.key(p)
	if i, ok := w.index[k]; ok {
		return i
	}
	i := uint32(len(w.verts) / 3)
	w.verts = append(w.verts, float32(p.X), float32(p.Y), float32(p.Z))
	w.index[k] = i
	return i
}

// add records a triangle, dropping it if welding collapsed two corners.
func (w *welder) add(a, b, c v3.Vec) {
	ia, ib, ic := w.vertex(a), w.vertex(b), w.vertex(c)
	if ia == ib || ib == ic || ic == ia {
		return
	}
	w.indices = append(w.indices, ia, ib, ic)
}

// mesh returns the welded mesh. Vertices only referenced by dropped
// triangles are compacted away.
func (w *welder) mesh() *kernel.Mesh {
	used := make([]bool, len(w.verts)/3)
	for _, i := range w.indices {
		used[i] = true
	}
	remap := make([]uint32, len(used))
	m := &kernel.Mesh{}
	for i, u := range used {
		if !u {
			continue
		}
		remap[i] = uint32(len(m.Vertices) / 3)
		m.Vertices = append(m.Vertices, w.verts[3*i], w.verts[3*i+1], w.verts[3*i+2])
	}
	m.Indices = make([]uint32, len(w.indices))
	for j, i := range w.indices {
		m.Indices[j] = remap[i]
	}
	return m
}
