package engine

import (
	"errors"
	"fmt"

	"github.com/chazu/meshkit/pkg/bezier"
	"github.com/chazu/meshkit/pkg/halfedge"
	"github.com/chazu/meshkit/pkg/kernel"
	"github.com/chazu/meshkit/pkg/resample"
	"github.com/chazu/meshkit/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// DefaultPatchSteps is the grid resolution used by patch when :steps is
// omitted.
const DefaultPatchSteps = 8

// MaxPatchSteps is the largest :steps accepted by patch.
const MaxPatchSteps = 256

var errNoKernel = errors.New("no solid kernel configured")

// builtinContext carries engine settings into the builtins.
type builtinContext struct {
	kernel    kernel.Kernel
	maxLevels int
}

// solidKernel returns the kernel or an error naming the builtin.
func (c *builtinContext) solidKernel(name string) (kernel.Kernel, error) {
	if c.kernel == nil {
		return nil, fmt.Errorf("%s: %w", name, errNoKernel)
	}
	return c.kernel, nil
}

// toMesh extracts a mesh from a sexpMesh, meshing a sexpSolid on the way.
func (c *builtinContext) toMesh(s zygo.Sexp) (*sexpMesh, error) {
	switch v := s.(type) {
	case *sexpMesh:
		return v, nil
	case *sexpSolid:
		k, err := c.solidKernel("mesh")
		if err != nil {
			return nil, err
		}
		km, err := k.ToMesh(v.solid)
		if err != nil {
			return nil, fmt.Errorf("meshing %s: %w", v.desc, err)
		}
		m, err := halfedge.FromMesh(km)
		if err != nil {
			return nil, fmt.Errorf("linking %s: %w", v.desc, err)
		}
		return &sexpMesh{mesh: m, source: v.desc}, nil
	}
	return nil, fmt.Errorf("expected mesh or solid, got %T (%s)", s, s.SexpString(nil))
}

// edgeOperand parses (op mesh index) and returns a clone of the mesh with
// the edge index checked.
func (c *builtinContext) edgeOperand(op string, args []zygo.Sexp) (*halfedge.Mesh, halfedge.EdgeID, error) {
	if len(args) != 2 {
		return nil, halfedge.NoEdge, fmt.Errorf("%s requires a mesh and an edge index, got %d arguments", op, len(args))
	}
	m, err := c.toMesh(args[0])
	if err != nil {
		return nil, halfedge.NoEdge, fmt.Errorf("%s: %w", op, err)
	}
	i, err := toInt(args[1])
	if err != nil {
		return nil, halfedge.NoEdge, fmt.Errorf("%s: edge: %w", op, err)
	}
	if i < 0 || i >= m.mesh.NumEdges() {
		return nil, halfedge.NoEdge, fmt.Errorf("%s: edge %d out of range [0, %d)", op, i, m.mesh.NumEdges())
	}
	return m.mesh.Clone(), halfedge.EdgeID(i), nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all script builtins into a zygomys environment.
// Parts emitted during evaluation are added to s.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene, c *builtinContext) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var xyz [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %c: %w", "xyz"[i], err)
			}
			xyz[i] = f
		}
		v := &sexpVec3{}
		v.vec.X, v.vec.Y, v.vec.Z = xyz[0], xyz[1], xyz[2]
		return v, nil
	})

	// -----------------------------------------------------------------------
	// (sphere :radius 10)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		k, err := c.solidKernel("sphere")
		if err != nil {
			return zygo.SexpNull, err
		}
		pa := parseArgs(args)
		r, err := pa.floatArg("radius", 0, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		solid, err := k.Sphere(r)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		return &sexpSolid{solid: solid, desc: fmt.Sprintf("sphere r=%g", r)}, nil
	})

	// -----------------------------------------------------------------------
	// (box :size (vec3 10 20 30))
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		k, err := c.solidKernel("box")
		if err != nil {
			return zygo.SexpNull, err
		}
		pa := parseArgs(args)
		v, ok := pa.arg("size", 0)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("box requires :size")
		}
		size, err := toVec3(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: size: %w", err)
		}
		solid, err := k.Box(size.X, size.Y, size.Z)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		return &sexpSolid{solid: solid, desc: fmt.Sprintf("box %gx%gx%g", size.X, size.Y, size.Z)}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder :height 20 :radius 5)
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		k, err := c.solidKernel("cylinder")
		if err != nil {
			return zygo.SexpNull, err
		}
		pa := parseArgs(args)
		h, err := pa.floatArg("height", 0, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		r, err := pa.floatArg("radius", 1, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		solid, err := k.Cylinder(h, r)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		return &sexpSolid{solid: solid, desc: fmt.Sprintf("cylinder h=%g r=%g", h, r)}, nil
	})

	// -----------------------------------------------------------------------
	// (translate solid (vec3 0 0 10))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		k, err := c.solidKernel("translate")
		if err != nil {
			return zygo.SexpNull, err
		}
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("translate requires a solid as first argument")
		}
		src, err := asSolid(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		v, ok := pa.arg("by", 1)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("translate requires an offset")
		}
		off, err := toVec3(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: offset: %w", err)
		}
		return &sexpSolid{
			solid: k.Translate(src.solid, off.X, off.Y, off.Z),
			desc:  fmt.Sprintf("%s @ (%g %g %g)", src.desc, off.X, off.Y, off.Z),
		}, nil
	})

	// -----------------------------------------------------------------------
	// (solid-union a b ...)
	//
	// Registered as "solid_union"; the preprocessor converts the kebab-case
	// spelling in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("solid_union", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		k, err := c.solidKernel("solid-union")
		if err != nil {
			return zygo.SexpNull, err
		}
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("solid-union requires at least 2 solids, got %d", len(args))
		}
		acc, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid-union: operand 0: %w", err)
		}
		for i := 1; i < len(args); i++ {
			next, err := toSolid(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solid-union: operand %d: %w", i, err)
			}
			acc = k.Union(acc, next)
		}
		return &sexpSolid{solid: acc, desc: fmt.Sprintf("union of %d", len(args))}, nil
	})

	// -----------------------------------------------------------------------
	// (solid-difference a b)
	// -----------------------------------------------------------------------
	env.AddFunction("solid_difference", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		k, err := c.solidKernel("solid-difference")
		if err != nil {
			return zygo.SexpNull, err
		}
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("solid-difference requires exactly 2 solids, got %d", len(args))
		}
		a, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid-difference: a: %w", err)
		}
		b, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid-difference: b: %w", err)
		}
		return &sexpSolid{solid: k.Difference(a, b), desc: "difference"}, nil
	})

	// -----------------------------------------------------------------------
	// (tetrahedron :radius 1) (octahedron) (icosahedron)
	// -----------------------------------------------------------------------
	platonic := map[string]func(float64) *kernel.Mesh{
		"tetrahedron": kernel.Tetrahedron,
		"octahedron":  kernel.Octahedron,
		"icosahedron": kernel.Icosahedron,
	}
	for solidName, build := range platonic {
		env.AddFunction(solidName, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			r, err := pa.floatArg("radius", 0, 1)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", solidName, err)
			}
			if r <= 0 {
				return zygo.SexpNull, fmt.Errorf("%s: radius must be positive, got %g", solidName, r)
			}
			m, err := halfedge.FromMesh(build(r))
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", solidName, err)
			}
			return &sexpMesh{mesh: m, source: solidName}, nil
		})
	}

	// -----------------------------------------------------------------------
	// (patch (list (list (vec3 ..) ..) ..) :steps 8)
	// -----------------------------------------------------------------------
	env.AddFunction("patch", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		v, ok := pa.arg("points", 0)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("patch requires a grid of control points")
		}
		grid, err := toControlGrid(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("patch: %w", err)
		}
		steps, err := pa.intArg("steps", 1, DefaultPatchSteps)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("patch: %w", err)
		}
		if steps < 1 || steps > MaxPatchSteps {
			return zygo.SexpNull, fmt.Errorf("patch: steps %d outside [1, %d]", steps, MaxPatchSteps)
		}
		p := &bezier.Patch{ControlPoints: grid}
		m, err := halfedge.FromMesh(p.Tessellate(steps))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("patch: %w", err)
		}
		return &sexpMesh{mesh: m, source: fmt.Sprintf("patch %dx%d", len(grid), len(grid[0]))}, nil
	})

	// -----------------------------------------------------------------------
	// (mesh solid)
	// -----------------------------------------------------------------------
	env.AddFunction("mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("mesh requires exactly 1 argument, got %d", len(args))
		}
		m, err := c.toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh: %w", err)
		}
		return m, nil
	})

	// -----------------------------------------------------------------------
	// (upsample m :levels 2)
	// -----------------------------------------------------------------------
	env.AddFunction("upsample", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("upsample requires a mesh as first argument")
		}
		src, err := c.toMesh(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("upsample: %w", err)
		}
		levels, err := pa.intArg("levels", 1, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("upsample: %w", err)
		}
		if levels < 0 || levels > c.maxLevels {
			return zygo.SexpNull, fmt.Errorf("upsample: levels %d outside [0, %d]", levels, c.maxLevels)
		}
		m := src.mesh.Clone()
		if err := resample.UpsampleN(m, levels); err != nil {
			return zygo.SexpNull, fmt.Errorf("upsample: %w", err)
		}
		return &sexpMesh{mesh: m, source: fmt.Sprintf("%s/loop%d", src.source, levels)}, nil
	})

	// -----------------------------------------------------------------------
	// (flip-edge m 3)
	// -----------------------------------------------------------------------
	env.AddFunction("flip_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		m, e, err := c.edgeOperand("flip-edge", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		m.FlipEdge(e)
		return &sexpMesh{mesh: m, source: "flip-edge"}, nil
	})

	// -----------------------------------------------------------------------
	// (split-edge m 3)
	// -----------------------------------------------------------------------
	env.AddFunction("split_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		m, e, err := c.edgeOperand("split-edge", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		m.SplitEdge(e)
		return &sexpMesh{mesh: m, source: "split-edge"}, nil
	})

	// -----------------------------------------------------------------------
	// (mesh-stats m) => (vertices edges faces)
	// -----------------------------------------------------------------------
	env.AddFunction("mesh_stats", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("mesh-stats requires exactly 1 argument, got %d", len(args))
		}
		m, err := c.toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh-stats: %w", err)
		}
		st := m.mesh.Stats()
		return zygo.MakeList([]zygo.Sexp{
			&zygo.SexpInt{Val: int64(st.Vertices)},
			&zygo.SexpInt{Val: int64(st.Edges)},
			&zygo.SexpInt{Val: int64(st.Faces)},
		}), nil
	})

	// -----------------------------------------------------------------------
	// (emit "name" m :color "#c08040")
	// -----------------------------------------------------------------------
	env.AddFunction("emit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("emit requires a name and a mesh")
		}
		partName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("emit: name: %w", err)
		}
		m, err := c.toMesh(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("emit %q: %w", partName, err)
		}
		part := &scene.Part{Name: partName, Mesh: m.mesh, Source: m.source}
		if v, ok := pa.kw["color"]; ok {
			col, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("emit: color: %w", err)
			}
			part.Color = col
		}
		s.Add(part)
		return m, nil
	})

	// -----------------------------------------------------------------------
	// (part "name")
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a name argument")
		}
		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}
		p := s.Lookup(partName)
		if p == nil {
			return zygo.SexpNull, fmt.Errorf("part: no part named %q", partName)
		}
		return &sexpMesh{mesh: p.Mesh, source: p.Source}, nil
	})
}
