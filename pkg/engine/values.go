package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/meshkit/pkg/halfedge"
	"github.com/chazu/meshkit/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a v3.Vec.
type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpSolid wraps a kernel.Solid that has not been meshed yet.
type sexpSolid struct {
	solid kernel.Solid
	desc  string // constructor summary for printing
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(solid %s)", s.desc)
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// sexpMesh wraps a half-edge mesh. Builtins never mutate a mesh they
// receive; operators work on a clone and return a new value.
type sexpMesh struct {
	mesh   *halfedge.Mesh
	source string // builtin that produced the mesh
}

func (m *sexpMesh) SexpString(ps *zygo.PrintState) string {
	st := m.mesh.Stats()
	return fmt.Sprintf("(mesh %s :vertices %d :edges %d :faces %d)", m.source, st.Vertices, st.Edges, st.Faces)
}
func (m *sexpMesh) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	return strings.CutPrefix(str.S, kwPrefix)
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// A trailing keyword with no value is recorded as SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// arg returns keyword key if present, else positional argument pos.
func (a kwArgs) arg(key string, pos int) (zygo.Sexp, bool) {
	if v, ok := a.kw[key]; ok {
		return v, true
	}
	if pos >= 0 && pos < len(a.positional) {
		return a.positional[pos], true
	}
	return nil, false
}

// floatArg returns a numeric argument, or def when it is absent.
func (a kwArgs) floatArg(key string, pos int, def float64) (float64, error) {
	v, ok := a.arg(key, pos)
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

// intArg returns an integer argument, or def when it is absent.
func (a kwArgs) intArg(key string, pos int, def int) (int, error) {
	v, ok := a.arg(key, pos)
	if !ok {
		return def, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an integer from a SexpInt.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a v3.Vec from a sexpVec3.
func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toSolid extracts a kernel.Solid from a sexpSolid.
func toSolid(s zygo.Sexp) (kernel.Solid, error) {
	v, err := asSolid(s)
	if err != nil {
		return nil, err
	}
	return v.solid, nil
}

// asSolid is toSolid keeping the description.
func asSolid(s zygo.Sexp) (*sexpSolid, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toControlGrid converts a list of rows of vec3 into a rectangular grid.
func toControlGrid(s zygo.Sexp) ([][]v3.Vec, error) {
	rows, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("control grid has no rows")
	}
	grid := make([][]v3.Vec, len(rows))
	for i, r := range rows {
		items, err := sexpListToSlice(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(items) == 0 || (i > 0 && len(items) != len(grid[0])) {
			return nil, fmt.Errorf("row %d has %d points, want %d", i, len(items), len(grid[0]))
		}
		grid[i] = make([]v3.Vec, len(items))
		for j, item := range items {
			p, err := toVec3(item)
			if err != nil {
				return nil, fmt.Errorf("row %d point %d: %w", i, j, err)
			}
			grid[i][j] = p
		}
	}
	return grid, nil
}
