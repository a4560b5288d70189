package halfedge

import "fmt"

// Severity indicates whether a validation finding breaks connectivity or is
// merely informational.
type Severity int

const (
	SeverityError   Severity = iota // connectivity is broken
	SeverityWarning                 // geometry is suspicious
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Validation codes.
const (
	CodeHandleRange   = "HANDLE_RANGE"
	CodeTwin          = "TWIN_INVOLUTION"
	CodeTwinOrigin    = "TWIN_ORIGIN"
	CodeEdgeAgreement = "EDGE_AGREEMENT"
	CodeFaceCycle     = "FACE_CYCLE"
	CodeVertexRep     = "VERTEX_REPRESENTATIVE"
	CodeEdgeRep       = "EDGE_REPRESENTATIVE"
	CodeFaceRep       = "FACE_REPRESENTATIVE"
	CodeVertexFan     = "VERTEX_FAN"
	CodeZeroArea      = "ZERO_AREA_FACE"
)

// ValidationError describes a single validation finding.
type ValidationError struct {
	Code     string
	Kind     string // "halfedge", "vertex", "edge", "face" or "" for mesh-level
	ID       int32
	Message  string
	Severity Severity
}

func (e ValidationError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s %d: %s", e.Severity, e.Code, e.Kind, e.ID, e.Message)
}

// HasErrors reports whether any finding has error severity.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks every connectivity invariant of m and returns the
// findings. An empty slice means the mesh is consistent. Validate never
// mutates the mesh.
func Validate(m *Mesh) []ValidationError {
	errs := validateRanges(m)
	if len(errs) > 0 {
		// Later checks follow links and would index out of range.
		return errs
	}
	errs = append(errs, validateTwins(m)...)
	errs = append(errs, validateRepresentatives(m)...)
	errs = append(errs, validateFaceCycles(m)...)
	if !HasErrors(errs) {
		errs = append(errs, validateFans(m)...)
		errs = append(errs, validateGeometry(m)...)
	}
	return errs
}

func fail(code, kind string, id int32, format string, args ...any) ValidationError {
	return ValidationError{
		Code:     code,
		Kind:     kind,
		ID:       id,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	}
}

func validateRanges(m *Mesh) []ValidationError {
	var errs []ValidationError
	nh, nv, ne, nf := int32(len(m.Halfedges)), int32(len(m.Vertices)), int32(len(m.Edges)), int32(len(m.Faces))
	in := func(x, n int32) bool { return x >= 0 && x < n }

	for i, h := range m.Halfedges {
		id := int32(i)
		if !in(int32(h.Next), nh) {
			errs = append(errs, fail(CodeHandleRange, "halfedge", id, "next %d out of range", h.Next))
		}
		if !in(int32(h.Twin), nh) {
			errs = append(errs, fail(CodeHandleRange, "halfedge", id, "twin %d out of range", h.Twin))
		}
		if !in(int32(h.Vertex), nv) {
			errs = append(errs, fail(CodeHandleRange, "halfedge", id, "vertex %d out of range", h.Vertex))
		}
		if !in(int32(h.Edge), ne) {
			errs = append(errs, fail(CodeHandleRange, "halfedge", id, "edge %d out of range", h.Edge))
		}
		if !in(int32(h.Face), nf) {
			errs = append(errs, fail(CodeHandleRange, "halfedge", id, "face %d out of range", h.Face))
		}
	}
	for i, v := range m.Vertices {
		if !in(int32(v.Halfedge), nh) {
			errs = append(errs, fail(CodeHandleRange, "vertex", int32(i), "halfedge %d out of range", v.Halfedge))
		}
	}
	for i, e := range m.Edges {
		if !in(int32(e.Halfedge), nh) {
			errs = append(errs, fail(CodeHandleRange, "edge", int32(i), "halfedge %d out of range", e.Halfedge))
		}
	}
	for i, f := range m.Faces {
		if !in(int32(f.Halfedge), nh) {
			errs = append(errs, fail(CodeHandleRange, "face", int32(i), "halfedge %d out of range", f.Halfedge))
		}
	}
	return errs
}

func validateTwins(m *Mesh) []ValidationError {
	var errs []ValidationError
	perEdge := make([]int, len(m.Edges))
	for i, h := range m.Halfedges {
		id := HalfedgeID(i)
		perEdge[h.Edge]++
		t := m.Halfedges[h.Twin]
		if h.Twin == id || t.Twin != id {
			errs = append(errs, fail(CodeTwin, "halfedge", int32(id), "twin %d does not point back", h.Twin))
			continue
		}
		if t.Edge != h.Edge {
			errs = append(errs, fail(CodeEdgeAgreement, "halfedge", int32(id),
				"edge %d differs from twin's edge %d", h.Edge, t.Edge))
		}
		if dest := m.Halfedges[h.Next].Vertex; t.Vertex != dest {
			errs = append(errs, fail(CodeTwinOrigin, "halfedge", int32(id),
				"twin starts at vertex %d, want destination %d", t.Vertex, dest))
		}
	}
	for e, n := range perEdge {
		if n != 2 {
			errs = append(errs, fail(CodeEdgeAgreement, "edge", int32(e), "has %d half-edges, want 2", n))
		}
	}
	return errs
}

func validateRepresentatives(m *Mesh) []ValidationError {
	var errs []ValidationError
	for i, v := range m.Vertices {
		if got := m.Halfedges[v.Halfedge].Vertex; got != VertexID(i) {
			errs = append(errs, fail(CodeVertexRep, "vertex", int32(i),
				"half-edge %d starts at vertex %d", v.Halfedge, got))
		}
	}
	for i, e := range m.Edges {
		if got := m.Halfedges[e.Halfedge].Edge; got != EdgeID(i) {
			errs = append(errs, fail(CodeEdgeRep, "edge", int32(i),
				"half-edge %d belongs to edge %d", e.Halfedge, got))
		}
	}
	for i, f := range m.Faces {
		if got := m.Halfedges[f.Halfedge].Face; got != FaceID(i) {
			errs = append(errs, fail(CodeFaceRep, "face", int32(i),
				"half-edge %d belongs to face %d", f.Halfedge, got))
		}
	}
	return errs
}

// validateFaceCycles checks that following Next from each face's
// representative returns to it through half-edges of that face only, and
// that the face loops cover every half-edge exactly once.
func validateFaceCycles(m *Mesh) []ValidationError {
	var errs []ValidationError
	visited := make([]bool, len(m.Halfedges))
	for i, f := range m.Faces {
		fid := FaceID(i)
		h := f.Halfedge
		closed, broken := false, false
		for steps := 0; steps <= len(m.Halfedges); steps++ {
			if m.Halfedges[h].Face != fid {
				errs = append(errs, fail(CodeFaceCycle, "face", int32(fid),
					"loop reaches half-edge %d of face %d", h, m.Halfedges[h].Face))
				broken = true
				break
			}
			if visited[h] {
				errs = append(errs, fail(CodeFaceCycle, "face", int32(fid),
					"half-edge %d visited twice", h))
				broken = true
				break
			}
			visited[h] = true
			h = m.Halfedges[h].Next
			if h == f.Halfedge {
				closed = true
				break
			}
		}
		if !closed && !broken {
			errs = append(errs, fail(CodeFaceCycle, "face", int32(fid), "loop does not close"))
		}
		if closed && m.Degree(fid) < 3 && !f.Boundary {
			errs = append(errs, fail(CodeFaceCycle, "face", int32(fid), "has %d sides", m.Degree(fid)))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	for i, seen := range visited {
		if !seen {
			errs = append(errs, fail(CodeFaceCycle, "halfedge", int32(i), "not on its face's loop"))
		}
	}
	return errs
}

// validateFans checks that the rotation around each vertex reaches every
// half-edge leaving it.
func validateFans(m *Mesh) []ValidationError {
	var errs []ValidationError
	outgoing := make([]int, len(m.Vertices))
	for _, h := range m.Halfedges {
		outgoing[h.Vertex]++
	}
	for i := range m.Vertices {
		v := VertexID(i)
		if n := m.VertexDegree(v); n != outgoing[v] {
			errs = append(errs, fail(CodeVertexFan, "vertex", int32(v),
				"rotation reaches %d of %d outgoing half-edges", n, outgoing[v]))
		}
	}
	return errs
}

func validateGeometry(m *Mesh) []ValidationError {
	var errs []ValidationError
	for i, f := range m.Faces {
		if f.Boundary {
			continue
		}
		if m.FaceArea(FaceID(i)) < 1e-12 {
			errs = append(errs, ValidationError{
				Code:     CodeZeroArea,
				Kind:     "face",
				ID:       int32(i),
				Message:  "face has zero area",
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}
