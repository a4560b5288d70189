package scene

import (
	"strings"
	"testing"

	"github.com/chazu/meshkit/pkg/halfedge"
	"github.com/chazu/meshkit/pkg/kernel"
	"github.com/google/go-cmp/cmp"
)

func tetra(t *testing.T) *halfedge.Mesh {
	t.Helper()
	m, err := halfedge.FromMesh(kernel.Tetrahedron(1))
	if err != nil {
		t.Fatalf("FromMesh failed: %v", err)
	}
	return m
}

func TestAddLookup(t *testing.T) {
	s := New()
	a := &Part{Name: "a", Mesh: tetra(t)}
	b := &Part{Name: "b", Mesh: tetra(t)}
	s.Add(a)
	s.Add(b)

	if s.PartCount() != 2 {
		t.Fatalf("PartCount() = %d, want 2", s.PartCount())
	}
	if got := s.Lookup("b"); got != b {
		t.Errorf("Lookup(b) = %v, want %v", got, b)
	}
	if got := s.Lookup("missing"); got != nil {
		t.Errorf("Lookup(missing) = %v, want nil", got)
	}
	if s.Version != 2 {
		t.Errorf("Version = %d, want 2", s.Version)
	}
	if d := cmp.Diff([]string{"a", "b"}, s.Names()); d != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", d)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup did not panic")
		}
	}()
	New().MustLookup("nope")
}

func TestValidateClean(t *testing.T) {
	s := New()
	s.Add(&Part{Name: "a", Mesh: tetra(t)})
	if errs := Validate(s); len(errs) != 0 {
		t.Errorf("Validate() = %v, want none", errs)
	}
}

func TestValidateFindings(t *testing.T) {
	broken := tetra(t)
	broken.Halfedges[0].Twin = broken.Halfedges[0].Next

	tests := []struct {
		name     string
		parts    []*Part
		severity ValidationSeverity
		contains string
	}{
		{"duplicate name", []*Part{{Name: "a", Mesh: tetra(t)}, {Name: "a", Mesh: tetra(t)}}, SeverityError, "emitted 2 times"},
		{"unnamed", []*Part{{Mesh: tetra(t)}}, SeverityError, "no name"},
		{"nil mesh", []*Part{{Name: "a"}}, SeverityError, "no mesh"},
		{"empty mesh", []*Part{{Name: "a", Mesh: &halfedge.Mesh{}}}, SeverityWarning, "no faces"},
		{"broken connectivity", []*Part{{Name: "a", Mesh: broken}}, SeverityError, halfedge.CodeTwin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for _, p := range tt.parts {
				s.Add(p)
			}
			errs := Validate(s)
			found := false
			for _, e := range errs {
				if e.Severity == tt.severity && strings.Contains(e.Message, tt.contains) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want a %s containing %q", errs, tt.severity, tt.contains)
			}
			if got := HasErrors(errs); got != (tt.severity == SeverityError) {
				t.Errorf("HasErrors() = %v", got)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	errs := []ValidationError{
		{Message: "a", Severity: SeverityError},
		{Message: "b", Severity: SeverityWarning},
		{Message: "c", Severity: SeverityError},
	}
	blocking, advisory := Partition(errs)
	if len(blocking) != 2 || len(advisory) != 1 {
		t.Errorf("Partition() = %d errors, %d warnings, want 2 and 1", len(blocking), len(advisory))
	}
}
