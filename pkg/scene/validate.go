package scene

import (
	"fmt"

	"github.com/chazu/meshkit/pkg/halfedge"
	"github.com/samber/lo"
)

// ValidationSeverity indicates whether a validation finding blocks
// tessellation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks tessellation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Part     string             // which part has the problem (empty if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] part %q: %s", e.Severity, e.Part, e.Message)
}

// Validate checks the scene and every part's connectivity. An empty slice
// means the scene is valid. Validate never mutates the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateParts(s)...)
	return errs
}

// HasErrors reports whether any finding has error severity.
func HasErrors(errs []ValidationError) bool {
	return lo.ContainsBy(errs, func(e ValidationError) bool { return e.Severity == SeverityError })
}

// Partition splits findings into errors and warnings.
func Partition(errs []ValidationError) (blocking, advisory []ValidationError) {
	for _, e := range errs {
		if e.Severity == SeverityError {
			blocking = append(blocking, e)
		} else {
			advisory = append(advisory, e)
		}
	}
	return blocking, advisory
}

func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	names := lo.Map(s.Parts, func(p *Part, _ int) string { return p.Name })
	for i, name := range names {
		if name == "" {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("part %d has no name", i),
				Severity: SeverityError,
			})
		}
	}
	for _, name := range lo.FindDuplicates(lo.Compact(names)) {
		errs = append(errs, ValidationError{
			Part:     name,
			Message:  fmt.Sprintf("name emitted %d times", lo.Count(names, name)),
			Severity: SeverityError,
		})
	}
	return errs
}

func validateParts(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, p := range s.Parts {
		if p.Mesh == nil {
			errs = append(errs, ValidationError{
				Part:     p.Name,
				Message:  "part has no mesh",
				Severity: SeverityError,
			})
			continue
		}
		if p.Mesh.InteriorFaceCount() == 0 {
			errs = append(errs, ValidationError{
				Part:     p.Name,
				Message:  "mesh has no faces",
				Severity: SeverityWarning,
			})
			continue
		}
		for _, f := range halfedge.Validate(p.Mesh) {
			sev := SeverityError
			if f.Severity == halfedge.SeverityWarning {
				sev = SeverityWarning
			}
			errs = append(errs, ValidationError{
				Part:     p.Name,
				Message:  f.Error(),
				Severity: sev,
			})
		}
	}
	return errs
}
