// Package scene collects the named half-edge meshes produced by one script
// evaluation.
package scene

import (
	"fmt"

	"github.com/chazu/meshkit/pkg/halfedge"
	"github.com/samber/lo"
)

// Part is a named mesh in a scene.
type Part struct {
	Name   string         `json:"name"`
	Mesh   *halfedge.Mesh `json:"-"`
	Color  string         `json:"color,omitempty"`
	Source string         `json:"source,omitempty"` // builtin that produced the mesh
}

// Scene is the output of an evaluation. Each evaluation produces a new
// scene; parts are kept in emission order.
type Scene struct {
	Parts     []*Part        `json:"parts"`
	NameIndex map[string]int `json:"name_index"`
	Version   uint64         `json:"version"`
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{NameIndex: make(map[string]int)}
}

// Add appends a part. A later part with the same name shadows the earlier
// one in the name index; Validate reports the clash.
func (s *Scene) Add(p *Part) {
	s.Parts = append(s.Parts, p)
	if p.Name != "" {
		s.NameIndex[p.Name] = len(s.Parts) - 1
	}
	s.Version++
}

// Lookup returns the part with the given name, or nil.
func (s *Scene) Lookup(name string) *Part {
	i, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Parts[i]
}

// MustLookup returns the part with the given name, or panics.
func (s *Scene) MustLookup(name string) *Part {
	p := s.Lookup(name)
	if p == nil {
		panic(fmt.Sprintf("scene: no part named %q", name))
	}
	return p
}

// Names returns the distinct part names in emission order.
func (s *Scene) Names() []string {
	return lo.Uniq(lo.Map(s.Parts, func(p *Part, _ int) string { return p.Name }))
}

// PartCount returns the number of parts.
func (s *Scene) PartCount() int {
	return len(s.Parts)
}
