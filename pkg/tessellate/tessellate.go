// Package tessellate flattens the parts of a scene into indexed triangle
// meshes with vertex normals, one mesh per part.
package tessellate

import (
	"fmt"

	"github.com/chazu/meshkit/pkg/kernel"
	"github.com/chazu/meshkit/pkg/scene"
)

// Tessellate produces one triangle mesh per part. Parts are visited in
// emission order. The tessellator is read-only and never mutates the scene.
func Tessellate(s *scene.Scene) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, 0, len(s.Parts))
	for i, p := range s.Parts {
		mesh, err := Part(p)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %d: %w", i, err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Part converts a single part.
func Part(p *scene.Part) (*kernel.Mesh, error) {
	if p.Mesh == nil {
		return nil, fmt.Errorf("part %q has no mesh", p.Name)
	}
	mesh := p.Mesh.ToKernelMesh()
	mesh.PartName = p.Name
	return mesh, nil
}
