// Package kernel defines the solid kernel that feeds geometry into the mesh
// toolkit. A kernel builds solids and tessellates them into indexed triangle
// meshes; the half-edge store takes over from there. Implementations (sdfx)
// live in subpackages.
package kernel

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid kernel interface.
type Kernel interface {
	// Primitives
	Sphere(radius float64) (Solid, error)
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates s into a welded, indexed triangle mesh: vertices
	// shared by neighbouring triangles appear once in Vertices.
	ToMesh(s Solid) (*Mesh, error)
}
