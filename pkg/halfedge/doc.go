// Package halfedge stores polygon meshes as half-edge connectivity and
// provides the local operators used by subdivision.
//
// # Storage
//
// A Mesh is an arena of four element kinds addressed by typed integer
// handles. Half-edges, vertices, edges and faces live in exported slices and
// are never removed, so a handle stays valid for the life of the mesh. A
// half-edge records its Next around the face, its Twin on the other side of
// the edge, its origin Vertex, its undirected Edge and its Face.
//
// Holes are represented by faces whose Boundary flag is set. Boundary faces
// close every loop of half-edges so that Twin and Next are always defined;
// they are not part of the surface and the local operators never modify
// them.
//
// # Operators
//
// FlipEdge rotates the diagonal of the two triangles it separates. SplitEdge
// inserts a vertex at the midpoint of an edge and connects it to both
// opposite apices. Both are constant time and leave the mesh satisfying
// every invariant checked by Validate. Either operator refuses, without
// mutation, an edge that touches a boundary face.
//
// # Construction
//
// Build links an indexed polygon list into a Mesh. FromMesh does the same for
// a kernel.Mesh triangle soup and ToKernelMesh converts back, attaching the
// vertex normals computed by VertexNormal.
package halfedge
