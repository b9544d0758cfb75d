package primitives

import "github.com/dkershaw/go-pathtracer/pkg/core"

// TriangleMesh is an immutable collection of triangles sharing a single
// material, as decoded from a glTF mesh primitive by pkg/loaders. It exists
// mainly as a construction convenience: each Triangle is independently
// BVH-indexable, so the mesh itself is not a core.Primitive, its triangles
// are handed to the BVH builder directly.
type TriangleMesh struct {
	Triangles []*Triangle
	Material  core.Material
}

// MeshVertex is one vertex of a mesh triangle, as read from glTF accessors.
type MeshVertex struct {
	Position core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
}

// NewTriangleMesh builds a TriangleMesh from a flat vertex buffer and
// triangle-list indices (3 indices per triangle), the layout glTF's
// TRIANGLES mode decodes into.
func NewTriangleMesh(vertices []MeshVertex, indices []uint32, mat core.Material) *TriangleMesh {
	mesh := &TriangleMesh{Material: mat}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		tri := NewTriangleSmooth(
			a.Position, b.Position, c.Position,
			a.Normal, b.Normal, c.Normal,
			a.UV, b.UV, c.UV,
			mat,
		)
		mesh.Triangles = append(mesh.Triangles, tri)
	}
	return mesh
}

// Primitives returns the mesh's triangles as a slice of core.Primitive,
// ready to hand to accel.NewBVH alongside the scene's other primitives.
func (m *TriangleMesh) Primitives() []core.Primitive {
	out := make([]core.Primitive, len(m.Triangles))
	for i, t := range m.Triangles {
		out[i] = t
	}
	return out
}

// Bounds returns the AABB bounding every triangle in the mesh.
func (m *TriangleMesh) Bounds() core.AABB {
	if len(m.Triangles) == 0 {
		return core.AABB{}
	}
	b := m.Triangles[0].Bounds()
	for _, t := range m.Triangles[1:] {
		b = b.Union(t.Bounds())
	}
	return b
}
