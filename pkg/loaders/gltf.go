package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/primitives"
)

// LoadGLTF decodes every triangle-mode mesh primitive in a glTF/glb document
// into a single TriangleMesh sharing mat. Only POSITION, NORMAL and
// TEXCOORD_0 attributes are read; a primitive missing NORMAL gets flat
// per-triangle normals, and one missing TEXCOORD_0 gets zero UVs.
func LoadGLTF(path string, mat core.Material) (*primitives.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open glTF %q: %w", path, err)
	}

	mesh := &primitives.TriangleMesh{Material: mat}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			tris, err := decodePrimitive(doc, prim, mat)
			if err != nil {
				return nil, fmt.Errorf("loaders: decode glTF primitive in %q: %w", path, err)
			}
			mesh.Triangles = append(mesh.Triangles, tris.Triangles...)
		}
	}
	if len(mesh.Triangles) == 0 {
		return nil, core.NewSceneBuildError("glTF file %q contains no triangle primitives", path)
	}
	return mesh, nil
}

func decodePrimitive(doc *gltf.Document, prim *gltf.Primitive, mat core.Material) (*primitives.TriangleMesh, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, err
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return nil, err
		}
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return nil, err
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, err
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vertices := make([]primitives.MeshVertex, len(positions))
	for i, p := range positions {
		v := primitives.MeshVertex{Position: core.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}}
		if i < len(normals) {
			n := normals[i]
			v.Normal = core.Vec3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}
		}
		if i < len(uvs) {
			uv := uvs[i]
			v.UV = core.Vec2{X: float64(uv[0]), Y: float64(uv[1])}
		}
		vertices[i] = v
	}

	return primitives.NewTriangleMesh(vertices, indices, mat), nil
}
