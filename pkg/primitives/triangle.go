package primitives

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// triangleEpsilon slightly relaxes the Moller-Trumbore edge tests so a ray
// grazing exactly along a shared mesh edge isn't spuriously rejected by
// both adjoining triangles.
const triangleEpsilon = 1e-7

// Triangle is a single triangle, optionally with interpolated shading
// normals and per-vertex UVs (used directly for analytic scenes, or as the
// element type backing a TriangleMesh loaded from glTF).
type Triangle struct {
	id            uintptr
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3 // per-vertex shading normals; if zero, the face normal is used for all three
	UV0, UV1, UV2 core.Vec2
	hasNormals    bool
	hasUVs        bool
	Material      core.Material
	faceNormal    core.Vec3
	bounds        core.AABB
}

// NewTriangle creates a flat-shaded triangle with barycentric UVs.
func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{id: allocID(), V0: v0, V1: v1, V2: v2, Material: mat}
	t.computeFaceNormal()
	t.bounds = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleSmooth creates a triangle with interpolated per-vertex shading
// normals and UVs, as produced by the glTF mesh loader.
func NewTriangleSmooth(v0, v1, v2 core.Vec3, n0, n1, n2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat core.Material) *Triangle {
	t := &Triangle{
		id: allocID(),
		V0: v0, V1: v1, V2: v2,
		N0: n0.Normalize(), N1: n1.Normalize(), N2: n2.Normalize(),
		hasNormals: true,
		UV0:        uv0, UV1: uv1, UV2: uv2,
		hasUVs:   true,
		Material: mat,
	}
	t.computeFaceNormal()
	t.bounds = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

func (t *Triangle) computeFaceNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.faceNormal = edge1.Cross(edge2).Normalize()
}

func (t *Triangle) ID() uintptr       { return t.id }
func (t *Triangle) Bounds() core.AABB { return t.bounds }

// intersectBarycentric runs Moller-Trumbore and returns the barycentric
// coordinates (u, v) and ray parameter on a hit. u, v are tolerant of
// `triangleEpsilon` past their ideal [0,1] bounds so coplanar mesh edges
// don't leak background through the seam.
func (t *Triangle) intersectBarycentric(ray core.Ray) (u, v, tHit float64, ok bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -1e-8 && a < 1e-8 {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < -triangleEpsilon || u > 1.0+triangleEpsilon {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < -triangleEpsilon || u+v > 1.0+triangleEpsilon {
		return 0, 0, 0, false
	}

	tHit = f * edge2.Dot(q)
	if !ray.Contains(tHit) {
		return 0, 0, 0, false
	}
	return u, v, tHit, true
}

func (t *Triangle) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	u, v, tHit, ok := t.intersectBarycentric(ray)
	if !ok {
		return nil, false
	}
	w := 1.0 - u - v

	isec := arena.NewIsec()
	isec.T = tHit
	isec.Point = ray.At(tHit)
	isec.Material = t.Material
	isec.Primitive = t

	if t.hasUVs {
		isec.UV = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		isec.UV = core.NewVec2(u, v)
	}

	setFaceNormal(isec, ray, t.faceNormal)
	if t.hasNormals {
		shading := t.N0.Multiply(w).Add(t.N1.Multiply(u)).Add(t.N2.Multiply(v)).Normalize()
		isec.Shading = orientShadingNormal(shading, isec.Normal)
	}
	return isec, true
}

// orientShadingNormal handles the numerical-edge case from the spec: an
// interpolated shading normal that crosses to the back side of the geometric
// tangent plane is reprojected to lie exactly in it, then nudged back
// toward the geometric normal so the two never disagree enough to flip the
// visible hemisphere.
func orientShadingNormal(shading, geometric core.Vec3) core.Vec3 {
	if shading.Dot(geometric) >= 1e-4 {
		return shading
	}
	reprojected := shading.Subtract(geometric.Multiply(shading.Dot(geometric)))
	if reprojected.IsZero() {
		return geometric
	}
	return reprojected.Normalize().Add(geometric.Multiply(1e-4)).Normalize()
}

func (t *Triangle) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	_, _, _, ok := t.intersectBarycentric(ray)
	return ok
}

// Area returns the triangle's surface area.
func (t *Triangle) Area() float64 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length() * 0.5
}

// SampleArea draws a uniform point on the triangle via the standard
// square-root barycentric mapping.
func (t *Triangle) SampleArea(u core.Vec2) (point, normal core.Vec3, pdfArea float64) {
	su0 := math.Sqrt(math.Max(0, u.X))
	b0 := 1 - su0
	b1 := u.Y * su0
	point = t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
	normal = t.faceNormal
	pdfArea = 1.0 / t.Area()
	return
}
