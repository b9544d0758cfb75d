// Package primitives implements the analytic and triangle-based shapes that
// satisfy core.Primitive / core.Sampleable: spheres, ellipsoids,
// parallelograms, single triangles, and triangle meshes loaded from glTF.
package primitives

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

var nextPrimitiveID uintptr = 1

func allocID() uintptr {
	id := nextPrimitiveID
	nextPrimitiveID++
	return id
}

// Sphere is an analytic sphere primitive.
type Sphere struct {
	id       uintptr
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere with the given center, radius, and material.
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{id: allocID(), Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) ID() uintptr { return s.id }

func (s *Sphere) Bounds() core.AABB {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

func (s *Sphere) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if !ray.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !ray.Contains(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outward := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outward.Y)
	phi := math.Atan2(-outward.Z, outward.X) + math.Pi
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)

	isec := arena.NewIsec()
	isec.T = root
	isec.Point = point
	isec.UV = uv
	isec.Material = s.Material
	isec.Primitive = s
	setFaceNormal(isec, ray, outward)
	return isec, true
}

func (s *Sphere) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return false
	}
	sqrtD := math.Sqrt(disc)
	root := (-halfB - sqrtD) / a
	if ray.Contains(root) {
		return true
	}
	root = (-halfB + sqrtD) / a
	return ray.Contains(root)
}

// Area returns the sphere's surface area, 4*pi*r^2.
func (s *Sphere) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

// SampleArea draws a uniform point on the sphere's surface.
func (s *Sphere) SampleArea(u core.Vec2) (point, normal core.Vec3, pdfArea float64) {
	d := core.UniformSampleSphere(u)
	normal = d
	point = s.Center.Add(d.Multiply(s.Radius))
	pdfArea = 1.0 / s.Area()
	return
}

// setFaceNormal orients the geometric normal against the incoming ray and
// records whether the hit was on the front face, shared by every analytic
// primitive in this package.
func setFaceNormal(isec *core.IsecInfo, ray core.Ray, outwardNormal core.Vec3) {
	isec.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if isec.FrontFace {
		isec.Normal = outwardNormal
	} else {
		isec.Normal = outwardNormal.Negate()
	}
	isec.Shading = isec.Normal
}
