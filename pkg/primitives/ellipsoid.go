package primitives

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// Ellipsoid is an axis-aligned ellipsoid, modeled as a unit sphere test in a
// coordinate system scaled by 1/radii: solving the sphere quadratic in that
// space and undoing the scale for the normal (inverse-transpose, which for
// a pure diagonal scale is just scaling by 1/radii^2 again).
type Ellipsoid struct {
	id       uintptr
	Center   core.Vec3
	Radii    core.Vec3
	Material core.Material
	bounds   core.AABB
}

// NewEllipsoid creates an ellipsoid centered at center with per-axis radii.
func NewEllipsoid(center, radii core.Vec3, mat core.Material) *Ellipsoid {
	return &Ellipsoid{
		id:       allocID(),
		Center:   center,
		Radii:    radii,
		Material: mat,
		bounds:   core.NewAABB(center.Subtract(radii), center.Add(radii)),
	}
}

func (e *Ellipsoid) ID() uintptr       { return e.id }
func (e *Ellipsoid) Bounds() core.AABB { return e.bounds }

func (e *Ellipsoid) toUnitSpace(v core.Vec3) core.Vec3 {
	return core.Vec3{X: v.X / e.Radii.X, Y: v.Y / e.Radii.Y, Z: v.Z / e.Radii.Z}
}

func (e *Ellipsoid) hit(ray core.Ray) (t float64, outward core.Vec3, ok bool) {
	oc := e.toUnitSpace(ray.Origin.Subtract(e.Center))
	dir := e.toUnitSpace(ray.Direction)

	a := dir.Dot(dir)
	halfB := oc.Dot(dir)
	c := oc.Dot(oc) - 1

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, core.Vec3{}, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if !ray.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !ray.Contains(root) {
			return 0, core.Vec3{}, false
		}
	}

	point := ray.At(root)
	local := point.Subtract(e.Center)
	normal := core.Vec3{
		X: local.X / (e.Radii.X * e.Radii.X),
		Y: local.Y / (e.Radii.Y * e.Radii.Y),
		Z: local.Z / (e.Radii.Z * e.Radii.Z),
	}.Normalize()
	return root, normal, true
}

func (e *Ellipsoid) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	t, outward, ok := e.hit(ray)
	if !ok {
		return nil, false
	}
	isec := arena.NewIsec()
	isec.T = t
	isec.Point = ray.At(t)
	isec.Material = e.Material
	isec.Primitive = e
	setFaceNormal(isec, ray, outward)
	return isec, true
}

func (e *Ellipsoid) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	_, _, ok := e.hit(ray)
	return ok
}
