package primitives

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// Parallelogram is a finite planar quad defined by a corner and two edge
// vectors, used for area lights (quad lights) and for axis-aligned room
// geometry in analytic scenes.
type Parallelogram struct {
	id       uintptr
	Corner   core.Vec3
	U, V     core.Vec3
	Material core.Material

	normal core.Vec3
	planeD float64
	w      core.Vec3 // cached for barycentric (alpha, beta) recovery
	bounds core.AABB
}

// NewParallelogram creates a parallelogram from a corner and two edge
// vectors; the normal follows the right-hand rule (U cross V).
func NewParallelogram(corner, u, v core.Vec3, mat core.Material) *Parallelogram {
	normal := u.Cross(v).Normalize()
	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	corners := []core.Vec3{corner, corner.Add(u), corner.Add(v), corner.Add(u).Add(v)}
	bounds := core.NewAABBFromPoints(corners...)
	// A perfectly flat quad has zero thickness along its normal axis, which
	// the BVH slab test treats as a valid (zero-width) interval, but pad it
	// slightly so floating point error at grazing angles can't slip through.
	pad := core.Vec3{X: 1e-4, Y: 1e-4, Z: 1e-4}
	bounds = core.NewAABB(bounds.Min.Subtract(pad), bounds.Max.Add(pad))

	return &Parallelogram{
		id:     allocID(),
		Corner: corner, U: u, V: v,
		Material: mat,
		normal:   normal,
		planeD:   normal.Dot(corner),
		w:        w,
		bounds:   bounds,
	}
}

func (q *Parallelogram) ID() uintptr       { return q.id }
func (q *Parallelogram) Bounds() core.AABB { return q.bounds }

func (q *Parallelogram) hitPlane(ray core.Ray) (t, alpha, beta float64, ok bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return 0, 0, 0, false
	}
	t = (q.planeD - ray.Origin.Dot(q.normal)) / denom
	if !ray.Contains(t) {
		return 0, 0, 0, false
	}
	hitVec := ray.At(t).Subtract(q.Corner)
	alpha = q.w.Dot(hitVec.Cross(q.V))
	beta = q.w.Dot(q.U.Cross(hitVec))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, 0, 0, false
	}
	return t, alpha, beta, true
}

func (q *Parallelogram) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	t, alpha, beta, ok := q.hitPlane(ray)
	if !ok {
		return nil, false
	}
	isec := arena.NewIsec()
	isec.T = t
	isec.Point = ray.At(t)
	isec.UV = core.NewVec2(alpha, beta)
	isec.Material = q.Material
	isec.Primitive = q
	setFaceNormal(isec, ray, q.normal)
	return isec, true
}

func (q *Parallelogram) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	_, _, _, ok := q.hitPlane(ray)
	return ok
}

// Area returns the parallelogram's surface area, |U x V|.
func (q *Parallelogram) Area() float64 { return q.U.Cross(q.V).Length() }

// SampleArea draws a uniform point over the parallelogram.
func (q *Parallelogram) SampleArea(u core.Vec2) (point, normal core.Vec3, pdfArea float64) {
	point = q.Corner.Add(q.U.Multiply(u.X)).Add(q.V.Multiply(u.Y))
	normal = q.normal
	pdfArea = 1.0 / q.Area()
	return
}
