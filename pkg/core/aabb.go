package core

import "math"

// AABB is an axis-aligned bounding box, used as the BVH node bound and for
// the scene-extent query that sets the scene's horizon distance.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from explicit min/max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates the tightest AABB bounding all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)

		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests whether ray intersects this AABB within [tMin, tMax] using the
// standard slab method.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, dir float64
		switch axis {
		case 0:
			lo, hi, origin, dir = b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi, origin, dir = b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
		default:
			lo, hi, origin, dir = b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(dir) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (lo - origin) * invDir
		t2 := (hi - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB bounding both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Centroid returns the box's midpoint, used by the BVH builder's median
// splitting heuristic.
func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// SurfaceArea returns the box's surface area. The BVH builder does not use
// it: it splits at the median along the longest axis.
func (b AABB) SurfaceArea() float64 {
	d := b.Max.Subtract(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// LongestAxis returns 0, 1, or 2 for the box's longest dimension, the axis
// the BVH builder splits along.
func (b AABB) LongestAxis() int {
	d := b.Max.Subtract(b.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// Transform rebounds the box by transforming all 8 corners through m and
// taking the AABB of the result. This is conservative but exact for affine
// maps: a tight box under rotation generally isn't tight afterward, but the
// BVH only needs a valid bound, not a minimal one.
func (b AABB) Transform(m Transform) AABB {
	corners := [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	pts := make([]Vec3, 8)
	for i, c := range corners {
		pts[i] = m.Point(c)
	}
	return NewAABBFromPoints(pts...)
}
