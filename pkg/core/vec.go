// Package core provides the geometry and sampling kernel shared by every
// other package: vectors, rays, bounding boxes, frames, transforms, the
// per-thread arena and render context, and the Monte Carlo building blocks
// (warps, MIS heuristics) that the rest of the renderer is built from.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector, also used to represent an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a 2D vector, used for texture coordinates and 2D samples.
type Vec2 struct {
	X, Y float64
}

// Color is an alias for Vec3 used where a value is conceptually a
// tristimulus radiance or reflectance rather than a geometric vector.
type Color = Vec3

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func NewVec2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.3g, %.3g, %.3g}", v.X, v.Y, v.Z)
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Multiply(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) AbsDot(o Vec3) float64 { return math.Abs(v.Dot(o)) }

// Clamp clamps each component to [minVal, maxVal].
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Luminance returns the perceptual luminance of an RGB color (Rec. 709 weights).
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// GammaCorrect applies gamma correction to color values, mapping linear
// radiance to display space.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

func (v Vec3) IsZero() bool           { return v.X == 0 && v.Y == 0 && v.Z == 0 }
func (v Vec3) Negate() Vec3           { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) MaxComponent() float64  { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// HasNaNOrInf reports whether any component is NaN or infinite, used by the
// integrator to drop unbounded samples (spec: "Unbounded contribution").
func (v Vec3) HasNaNOrInf() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) ||
		math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// Equals compares two vectors within a small floating point tolerance.
func (v Vec3) Equals(o Vec3) bool {
	const tol = 1e-9
	return math.Abs(v.X-o.X) < tol && math.Abs(v.Y-o.Y) < tol && math.Abs(v.Z-o.Z) < tol
}

// Reflect returns v reflected about normal n (n need not equal the surface
// normal's sign convention; callers orient v and n consistently).
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends unit vector uv across a surface with normal n using Snell's
// law with ratio etaiOverEtat = eta_incident / eta_transmitted. ok is false
// on total internal reflection.
func Refract(uv, n Vec3, etaiOverEtat float64) (Vec3, bool) {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	sin2ThetaT := etaiOverEtat * etaiOverEtat * math.Max(0, 1-cosTheta*cosTheta)
	if sin2ThetaT >= 1.0 {
		return Vec3{}, false
	}
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel), true
}
