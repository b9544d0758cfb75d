// Package lights implements core.Light: point, directional, area lights
// backed by a core.Sampleable primitive, and a latitude-longitude
// environment map, plus the weighted sampler used to pick among them for
// direct lighting.
package lights

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// QuadLight is a rectangular area light: any core.Sampleable primitive
// (usually a primitives.Parallelogram) with an emission color, sampled
// uniformly over its area and converted to a solid-angle PDF at the
// shading point.
type QuadLight struct {
	Shape    core.Sampleable
	Emission core.Color
}

// NewQuadLight wraps shape as an area light emitting a constant radiance.
func NewQuadLight(shape core.Sampleable, emission core.Color) *QuadLight {
	return &QuadLight{Shape: shape, Emission: emission}
}

func (q *QuadLight) IsDelta() bool { return false }

func (q *QuadLight) Power() float64 {
	return q.Emission.Luminance() * q.Shape.Area() * math.Pi
}

func (q *QuadLight) Sample(point core.Vec3, u core.Vec2) (core.LightSample, bool) {
	samplePoint, normal, pdfArea := q.Shape.SampleArea(u)

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-8 {
		return core.LightSample{}, false
	}
	dir := toLight.Multiply(1.0 / distance)

	cosTheta := normal.Dot(dir.Negate())
	if cosTheta < 1e-8 {
		// Back face or edge-on: the light contributes nothing from this side.
		return core.LightSample{}, false
	}

	pdf := pdfArea * distance * distance / cosTheta
	return core.LightSample{
		Dir:      dir,
		Distance: distance,
		Li:       q.Emission,
		PDF:      pdf,
		Delta:    false,
	}, true
}

func (q *QuadLight) Eval(point, dir core.Vec3, dist float64, arena *core.Arena, mailbox *core.Mailbox) (core.Color, float64) {
	ray := core.NewRayInterval(point, dir, 1e-4, dist+1e-3)
	isec, hit := q.Shape.Intersect(ray, arena, mailbox)
	if !hit {
		return core.Color{}, 0
	}
	cosTheta := isec.Normal.AbsDot(dir)
	if cosTheta < 1e-8 {
		return core.Color{}, 0
	}
	pdf := (1.0 / q.Shape.Area()) * isec.T * isec.T / cosTheta
	return q.Emission, pdf
}
