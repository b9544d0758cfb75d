package lights

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// PointLight is an idealized zero-size light source radiating Power watts
// isotropically. Power, not radiance, is the tunable: intensity falls off
// as 1/distance^2 like any point source.
type PointLight struct {
	Position core.Vec3
	PowerW   core.Color
}

// NewPointLight creates a point light at position with the given power.
func NewPointLight(position core.Vec3, power core.Color) *PointLight {
	return &PointLight{Position: position, PowerW: power}
}

func (p *PointLight) IsDelta() bool   { return true }
func (p *PointLight) Power() float64  { return p.PowerW.Luminance() }

func (p *PointLight) Sample(point core.Vec3, u core.Vec2) (core.LightSample, bool) {
	toLight := p.Position.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-8 {
		return core.LightSample{}, false
	}
	dir := toLight.Multiply(1.0 / distance)
	intensity := p.PowerW.Multiply(1.0 / (4 * math.Pi))
	li := intensity.Multiply(1.0 / (distance * distance))
	return core.LightSample{Dir: dir, Distance: distance, Li: li, PDF: 1, Delta: true}, true
}

// Eval always returns pdf 0: a delta light can never be hit by a
// BSDF-sampled ray by chance, so it never participates on that side of MIS.
func (p *PointLight) Eval(point, dir core.Vec3, dist float64, arena *core.Arena, mailbox *core.Mailbox) (core.Color, float64) {
	return core.Color{}, 0
}
