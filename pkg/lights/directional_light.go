package lights

import "github.com/dkershaw/go-pathtracer/pkg/core"

// DirectionalLight is a distant ("far") light: all shadow rays are cast
// parallel along a fixed direction, as if the source were infinitely far
// away (sunlight). It is treated as a delta light in solid angle.
type DirectionalLight struct {
	Direction core.Vec3 // direction the light travels (from source toward the scene)
	Radiance  core.Color
}

// NewDirectionalLight creates a directional light shining along direction
// with the given radiance.
func NewDirectionalLight(direction core.Vec3, radiance core.Color) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Radiance: radiance}
}

func (d *DirectionalLight) IsDelta() bool  { return true }
func (d *DirectionalLight) Power() float64 { return d.Radiance.Luminance() }

func (d *DirectionalLight) Sample(point core.Vec3, u core.Vec2) (core.LightSample, bool) {
	// Toward the light is opposite of its travel direction.
	return core.LightSample{
		Dir:      d.Direction.Negate(),
		Distance: 1e30,
		Li:       d.Radiance,
		PDF:      1,
		Delta:    true,
	}, true
}

func (d *DirectionalLight) Eval(point, dir core.Vec3, dist float64, arena *core.Arena, mailbox *core.Mailbox) (core.Color, float64) {
	return core.Color{}, 0
}
