package material

import "github.com/dkershaw/go-pathtracer/pkg/core"

// Emissive is a light-emitting material with no BSDF: it is reachable by
// BSDF-sampled rays (the integrator must add its emission via Emitted) but
// never itself scatters light.
type Emissive struct {
	Emission core.Color
}

// NewEmissive creates an emissive material radiating Emission uniformly
// over the hemisphere above the surface.
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{Emission: emission}
}

func (e *Emissive) GetBSDF(isec *core.IsecInfo, arena *core.Arena) core.BSDF { return nil }

func (e *Emissive) Emitted(isec *core.IsecInfo, wo core.Vec3) core.Color {
	if isec.Shading.Dot(wo) <= 0 {
		return core.Color{}
	}
	return e.Emission
}
