package media

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// VolumeIntegrator computes the effect of the medium a ray segment travels
// through: how much of the surface radiance at the far end survives
// (Transmittance), and how much radiance is added by in-scattering and
// emission along the way (Li).
type VolumeIntegrator interface {
	Transmittance(medium core.Medium, length float64) core.Color
	Li(medium core.Medium, length float64) core.Color
}

// FilterVolumeInteg is the default volume integrator: pure absorption,
// `exp(-sigma_a * length)` transmittance per channel and zero added
// radiance. It models a tinted but non-scattering medium (frosted/colored
// glass), not genuine participating fog; a scattering integrator can be
// swapped in behind the same interface without touching the surface
// integrator.
type FilterVolumeInteg struct{}

func (FilterVolumeInteg) Transmittance(medium core.Medium, length float64) core.Color {
	if medium == nil {
		return core.Color{X: 1, Y: 1, Z: 1}
	}
	sigma := medium.SigmaA()
	return core.Color{
		X: math.Exp(-sigma.X * length),
		Y: math.Exp(-sigma.Y * length),
		Z: math.Exp(-sigma.Z * length),
	}
}

func (FilterVolumeInteg) Li(medium core.Medium, length float64) core.Color {
	return core.Color{}
}
