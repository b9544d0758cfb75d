// Package media implements participating media: a Medium's IOR and
// per-channel extinction, and the VolumeIntegrator interface the surface
// integrator consults for transmittance and in-scattered radiance along a
// ray segment.
package media

import "github.com/dkershaw/go-pathtracer/pkg/core"

// Homogeneous is a spatially-uniform medium characterized by an index of
// refraction (used at its boundary by the Glass BSDF) and a per-channel
// absorption coefficient sigma_a.
type Homogeneous struct {
	IndexOfRefraction float64
	Sigma             core.Color
}

// NewHomogeneous creates a homogeneous medium.
func NewHomogeneous(ior float64, sigmaA core.Color) *Homogeneous {
	return &Homogeneous{IndexOfRefraction: ior, Sigma: sigmaA}
}

func (m *Homogeneous) IOR() float64      { return m.IndexOfRefraction }
func (m *Homogeneous) SigmaA() core.Color { return m.Sigma }

// Vacuum is the medium in effect when the media stack is empty: IOR 1, zero
// extinction.
var Vacuum = &Homogeneous{IndexOfRefraction: 1, Sigma: core.Color{}}
