package lights

import "github.com/dkershaw/go-pathtracer/pkg/core"

// Sampler picks a light to sample for direct illumination and reports the
// probability with which it was chosen, so the integrator can divide out
// the selection probability from the returned solid-angle PDF.
type Sampler struct {
	lights  []core.Light
	weights []float64
}

// NewPowerSampler builds a sampler that weights each light by its Power(),
// except the environment light (if present, passed separately) which
// always receives exactly envLightFrac of the selection probability
// regardless of its nominal power — the spec's envlight_intens_frac knob.
func NewPowerSampler(lights []core.Light, env *Environment, envLightFrac float64) *Sampler {
	s := &Sampler{}

	localTotal := 0.0
	for _, l := range lights {
		localTotal += l.Power()
	}

	envWeight := 0.0
	if env != nil {
		envWeight = envLightFrac
	}
	localShare := 1 - envWeight

	for _, l := range lights {
		w := localShare / float64(len(lights))
		if localTotal > 0 {
			w = localShare * (l.Power() / localTotal)
		}
		s.lights = append(s.lights, l)
		s.weights = append(s.weights, w)
	}
	if env != nil {
		s.lights = append(s.lights, env)
		s.weights = append(s.weights, envWeight)
	}
	return s
}

// NewUniformSampler builds a sampler giving every light equal selection
// probability, used when scenes don't supply emission-based weighting.
func NewUniformSampler(lights []core.Light) *Sampler {
	s := &Sampler{lights: lights}
	if len(lights) == 0 {
		return s
	}
	w := 1.0 / float64(len(lights))
	for range lights {
		s.weights = append(s.weights, w)
	}
	return s
}

// Len reports how many lights the sampler can choose among.
func (s *Sampler) Len() int { return len(s.lights) }

// Pick selects a light using u as the selection variate and returns it
// along with its selection probability.
func (s *Sampler) Pick(u float64) (core.Light, float64) {
	if len(s.lights) == 0 {
		return nil, 0
	}
	cumulative := 0.0
	for i, w := range s.weights {
		cumulative += w
		if u <= cumulative {
			return s.lights[i], w
		}
	}
	last := len(s.lights) - 1
	return s.lights[last], s.weights[last]
}

// ProbabilityOf returns light's selection probability, used by the
// integrator when MIS-weighting a BSDF-sampled ray that happened to hit a
// known light.
func (s *Sampler) ProbabilityOf(light core.Light) float64 {
	for i, l := range s.lights {
		if l == light {
			return s.weights[i]
		}
	}
	return 0
}

// All returns every light the sampler knows about, for light-sweep MIS
// evaluation against an escaped BSDF-sampled ray.
func (s *Sampler) All() []core.Light { return s.lights }
