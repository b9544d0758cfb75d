package core

import "math/rand"

// Sampler is a narrow per-draw random-number source for choices that aren't
// registered as SampleSet channels. SampleSet-registered channels are
// pre-generated and shuffled up front; Sampler draws are plain independent
// randomness. The integrator and BSDFs in this module take their variates
// from SampleSet channels and do not draw from a Sampler.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler is a Sampler backed directly by a math/rand source.
type RandomSampler struct {
	rand *rand.Rand
}

// NewRandomSampler wraps rnd as a Sampler.
func NewRandomSampler(rnd *rand.Rand) *RandomSampler {
	return &RandomSampler{rand: rnd}
}

func (s *RandomSampler) Get1D() float64 { return s.rand.Float64() }
func (s *RandomSampler) Get2D() Vec2    { return Vec2{X: s.rand.Float64(), Y: s.rand.Float64()} }
func (s *RandomSampler) Get3D() Vec3 {
	return Vec3{X: s.rand.Float64(), Y: s.rand.Float64(), Z: s.rand.Float64()}
}
