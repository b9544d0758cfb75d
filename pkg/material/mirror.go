package material

import "github.com/dkershaw/go-pathtracer/pkg/core"

// Mirror is a perfectly specular conductor (metal) reflector. Its
// reflectance is the Fresnel term for a conductor with the given complex
// index of refraction (n, k), evaluated at the incidence angle rather than
// held constant, so grazing reflections brighten the way real metals do.
type Mirror struct {
	N, K core.Color // complex index of refraction (real, imaginary parts)
}

// NewMirror creates a conductor mirror from reference IOR values. Common
// reference values: aluminum n=(1.66,0.88,0.52) k=(9.22,6.27,4.84); gold
// n=(0.143,0.375,1.44) k=(3.98,2.39,1.60).
func NewMirror(n, k core.Color) *Mirror {
	return &Mirror{N: n, K: k}
}

func (m *Mirror) GetBSDF(isec *core.IsecInfo, arena *core.Arena) core.BSDF {
	bsdf := mirrorBSDF{n: m.N, k: m.K, frame: core.NewFrameFromNormal(isec.Point, isec.Shading)}
	return arena.NewBSDF(bsdf)
}

func (m *Mirror) Emitted(isec *core.IsecInfo, wo core.Vec3) core.Color { return core.Color{} }

type mirrorBSDF struct {
	n, k  core.Color
	frame core.Frame
}

func (b mirrorBSDF) Flags() core.BSDFFlags { return core.Reflective | core.Specular }

func (b mirrorBSDF) Sample(wo core.Vec3, u core.Vec2) (core.BSDFSample, bool) {
	woLocal := b.frame.ToLocal(wo)
	if core.CosTheta(woLocal) <= 0 {
		return core.BSDFSample{}, false
	}
	wiLocal := core.Vec3{X: -woLocal.X, Y: -woLocal.Y, Z: woLocal.Z}
	fr := ConductorFresnelColor(core.CosTheta(woLocal), b.n, b.k)

	// A delta BSDF's "value" already incorporates the 1/cos(theta) that
	// would otherwise cancel against the integrator's cosine-weighting:
	// sample is treated as carrying implicit pdf 1 by the integrator.
	value := fr.Multiply(1.0 / core.AbsCosTheta(wiLocal))
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(wiLocal),
		Value: value,
		PDF:   1,
		Flags: b.Flags(),
	}, true
}

// Eval always returns pdf 0: a purely specular BSDF can never be hit by
// chance along an arbitrary wi, so it never participates in light-sampling
// MIS evaluation.
func (b mirrorBSDF) Eval(wo, wi core.Vec3) (core.Color, float64) { return core.Color{}, 0 }

// SampleSpecular deterministically returns the reflected direction and its
// angle-dependent Fresnel value; Mirror has no transmissive component.
func (b mirrorBSDF) SampleSpecular(wo core.Vec3, component core.BSDFFlags) (core.BSDFSample, bool) {
	if component != core.Reflective {
		return core.BSDFSample{}, false
	}
	return b.Sample(wo, core.Vec2{})
}
