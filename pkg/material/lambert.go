package material

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// Lambert is a perfectly diffuse BRDF: f = albedo / pi, importance-sampled
// with a cosine-weighted hemisphere distribution so the integrand is
// constant (pdf cancels the cosine term) and variance comes only from
// albedo texture, not from the cosine lobe itself.
type Lambert struct {
	Albedo core.Color
}

// NewLambert creates a Lambertian material with the given diffuse albedo.
func NewLambert(albedo core.Color) *Lambert {
	return &Lambert{Albedo: albedo}
}

func (l *Lambert) GetBSDF(isec *core.IsecInfo, arena *core.Arena) core.BSDF {
	bsdf := lambertBSDF{albedo: l.Albedo, frame: core.NewFrameFromNormal(isec.Point, isec.Shading)}
	return arena.NewBSDF(bsdf)
}

func (l *Lambert) Emitted(isec *core.IsecInfo, wo core.Vec3) core.Color { return core.Color{} }

type lambertBSDF struct {
	albedo core.Color
	frame  core.Frame
}

func (b lambertBSDF) Flags() core.BSDFFlags { return core.Reflective | core.Diffuse }

func (b lambertBSDF) Sample(wo core.Vec3, u core.Vec2) (core.BSDFSample, bool) {
	woLocal := b.frame.ToLocal(wo)
	if core.CosTheta(woLocal) <= 0 {
		return core.BSDFSample{}, false
	}
	wiLocal := core.CosineSampleHemisphere(u)
	value, pdf := b.eval(woLocal, wiLocal)
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(wiLocal),
		Value: value,
		PDF:   pdf,
		Flags: b.Flags(),
	}, true
}

func (b lambertBSDF) Eval(wo, wi core.Vec3) (core.Color, float64) {
	return b.eval(b.frame.ToLocal(wo), b.frame.ToLocal(wi))
}

func (b lambertBSDF) eval(woLocal, wiLocal core.Vec3) (core.Color, float64) {
	if !core.SameHemisphere(woLocal, wiLocal) {
		return core.Color{}, 0
	}
	pdf := core.CosineHemispherePDF(core.AbsCosTheta(wiLocal))
	return b.albedo.Multiply(1.0 / math.Pi), pdf
}
