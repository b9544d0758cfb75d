package material

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// Plastic is a thin layered BSDF: a coherent (specular) dielectric surface
// reflection over a diffuse substrate. At each sample it stochastically
// chooses between the two lobes, weighted by the dielectric Fresnel term at
// the current angle, rather than always evaluating both (a single ray
// either bounces off the coating or scatters off the substrate).
type Plastic struct {
	Diffuse core.Color
	IOR     float64
}

// NewPlastic creates a Plastic material with the given substrate diffuse
// color and surface-coating index of refraction.
func NewPlastic(diffuse core.Color, ior float64) *Plastic {
	return &Plastic{Diffuse: diffuse, IOR: ior}
}

func (p *Plastic) GetBSDF(isec *core.IsecInfo, arena *core.Arena) core.BSDF {
	bsdf := plasticBSDF{diffuse: p.Diffuse, ior: p.IOR, frame: core.NewFrameFromNormal(isec.Point, isec.Shading)}
	return arena.NewBSDF(bsdf)
}

func (p *Plastic) Emitted(isec *core.IsecInfo, wo core.Vec3) core.Color { return core.Color{} }

type plasticBSDF struct {
	diffuse core.Color
	ior     float64
	frame   core.Frame
}

func (b plasticBSDF) Flags() core.BSDFFlags {
	return core.Reflective | core.Specular | core.Diffuse
}

func (b plasticBSDF) fresnel(cosTheta float64) float64 {
	return SchlickFresnel(cosTheta, SchlickR0(b.ior))
}

func (b plasticBSDF) Sample(wo core.Vec3, u core.Vec2) (core.BSDFSample, bool) {
	woLocal := b.frame.ToLocal(wo)
	if core.CosTheta(woLocal) <= 0 {
		return core.BSDFSample{}, false
	}

	fr := b.fresnel(core.AbsCosTheta(woLocal))
	if u.X < fr {
		wiLocal := core.Vec3{X: -woLocal.X, Y: -woLocal.Y, Z: woLocal.Z}
		value := core.Color{X: fr, Y: fr, Z: fr}.Multiply(1.0 / core.AbsCosTheta(wiLocal))
		return core.BSDFSample{
			Dir:   b.frame.FromLocal(wiLocal),
			Value: value,
			PDF:   fr,
			Flags: core.Reflective | core.Specular,
		}, true
	}

	// Remap u.X back into [0,1) for the diffuse lobe's cosine sample so the
	// stochastic split doesn't bias the hemisphere sample toward one edge.
	remapped := core.Vec2{X: (u.X - fr) / (1 - fr), Y: u.Y}
	wiLocal := core.CosineSampleHemisphere(remapped)
	value, diffusePdf := b.evalDiffuse(woLocal, wiLocal)
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(wiLocal),
		Value: value,
		PDF:   (1 - fr) * diffusePdf,
		Flags: core.Reflective | core.Diffuse,
	}, true
}

func (b plasticBSDF) evalDiffuse(woLocal, wiLocal core.Vec3) (core.Color, float64) {
	if !core.SameHemisphere(woLocal, wiLocal) {
		return core.Color{}, 0
	}
	pdf := core.CosineHemispherePDF(core.AbsCosTheta(wiLocal))
	return b.diffuse.Multiply(1.0 / math.Pi), pdf
}

// Eval only returns the diffuse lobe's contribution: the coating's specular
// lobe is a delta distribution and, like any purely specular component,
// never surfaces through Eval.
func (b plasticBSDF) Eval(wo, wi core.Vec3) (core.Color, float64) {
	woLocal := b.frame.ToLocal(wo)
	wiLocal := b.frame.ToLocal(wi)
	if core.CosTheta(woLocal) <= 0 {
		return core.Color{}, 0
	}
	fr := b.fresnel(core.AbsCosTheta(woLocal))
	value, pdf := b.evalDiffuse(woLocal, wiLocal)
	return value, (1 - fr) * pdf
}

// SampleSpecular returns the coating's reflected direction and Fresnel
// value; Plastic has no transmissive component.
func (b plasticBSDF) SampleSpecular(wo core.Vec3, component core.BSDFFlags) (core.BSDFSample, bool) {
	if component != core.Reflective {
		return core.BSDFSample{}, false
	}
	woLocal := b.frame.ToLocal(wo)
	if core.CosTheta(woLocal) <= 0 {
		return core.BSDFSample{}, false
	}
	fr := b.fresnel(core.AbsCosTheta(woLocal))
	wiLocal := core.Vec3{X: -woLocal.X, Y: -woLocal.Y, Z: woLocal.Z}
	value := core.Color{X: fr, Y: fr, Z: fr}.Multiply(1.0 / core.AbsCosTheta(wiLocal))
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(wiLocal),
		Value: value,
		PDF:   fr,
		Flags: core.Reflective | core.Specular,
	}, true
}
