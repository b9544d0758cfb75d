package material

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// CookTorrance is a diffuse substrate under a glossy microfacet coating: a
// Ward isotropic distribution for D with the classic min-form
// Torrance-Sparrow geometric term G. Like Plastic, a single sample
// stochastically picks one lobe rather than evaluating both, but the split
// here is a fixed weight (the diffuse color's intensity) rather than an
// angle-dependent Fresnel term.
type CookTorrance struct {
	Diffuse     core.Color
	Reflectance core.Color
	// Alpha is the Ward distribution's roughness parameter; smaller values
	// produce a tighter, more mirror-like highlight.
	Alpha float64
}

// NewCookTorrance creates a diffuse+glossy microfacet material.
func NewCookTorrance(diffuse, reflectance core.Color, alpha float64) *CookTorrance {
	return &CookTorrance{Diffuse: diffuse, Reflectance: reflectance, Alpha: alpha}
}

func (c *CookTorrance) GetBSDF(isec *core.IsecInfo, arena *core.Arena) core.BSDF {
	bsdf := cookTorranceBSDF{
		diffuse:     c.Diffuse,
		reflectance: c.Reflectance,
		alpha:       c.Alpha,
		wd:          clampWeight(c.Diffuse.Luminance()),
		frame:       core.NewFrameFromNormal(isec.Point, isec.Shading),
	}
	return arena.NewBSDF(bsdf)
}

func (c *CookTorrance) Emitted(isec *core.IsecInfo, wo core.Vec3) core.Color { return core.Color{} }

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}

type cookTorranceBSDF struct {
	diffuse     core.Color
	reflectance core.Color
	alpha       float64
	wd          float64 // mixture weight: probability of picking the diffuse lobe
	frame       core.Frame
}

func (b cookTorranceBSDF) Flags() core.BSDFFlags {
	return core.Reflective | core.Glossy | core.Diffuse
}

// wardD evaluates the isotropic Ward microfacet distribution at the given
// half-vector cosine.
func (b cookTorranceBSDF) wardD(cosThetaH float64) float64 {
	if cosThetaH <= 0 {
		return 0
	}
	cos2 := cosThetaH * cosThetaH
	tan2 := (1 - cos2) / cos2
	alpha2 := b.alpha * b.alpha
	return math.Exp(-tan2/alpha2) / (math.Pi * alpha2 * cos2 * cos2)
}

// geometryTerm is the Torrance-Sparrow minimum-form shadowing-masking term.
func geometryTerm(nDotH, nDotV, nDotL, vDotH float64) float64 {
	if vDotH <= 0 {
		return 0
	}
	g1 := 2 * nDotH * nDotV / vDotH
	g2 := 2 * nDotH * nDotL / vDotH
	return math.Min(1, math.Min(g1, g2))
}

func (b cookTorranceBSDF) evalDiffuse(woLocal, wiLocal core.Vec3) (core.Color, float64) {
	if !core.SameHemisphere(woLocal, wiLocal) {
		return core.Color{}, 0
	}
	pdf := core.CosineHemispherePDF(core.AbsCosTheta(wiLocal))
	return b.diffuse.Multiply(1.0 / math.Pi), pdf
}

// evalSpecular evaluates the Ward/Torrance-Sparrow specular lobe:
// f_s = F(v.h) D(n.h) G(v.h, n.h, n.l) / (pi (n.v)). The pdf is the Ward
// half-vector density D(n.h) (n.h) converted to a density over wi by
// dividing by 4 (v.h).
func (b cookTorranceBSDF) evalSpecular(woLocal, wiLocal core.Vec3) (core.Color, float64) {
	if !core.SameHemisphere(woLocal, wiLocal) {
		return core.Color{}, 0
	}
	nDotV := core.AbsCosTheta(woLocal)
	nDotL := core.AbsCosTheta(wiLocal)
	if nDotV <= 0 || nDotL <= 0 {
		return core.Color{}, 0
	}

	h := woLocal.Add(wiLocal).Normalize()
	nDotH := core.AbsCosTheta(h)
	vDotH := math.Abs(woLocal.Dot(h))

	d := b.wardD(nDotH)
	g := geometryTerm(nDotH, nDotV, nDotL, vDotH)
	f := SchlickFresnel(vDotH, 0.04)

	brdf := (d * g * f) / (math.Pi * nDotV)
	pdf := d * nDotH / (4 * vDotH)

	return b.reflectance.Multiply(brdf), pdf
}

func (b cookTorranceBSDF) eval(woLocal, wiLocal core.Vec3) (core.Color, float64) {
	diffuseValue, diffusePdf := b.evalDiffuse(woLocal, wiLocal)
	specValue, specPdf := b.evalSpecular(woLocal, wiLocal)

	value := diffuseValue.Multiply(b.wd).Add(specValue.Multiply(1 - b.wd))
	pdf := b.wd*diffusePdf + (1-b.wd)*specPdf
	return value, pdf
}

func (b cookTorranceBSDF) Eval(wo, wi core.Vec3) (core.Color, float64) {
	return b.eval(b.frame.ToLocal(wo), b.frame.ToLocal(wi))
}

func (b cookTorranceBSDF) Sample(wo core.Vec3, u core.Vec2) (core.BSDFSample, bool) {
	woLocal := b.frame.ToLocal(wo)
	if core.CosTheta(woLocal) <= 0 {
		return core.BSDFSample{}, false
	}

	if u.X < b.wd {
		remapped := core.Vec2{X: u.X / b.wd, Y: u.Y}
		wiLocal := core.CosineSampleHemisphere(remapped)
		value, pdf := b.eval(woLocal, wiLocal)
		if pdf <= 0 {
			return core.BSDFSample{}, false
		}
		return core.BSDFSample{
			Dir:   b.frame.FromLocal(wiLocal),
			Value: value,
			PDF:   pdf,
			Flags: core.Reflective | core.Diffuse,
		}, true
	}

	// Sample a microfacet normal from the Ward distribution via its
	// marginal theta_h CDF, then reflect wo about it to get wi.
	alpha2 := b.alpha * b.alpha
	tan2Theta := -alpha2 * math.Log(1-(u.X-b.wd)/(1-b.wd))
	cosThetaH := 1.0 / math.Sqrt(1+tan2Theta)
	sinThetaH := math.Sqrt(math.Max(0, 1-cosThetaH*cosThetaH))
	phi := 2 * math.Pi * u.Y
	h := core.Vec3{X: sinThetaH * math.Cos(phi), Y: sinThetaH * math.Sin(phi), Z: cosThetaH}

	wiLocal := core.Reflect(woLocal.Negate(), h)
	if !core.SameHemisphere(woLocal, wiLocal) {
		return core.BSDFSample{}, false
	}

	value, pdf := b.eval(woLocal, wiLocal)
	if pdf <= 0 {
		return core.BSDFSample{}, false
	}
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(wiLocal),
		Value: value,
		PDF:   pdf,
		Flags: core.Reflective | core.Glossy,
	}, true
}
