package material

import "github.com/dkershaw/go-pathtracer/pkg/core"

// Glass is a smooth dielectric BSDF: reflection and refraction are each
// available as a deterministic specular component, Fresnel-weighted, plus a
// stochastic Sample that picks one of the two per draw for callers that want
// a single importance-sampled ray.
type Glass struct {
	IOR core.Medium // supplies the dielectric's index of refraction
}

// NewGlass creates a dielectric material with the given index of
// refraction (measured from vacuum).
func NewGlass(ior float64) *Glass {
	return &Glass{IOR: constantMedium{ior: ior}}
}

type constantMedium struct{ ior float64 }

func (m constantMedium) IOR() float64       { return m.ior }
func (m constantMedium) SigmaA() core.Color { return core.Color{} }

func (g *Glass) GetBSDF(isec *core.IsecInfo, arena *core.Arena) core.BSDF {
	bsdf := glassBSDF{ior: g.IOR.IOR(), frame: core.NewFrameFromNormal(isec.Point, isec.Shading)}
	return arena.NewBSDF(bsdf)
}

func (g *Glass) Emitted(isec *core.IsecInfo, wo core.Vec3) core.Color { return core.Color{} }

// Medium returns the dielectric volume bounded by this surface, so the
// integrator can push it onto the media stack on refractive entry.
func (g *Glass) Medium() core.Medium { return g.IOR }

type glassBSDF struct {
	ior   float64
	frame core.Frame
}

func (b glassBSDF) Flags() core.BSDFFlags {
	return core.Reflective | core.Transmissive | core.Specular
}

// fresnelSplit computes the reflect/refract geometry and Fresnel weight
// shared by both the stochastic and deterministic sampling paths. Total
// internal reflection collapses the split to pure reflection (hasRefract
// false, fresnel forced to 1).
func (b glassBSDF) fresnelSplit(woLocal core.Vec3) (fresnel, etaiOverEtat float64, refractDir core.Vec3, hasRefract bool) {
	entering := core.CosTheta(woLocal) > 0
	etaiOverEtat = b.ior
	n := core.Vec3{X: 0, Y: 0, Z: 1}
	if entering {
		etaiOverEtat = 1.0 / b.ior
	} else {
		n = n.Negate()
	}

	cosThetaI := core.AbsCosTheta(woLocal)
	r0 := SchlickR0(b.ior)
	fresnel = SchlickFresnel(cosThetaI, r0)

	refractDir, hasRefract = core.Refract(woLocal.Negate(), n, etaiOverEtat)
	if !hasRefract {
		fresnel = 1
	}
	return
}

func (b glassBSDF) Sample(wo core.Vec3, u core.Vec2) (core.BSDFSample, bool) {
	woLocal := b.frame.ToLocal(wo)
	fresnel, etaiOverEtat, refractDir, hasRefract := b.fresnelSplit(woLocal)

	if u.X < fresnel {
		return b.reflectSample(woLocal, fresnel), true
	}
	if !hasRefract {
		return core.BSDFSample{}, false
	}
	return b.refractSample(refractDir, etaiOverEtat, 1-fresnel), true
}

// SampleSpecular returns the requested component (Reflective or
// Transmissive) deterministically, with no stochastic pick between them.
func (b glassBSDF) SampleSpecular(wo core.Vec3, component core.BSDFFlags) (core.BSDFSample, bool) {
	woLocal := b.frame.ToLocal(wo)
	fresnel, etaiOverEtat, refractDir, hasRefract := b.fresnelSplit(woLocal)

	switch component {
	case core.Reflective:
		return b.reflectSample(woLocal, fresnel), true
	case core.Transmissive:
		if !hasRefract {
			return core.BSDFSample{}, false
		}
		return b.refractSample(refractDir, etaiOverEtat, 1-fresnel), true
	default:
		return core.BSDFSample{}, false
	}
}

func (b glassBSDF) reflectSample(woLocal core.Vec3, fresnel float64) core.BSDFSample {
	wiLocal := core.Vec3{X: -woLocal.X, Y: -woLocal.Y, Z: woLocal.Z}
	value := core.Color{X: fresnel, Y: fresnel, Z: fresnel}.Multiply(1.0 / core.AbsCosTheta(wiLocal))
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(wiLocal),
		Value: value,
		PDF:   fresnel,
		Flags: core.Reflective | core.Specular,
	}
}

func (b glassBSDF) refractSample(refractDir core.Vec3, etaiOverEtat, transmittance float64) core.BSDFSample {
	// Radiance scales by (etaT/etaI)^2 for transmission across a boundary
	// with differing refractive indices (solid angle compression).
	radianceScale := 1.0 / (etaiOverEtat * etaiOverEtat)
	value := core.Color{X: transmittance, Y: transmittance, Z: transmittance}.
		Multiply(radianceScale / core.AbsCosTheta(refractDir))
	return core.BSDFSample{
		Dir:   b.frame.FromLocal(refractDir),
		Value: value,
		PDF:   transmittance,
		Flags: core.Transmissive | core.Specular,
	}
}

func (b glassBSDF) Eval(wo, wi core.Vec3) (core.Color, float64) { return core.Color{}, 0 }
