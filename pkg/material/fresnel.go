// Package material implements the BSDFs bound at a shading point: Lambert,
// Mirror (conductor), Glass (dielectric), Plastic (layered coherent +
// diffuse), and a Cook-Torrance microfacet glossy BSDF, plus an Emissive
// material with no scattering component.
package material

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// SchlickFresnel computes Schlick's approximation to the dielectric Fresnel
// reflectance for a given cosine of the incidence angle and the material's
// normal-incidence reflectance r0.
func SchlickFresnel(cosTheta, r0 float64) float64 {
	x := 1 - cosTheta
	if x < 0 {
		x = 0
	}
	x2 := x * x
	return r0 + (1-r0)*x2*x2*x
}

// SchlickR0 computes the normal-incidence reflectance r0 for a dielectric
// boundary with the given index-of-refraction ratio.
func SchlickR0(iorRatio float64) float64 {
	r := (iorRatio - 1) / (iorRatio + 1)
	return r * r
}

// ConductorFresnel computes the unpolarized Fresnel reflectance at a
// conductor (metal) interface given the cosine of the incidence angle and
// the complex index of refraction (n, k). It averages the s- and
// p-polarized reflectances, the standard closed form used when the full
// complex Fresnel equations aren't needed per-wavelength.
func ConductorFresnel(cosThetaI, n, k float64) float64 {
	cosThetaI = math.Max(0, math.Min(1, cosThetaI))
	sin2ThetaI := 1 - cosThetaI*cosThetaI

	n2 := n * n
	k2 := k * k

	t0 := n2 - k2 - sin2ThetaI
	a2plusb2 := math.Sqrt(math.Max(0, t0*t0+4*n2*k2))
	t1 := a2plusb2 + cosThetaI*cosThetaI
	a := math.Sqrt(math.Max(0, 0.5*(a2plusb2+t0)))
	t2 := 2 * a * cosThetaI
	rs := (t1 - t2) / (t1 + t2)

	t3 := cosThetaI * cosThetaI * a2plusb2 + sin2ThetaI*sin2ThetaI
	t4 := t2 * sin2ThetaI
	rp := rs * (t3 - t4) / (t3 + t4)

	return 0.5 * (rs + rp)
}

// ConductorFresnelColor evaluates ConductorFresnel independently per channel
// for a tinted metal whose (n, k) vary with wavelength.
func ConductorFresnelColor(cosThetaI float64, n, k core.Color) core.Color {
	return core.Color{
		X: ConductorFresnel(cosThetaI, n.X, k.X),
		Y: ConductorFresnel(cosThetaI, n.Y, k.Y),
		Z: ConductorFresnel(cosThetaI, n.Z, k.Z),
	}
}
