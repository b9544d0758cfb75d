package core

import "math"

// PowerHeuristic computes the power heuristic (beta=2) MIS weight for
// strategy f given sample counts and PDFs of both strategies, the weight
// applied to light-sampled and BSDF-sampled contributions in the direct
// lighting estimator.
func PowerHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	if fPdf == 0 {
		return 0
	}
	f := float64(nf) * fPdf
	g := float64(ng) * gPdf
	return (f * f) / (f*f + g*g)
}

// BalanceHeuristic computes the balance heuristic MIS weight.
func BalanceHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	if fPdf == 0 {
		return 0
	}
	f := float64(nf) * fPdf
	g := float64(ng) * gPdf
	return f / (f + g)
}

// UniformSampleDisk maps a uniform 2D sample in [0,1)^2 to a uniform point on
// the unit disk using the concentric (Shirley-Chiu) mapping, which avoids
// the distortion of polar mapping and is used for both lens sampling and
// cosine-weighted hemisphere sampling.
func UniformSampleDisk(u Vec2) Vec2 {
	ox := 2*u.X - 1
	oy := 2*u.Y - 1
	if ox == 0 && oy == 0 {
		return Vec2{0, 0}
	}

	var r, theta float64
	if math.Abs(ox) > math.Abs(oy) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}

// CosineSampleHemisphere maps u to a direction on the local +Z hemisphere
// with PDF proportional to cosine theta, via Malley's method (concentric
// disk sample lifted to the hemisphere).
func CosineSampleHemisphere(u Vec2) Vec3 {
	d := UniformSampleDisk(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return Vec3{d.X, d.Y, z}
}

// CosineHemispherePDF returns the PDF of CosineSampleHemisphere for a local
// direction with the given cosine theta.
func CosineHemispherePDF(cosTheta float64) float64 {
	return cosTheta / math.Pi
}

// UniformSampleSphere maps u to a uniformly distributed direction over the
// full sphere.
func UniformSampleSphere(u Vec2) Vec3 {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return Vec3{r * math.Cos(phi), r * math.Sin(phi), z}
}

// UniformSpherePDF returns the PDF of UniformSampleSphere, constant over the
// whole sphere.
func UniformSpherePDF() float64 { return 1.0 / (4.0 * math.Pi) }

// UniformSampleCone maps u to a direction uniformly distributed within a
// cone of half-angle given by cosThetaMax, in local +Z-aligned coordinates.
// Used for sampling spherical and distant area lights from outside their
// extent.
func UniformSampleCone(u Vec2, cosThetaMax float64) Vec3 {
	cosTheta := (1 - u.X) + u.X*cosThetaMax
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u.Y
	return Vec3{sinTheta * math.Cos(phi), sinTheta * math.Sin(phi), cosTheta}
}

// UniformConePDF returns the PDF of UniformSampleCone for the given
// half-angle cosine.
func UniformConePDF(cosThetaMax float64) float64 {
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}

// SphereUniformSolidAnglePDF returns the solid-angle PDF for uniformly
// sampling the full area of a sphere of the given radius, used as the
// fallback when the shading point lies inside the sphere's cone-sampling
// singularity (distance <= radius).
func SphereUniformSolidAnglePDF(radius float64) float64 {
	return 1.0 / (4.0 * math.Pi * radius * radius)
}

// SphereConePDF returns the solid-angle PDF for sampling a sphere light of
// the given radius from a point at the given distance, switching to uniform
// area sampling when the point lies inside the sphere.
func SphereConePDF(distance, radius float64) float64 {
	if distance <= radius {
		return SphereUniformSolidAnglePDF(radius)
	}
	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))
	return UniformConePDF(cosThetaMax)
}
