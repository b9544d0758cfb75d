package integrator

import (
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/sampling"
)

// Channel names the direct-lighting estimator expects the render driver to
// register on the per-pixel SampleSet: a per-light-sample (UV, float) pair
// used by the light strategy, and a per-BSDF-sample UV used by the BSDF
// strategy. The driver sizes each channel's subCount to the matching
// RenderParams sample count.
const (
	LightUVChannel   = "light_param"
	LightPickChannel = "light_choice"
	BSDFUVChannel    = "bsdf_param"
)

// sampleDirect estimates direct illumination at isec with multiple
// importance sampling over two strategies: sampling the lights directly,
// and sampling the BSDF and checking whether the drawn direction happens to
// land on a light. Each strategy is averaged over its own configured sample
// count and the two averages are summed, per the spec's direct-illumination
// estimator. Each sub-sample i draws its {light_param, bsdf_param,
// light_choice} triple from smp's pre-generated, stratified channels rather
// than the RNG directly, so direct lighting gets the same decorrelation
// benefit as the primary pixel/lens samples.
func sampleDirect(scene Scene, isec *core.IsecInfo, bsdf core.BSDF, wo core.Vec3, rc *core.RenderContext, smp sampling.Sample) core.Color {
	total := core.Color{}

	n := rc.Params.NumLightSamples
	if n > 0 {
		sum := core.Color{}
		for i := 0; i < n; i++ {
			sum = sum.Add(lightStrategySample(scene, isec, bsdf, wo, rc, smp, i))
		}
		total = total.Add(sum.Multiply(1.0 / float64(n)))
	}

	m := rc.Params.NumBSDFSamples
	if m > 0 {
		sum := core.Color{}
		for i := 0; i < m; i++ {
			sum = sum.Add(bsdfStrategySample(scene, isec, bsdf, wo, rc, smp, i))
		}
		total = total.Add(sum.Multiply(1.0 / float64(m)))
	}

	return total
}

// lightStrategySample draws one light and one direction toward it, MIS
// weighted against the BSDF's own pdf for that direction. bsdf.Eval
// returning pdf 0 for purely specular BSDFs makes this contribute zero
// automatically, with no special-casing needed here.
func lightStrategySample(scene Scene, isec *core.IsecInfo, bsdf core.BSDF, wo core.Vec3, rc *core.RenderContext, smp sampling.Sample, i int) core.Color {
	sampler := scene.LightSampler()
	if sampler.Len() == 0 {
		return core.Color{}
	}

	light, selectionProb := sampler.Pick(smp.Float(LightPickChannel, i))
	if selectionProb <= 0 {
		return core.Color{}
	}

	u := smp.UV(LightUVChannel, i)
	ls, ok := light.Sample(isec.Point, u)
	if !ok || ls.PDF <= 0 || ls.Li.Luminance() <= 0 {
		return core.Color{}
	}

	cosine := isec.Shading.Dot(ls.Dir)
	if cosine <= 0 {
		return core.Color{}
	}

	pdfLight := ls.PDF * selectionProb
	shadowRay := isec.SpawnRay(ls.Dir, rc.Params.MinTrace).WithT1(ls.Distance - rc.Params.MinTrace)
	if scene.Occludes(shadowRay, rc.Mailbox) {
		return core.Color{}
	}

	f, bsdfPdf := bsdf.Eval(wo, ls.Dir)
	if f.Luminance() <= 0 {
		return core.Color{}
	}

	weight := 1.0
	if !ls.Delta {
		weight = core.PowerHeuristic(1, pdfLight, 1, bsdfPdf)
	}

	return f.MultiplyVec(ls.Li).Multiply(cosine * weight / pdfLight)
}

// bsdfStrategySample draws one non-specular BSDF sample and checks whether
// it directly escapes to a light (area light surface or environment),
// weighting the result against the combined light-sampling pdf for that
// same direction. A sample that lands on the BSDF's specular component is
// skipped: specular scattering is handled by the surface integrator's
// recursive step, never by this estimator.
func bsdfStrategySample(scene Scene, isec *core.IsecInfo, bsdf core.BSDF, wo core.Vec3, rc *core.RenderContext, smp sampling.Sample, i int) core.Color {
	u := smp.UV(BSDFUVChannel, i)
	s, ok := bsdf.Sample(wo, u)
	if !ok || s.PDF <= 0 || s.Flags.Has(core.Specular) {
		return core.Color{}
	}

	cosine := isec.Shading.Dot(s.Dir)
	if cosine <= 0 {
		return core.Color{}
	}

	ray := isec.SpawnRay(s.Dir, rc.Params.MinTrace)
	hitIsec, hit := scene.Intersect(ray, rc.Arena, rc.Mailbox)

	var emitted core.Color
	var dist float64
	if hit {
		emitted = hitIsec.Material.Emitted(hitIsec, ray.Direction.Negate())
		dist = hitIsec.T
	} else {
		emitted = scene.Background(ray)
		dist = scene.Horizon()
	}
	if emitted.Luminance() <= 0 {
		return core.Color{}
	}

	pdfLight := lightPDFAt(scene, isec.Point, s.Dir, dist, rc)
	if pdfLight <= 0 {
		return core.Color{}
	}

	weight := core.PowerHeuristic(1, s.PDF, 1, pdfLight)
	return s.Value.Multiply(cosine * weight / s.PDF).MultiplyVec(emitted)
}

// lightPDFAt sums, over every non-delta light in the scene, the solid-angle
// pdf of having sampled direction dir from point via that light's own
// Sample method, weighted by its selection probability in the sampler.
// This is the light strategy's combined density, used to MIS-weight a
// BSDF-sampled direction that happens to land on a light. rc's arena and
// mailbox are handed to each light's Eval so an area light's own
// intersection test reuses the caller's scratch space instead of
// allocating its own.
func lightPDFAt(scene Scene, point, dir core.Vec3, dist float64, rc *core.RenderContext) float64 {
	sampler := scene.LightSampler()
	total := 0.0
	for _, light := range sampler.All() {
		if light.IsDelta() {
			continue
		}
		_, pdf := light.Eval(point, dir, dist, rc.Arena, rc.Mailbox)
		if pdf <= 0 {
			continue
		}
		total += pdf * sampler.ProbabilityOf(light)
	}
	return total
}
