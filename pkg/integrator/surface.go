package integrator

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/media"
	"github.com/dkershaw/go-pathtracer/pkg/sampling"
)

// volumeInteg is the volume integrator every ray segment is composed
// through. The spec's FilterVolumeInteg is the only implementation needed
// today; a scattering integrator can be swapped in here without touching
// the surface integrator below.
var volumeInteg media.VolumeIntegrator = media.FilterVolumeInteg{}

// specularComponents is the fixed pair of delta lobes the surface
// integrator probes for at every non-emissive intersection.
var specularComponents = [2]core.BSDFFlags{core.Reflective, core.Transmissive}

// Lo computes outgoing radiance at isec toward wo: emission, direct
// illumination (multiple importance sampled over lights and the BSDF), and
// a recursive term for each specular (delta) lobe the BSDF exposes. There
// is deliberately no recursive bounce for diffuse/glossy lobes: this
// integrator estimates direct lighting plus recursive specular reflection
// and refraction, not full bidirectional indirect transport.
func Lo(scene Scene, isec *core.IsecInfo, wo core.Vec3, rc *core.RenderContext, depth int, smp sampling.Sample) core.Color {
	if depth > rc.Params.MaxDepth {
		return core.Color{}
	}

	radiance := isec.Material.Emitted(isec, wo)

	bsdf := isec.Material.GetBSDF(isec, rc.Arena)
	if bsdf == nil {
		return radiance
	}

	radiance = radiance.Add(sampleDirect(scene, isec, bsdf, wo, rc, smp))

	sc, hasSpecular := bsdf.(core.SpecularComponent)
	if !hasSpecular {
		return radiance
	}

	for _, component := range specularComponents {
		s, ok := sc.SampleSpecular(wo, component)
		if !ok || s.Value.Luminance() <= 0 {
			continue
		}
		cosine := math.Abs(isec.Shading.Dot(s.Dir))
		refracting := component == core.Transmissive
		li := traceSpecular(scene, isec, s.Dir, refracting, rc, depth+1, smp)
		radiance = radiance.Add(s.Value.Multiply(cosine).MultiplyVec(li))
	}

	return radiance
}

// traceSpecular spawns a ray from isec along dir and recurses into the
// scene, maintaining the media stack across refractive boundaries and
// composing the result through the volume integrator for whatever medium
// the segment traveled through.
func traceSpecular(scene Scene, isec *core.IsecInfo, dir core.Vec3, refracting bool, rc *core.RenderContext, depth int, smp sampling.Sample) core.Color {
	if depth > rc.Params.MaxDepth {
		return core.Color{}
	}

	ray := isec.SpawnRay(dir, rc.Params.MinTrace).WithT1(scene.Horizon())

	pushed := false
	poppedMedium := core.Medium(nil)
	popped := false
	if refracting {
		if isec.FrontFace {
			if mp, ok := isec.Material.(core.MediumProvider); ok {
				rc.VolumeStack.Push(mp.Medium(), isec.Primitive.ID())
				pushed = true
			}
		} else {
			poppedMedium = rc.VolumeStack.Current()
			popped = rc.VolumeStack.Pop(isec.Primitive.ID())
			if !popped {
				poppedMedium = nil
			}
		}
	}

	medium := rc.VolumeStack.Current()

	var result core.Color
	var length float64
	nextIsec, hit := scene.Intersect(ray, rc.Arena, rc.Mailbox)
	if hit {
		length = nextIsec.T
		result = Lo(scene, nextIsec, dir.Negate(), rc, depth, smp)
	} else {
		length = scene.Horizon()
		result = scene.Background(ray)
	}

	if medium != nil {
		result = result.MultiplyVec(volumeInteg.Transmittance(medium, length)).Add(volumeInteg.Li(medium, length))
	}

	// Undo this branch's stack mutation so a sibling specular component
	// (e.g. glass's reflection, evaluated right after its refraction) sees
	// the media stack exactly as it stood before this recursive call.
	if pushed {
		rc.VolumeStack.Pop(isec.Primitive.ID())
	}
	if popped {
		rc.VolumeStack.Push(poppedMedium, isec.Primitive.ID())
	}

	return result
}
