package integrator

import (
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/sampling"
)

// TraceEyeRay is the render driver's entry point for a single top-level
// sample: intersect the scene, shade the hit (or return background/
// environment radiance on a miss), and guard against unbounded results. smp
// is this top-level sample's slice of the pixel's pre-generated SampleSet,
// threaded down to every direct-lighting estimate this path performs
// (including at recursive specular bounces). A NaN or Inf radiance is
// dropped rather than allowed to poison the pixel's running average; the
// event is recorded in rc.Diagnostics so a render summary can report how
// often it happened.
func TraceEyeRay(scene Scene, ray core.Ray, rc *core.RenderContext, smp sampling.Sample) core.Color {
	isec, hit := scene.Intersect(ray, rc.Arena, rc.Mailbox)

	var radiance core.Color
	if hit {
		radiance = Lo(scene, isec, ray.Direction.Negate(), rc, 0, smp)
	} else {
		radiance = scene.Background(ray)
	}

	if radiance.HasNaNOrInf() {
		rc.Diagnostics.DroppedUnboundedSamples++
		return core.Color{}
	}
	return radiance
}
