// Package integrator implements the direct-lighting MIS estimator and the
// recursive surface integrator (Lo/Li) that drives path construction,
// including media-stack bookkeeping across refractive boundaries.
package integrator

import (
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/lights"
)

// Scene is the read-only view of scene state the integrator needs: ray
// intersection, the light sampler, an optional environment light, and the
// horizon past which rays are considered escaped.
type Scene interface {
	Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool)
	Occludes(ray core.Ray, mailbox *core.Mailbox) bool
	LightSampler() *lights.Sampler
	Environment() *lights.Environment
	Horizon() float64
	Background(ray core.Ray) core.Color
}
