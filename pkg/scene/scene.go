// Package scene assembles primitives, materials, lights, and a camera into
// the read-only Scene the integrator traces rays against: a BVH for
// intersection, a light sampler for next-event estimation, and an optional
// environment light for background radiance.
package scene

import (
	"github.com/dkershaw/go-pathtracer/pkg/accel"
	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/lights"
)

// Scene is the immutable, shared-read scene state every render worker
// traces against. It implements integrator.Scene.
type Scene struct {
	Camera *camera.Camera
	bvh    *accel.BVH
	lights []core.Light
	sampler *lights.Sampler
	env     *lights.Environment

	// TopColor/BottomColor form a vertical gradient background used when no
	// environment light is present.
	TopColor, BottomColor core.Color

	horizon   float64
	primCount int
}

// Builder accumulates primitives and lights before the scene is frozen into
// its BVH and light sampler.
type Builder struct {
	Camera             *camera.Camera
	Primitives         []core.Primitive
	Lights             []core.Light
	Env                *lights.Environment
	EnvLightIntensFrac float64
	TopColor, BottomColor core.Color
}

// Build finalizes the builder into a renderable Scene: it constructs the
// acceleration structure and the power-weighted light sampler. A scene with
// no primitives is a build error, since no ray could ever hit anything.
func (b *Builder) Build() (*Scene, error) {
	if len(b.Primitives) == 0 {
		return nil, core.NewSceneBuildError("scene has no primitives")
	}
	if b.Camera == nil {
		return nil, core.NewSceneBuildError("scene has no camera")
	}

	bvh := accel.NewBVH(b.Primitives)

	envFrac := b.EnvLightIntensFrac
	if b.Env == nil {
		envFrac = 0
	}
	sampler := lights.NewPowerSampler(b.Lights, b.Env, envFrac)

	horizon := bvh.Bounds().Centroid().Subtract(bvh.Bounds().Min).Length() * 8
	if horizon <= 0 {
		horizon = 1e6
	}

	return &Scene{
		Camera:      b.Camera,
		bvh:         bvh,
		lights:      b.Lights,
		sampler:     sampler,
		env:         b.Env,
		TopColor:    b.TopColor,
		BottomColor: b.BottomColor,
		horizon:     horizon,
		primCount:   len(b.Primitives),
	}, nil
}

func (s *Scene) Intersect(ray core.Ray, arena *core.Arena, mailbox *core.Mailbox) (*core.IsecInfo, bool) {
	return s.bvh.Intersect(ray, arena, mailbox)
}

func (s *Scene) Occludes(ray core.Ray, mailbox *core.Mailbox) bool {
	return s.bvh.Occludes(ray, mailbox)
}

func (s *Scene) LightSampler() *lights.Sampler { return s.sampler }
func (s *Scene) Environment() *lights.Environment { return s.env }
func (s *Scene) Horizon() float64 { return s.horizon }

// Background returns the radiance seen by a ray that escapes the scene: the
// environment map if one is present, otherwise a simple vertical gradient
// between BottomColor and TopColor.
func (s *Scene) Background(ray core.Ray) core.Color {
	dir := ray.Direction.Normalize()
	if s.env != nil {
		c, _ := s.env.Eval(core.Vec3{}, dir, s.horizon, nil, nil)
		return c
	}
	t := 0.5 * (dir.Y + 1.0)
	return s.BottomColor.Multiply(1 - t).Add(s.TopColor.Multiply(t))
}

// PrimitiveCount returns the total number of leaf primitives the scene was
// built from, for reporting.
func (s *Scene) PrimitiveCount() int { return s.primCount }
