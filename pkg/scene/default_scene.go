package scene

import (
	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/lights"
	"github.com/dkershaw/go-pathtracer/pkg/material"
	"github.com/dkershaw/go-pathtracer/pkg/primitives"
)

// NewGroundQuad creates a large, finite quad to stand in for an infinite
// ground plane: centered at center, lying in the XZ plane, normal pointing
// up.
func NewGroundQuad(center core.Vec3, size float64, mat core.Material) *primitives.Parallelogram {
	corner := core.Vec3{X: center.X - size/2, Y: center.Y, Z: center.Z - size/2}
	u := core.Vec3{X: size}
	v := core.Vec3{Z: size}
	return primitives.NewParallelogram(corner, u, v, mat)
}

// NewDefaultScene builds a small showcase scene: three spheres with
// distinct materials (a glass-coated plastic, a silver mirror, a glossy
// metal) plus a glass sphere enclosing a diffuse core, a ground plane,
// a distant sphere light, and a sky gradient.
func NewDefaultScene(camOverride *camera.Config) (*Scene, error) {
	cfg := camera.Config{
		LookFrom:    core.Vec3{X: 0, Y: 0.75, Z: 2},
		LookAt:      core.Vec3{X: 0, Y: 0.5, Z: -1},
		Up:          core.Vec3{X: 0, Y: 1, Z: 0},
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.05,
	}
	if camOverride != nil {
		cfg = *camOverride
	}
	cam := camera.NewCamera(cfg, false)

	lambertGreen := material.NewLambert(core.Color{X: 0.8, Y: 0.8, Z: 0}.Multiply(0.6))
	lambertBlue := material.NewLambert(core.Color{X: 0.1, Y: 0.2, Z: 0.5})
	silver := material.NewMirror(core.Color{X: 0.972, Y: 0.96, Z: 0.915}, core.Color{X: 6.1, Y: 4.1, Z: 3.1})
	gold := material.NewCookTorrance(core.Color{X: 0.1, Y: 0.08, Z: 0.02}, core.Color{X: 0.8, Y: 0.6, Z: 0.2}, 0.3)
	glass := material.NewGlass(1.5)
	coatedRed := material.NewPlastic(core.Color{X: 0.65, Y: 0.25, Z: 0.2}, 1.5)

	sphereCenter := primitives.NewSphere(core.Vec3{X: 0, Y: 0.5, Z: -1}, 0.5, coatedRed)
	sphereLeft := primitives.NewSphere(core.Vec3{X: -1, Y: 0.5, Z: -1}, 0.5, silver)
	sphereRight := primitives.NewSphere(core.Vec3{X: 1, Y: 0.5, Z: -1}, 0.5, gold)
	solidGlassSphere := primitives.NewSphere(core.Vec3{X: 0.5, Y: 0.25, Z: -0.5}, 0.25, glass)

	// Glass sphere with a smaller diffuse sphere at its center; the space
	// between the two surfaces is inside the glass, with no air gap.
	hollowOuter := primitives.NewSphere(core.Vec3{X: -0.5, Y: 0.25, Z: -0.5}, 0.25, glass)
	hollowCore := primitives.NewSphere(core.Vec3{X: -0.5, Y: 0.25, Z: -0.5}, 0.20, lambertBlue)

	ground := NewGroundQuad(core.Vec3{}, 10000, lambertGreen)

	sphereLightShape := primitives.NewSphere(core.Vec3{X: 30, Y: 30.5, Z: 15}, 10, material.NewEmissive(core.Color{X: 15, Y: 14, Z: 13}))
	sphereLight := lights.NewQuadLight(sphereLightShape, core.Color{X: 15, Y: 14, Z: 13})

	b := &Builder{
		Camera: cam,
		Primitives: []core.Primitive{
			sphereCenter, sphereLeft, sphereRight, solidGlassSphere,
			hollowOuter, hollowCore, ground, sphereLightShape,
		},
		Lights:             []core.Light{sphereLight},
		EnvLightIntensFrac: 0.5,
		TopColor:           core.Color{X: 0.5, Y: 0.7, Z: 1.0},
		BottomColor:        core.Color{X: 1.0, Y: 1.0, Z: 1.0},
	}
	return b.Build()
}
