package scene

import (
	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/lights"
	"github.com/dkershaw/go-pathtracer/pkg/material"
	"github.com/dkershaw/go-pathtracer/pkg/primitives"
)

// NewCornellBox builds the classic 555-unit box: a red left wall, a green
// right wall, white floor/ceiling/back wall, a quad light set into the
// ceiling, and a mirror sphere plus a glass sphere standing in for the
// usual two boxes.
func NewCornellBox() (*Scene, error) {
	const size = 555.0

	white := material.NewLambert(core.Color{X: 0.73, Y: 0.73, Z: 0.73})
	red := material.NewLambert(core.Color{X: 0.65, Y: 0.05, Z: 0.05})
	green := material.NewLambert(core.Color{X: 0.12, Y: 0.45, Z: 0.15})
	mirror := material.NewMirror(core.Color{X: 0.8, Y: 0.8, Z: 0.9}, core.Color{X: 6.1, Y: 4.1, Z: 3.1})
	glass := material.NewGlass(1.5)

	floor := primitives.NewParallelogram(
		core.Vec3{X: 0, Y: 0, Z: 0},
		core.Vec3{X: size},
		core.Vec3{Z: size},
		white,
	)
	ceiling := primitives.NewParallelogram(
		core.Vec3{X: 0, Y: size, Z: 0},
		core.Vec3{X: size},
		core.Vec3{Z: size},
		white,
	)
	backWall := primitives.NewParallelogram(
		core.Vec3{X: 0, Y: 0, Z: size},
		core.Vec3{X: size},
		core.Vec3{Y: size},
		white,
	)
	leftWall := primitives.NewParallelogram(
		core.Vec3{X: 0, Y: 0, Z: 0},
		core.Vec3{Z: size},
		core.Vec3{Y: size},
		red,
	)
	rightWall := primitives.NewParallelogram(
		core.Vec3{X: size, Y: 0, Z: 0},
		core.Vec3{Y: size},
		core.Vec3{Z: size},
		green,
	)

	lightSize := 130.0
	lightOffset := (size - lightSize) / 2.0
	lightEmission := core.Color{X: 15, Y: 15, Z: 15}
	lightShape := primitives.NewParallelogram(
		core.Vec3{X: lightOffset, Y: size - 1, Z: lightOffset},
		core.Vec3{X: lightSize},
		core.Vec3{Z: lightSize},
		material.NewEmissive(lightEmission),
	)
	ceilingLight := lights.NewQuadLight(lightShape, lightEmission)

	leftSphere := primitives.NewSphere(core.Vec3{X: 185, Y: 82.5, Z: 169}, 82.5, mirror)
	rightSphere := primitives.NewSphere(core.Vec3{X: 370, Y: 90, Z: 351}, 90, glass)

	cfg := camera.Config{
		LookFrom:    core.Vec3{X: 278, Y: 278, Z: -800},
		LookAt:      core.Vec3{X: 278, Y: 278, Z: 0},
		Up:          core.Vec3{X: 0, Y: 1, Z: 0},
		VFov:        40,
		AspectRatio: 1,
		Aperture:    0,
	}
	cam := camera.NewCamera(cfg, false)

	b := &Builder{
		Camera: cam,
		Primitives: []core.Primitive{
			floor, ceiling, backWall, leftWall, rightWall,
			lightShape, leftSphere, rightSphere,
		},
		Lights:      []core.Light{ceilingLight},
		TopColor:    core.Color{},
		BottomColor: core.Color{},
	}
	return b.Build()
}
