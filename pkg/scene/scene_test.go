package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/material"
	"github.com/dkershaw/go-pathtracer/pkg/primitives"
)

func testCamera() *camera.Camera {
	return camera.NewCamera(camera.Config{
		LookFrom:    core.Vec3{Z: 1},
		LookAt:      core.Vec3{},
		Up:          core.Vec3{Y: 1},
		VFov:        40,
		AspectRatio: 1,
	}, false)
}

func TestBuilderRejectsEmptyScene(t *testing.T) {
	b := &Builder{Camera: testCamera()}
	_, err := b.Build()
	require.Error(t, err)
}

func TestBuilderRejectsMissingCamera(t *testing.T) {
	sphere := primitives.NewSphere(core.Vec3{}, 1, material.NewLambert(core.Color{X: 0.5, Y: 0.5, Z: 0.5}))
	b := &Builder{Primitives: []core.Primitive{sphere}}
	_, err := b.Build()
	require.Error(t, err)
}

func TestBuilderBuildsMinimalScene(t *testing.T) {
	sphere := primitives.NewSphere(core.Vec3{}, 1, material.NewLambert(core.Color{X: 0.5, Y: 0.5, Z: 0.5}))
	b := &Builder{Camera: testCamera(), Primitives: []core.Primitive{sphere}}

	s, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Same(t, b.Camera, s.Camera)
}

func TestNewDefaultSceneBuilds(t *testing.T) {
	s, err := NewDefaultScene(nil)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewCornellBoxBuilds(t *testing.T) {
	s, err := NewCornellBox()
	require.NoError(t, err)
	require.NotNil(t, s)
}
