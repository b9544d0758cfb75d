package lights

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/material"
	"github.com/dkershaw/go-pathtracer/pkg/primitives"
)

func testQuadLight(power core.Color) *QuadLight {
	shape := primitives.NewSphere(core.Vec3{}, 1, material.NewEmissive(power))
	return NewQuadLight(shape, power)
}

func TestPowerSamplerWeightsProportionalToPower(t *testing.T) {
	bright := testQuadLight(core.Color{X: 30, Y: 30, Z: 30})
	dim := testQuadLight(core.Color{X: 3, Y: 3, Z: 3})

	s := NewPowerSampler([]core.Light{bright, dim}, nil, 0)

	_, pBright := s.Pick(0)
	_, pDim := s.Pick(0.999)

	require.InDelta(t, float64(30.0/33.0), pBright, 1e-9)
	require.InDelta(t, float64(3.0/33.0), pDim, 1e-9)
}

func TestPowerSamplerReservesEnvironmentFraction(t *testing.T) {
	light := testQuadLight(core.Color{X: 10, Y: 10, Z: 10})
	env := &Environment{}

	s := NewPowerSampler([]core.Light{light}, env, 0.25)

	require.Equal(t, 2, s.Len())
	require.InDelta(t, 0.25, s.ProbabilityOf(env), 1e-9)
	require.InDelta(t, 0.75, s.ProbabilityOf(light), 1e-9)
}

func TestUniformSamplerSplitsEvenly(t *testing.T) {
	a := testQuadLight(core.Color{X: 100, Y: 0, Z: 0})
	b := testQuadLight(core.Color{X: 1, Y: 0, Z: 0})

	s := NewUniformSampler([]core.Light{a, b})

	require.InDelta(t, 0.5, s.ProbabilityOf(a), 1e-9)
	require.InDelta(t, 0.5, s.ProbabilityOf(b), 1e-9)
}

func TestSamplerPickOnEmptyLights(t *testing.T) {
	s := NewUniformSampler(nil)
	light, p := s.Pick(0.5)
	require.Nil(t, light)
	require.Zero(t, p)
}
