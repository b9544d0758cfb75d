package camera

import (
	"testing"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

func TestEyeRayCentered(t *testing.T) {
	cfg := Config{
		LookFrom:    core.Vec3{X: 0, Y: 0, Z: 0},
		LookAt:      core.Vec3{X: 0, Y: 0, Z: -1},
		Up:          core.Vec3{X: 0, Y: 1, Z: 0},
		VFov:        90,
		AspectRatio: 1,
	}
	c := NewCamera(cfg, false)
	ray := c.EyeRay(0.5, 0.5)
	if ray.Direction.Z >= 0 {
		t.Fatalf("expected center ray to point forward (-Z), got %v", ray.Direction)
	}
}

func TestEyeRayLensDefocusVariance(t *testing.T) {
	cfg := Config{
		LookFrom:      core.Vec3{X: 0, Y: 0, Z: 0},
		LookAt:        core.Vec3{X: 0, Y: 0, Z: -1},
		Up:            core.Vec3{X: 0, Y: 1, Z: 0},
		VFov:          60,
		AspectRatio:   1,
		Aperture:      0.5,
		FocusDistance: 2,
	}
	c := NewCamera(cfg, false)

	// All lens-perturbed rays for a fixed (s,t) must still pass through the
	// same focal point, so a sphere exactly at the focus distance shows no
	// blur: verify the rays converge by checking the point at t=focus
	// distance stays constant across lens samples.
	var first core.Vec3
	for i, lu := range []float64{0.1, 0.9, 0.5, 0.25} {
		lv := 0.3
		ray := c.EyeRayLens(0.5, 0.5, lu, lv)
		p := ray.At(2.0 / -ray.Direction.Normalize().Z)
		if i == 0 {
			first = p
			continue
		}
		if p.Subtract(first).Length() > 1e-6 {
			t.Errorf("expected lens samples to converge at focal plane, got %v vs %v", p, first)
		}
	}
}

func TestEyeRayHandednessReversal(t *testing.T) {
	cfg := Config{
		LookFrom:    core.Vec3{X: 0, Y: 0, Z: 0},
		LookAt:      core.Vec3{X: 0, Y: 0, Z: -1},
		Up:          core.Vec3{X: 0, Y: 1, Z: 0},
		VFov:        90,
		AspectRatio: 1,
	}
	normal := NewCamera(cfg, false)
	reversed := NewCamera(cfg, true)

	if normal.u.Equals(reversed.u) {
		t.Fatalf("expected handedness-reversed camera to negate its right vector")
	}
}
