// Package camera implements the pinhole / thin-lens camera model: eye rays
// are generated from film-space (u, v) in [0,1]^2 (u left-to-right, v
// bottom-to-top) and, when the lens has nonzero aperture, a lens-space
// (lu, lv) sample mapped through a concentric-disk warp.
package camera

import (
	"math"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// Config describes a camera's placement and optics.
type Config struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // vertical field of view, degrees
	AspectRatio   float64
	Aperture      float64 // lens diameter; 0 disables depth of field
	FocusDistance float64 // 0 means auto: distance from LookFrom to LookAt
}

// Camera generates eye rays for an image plane. Its basis vectors are
// precomputed once at construction since they never change during a render.
type Camera struct {
	origin               core.Vec3
	lowerLeftCorner       core.Vec3
	horizontal, vertical  core.Vec3
	u, v, w               core.Vec3 // right, up, back (camera looks down -w)
	lensRadius            float64
}

// NewCamera builds a Camera from cfg. If transform reverses handedness (a
// mirrored scene placement), the camera's right basis vector u is negated
// so image left/right stay visually consistent with a right-handed scene.
func NewCamera(cfg Config, transformReversesHandedness bool) *Camera {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.LookFrom.Subtract(cfg.LookAt).Length()
		if focusDistance <= 0 {
			focusDistance = 1
		}
	}

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	if transformReversesHandedness {
		u = u.Negate()
	}
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u, v: v, w: w,
		lensRadius: cfg.Aperture / 2,
	}
}

// EyeRay generates a pinhole eye ray through film coordinates (s, t) in
// [0,1]^2, with no depth-of-field perturbation.
func (c *Camera) EyeRay(s, t float64) core.Ray {
	dir := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)
	return core.NewRay(c.origin, dir)
}

// EyeRayLens generates a thin-lens eye ray through film coordinates (s, t),
// perturbing the ray origin by a lens-space sample (lu, lv) mapped through
// the concentric-disk warp and scaled by the lens radius, then aiming back
// at the same focal-plane point the pinhole ray would have hit.
func (c *Camera) EyeRayLens(s, t, lu, lv float64) core.Ray {
	if c.lensRadius <= 0 {
		return c.EyeRay(s, t)
	}

	focalPoint := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	disk := core.UniformSampleDisk(core.Vec2{X: lu, Y: lv}).Multiply(c.lensRadius)
	offset := c.u.Multiply(disk.X).Add(c.v.Multiply(disk.Y))
	origin := c.origin.Add(offset)

	return core.NewRay(origin, focalPoint.Subtract(origin))
}
