package core

// IsecInfo is the ephemeral result of a successful ray-primitive
// intersection: surface point, shading frame, texture coordinates and the
// material to shade with. It is allocated from a per-thread Arena and must
// not be retained past the end of the top-level sample that produced it.
type IsecInfo struct {
	T        float64
	Point    Vec3
	Normal   Vec3 // geometric normal, always outward-facing relative to ray
	Shading  Vec3 // interpolated shading normal, may differ from Normal on meshes
	UV       Vec2
	FrontFace bool
	Material Material
	Primitive Primitive
}

// SpawnRay returns a ray leaving this intersection toward direction dir,
// offset by minTrace along the geometric normal to avoid self-intersection.
func (isec *IsecInfo) SpawnRay(dir Vec3, minTrace float64) Ray {
	offset := isec.Normal
	if offset.Dot(dir) < 0 {
		offset = offset.Negate()
	}
	origin := isec.Point.Add(offset.Multiply(minTrace))
	return NewRayInterval(origin, dir, 0, defaultRayTMax)
}

// Primitive is anything a ray can be tested against: analytic shapes,
// triangles, and BVH nodes all implement it. Primitives with a finite,
// sample-able surface additionally implement Sampleable for use as area
// lights.
type Primitive interface {
	Intersect(ray Ray, arena *Arena, mailbox *Mailbox) (*IsecInfo, bool)
	Occludes(ray Ray, mailbox *Mailbox) bool
	Bounds() AABB
	// ID returns a stable identity used as the mailbox key; distinct
	// primitive instances must never collide.
	ID() uintptr
}

// Sampleable is implemented by primitives that can be sampled directly as
// area lights (quads, triangles, spheres).
type Sampleable interface {
	Primitive
	// SampleArea returns a uniformly distributed point on the primitive's
	// surface along with its outward normal and the area-measure PDF (1/area).
	SampleArea(u Vec2) (point, normal Vec3, pdfArea float64)
	Area() float64
}

// BSDFFlags is a capability bitmask describing which lobes a BSDF exposes.
type BSDFFlags uint8

const (
	Reflective BSDFFlags = 1 << iota
	Transmissive
	Diffuse
	Glossy
	Specular
)

// Has reports whether all bits in want are set in f.
func (f BSDFFlags) Has(want BSDFFlags) bool { return f&want == want }

// IsSpecular reports whether f has no non-specular component, i.e. every
// lobe it exposes is a delta distribution.
func (f BSDFFlags) IsSpecular() bool {
	return f&Specular != 0 && f&(Diffuse|Glossy) == 0
}

// BSDFSample is the result of importance-sampling a BSDF at a shading point.
type BSDFSample struct {
	Dir   Vec3 // world-space incident direction (toward the light)
	Value Color
	PDF   float64
	Flags BSDFFlags
}

// BSDF is a bidirectional scattering distribution function bound to a
// specific shading point. Sample and Eval both operate on world-space
// directions; implementations transform into their local shading frame
// internally.
type BSDF interface {
	// Sample draws an incident direction given outgoing direction wo
	// (pointing away from the surface, toward the viewer) and a 2D random
	// sample. ok is false if the BSDF has no valid scattering event for wo.
	Sample(wo Vec3, u Vec2) (BSDFSample, bool)
	// Eval returns the BSDF value and PDF for explicit wo/wi. For a purely
	// specular BSDF this is always (0, 0): specular lobes only ever surface
	// through Sample.
	Eval(wo, wi Vec3) (Color, float64)
	Flags() BSDFFlags
}

// SpecularComponent is implemented by BSDFs that expose one or more delta
// (specular) lobes. SampleSpecular returns the deterministic direction and
// Fresnel-weighted value for the requested component (Reflective or
// Transmissive), independent of any stochastic lobe selection; ok is false
// if the BSDF has no such component, or no valid direction exists for it
// (e.g. requesting Transmissive under total internal reflection).
type SpecularComponent interface {
	SampleSpecular(wo Vec3, component BSDFFlags) (BSDFSample, bool)
}

// Material produces a BSDF bound to a specific intersection. The returned
// BSDF is arena-allocated and only valid until the arena is reset.
type Material interface {
	GetBSDF(isec *IsecInfo, arena *Arena) BSDF
	// Emitted returns the material's self-emission toward wo, zero for all
	// non-emissive materials.
	Emitted(isec *IsecInfo, wo Vec3) Color
}

// LightSample is the result of importance-sampling a light from a shading
// point.
type LightSample struct {
	Dir      Vec3
	Distance float64
	Li       Color
	PDF      float64
	Delta    bool // true for point/directional lights with no area to hit via BSDF sampling
}

// Light is sampled for direct illumination and evaluated along BSDF-sampled
// rays for MIS. Delta lights (point, directional) return PDF 0 from Eval
// since they can never be hit by chance.
type Light interface {
	// Sample draws a direction from point toward the light.
	Sample(point Vec3, u Vec2) (LightSample, bool)
	// Eval returns the radiance emitted toward point along dir and the
	// solid-angle PDF of having sampled dir via Sample, for a ray that
	// escaped the scene or hit this light's geometry at the given distance.
	// arena and mailbox are the caller's RenderContext scratch space, passed
	// through so an area light's own intersection test (confirming it was
	// actually hit at dist) doesn't need to allocate its own.
	Eval(point, dir Vec3, dist float64, arena *Arena, mailbox *Mailbox) (Color, float64)
	IsDelta() bool
	// Power returns a scalar proportional to total emitted power, used to
	// weight light selection probability.
	Power() float64
}
