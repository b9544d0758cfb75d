package core

// RenderParams holds the tunable knobs for a single render invocation.
// Defaults match the external interface table: they are production values
// tuned for the reference integrator, not placeholders.
type RenderParams struct {
	NumBSDFSamples  int
	MaxBSDFSamples  int
	NumLightSamples int
	MaxLightSamples int
	MinTrace        float64
	// EnvLightIntensFrac is the fraction of MIS effort given to the
	// environment light when both an environment and local lights are
	// present in a scene.
	EnvLightIntensFrac float64
	MaxDepth           int

	Width, Height  int
	SamplesPerPixel int
	TileSize        int
	Seed            uint64
}

// DefaultRenderParams returns the spec's documented defaults.
func DefaultRenderParams() RenderParams {
	return RenderParams{
		NumBSDFSamples:     16,
		MaxBSDFSamples:     64,
		NumLightSamples:    16,
		MaxLightSamples:    64,
		MinTrace:           1e-3,
		EnvLightIntensFrac: 0.5,
		MaxDepth:           5,

		Width:           640,
		Height:          480,
		SamplesPerPixel: 16,
		TileSize:        32,
		Seed:            1,
	}
}

// Validate checks the invariants a configuration error can violate: a
// max_depth of zero would cut off every specular bounce, a negative sample
// budget is meaningless, and a negative min_trace would let rays
// self-intersect their origin surface.
func (p RenderParams) Validate() error {
	if p.MaxDepth <= 0 {
		return NewConfigError("max_depth must be > 0, got %d", p.MaxDepth)
	}
	if p.NumBSDFSamples <= 0 {
		return NewConfigError("num_bsdf_samples must be > 0, got %d", p.NumBSDFSamples)
	}
	if p.MaxBSDFSamples < p.NumBSDFSamples {
		return NewConfigError("max_bsdf_samples (%d) must be >= num_bsdf_samples (%d)", p.MaxBSDFSamples, p.NumBSDFSamples)
	}
	if p.NumLightSamples <= 0 {
		return NewConfigError("num_light_samples must be > 0, got %d", p.NumLightSamples)
	}
	if p.MaxLightSamples < p.NumLightSamples {
		return NewConfigError("max_light_samples (%d) must be >= num_light_samples (%d)", p.MaxLightSamples, p.NumLightSamples)
	}
	if p.MinTrace < 0 {
		return NewConfigError("min_trace must be >= 0, got %g", p.MinTrace)
	}
	if p.EnvLightIntensFrac < 0 || p.EnvLightIntensFrac > 1 {
		return NewConfigError("envlight_intens_frac must be in [0,1], got %g", p.EnvLightIntensFrac)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return NewConfigError("image dimensions must be > 0, got %dx%d", p.Width, p.Height)
	}
	if p.SamplesPerPixel <= 0 {
		return NewConfigError("samples_per_pixel must be > 0, got %d", p.SamplesPerPixel)
	}
	if p.TileSize <= 0 {
		return NewConfigError("tile_size must be > 0, got %d", p.TileSize)
	}
	return nil
}
