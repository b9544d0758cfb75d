// Package config loads render parameters and scene descriptions from YAML,
// decoding into the in-memory structures pkg/renderer and pkg/scene
// consume. It is the file-format seam spec.md §6 assumes an external
// loader fills.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// RenderConfig mirrors core.RenderParams with YAML tags and pointer fields,
// so a partially-specified document only overrides the keys it names; any
// field left nil at merge time keeps the base value.
type RenderConfig struct {
	NumBSDFSamples     *int     `yaml:"num_bsdf_samples"`
	MaxBSDFSamples     *int     `yaml:"max_bsdf_samples"`
	NumLightSamples    *int     `yaml:"num_light_samples"`
	MaxLightSamples    *int     `yaml:"max_light_samples"`
	MinTrace           *float64 `yaml:"min_trace"`
	EnvLightIntensFrac *float64 `yaml:"envlight_intens_frac"`
	MaxDepth           *int     `yaml:"max_depth"`

	Width           *int    `yaml:"width"`
	Height          *int    `yaml:"height"`
	SamplesPerPixel *int    `yaml:"samples_per_pixel"`
	TileSize        *int    `yaml:"tile_size"`
	Seed            *uint64 `yaml:"seed"`
}

// LoadRenderConfig reads and decodes a YAML render-parameters file.
func LoadRenderConfig(path string) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("config: read render config %q: %w", path, err)
	}
	var rc RenderConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return RenderConfig{}, fmt.Errorf("config: parse render config %q: %w", path, err)
	}
	return rc, nil
}

// Merge applies every field rc sets onto base and returns the result,
// leaving base's defaults in place for anything rc left unset. Command-line
// flag overrides are not merged through here; the CLI applies them to the
// merged RenderParams afterwards.
func (rc RenderConfig) Merge(base core.RenderParams) core.RenderParams {
	if rc.NumBSDFSamples != nil {
		base.NumBSDFSamples = *rc.NumBSDFSamples
	}
	if rc.MaxBSDFSamples != nil {
		base.MaxBSDFSamples = *rc.MaxBSDFSamples
	}
	if rc.NumLightSamples != nil {
		base.NumLightSamples = *rc.NumLightSamples
	}
	if rc.MaxLightSamples != nil {
		base.MaxLightSamples = *rc.MaxLightSamples
	}
	if rc.MinTrace != nil {
		base.MinTrace = *rc.MinTrace
	}
	if rc.EnvLightIntensFrac != nil {
		base.EnvLightIntensFrac = *rc.EnvLightIntensFrac
	}
	if rc.MaxDepth != nil {
		base.MaxDepth = *rc.MaxDepth
	}
	if rc.Width != nil {
		base.Width = *rc.Width
	}
	if rc.Height != nil {
		base.Height = *rc.Height
	}
	if rc.SamplesPerPixel != nil {
		base.SamplesPerPixel = *rc.SamplesPerPixel
	}
	if rc.TileSize != nil {
		base.TileSize = *rc.TileSize
	}
	if rc.Seed != nil {
		base.Seed = *rc.Seed
	}
	return base
}
