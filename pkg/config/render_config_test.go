package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

func TestRenderConfigMergeOnlySetsGivenFields(t *testing.T) {
	base := core.DefaultRenderParams()

	width := 1920
	minTrace := 0.0 // legitimately zero, must still override
	rc := RenderConfig{
		Width:    &width,
		MinTrace: &minTrace,
	}

	merged := rc.Merge(base)

	require.Equal(t, 1920, merged.Width)
	require.Equal(t, 0.0, merged.MinTrace)
	require.Equal(t, base.Height, merged.Height, "unset fields must keep the base value")
	require.Equal(t, base.SamplesPerPixel, merged.SamplesPerPixel)
	require.Equal(t, base.Seed, merged.Seed)
}

func TestRenderConfigMergeEmptyLeavesBaseUntouched(t *testing.T) {
	base := core.DefaultRenderParams()
	merged := RenderConfig{}.Merge(base)
	require.Equal(t, base, merged)
}

func TestLoadRenderConfigMissingFile(t *testing.T) {
	_, err := LoadRenderConfig("/nonexistent/render.yaml")
	require.Error(t, err)
}
