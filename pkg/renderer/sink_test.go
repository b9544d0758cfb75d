package renderer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

func TestBoxFilterSinkSingleSampleCentered(t *testing.T) {
	sink := NewBoxFilterSink(4, 4, 0.5)
	sink.AddSample(2.5, 2.5, core.Color{X: 1, Y: 0, Z: 0}, 1.0)

	img := sink.Resolve(1.0) // gamma 1.0: no correction, easier to assert exact values

	lit := img.RGBAAt(2, 2)
	require.NotZero(t, lit.R, "the pixel the sample splatted into should be lit")
	require.NotZero(t, lit.A)

	dark := img.RGBAAt(0, 0)
	require.Zero(t, dark.R)
	require.Zero(t, dark.G)
	require.Zero(t, dark.B)
	require.Zero(t, dark.A, "untouched pixels stay fully transparent black")
}

func TestBoxFilterSinkAveragesOverlappingSamples(t *testing.T) {
	sink := NewBoxFilterSink(2, 2, 2.0)
	sink.AddSample(1.0, 1.0, core.Color{X: 1, Y: 1, Z: 1}, 1.0)
	sink.AddSample(1.0, 1.0, core.Color{X: 0, Y: 0, Z: 0}, 0.0)

	img := sink.Resolve(1.0)
	p := img.RGBAAt(0, 0)

	require.InDelta(t, 127, int(p.R), 1, "two samples averaging 0.5 radiance")
	require.InDelta(t, 127, int(p.A), 1, "alpha likewise averages to 0.5")
}

func TestNewTileGridCoversWholeImage(t *testing.T) {
	tiles := NewTileGrid(10, 7, 4)

	covered := make([][]bool, 7)
	for y := range covered {
		covered[y] = make([]bool, 10)
	}
	for _, tile := range tiles {
		b := tile.Bounds
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				require.False(t, covered[y][x], "pixel (%d,%d) covered by more than one tile", x, y)
				covered[y][x] = true
			}
		}
	}
	for y := range covered {
		for x := range covered[y] {
			require.True(t, covered[y][x], "pixel (%d,%d) left uncovered by the tile grid", x, y)
		}
	}
}
