package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/integrator"
	"github.com/dkershaw/go-pathtracer/pkg/sampling"
)

const (
	pixelChannel = "pixel" // image-plane jitter, UV
	lensChannel  = "lens"  // lens-space sample, UV
)

// RenderStats summarizes a completed render for reporting.
type RenderStats struct {
	Width, Height int
	NumWorkers    int
	Diagnostics   core.DiagnosticCounters
}

// Render partitions the image into tiles, spins up a pool of workers each
// owning one RenderContext, and drives every pixel's sample set through the
// integrator, splatting the resulting radiance into sink. It blocks until
// every tile has been rendered. A nil logger is replaced with core.NopLogger.
func Render(scene integrator.Scene, cam *camera.Camera, params core.RenderParams, sink ImageSink, logger core.Logger) (RenderStats, error) {
	if err := params.Validate(); err != nil {
		return RenderStats{}, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	numWorkers := runtime.NumCPU()

	tiles := NewTileGrid(params.Width, params.Height, params.TileSize)
	logger.Infof("rendering %dx%d across %d tiles with %d workers", params.Width, params.Height, len(tiles), numWorkers)

	tileQueue := make(chan Tile, len(tiles))
	for _, t := range tiles {
		tileQueue <- t
	}
	close(tileQueue)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var diagnostics core.DiagnosticCounters
	var tilesDone int64

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rc := core.NewRenderContext(params, params.Seed)
			for tile := range tileQueue {
				renderTile(scene, cam, rc, tile, sink)
				done := atomic.AddInt64(&tilesDone, 1)
				logger.Debugf("tile %d done (%d/%d)", tile.ID, done, len(tiles))
			}
			mu.Lock()
			diagnostics.Add(rc.Diagnostics)
			mu.Unlock()
		}()
	}

	wg.Wait()

	if diagnostics.SelfIntersections > 0 || diagnostics.TotalInternalReflections > 0 || diagnostics.DroppedUnboundedSamples > 0 {
		logger.Warnf("diagnostics: %d self-intersections, %d total internal reflections, %d dropped unbounded samples",
			diagnostics.SelfIntersections, diagnostics.TotalInternalReflections, diagnostics.DroppedUnboundedSamples)
	}

	return RenderStats{
		Width:       params.Width,
		Height:      params.Height,
		NumWorkers:  numWorkers,
		Diagnostics: diagnostics,
	}, nil
}

// renderTile renders every pixel in tile.Bounds, one SampleSet per pixel,
// deterministically seeded from (tile ID, pixel index within the tile) so
// re-rendering with the same seed and tile partition reproduces identical
// samples regardless of worker scheduling.
func renderTile(scene integrator.Scene, cam *camera.Camera, rc *core.RenderContext, tile Tile, sink ImageSink) {
	bounds := tile.Bounds
	width := float64(rc.Params.Width)
	height := float64(rc.Params.Height)

	pixelIndex := 0
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			renderPixel(scene, cam, rc, tile.ID, pixelIndex, px, py, width, height, sink)
			pixelIndex++
		}
	}
}

// renderPixel reseeds the context's RNG from (tile ID, pixel index) before
// building the pixel's sample set, so output is reproducible from
// (seed, tile partition) alone and does not depend on which worker happens
// to process a given tile or in what order.
func renderPixel(scene integrator.Scene, cam *camera.Camera, rc *core.RenderContext, tileID, pixelIndex, px, py int, width, height float64, sink ImageSink) {
	n := rc.Params.SamplesPerPixel
	seed := core.SeedForPixel(rc.Params.Seed, tileID, pixelIndex, 0)
	rc.Rand = rand.New(rand.NewSource(int64(seed)))

	set := sampling.NewSampleSet(n, rc.Rand)
	set.AddUVChannel(pixelChannel, 1, sampling.Stratified)
	set.AddUVChannel(lensChannel, 1, sampling.Stratified)
	set.AddUVChannel(integrator.LightUVChannel, rc.Params.NumLightSamples, sampling.Stratified)
	set.AddFloatChannel(integrator.LightPickChannel, rc.Params.NumLightSamples, sampling.LowDiscrepancy)
	set.AddUVChannel(integrator.BSDFUVChannel, rc.Params.NumBSDFSamples, sampling.Stratified)
	set.Generate()

	for i := 0; i < n; i++ {
		s := set.At(i)
		jitter := s.UV(pixelChannel, 0)
		lens := s.UV(lensChannel, 0)

		u := (float64(px) + jitter.X) / width
		v := 1 - (float64(py)+jitter.Y)/height

		ray := cam.EyeRayLens(u, v, lens.X, lens.Y)

		rc.ResetForSample()
		radiance := integrator.TraceEyeRay(scene, ray, rc, s)

		sx := float64(px) + jitter.X
		sy := float64(py) + jitter.Y
		sink.AddSample(sx, sy, radiance, 1.0)
	}
}
