// Package renderer implements the render driver: tile partitioning, a
// worker pool of per-thread RenderContexts, per-pixel sample set
// construction, and a box-filter image sink that accumulates radiance
// samples into a final framebuffer.
package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// ImageSink receives radiance samples in continuous image coordinates, as
// produced by the render driver for every top-level eye-ray sample.
// Implementations must tolerate concurrent calls for different pixels but
// may assume no two goroutines ever call AddSample for the same pixel at
// the same time, since tile partitioning gives each pixel to exactly one
// worker.
type ImageSink interface {
	AddSample(sx, sy float64, tint core.Color, alpha float64)
}

// pixelAccum tracks the running weighted sum and weight for one pixel's box
// filter.
type pixelAccum struct {
	color  core.Color
	alpha  float64
	weight float64
}

// BoxFilterSink accumulates samples into a fixed-radius box filter per
// pixel: any sample whose continuous position falls within Radius pixels of
// a pixel center contributes to that pixel with unit weight. Radius 0.5
// reproduces a plain box reconstruction filter with no overlap between
// neighboring pixels.
type BoxFilterSink struct {
	Width, Height int
	Radius        float64

	mu     sync.Mutex
	pixels []pixelAccum
}

// NewBoxFilterSink creates a sink sized for a width x height image with the
// given filter radius in pixels.
func NewBoxFilterSink(width, height int, radius float64) *BoxFilterSink {
	return &BoxFilterSink{
		Width:  width,
		Height: height,
		Radius: radius,
		pixels: make([]pixelAccum, width*height),
	}
}

// AddSample splats tint into every pixel whose center lies within Radius of
// (sx, sy). Since each pixel is written by exactly one worker under tile
// partitioning (a splat never crosses a tile boundary for a centered box
// filter smaller than the tile margin), the lock only guards against the
// rare filter footprint spanning two workers' tiles at a shared edge.
func (s *BoxFilterSink) AddSample(sx, sy float64, tint core.Color, alpha float64) {
	minX := int(math.Floor(sx - s.Radius))
	maxX := int(math.Ceil(sx + s.Radius))
	minY := int(math.Floor(sy - s.Radius))
	maxY := int(math.Ceil(sy + s.Radius))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > s.Width-1 {
		maxX = s.Width - 1
	}
	if maxY > s.Height-1 {
		maxY = s.Height - 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			cx := float64(px) + 0.5
			cy := float64(py) + 0.5
			if math.Abs(cx-sx) > s.Radius || math.Abs(cy-sy) > s.Radius {
				continue
			}
			idx := py*s.Width + px
			s.pixels[idx].color = s.pixels[idx].color.Add(tint)
			s.pixels[idx].alpha += alpha
			s.pixels[idx].weight++
		}
	}
}

// Resolve gamma-corrects and clamps the accumulated samples into a final
// RGBA image. Pixels with no samples are left fully transparent black.
func (s *BoxFilterSink) Resolve(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			p := s.pixels[y*s.Width+x]
			if p.weight <= 0 {
				continue
			}
			avg := p.color.Multiply(1.0 / p.weight).GammaCorrect(gamma).Clamp(0, 1)
			a := uint8(255 * math.Min(1, math.Max(0, p.alpha/p.weight)))
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * avg.X),
				G: uint8(255 * avg.Y),
				B: uint8(255 * avg.Z),
				A: a,
			})
		}
	}
	return img
}
