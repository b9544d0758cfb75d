package lights

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/dkershaw/go-pathtracer/pkg/core"
)

// Environment is a latitude-longitude image-based environment light. Solid
// angle is mapped to image (u, v) the standard way: theta (from +Y pole)
// maps to v, phi (around the Y axis) maps to u. Importance sampling draws
// from a luminance-weighted 2D piecewise-constant distribution built from a
// downsampled copy of the map (via golang.org/x/image/draw, which keeps the
// distribution build cheap even for a multi-megapixel HDRI-style source
// image); scenes that don't need importance sampling can fall back to a
// uniform sphere draw by setting UniformCone.
type Environment struct {
	img        image.Image
	w, h       int
	marginalCDF []float64   // length h+1
	conditionalCDF [][]float64 // h rows, each length w+1
	totalLuminance float64
	UniformCone    bool // if true, skip importance sampling and draw uniformly
}

// distributionRes is the resolution the importance-sampling distribution is
// built at, independent of the source image's native resolution.
const distributionRes = 64

// NewEnvironment builds an environment light from a decoded image.
func NewEnvironment(img image.Image) *Environment {
	small := image.NewRGBA(image.Rect(0, 0, distributionRes*2, distributionRes))
	draw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), draw.Over, nil)

	e := &Environment{img: img, w: small.Bounds().Dx(), h: small.Bounds().Dy()}
	e.buildDistribution(small)
	return e
}

func (e *Environment) buildDistribution(small *image.RGBA) {
	e.conditionalCDF = make([][]float64, e.h)
	rowLum := make([]float64, e.h)

	for y := 0; y < e.h; y++ {
		row := make([]float64, e.w+1)
		// sin(theta) weights rows near the poles down since they cover less
		// solid angle per pixel in a lat-long map.
		sinTheta := math.Sin(math.Pi * (float64(y) + 0.5) / float64(e.h))
		for x := 0; x < e.w; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			lum := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
			row[x+1] = row[x] + lum*sinTheta
		}
		rowLum[y] = row[e.w]
		e.conditionalCDF[y] = row
	}

	marginal := make([]float64, e.h+1)
	for y := 0; y < e.h; y++ {
		marginal[y+1] = marginal[y] + rowLum[y]
	}
	e.totalLuminance = marginal[e.h]
	e.marginalCDF = marginal
}

func (e *Environment) IsDelta() bool  { return false }
func (e *Environment) Power() float64 { return e.totalLuminance }

// directionToUV converts a world-space direction to lat-long (u, v).
func directionToUV(d core.Vec3) core.Vec2 {
	theta := math.Acos(clamp(d.Y, -1, 1))
	phi := math.Atan2(d.Z, d.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return core.Vec2{X: phi / (2 * math.Pi), Y: theta / math.Pi}
}

func uvToDirection(u core.Vec2) core.Vec3 {
	theta := u.Y * math.Pi
	phi := u.X * 2 * math.Pi
	sinTheta := math.Sin(theta)
	return core.Vec3{X: sinTheta * math.Cos(phi), Y: math.Cos(theta), Z: sinTheta * math.Sin(phi)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// radianceAt samples the full-resolution source image at the given (u,v),
// nearest-neighbor, which is sufficient since environment lookups are
// already stochastically sampled many times per pixel.
func (e *Environment) radianceAt(u core.Vec2) core.Color {
	bounds := e.img.Bounds()
	px := bounds.Min.X + int(u.X*float64(bounds.Dx()))%bounds.Dx()
	py := bounds.Min.Y + int(u.Y*float64(bounds.Dy()))%bounds.Dy()
	r, g, b, _ := e.img.At(px, py).RGBA()
	return core.Color{X: float64(r) / 65535.0, Y: float64(g) / 65535.0, Z: float64(b) / 65535.0}
}

func (e *Environment) Sample(point core.Vec3, u core.Vec2) (core.LightSample, bool) {
	var uv core.Vec2
	var pdf float64
	if e.UniformCone || e.totalLuminance <= 0 {
		dir := core.UniformSampleSphere(u)
		uv = directionToUV(dir)
		pdf = core.UniformSpherePDF()
		return core.LightSample{Dir: dir, Distance: 1e30, Li: e.radianceAt(uv), PDF: pdf}, true
	}

	row := sampleDiscreteCDF(e.marginalCDF, u.X)
	col := sampleDiscreteCDF(e.conditionalCDF[row], u.Y)

	uv = core.Vec2{X: (float64(col) + 0.5) / float64(e.w), Y: (float64(row) + 0.5) / float64(e.h)}
	dir := uvToDirection(uv)

	pdf = e.pdfFor(uv)
	if pdf <= 0 {
		return core.LightSample{}, false
	}
	return core.LightSample{Dir: dir, Distance: 1e30, Li: e.radianceAt(uv), PDF: pdf}, true
}

// sampleDiscreteCDF inverts a piecewise-constant CDF (stored as cumulative
// sums, length n+1) at variate xi, returning the bin index.
func sampleDiscreteCDF(cdf []float64, xi float64) int {
	total := cdf[len(cdf)-1]
	if total <= 0 {
		return 0
	}
	target := xi * total
	lo, hi := 0, len(cdf)-2
	for lo < hi {
		mid := (lo + hi) / 2
		if cdf[mid+1] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (e *Environment) pdfFor(uv core.Vec2) float64 {
	row := int(uv.Y * float64(e.h))
	if row >= e.h {
		row = e.h - 1
	}
	col := int(uv.X * float64(e.w))
	if col >= e.w {
		col = e.w - 1
	}
	rowCDF := e.conditionalCDF[row]
	rowLum := rowCDF[e.w]
	pixelLum := rowCDF[col+1] - rowCDF[col]

	marginalRowLum := e.marginalCDF[row+1] - e.marginalCDF[row]

	theta := math.Pi * (float64(row) + 0.5) / float64(e.h)
	sinTheta := math.Sin(theta)
	if sinTheta <= 0 || e.totalLuminance <= 0 || rowLum <= 0 {
		return 0
	}

	// Joint pdf over (u,v) in image space, converted to a solid-angle pdf
	// via the lat-long Jacobian 1 / (2 pi^2 sinTheta).
	pdfUV := (pixelLum / rowLum) * float64(e.w) * (marginalRowLum / e.totalLuminance) * float64(e.h)
	return pdfUV / (2 * math.Pi * math.Pi * sinTheta)
}

func (e *Environment) Eval(point, dir core.Vec3, dist float64, arena *core.Arena, mailbox *core.Mailbox) (core.Color, float64) {
	uv := directionToUV(dir)
	if e.UniformCone || e.totalLuminance <= 0 {
		return e.radianceAt(uv), core.UniformSpherePDF()
	}
	return e.radianceAt(uv), e.pdfFor(uv)
}
