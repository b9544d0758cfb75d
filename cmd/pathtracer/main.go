// Command pathtracer renders a scene with the path tracer and writes the
// result to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/uuid"

	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/config"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/renderer"
	"github.com/dkershaw/go-pathtracer/pkg/scene"
)

type cliConfig struct {
	Scene       string
	ConfigFile  string
	Output      string
	Width       int
	Height      int
	Samples     int
	Seed        uint64
	Gamma       float64
	CPUProfile  string
	Verbose     bool
}

func main() {
	cfg := parseFlags()

	logger := core.NewLogger(cfg.Verbose)
	jobID := uuid.NewString()
	logger.Infof("job %s starting", jobID)

	if err := run(cfg, logger); err != nil {
		logger.Errorf("job %s failed: %v", jobID, err)
		os.Exit(1)
	}
}

func parseFlags() cliConfig {
	cfg := cliConfig{}
	flag.StringVar(&cfg.Scene, "scene", "default", "Built-in scene name (default, cornell) or path to a YAML scene file")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML render-parameters file")
	flag.StringVar(&cfg.Output, "output", "render.png", "Output PNG path")
	flag.IntVar(&cfg.Width, "width", 0, "Image width override (0 = use config/default)")
	flag.IntVar(&cfg.Height, "height", 0, "Image height override (0 = use config/default)")
	flag.IntVar(&cfg.Samples, "samples", 0, "Samples per pixel override (0 = use config/default)")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "RNG seed override (0 = use config/default)")
	flag.Float64Var(&cfg.Gamma, "gamma", 2.0, "Display gamma for the output image")
	flag.StringVar(&cfg.CPUProfile, "cpuprofile", "", "Write a CPU profile to this file")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
	flag.Parse()
	return cfg
}

func run(cfg cliConfig, logger core.Logger) error {
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	params := core.DefaultRenderParams()
	if cfg.ConfigFile != "" {
		rc, err := config.LoadRenderConfig(cfg.ConfigFile)
		if err != nil {
			return err
		}
		params = rc.Merge(params)
		logger.Debugf("loaded render config from %s", cfg.ConfigFile)
	}
	params = applyFlagOverrides(cfg, params)

	sceneObj, err := loadScene(cfg.Scene, params)
	if err != nil {
		return fmt.Errorf("build scene %q: %w", cfg.Scene, err)
	}

	sink := renderer.NewBoxFilterSink(params.Width, params.Height, 0.5)

	logger.Infof("scene %q: %dx%d, %d samples/pixel, seed %d",
		cfg.Scene, params.Width, params.Height, params.SamplesPerPixel, params.Seed)

	start := time.Now()
	stats, err := renderer.Render(sceneObj, sceneObj.Camera, params, sink, logger)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	elapsed := time.Since(start)

	logger.Infof("render complete in %v across %d workers", elapsed, stats.NumWorkers)

	img := sink.Resolve(cfg.Gamma)

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output %q: %w", cfg.Output, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode output %q: %w", cfg.Output, err)
	}

	logger.Infof("wrote %s", cfg.Output)
	return nil
}

func applyFlagOverrides(cfg cliConfig, base core.RenderParams) core.RenderParams {
	if cfg.Width > 0 {
		base.Width = cfg.Width
	}
	if cfg.Height > 0 {
		base.Height = cfg.Height
	}
	if cfg.Samples > 0 {
		base.SamplesPerPixel = cfg.Samples
	}
	if cfg.Seed > 0 {
		base.Seed = cfg.Seed
	}
	return base
}

// loadScene resolves a scene name: "default" and "cornell" build the
// in-repo showcase scenes, anything else is treated as a path to a YAML
// scene file.
func loadScene(name string, params core.RenderParams) (*scene.Scene, error) {
	aspect := float64(params.Width) / float64(params.Height)

	switch name {
	case "default":
		return scene.NewDefaultScene(&camera.Config{
			LookFrom:    core.Vec3{X: 0, Y: 0.75, Z: 2},
			LookAt:      core.Vec3{X: 0, Y: 0.5, Z: -1},
			Up:          core.Vec3{X: 0, Y: 1, Z: 0},
			VFov:        40,
			AspectRatio: aspect,
			Aperture:    0.05,
		})
	case "cornell":
		return scene.NewCornellBox()
	default:
		return config.LoadScene(name)
	}
}
