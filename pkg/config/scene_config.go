package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkershaw/go-pathtracer/pkg/camera"
	"github.com/dkershaw/go-pathtracer/pkg/core"
	"github.com/dkershaw/go-pathtracer/pkg/lights"
	"github.com/dkershaw/go-pathtracer/pkg/loaders"
	"github.com/dkershaw/go-pathtracer/pkg/material"
	"github.com/dkershaw/go-pathtracer/pkg/primitives"
	"github.com/dkershaw/go-pathtracer/pkg/scene"
)

// SceneDoc is the YAML root for a scene description: a camera, a named
// material palette, a list of primitives referencing those materials by
// name, and an optional environment map.
type SceneDoc struct {
	Camera     CameraDoc             `yaml:"camera"`
	Materials  map[string]MaterialDoc `yaml:"materials"`
	Primitives []PrimitiveDoc        `yaml:"primitives"`
	EnvMap     string                `yaml:"env_map"`
	EnvFrac    float64               `yaml:"env_light_intens_frac"`
	Background struct {
		Top    [3]float64 `yaml:"top"`
		Bottom [3]float64 `yaml:"bottom"`
	} `yaml:"background"`
}

// CameraDoc describes a camera.Config in YAML-friendly vector form.
type CameraDoc struct {
	LookFrom      [3]float64 `yaml:"look_from"`
	LookAt        [3]float64 `yaml:"look_at"`
	Up            [3]float64 `yaml:"up"`
	VFov          float64    `yaml:"vfov"`
	AspectRatio   float64    `yaml:"aspect_ratio"`
	Aperture      float64    `yaml:"aperture"`
	FocusDistance float64    `yaml:"focus_distance"`
}

// MaterialDoc is a tagged union over the material kinds pkg/material
// implements, selected by Type.
type MaterialDoc struct {
	Type        string     `yaml:"type"`
	Albedo      [3]float64 `yaml:"albedo"`
	N           [3]float64 `yaml:"n"`
	K           [3]float64 `yaml:"k"`
	IOR         float64    `yaml:"ior"`
	Diffuse     [3]float64 `yaml:"diffuse"`
	Reflectance [3]float64 `yaml:"reflectance"`
	Alpha       float64    `yaml:"alpha"`
	Emission    [3]float64 `yaml:"emission"`
}

// PrimitiveDoc is a tagged union over the primitive kinds this loader
// supports, selected by Type. Light marks the primitive as an area light
// source in addition to being intersectable geometry.
type PrimitiveDoc struct {
	Type     string     `yaml:"type"`
	Material string     `yaml:"material"`
	Light    bool       `yaml:"light"`
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Corner   [3]float64 `yaml:"corner"`
	U        [3]float64 `yaml:"u"`
	V        [3]float64 `yaml:"v"`
	V0       [3]float64 `yaml:"v0"`
	V1       [3]float64 `yaml:"v1"`
	V2       [3]float64 `yaml:"v2"`
	Path     string     `yaml:"path"`
}

// LoadScene reads, decodes, and builds a YAML scene description into a
// renderable scene.Scene.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read scene %q: %w", path, err)
	}
	var doc SceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse scene %q: %w", path, err)
	}
	return doc.Build()
}

// Build assembles the decoded document into a scene.Scene.
func (doc SceneDoc) Build() (*scene.Scene, error) {
	materials := make(map[string]core.Material, len(doc.Materials))
	for name, md := range doc.Materials {
		mat, err := md.build()
		if err != nil {
			return nil, fmt.Errorf("config: material %q: %w", name, err)
		}
		materials[name] = mat
	}

	b := &scene.Builder{
		Camera:             camera.NewCamera(doc.Camera.build(), false),
		EnvLightIntensFrac: doc.EnvFrac,
		TopColor:           vec3(doc.Background.Top),
		BottomColor:        vec3(doc.Background.Bottom),
	}

	for i, pd := range doc.Primitives {
		mat, ok := materials[pd.Material]
		if !ok {
			return nil, core.NewSceneBuildError("primitive %d references unknown material %q", i, pd.Material)
		}
		prims, sampleable, err := pd.build(mat)
		if err != nil {
			return nil, fmt.Errorf("config: primitive %d: %w", i, err)
		}
		b.Primitives = append(b.Primitives, prims...)
		if pd.Light {
			if sampleable == nil {
				return nil, core.NewSceneBuildError("primitive %d marked as a light but its shape can't be sampled", i)
			}
			b.Lights = append(b.Lights, lights.NewQuadLight(sampleable, pd.lightEmission(materials)))
		}
	}

	if doc.EnvMap != "" {
		env, err := loaders.LoadLatLongEnvMap(doc.EnvMap)
		if err != nil {
			return nil, err
		}
		b.Env = env
	}

	return b.Build()
}

// lightEmission looks up the emission color of the material a light
// primitive references, so its QuadLight carries the same radiance the
// surface itself emits.
func (pd PrimitiveDoc) lightEmission(materials map[string]core.Material) core.Color {
	if e, ok := materials[pd.Material].(*material.Emissive); ok {
		return e.Emission
	}
	return core.Color{}
}

func (cd CameraDoc) build() camera.Config {
	return camera.Config{
		LookFrom:      vec3(cd.LookFrom),
		LookAt:        vec3(cd.LookAt),
		Up:            vec3(cd.Up),
		VFov:          cd.VFov,
		AspectRatio:   cd.AspectRatio,
		Aperture:      cd.Aperture,
		FocusDistance: cd.FocusDistance,
	}
}

func (md MaterialDoc) build() (core.Material, error) {
	switch md.Type {
	case "lambert":
		return material.NewLambert(vec3(md.Albedo)), nil
	case "mirror":
		return material.NewMirror(vec3(md.N), vec3(md.K)), nil
	case "glass":
		return material.NewGlass(md.IOR), nil
	case "plastic":
		return material.NewPlastic(vec3(md.Diffuse), md.IOR), nil
	case "cooktorrance":
		return material.NewCookTorrance(vec3(md.Diffuse), vec3(md.Reflectance), md.Alpha), nil
	case "emissive":
		return material.NewEmissive(vec3(md.Emission)), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", md.Type)
	}
}

// build constructs the primitive's geometry, possibly several (a glTF mesh
// expands to one core.Primitive per triangle). sampleable is non-nil only
// for spheres and parallelograms, allowing the caller to register them as
// area lights when PrimitiveDoc.Light is set; triangle and mesh primitives
// cannot be area lights through this loader.
func (pd PrimitiveDoc) build(mat core.Material) ([]core.Primitive, core.Sampleable, error) {
	switch pd.Type {
	case "sphere":
		s := primitives.NewSphere(vec3(pd.Center), pd.Radius, mat)
		return []core.Primitive{s}, s, nil
	case "parallelogram":
		p := primitives.NewParallelogram(vec3(pd.Corner), vec3(pd.U), vec3(pd.V), mat)
		return []core.Primitive{p}, p, nil
	case "triangle":
		t := primitives.NewTriangle(vec3(pd.V0), vec3(pd.V1), vec3(pd.V2), mat)
		return []core.Primitive{t}, nil, nil
	case "gltf_mesh":
		mesh, err := loaders.LoadGLTF(pd.Path, mat)
		if err != nil {
			return nil, nil, err
		}
		return mesh.Primitives(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown primitive type %q", pd.Type)
	}
}

func vec3(v [3]float64) core.Vec3 { return core.Vec3{X: v[0], Y: v[1], Z: v[2]} }
