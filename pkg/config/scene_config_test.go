package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSceneYAML = `
camera:
  look_from: [0, 1, 4]
  look_at: [0, 0, 0]
  up: [0, 1, 0]
  vfov: 35
  aspect_ratio: 1.5

materials:
  floor:
    type: lambert
    albedo: [0.5, 0.5, 0.5]
  bulb:
    type: emissive
    emission: [10, 10, 10]

primitives:
  - type: sphere
    center: [0, 1, 0]
    radius: 1
    material: floor
  - type: parallelogram
    corner: [-5, 0, -5]
    u: [10, 0, 0]
    v: [0, 0, 10]
    material: floor
  - type: sphere
    center: [0, 5, 0]
    radius: 0.5
    material: bulb
    light: true

background:
  top: [0.5, 0.7, 1.0]
  bottom: [1, 1, 1]
`

func TestLoadSceneBuildsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSceneYAML), 0644))

	s, err := LoadScene(path)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.NotNil(t, s.Camera)
}

func TestLoadSceneRejectsUnknownMaterialReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
camera:
  look_from: [0, 0, 1]
  look_at: [0, 0, 0]
  up: [0, 1, 0]
  vfov: 40
  aspect_ratio: 1

primitives:
  - type: sphere
    center: [0, 0, 0]
    radius: 1
    material: missing
`), 0644))

	_, err := LoadScene(path)
	require.Error(t, err)
}
