// Package loaders decodes external assets (glTF meshes, image textures and
// environment maps) into the in-memory structures pkg/scene and pkg/config
// assemble into a renderable Scene.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder, registered for image.Decode
	_ "image/png"  // PNG decoder, registered for image.Decode
	"os"

	"github.com/dkershaw/go-pathtracer/pkg/lights"
)

// LoadImage opens and decodes a PNG or JPEG file, auto-detecting the format
// from its header.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode image %q: %w", path, err)
	}
	return img, nil
}

// LoadLatLongEnvMap decodes an equirectangular (latitude-longitude) image
// and wraps it as a sampleable environment light.
func LoadLatLongEnvMap(path string) (*lights.Environment, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return lights.NewEnvironment(img), nil
}
