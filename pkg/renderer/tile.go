package renderer

import "image"

// Tile is a rectangular region of the image assigned to one worker.
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid partitions a width x height image into a grid of tiles no
// larger than tileSize on a side, scanning left-to-right, top-to-bottom so
// tile IDs are stable across runs (and so the deterministic per-tile seed
// derived from ID reproduces identical output for identical inputs).
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	id := 0
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, Tile{ID: id, Bounds: image.Rect(x0, y0, x1, y1)})
			id++
		}
	}
	return tiles
}
