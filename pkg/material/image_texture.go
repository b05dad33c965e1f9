package material

import (
	"image"
	"math"

	"github.com/df07/diorama-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image using nearest-texel lookup
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage copies the image into a texture, dropping alpha
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = core.ColorFromRGBA(img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}

	return NewImageTexture(width, height, pixels)
}

// Sample returns the texel under (u, v). V=0 is the top row of the image.
// Coordinates outside [0, 1] are clamped to the border texels.
func (t *ImageTexture) Sample(u, v float64) core.Color {
	if t.Width == 0 || t.Height == 0 {
		return core.Black()
	}

	x := clampTexel(u*float64(t.Width), t.Width)
	y := clampTexel(v*float64(t.Height), t.Height)

	return t.Pixels[y*t.Width+x]
}

func clampTexel(coord float64, size int) int {
	maxCoord := float64(size - 1)
	if coord < 0 || math.IsNaN(coord) {
		coord = 0
	}
	if coord > maxCoord {
		coord = maxCoord
	}
	return int(coord)
}
