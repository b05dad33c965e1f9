package renderer

import (
	"image"

	"github.com/df07/diorama-raytracer/pkg/core"
)

// Framebuffer is the render target. Pixels outside the buffer are ignored.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel writes one pixel. Concurrent writers must touch disjoint pixels.
func (fb *Framebuffer) SetPixel(x, y int, c core.Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = c
}

// At returns the pixel at (x, y), or black outside the buffer
func (fb *Framebuffer) At(x, y int) core.Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return core.Black()
	}
	return fb.pixels[y*fb.Width+x]
}

// Clear fills the framebuffer with one color
func (fb *Framebuffer) Clear(c core.Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Image converts the framebuffer to an opaque RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyPix(img.Pix)
	return img
}

// CopyPix writes the framebuffer into an RGBA byte slice of length Width*Height*4
func (fb *Framebuffer) CopyPix(pix []byte) {
	for i, c := range fb.pixels {
		offset := i * 4
		pix[offset] = c.R
		pix[offset+1] = c.G
		pix[offset+2] = c.B
		pix[offset+3] = 255
	}
}

// Buffer returns the pixels packed as 0xRRGGBB values in row-major order
func (fb *Framebuffer) Buffer() []uint32 {
	buffer := make([]uint32, len(fb.pixels))
	for i, c := range fb.pixels {
		buffer[i] = c.ToHex()
	}
	return buffer
}
