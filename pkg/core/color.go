package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit RGB value. Arithmetic saturates each channel to [0, 255].
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns full intensity on every channel
func White() Color {
	return Color{R: 255, G: 255, B: 255}
}

// ColorFromHex unpacks a 0xRRGGBB value
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// ColorFromRGBA converts any image color, dropping alpha
func ColorFromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Add returns the channel-wise sum, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: saturatingAdd(c.R, other.R),
		G: saturatingAdd(c.G, other.G),
		B: saturatingAdd(c.B, other.B),
	}
}

// Multiply scales every channel by factor, clamping the result to [0, 255].
// Fractional parts are truncated.
func (c Color) Multiply(factor float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}
}

// ToHex packs the color as 0xRRGGBB
func (c Color) ToHex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToRGBA returns an opaque image/color value
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// DistanceSquared returns the squared euclidean distance between two colors in RGB space
func (c Color) DistanceSquared(other Color) float64 {
	dr := float64(c.R) - float64(other.R)
	dg := float64(c.G) - float64(other.G)
	db := float64(c.B) - float64(other.B)
	return dr*dr + dg*dg + db*db
}

// String formats the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
