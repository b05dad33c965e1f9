package loaders

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/diorama-raytracer/pkg/material"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

// LoadImage loads any format image.Decode knows about (PNG, JPEG, GIF, BMP,
// TIFF, WebP) and applies the EXIF orientation.
func LoadImage(filename string) (image.Image, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", filename, err)
	}
	return img, nil
}

// LoadTexture loads an image as a nearest-texel texture. Images larger than
// maxSize on either side are scaled down to fit; maxSize <= 0 keeps the original size.
func LoadTexture(filename string, maxSize int) (*material.ImageTexture, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if maxSize > 0 && (bounds.Dx() > maxSize || bounds.Dy() > maxSize) {
		// Nearest neighbor keeps block textures crisp
		img = imaging.Fit(img, maxSize, maxSize, imaging.NearestNeighbor)
	}

	return material.NewImageTextureFromImage(img), nil
}

// NewTextureLoader returns a scene.TextureLoader that resolves relative
// texture paths against assetsDir.
func NewTextureLoader(assetsDir string, maxSize int) scene.TextureLoader {
	return func(path string) (material.Texture, error) {
		if !filepath.IsAbs(path) {
			path = filepath.Join(assetsDir, path)
		}
		texture, err := LoadTexture(path, maxSize)
		if err != nil {
			return nil, err
		}
		return texture, nil
	}
}
