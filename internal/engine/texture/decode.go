// Package texture decodes image files and uploads them as GL textures.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // PNG decoder registration
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// Orientation selects the row order handed to GL.
type Orientation int

const (
	// BottomUp puts the image's bottom row first, matching GL's 2D texture
	// origin.
	BottomUp Orientation = iota
	// TopDown keeps file order; cubemap faces expect it.
	TopDown
)

// DecodeFile decodes a BMP or PNG file into tightly packed RGBA.
func DecodeFile(path string, o Orientation) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty %s image", path, format)
	}
	return Prepare(img, o), nil
}

// Prepare converts any image to RGBA with origin (0,0) in the requested
// row order.
func Prepare(img image.Image, o Orientation) *image.RGBA {
	rgba := ToRGBA(img)
	if o == BottomUp {
		rgba = transform.FlipV(rgba)
	}
	return rgba
}

// ToRGBA converts an image to *image.RGBA anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) && rgba.Stride == 4*rgba.Bounds().Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
