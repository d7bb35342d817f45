// Package debug provides developer tooling: screenshots of the composited
// frame.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout keeps names sortable and free of path separators.
const timestampLayout = "20060102_150405.000"

// Filename returns the screenshot path for a capture taken at t.
func Filename(dir string, t time.Time) string {
	name := fmt.Sprintf("shot_%s.png", t.Format(timestampLayout))
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// FromPixels converts bottom-up RGBA rows, as glReadPixels returns them,
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save encodes img as PNG at path, creating the directory if needed.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// Screenshots writes captures into one directory.
type Screenshots struct {
	dir string
	now func() time.Time
}

// NewScreenshots creates a writer for dir.
func NewScreenshots(dir string) *Screenshots {
	return &Screenshots{dir: dir, now: time.Now}
}

// Write saves bottom-up RGBA pixels and returns the file path.
func (s *Screenshots) Write(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	path := Filename(s.dir, s.now())
	if err := Save(img, path); err != nil {
		return "", err
	}
	return path, nil
}
