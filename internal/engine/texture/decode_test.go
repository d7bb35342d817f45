package texture

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// writeBMP writes a 2x2 image whose top row is red and bottom row is blue.
func writeBMP(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	path := filepath.Join(dir, "rows.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestDecodeFileOrientation(t *testing.T) {
	path := writeBMP(t, t.TempDir())

	tests := []struct {
		name     string
		o        Orientation
		firstRow color.RGBA
	}{
		{"bottom up", BottomUp, blue},
		{"top down", TopDown, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeFile(path, tt.o)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
			assert.Equal(t, tt.firstRow, img.RGBAAt(0, 0))
			assert.Equal(t, tt.firstRow, img.RGBAAt(1, 0))
			assert.Len(t, img.Pix, 16)
		})
	}
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := DecodeFile(filepath.Join(dir, "missing.bmp"), BottomUp)
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.bmp")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = DecodeFile(junk, BottomUp)
	assert.Error(t, err)
}

func TestToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(5, 5, 8, 7))
	gray.SetGray(5, 5, color.Gray{Y: 200})

	rgba := ToRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 3, 2), rgba.Bounds())
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, rgba.RGBAAt(0, 0))

	same := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, same, ToRGBA(same))
}

func TestPrepareFlipsOnlyBottomUp(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, red)

	assert.Equal(t, red, Prepare(img, TopDown).RGBAAt(0, 0))
	assert.Equal(t, red, Prepare(img, BottomUp).RGBAAt(0, 2))
}
