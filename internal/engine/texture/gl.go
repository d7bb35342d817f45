package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/logger"
)

// CubeFaces orders the six faces +X, -X, +Y, -Y, +Z, -Z.
const CubeFaces = 6

// Load decodes an image file into a mipmapped, repeating 2D texture.
// srgb marks gamma-encoded colour data so sampling returns linear values.
// On failure it returns 0 and the error; 0 samples as black.
func Load(path string, srgb bool) (uint32, error) {
	img, err := DecodeFile(path, BottomUp)
	if err != nil {
		return 0, fmt.Errorf("loading texture: %w", err)
	}
	id := Upload2D(img, srgb)
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Bool("srgb", srgb))
	return id, nil
}

func internalFormat(srgb bool) int32 {
	if srgb {
		return gl.SRGB8_ALPHA8
	}
	return gl.RGBA8
}

// Upload2D uploads RGBA pixels with trilinear filtering and REPEAT wrap.
func Upload2D(img *image.RGBA, srgb bool) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(srgb),
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// LoadCubemap builds an sRGB cubemap from six face files. Every face must
// decode and share one size.
func LoadCubemap(faces [CubeFaces]string) (uint32, error) {
	var imgs [CubeFaces]*image.RGBA
	for i, path := range faces {
		img, err := DecodeFile(path, TopDown)
		if err != nil {
			return 0, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		if i > 0 && img.Bounds().Size() != imgs[0].Bounds().Size() {
			return 0, fmt.Errorf("cubemap face %d: size %v differs from %v", i, img.Bounds().Size(), imgs[0].Bounds().Size())
		}
		imgs[i] = img
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, img := range imgs {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.SRGB8_ALPHA8,
			int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
			0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return id, nil
}

// UploadBlendMap stores a width x depth grid of floats as a single channel
// R32F texture.
func UploadBlendMap(values []float32, width, depth int) (uint32, error) {
	if width <= 0 || depth <= 0 || len(values) != width*depth {
		return 0, fmt.Errorf("blend map: %d values for %dx%d grid", len(values), width, depth)
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, int32(width), int32(depth), 0, gl.RED, gl.FLOAT, unsafe.Pointer(&values[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// Delete releases textures. Zero handles are ignored by GL.
func Delete(ids ...uint32) {
	if len(ids) > 0 {
		gl.DeleteTextures(int32(len(ids)), &ids[0])
	}
}
