package terrain

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

// GridCoords converts a world position to fractional grid coordinates.
func (r *Result) GridCoords(worldX, worldZ float32) (gx, gz float32) {
	return worldX + float32(r.offsetX), worldZ + float32(r.offsetZ)
}

// Contains reports whether the world position lies over the terrain grid.
func (r *Result) Contains(worldX, worldZ float32) bool {
	gx, gz := r.GridCoords(worldX, worldZ)
	return gx >= 0 && gz >= 0 && gx <= float32(r.Heights.Width-1) && gz <= float32(r.Heights.Depth-1)
}

// HeightAt returns the bilinearly interpolated terrain height under a world
// position. Positions beyond the grid use the nearest edge.
func (r *Result) HeightAt(worldX, worldZ float32) float32 {
	gx, gz := r.GridCoords(worldX, worldZ)
	w, d := r.Heights.Width, r.Heights.Depth

	gx = math.Clamp(gx, 0, float32(w-1))
	gz = math.Clamp(gz, 0, float32(d-1))

	x0 := int(math32.Floor(gx))
	z0 := int(math32.Floor(gz))
	if x0 >= w-1 {
		x0 = w - 2
	}
	if z0 >= d-1 {
		z0 = d - 2
	}
	fx := gx - float32(x0)
	fz := gz - float32(z0)

	near := math.Lerp(r.Heights.At(x0, z0), r.Heights.At(x0+1, z0), fx)
	far := math.Lerp(r.Heights.At(x0, z0+1), r.Heights.At(x0+1, z0+1), fx)
	return math.Lerp(near, far, fz)
}
