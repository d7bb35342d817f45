// Package scene describes what the renderer draws: the static instance
// table, the animated obelisk and light proxy, scattered crystals, and the
// procedural primitives shared by the passes.
package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

// MeshID names a mesh the pipeline resolves to GPU buffers.
type MeshID int

const (
	MeshTerrain MeshID = iota
	MeshTower1
	MeshTower2
	MeshTower3
	MeshObelisk
	MeshOctahedron
	meshCount
)

// MeshCount is the number of distinct scene meshes.
const MeshCount = int(meshCount)

var meshNames = [...]string{"terrain", "tower1", "tower2", "tower3", "obelisk", "octahedron"}

func (m MeshID) String() string {
	if m >= 0 && int(m) < len(meshNames) {
		return meshNames[m]
	}
	return "unknown"
}

// TextureID names a 2D texture the pipeline binds for a material.
type TextureID int

const (
	TexNone TextureID = iota
	TexTowerDiffuse
	TexObeliskDiffuse
	TexObeliskNormal
	TexObeliskRoughness
	TexObeliskEmissive
)

// Shading selects the shader program and uniform set.
type Shading int

const (
	ShadeLit     Shading = iota // main program, textured or flat
	ShadeTerrain                // terrain program with blend map
	ShadeUnlit                  // main program with the point light flag
)

// Surface selects the shadow bias band.
type Surface int

const (
	SurfaceBuilding Surface = iota
	SurfaceTerrain
)

// Motion describes how a drawable's placement changes per frame.
type Motion int

const (
	Static    Motion = iota
	Bobbing          // obelisk hover
	Orbiting         // follows the point light
)

// Material carries the per-drawable shading flags.
type Material struct {
	Shading   Shading
	Surface   Surface
	Diffuse   TextureID
	Normal    TextureID
	Roughness TextureID
	Emissive  TextureID
	Specular  float32
	Shininess float32
	Ambient   math.Vec3 // ShadeUnlit only
	Tint      math.Vec3 // base colour when Diffuse is TexNone
}

// Drawable is one placed mesh.
type Drawable struct {
	Name        string
	Mesh        MeshID
	Model       math.Mat4 // static part of the placement
	Motion      Motion
	Scale       float32 // dynamic drawables only
	Material    Material
	CastsShadow bool
	OccludesSun bool
}

// Frame is the per-frame input to dynamic placements.
type Frame struct {
	Time          float32
	LightPosition math.Vec3
}

// ModelMatrix returns the drawable's world matrix for a frame.
func (d Drawable) ModelMatrix(f Frame) math.Mat4 {
	switch d.Motion {
	case Bobbing:
		return math.Translate(ObeliskPosition(f.Time)).Mul(math.UniformScale(d.Scale))
	case Orbiting:
		return math.Translate(f.LightPosition).Mul(math.UniformScale(d.Scale))
	default:
		return d.Model
	}
}

// Description is the full list of drawables handed to the pipeline once.
type Description struct {
	Drawables []Drawable

	shadowCasters []int
	occluders     []int
}

// NewDescription indexes drawables by pass membership.
func NewDescription(drawables []Drawable) *Description {
	d := &Description{Drawables: drawables}
	for i, dr := range drawables {
		if dr.CastsShadow {
			d.shadowCasters = append(d.shadowCasters, i)
		}
		if dr.OccludesSun {
			d.occluders = append(d.occluders, i)
		}
	}
	return d
}

// ShadowCasters calls fn for each drawable written to the shadow map.
func (d *Description) ShadowCasters(fn func(*Drawable)) {
	for _, i := range d.shadowCasters {
		fn(&d.Drawables[i])
	}
}

// Occluders calls fn for each drawable that blocks the sun disc.
func (d *Description) Occluders(fn func(*Drawable)) {
	for _, i := range d.occluders {
		fn(&d.Drawables[i])
	}
}

// All calls fn for every drawable in table order.
func (d *Description) All(fn func(*Drawable)) {
	for i := range d.Drawables {
		fn(&d.Drawables[i])
	}
}

// Meshes returns the set of meshes the description references.
func (d *Description) Meshes() map[MeshID]bool {
	used := make(map[MeshID]bool)
	for _, dr := range d.Drawables {
		used[dr.Mesh] = true
	}
	return used
}

const (
	obeliskAmplitude = 0.5
	obeliskFrequency = 0.5
)

var obeliskBase = math.Vec3{X: 0.2, Y: 11, Z: 0}

// ObeliskPosition returns the hovering obelisk's centre at time t seconds.
func ObeliskPosition(t float32) math.Vec3 {
	p := obeliskBase
	p.Y += obeliskAmplitude * math32.Sin(obeliskFrequency*t)
	return p
}

// EmissionStrength returns the obelisk's pulsing glow multiplier.
func EmissionStrength(t float32) float32 {
	return math32.Sin(0.5*t)*6 + 4
}
