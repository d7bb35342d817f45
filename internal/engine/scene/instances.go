package scene

import (
	"fmt"

	"github.com/Faultbox/godrays/pkg/math"
)

const (
	towerScale      = 0.5
	tower2Yaw       = -1.59999883
	tower3Yaw       = -3.16999745
	obeliskScale    = 2
	lightProxyScale = 2
	CrystalScale    = 0.35
)

var (
	tower1Positions = []math.Vec3{
		{X: 16.399992, Y: 0.799999595 - 3, Z: 20.2000046},
		{X: 3.19999981, Y: 0.799999595 - 3, Z: 20.2000046},
		{X: -9.99999239, Y: 0.799999595 - 3, Z: 20.2000046},
	}
	tower2Positions = []math.Vec3{
		{X: 5, Y: -4.599999999 - 3.5, Z: -22.400013},
		{X: -15.7999897, Y: -4.79999971 - 3.5, Z: -18.5999985},
		{X: -7.25273514, Y: -2.59999967 - 3.5, Z: 18.603447},
		{X: 10.7999945, Y: -2.60000038 - 3.5, Z: 19.2000008},
	}
	tower3Position = math.Vec3{X: 0.619141638, Y: 2 - 1.5, Z: 21.7912159}

	lightProxyAmbient = math.Vec3{X: 0.4, Y: 0.4, Z: 0.4}
	lightProxyTint    = math.Vec3{X: 1, Y: 0.95, Z: 1}
	crystalTint       = math.Vec3{X: 0.55, Y: 0.75, Z: 0.95}
)

func towerMaterial() Material {
	return Material{Shading: ShadeLit, Surface: SurfaceBuilding, Diffuse: TexTowerDiffuse, Specular: 0.5, Shininess: 32}
}

// towerMatrix places a tower. Yawed towers rotate about the world origin
// after translation, so the yaw also swings their position.
func towerMatrix(pos math.Vec3, yaw float32) math.Mat4 {
	m := math.Translate(pos).Mul(math.UniformScale(towerScale))
	if yaw != 0 {
		m = math.RotateY(yaw).Mul(m)
	}
	return m
}

// Build assembles the scene: terrain, eight towers, the obelisk, the light
// proxy and one crystal per position.
func Build(crystals []math.Vec3) *Description {
	var ds []Drawable

	ds = append(ds, Drawable{
		Name:        "terrain",
		Mesh:        MeshTerrain,
		Model:       math.Identity(),
		Material:    Material{Shading: ShadeTerrain, Surface: SurfaceTerrain, Specular: 0.2, Shininess: 32},
		CastsShadow: true,
		OccludesSun: true,
	})

	for i, p := range tower1Positions {
		ds = append(ds, Drawable{
			Name: fmt.Sprintf("tower1-%d", i), Mesh: MeshTower1, Model: towerMatrix(p, 0),
			Material: towerMaterial(), CastsShadow: true, OccludesSun: true,
		})
	}
	for i, p := range tower2Positions {
		ds = append(ds, Drawable{
			Name: fmt.Sprintf("tower2-%d", i), Mesh: MeshTower2, Model: towerMatrix(p, tower2Yaw),
			Material: towerMaterial(), CastsShadow: true, OccludesSun: true,
		})
	}
	ds = append(ds, Drawable{
		Name: "tower3", Mesh: MeshTower3, Model: towerMatrix(tower3Position, tower3Yaw),
		Material: towerMaterial(), CastsShadow: true, OccludesSun: true,
	})

	ds = append(ds, Drawable{
		Name:   "obelisk",
		Mesh:   MeshObelisk,
		Motion: Bobbing,
		Scale:  obeliskScale,
		Material: Material{
			Shading:   ShadeLit,
			Surface:   SurfaceBuilding,
			Diffuse:   TexObeliskDiffuse,
			Normal:    TexObeliskNormal,
			Roughness: TexObeliskRoughness,
			Emissive:  TexObeliskEmissive,
			Specular:  0.4,
			Shininess: 32,
		},
		CastsShadow: true,
		OccludesSun: true,
	})

	ds = append(ds, Drawable{
		Name:   "light-proxy",
		Mesh:   MeshOctahedron,
		Motion: Orbiting,
		Scale:  lightProxyScale,
		Material: Material{
			Shading: ShadeUnlit,
			Surface: SurfaceBuilding,
			Ambient: lightProxyAmbient,
			Tint:    lightProxyTint,
		},
		CastsShadow: true,
	})

	for i, p := range crystals {
		ds = append(ds, Drawable{
			Name:        fmt.Sprintf("crystal-%d", i),
			Mesh:        MeshOctahedron,
			Model:       math.Translate(p).Mul(math.Scale(math.Vec3{X: CrystalScale, Y: CrystalScale * 2, Z: CrystalScale})),
			Material:    Material{Shading: ShadeLit, Surface: SurfaceBuilding, Specular: 0.8, Shininess: 64, Tint: crystalTint},
			CastsShadow: true,
			OccludesSun: true,
		})
	}

	return NewDescription(ds)
}
