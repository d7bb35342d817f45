package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/godrays/pkg/math"
)

type flatGround float32

func (g flatGround) HeightAt(_, _ float32) float32 { return float32(g) }

func TestBuildInstanceTable(t *testing.T) {
	d := Build(nil)

	counts := map[MeshID]int{}
	for _, dr := range d.Drawables {
		counts[dr.Mesh]++
	}
	assert.Equal(t, 1, counts[MeshTerrain])
	assert.Equal(t, 3, counts[MeshTower1])
	assert.Equal(t, 4, counts[MeshTower2])
	assert.Equal(t, 1, counts[MeshTower3])
	assert.Equal(t, 1, counts[MeshObelisk])
	assert.Equal(t, 1, counts[MeshOctahedron])

	var casters, occluders int
	d.ShadowCasters(func(*Drawable) { casters++ })
	d.Occluders(func(*Drawable) { occluders++ })
	assert.Equal(t, 11, casters, "everything casts a shadow")
	assert.Equal(t, 10, occluders, "the light proxy does not block the sun")

	assert.Len(t, d.Meshes(), MeshCount)
}

func TestBuildWithCrystals(t *testing.T) {
	d := Build([]math.Vec3{{X: 1}, {X: 5}})
	assert.Len(t, d.Drawables, 13)

	var crystals int
	d.Occluders(func(dr *Drawable) {
		if dr.Mesh == MeshOctahedron {
			crystals++
		}
	})
	assert.Equal(t, 2, crystals)
}

func TestTowerPlacement(t *testing.T) {
	// unrotated tower sits at its table position
	m := towerMatrix(tower1Positions[0], 0)
	assert.True(t, m.TransformPoint(math.Vec3{}).ApproxEqual(tower1Positions[0], 1e-5))
	assert.True(t, m.TransformPoint(math.Vec3{X: 2}).ApproxEqual(tower1Positions[0].Add(math.Vec3{X: 1}), 1e-5))

	// yaw applies in world space, swinging the translation
	p := tower2Positions[0]
	got := towerMatrix(p, tower2Yaw).TransformPoint(math.Vec3{})
	want := math.RotateY(tower2Yaw).TransformPoint(p)
	assert.True(t, got.ApproxEqual(want, 1e-4), "got %v want %v", got, want)
	assert.InDelta(t, p.Length(), got.Length(), 1e-4)
	assert.InDelta(t, p.Y, got.Y, 1e-5)
}

func TestDynamicPlacements(t *testing.T) {
	d := Build(nil)
	var obelisk, proxy Drawable
	d.All(func(dr *Drawable) {
		switch dr.Name {
		case "obelisk":
			obelisk = *dr
		case "light-proxy":
			proxy = *dr
		}
	})
	require.Equal(t, Bobbing, obelisk.Motion)
	require.Equal(t, Orbiting, proxy.Motion)

	f := Frame{Time: 3.14159265, LightPosition: math.Vec3{X: 7, Y: 8, Z: 9}}

	centre := obelisk.ModelMatrix(f).TransformPoint(math.Vec3{})
	assert.True(t, centre.ApproxEqual(ObeliskPosition(f.Time), 1e-5))
	assert.InDelta(t, 11.5, centre.Y, 1e-4)

	assert.True(t, proxy.ModelMatrix(f).TransformPoint(math.Vec3{}).ApproxEqual(f.LightPosition, 1e-5))
	assert.True(t, proxy.ModelMatrix(f).TransformPoint(math.Vec3{Y: 1}).ApproxEqual(math.Vec3{X: 7, Y: 10, Z: 9}, 1e-5))
}

func TestEmissionStrength(t *testing.T) {
	assert.InDelta(t, 4, EmissionStrength(0), 1e-6)
	assert.InDelta(t, 10, EmissionStrength(3.14159265), 1e-4)
	assert.InDelta(t, -2, EmissionStrength(3*3.14159265), 1e-4)
}

func TestOctahedron(t *testing.T) {
	m := Octahedron()
	assert.Len(t, m.Vertices, 10)
	assert.Equal(t, 8, m.TriangleCount())
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Length(), 1e-5)
		assert.InDelta(t, 1, v.Tangent.Length(), 1e-4)
		assert.InDelta(t, 0, v.Normal.Dot(v.Tangent), 1e-4)
	}
	b := m.Bounds()
	assert.Equal(t, math.Vec3{X: -1, Y: -1, Z: -1}, b.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, b.Max)
}

func TestPrimitiveSizes(t *testing.T) {
	assert.Len(t, SunQuad.Vertices, 4*5)
	assert.Len(t, SunQuad.Indices, 6)
	assert.Len(t, ScreenQuad, 6*4)
	assert.Len(t, SkyboxCube, 36*3)
}

func TestSunBillboard(t *testing.T) {
	tests := []struct {
		name string
		pos  math.Vec3
	}{
		{"low sun", math.Vec3{Y: 10, Z: -48}},
		{"zenith", math.Vec3{Y: 50}},
		{"horizon", math.Vec3{Z: -50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SunBillboard(tt.pos, 100)
			centre := m.TransformPoint(math.Vec3{})
			assert.True(t, centre.ApproxEqual(tt.pos, 1e-4))

			// the quad normal (+Z local) points away from the origin
			normal := m.TransformPoint(math.Vec3{Z: 0.01}).Sub(centre).Normalize()
			assert.True(t, normal.ApproxEqual(tt.pos.Normalize(), 1e-3), "normal %v", normal)

			corner := m.TransformPoint(math.Vec3{X: 0.5, Y: 0.5})
			assert.InDelta(t, 100*0.7071, corner.Sub(centre).Length(), 0.1)
		})
	}
}

func TestPoissonDisk(t *testing.T) {
	bounds := Rect{Min: math.Vec2{X: -20, Y: -20}, Max: math.Vec2{X: 20, Y: 20}}
	keep := []Circle{{Center: math.Vec2{}, Radius: 5}}

	pts := PoissonDisk(11, bounds, 3, 0, keep)
	require.NotEmpty(t, pts)

	for i, p := range pts {
		assert.True(t, bounds.contains(p), "point %v outside bounds", p)
		assert.GreaterOrEqual(t, p.Length(), float32(5), "point %v inside keep-out", p)
		for j := i + 1; j < len(pts); j++ {
			assert.GreaterOrEqual(t, p.Sub(pts[j]).Length(), float32(3))
		}
	}
	assert.Greater(t, len(pts), 40, "region should be well filled")

	again := PoissonDisk(11, bounds, 3, 0, keep)
	assert.Equal(t, pts, again)

	limited := PoissonDisk(11, bounds, 3, 7, keep)
	assert.Len(t, limited, 7)
}

func TestPoissonDiskDegenerate(t *testing.T) {
	bounds := Rect{Max: math.Vec2{X: 1, Y: 1}}
	assert.Nil(t, PoissonDisk(1, bounds, 0, 5, nil))
	assert.Nil(t, PoissonDisk(1, Rect{}, 1, 5, nil))
}

func TestScatterCrystals(t *testing.T) {
	pos := ScatterCrystals(flatGround(2), 24, 4, 12, 5)
	require.Len(t, pos, 12)
	for _, p := range pos {
		assert.InDelta(t, 2+crystalLift, p.Y, 1e-6)
		for _, k := range Keepouts() {
			assert.GreaterOrEqual(t, math.Vec2{X: p.X, Y: p.Z}.Sub(k.Center).Length(), k.Radius)
		}
	}

	assert.Nil(t, ScatterCrystals(flatGround(0), 24, 4, 0, 5))
	assert.Nil(t, ScatterCrystals(nil, 24, 4, 3, 5))
}

func TestMeshIDString(t *testing.T) {
	assert.Equal(t, "obelisk", MeshObelisk.String())
	assert.Equal(t, "unknown", MeshID(99).String())
}
