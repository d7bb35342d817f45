package pipeline

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/godrays/internal/engine/daynight"
	"github.com/Faultbox/godrays/internal/engine/scene"
	"github.com/Faultbox/godrays/internal/engine/shader"
	"github.com/Faultbox/godrays/pkg/math"
)

// occlusionClear is the grey the occlusion target starts from; shafts pick
// it up as a faint haze.
const occlusionClear = 0.4

func bindTexture2D(unit, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func bindCubemap(unit, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
}

func (pl *Pipeline) draw(d *scene.Drawable) {
	pl.meshes[d.Mesh].Draw()
}

// shadowPass renders every shadow caster's depth from the sun. Imported
// meshes have mixed winding, so culling stays off.
func (pl *Pipeline) shadowPass(f *FrameState) {
	pl.shadowMap.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)

	prog := pl.progs.shadow
	prog.Use()
	prog.SetMat4("lightSpaceMatrix", pl.frustum.LightSpaceMatrix(f.Light.Direction))

	placement := f.placement()
	pl.desc.ShadowCasters(func(d *scene.Drawable) {
		prog.SetMat4("modelMat", d.ModelMatrix(placement))
		pl.draw(d)
	})
	pl.shadowMap.Unbind()
}

// occlusionPass draws the sun disc in its tint and every occluder in black
// over a grey background, without depth testing.
func (pl *Pipeline) occlusionPass(f *FrameState) {
	pl.occlusion.Bind()
	pl.occlusion.Clear(occlusionClear, occlusionClear, occlusionClear, 1)
	gl.Disable(gl.DEPTH_TEST)

	prog := pl.progs.occlusion
	prog.Use()
	prog.SetMat4("projMat", f.Projection)
	prog.SetMat4("viewMat", f.View)

	sun := f.SunPosition(pl.frustum.Distance)
	prog.SetMat4("modelMat", scene.SunBillboard(sun, pl.params.GodRays.SunScale))
	prog.SetBool("isSun", true)
	prog.SetVec3("godRaysColor", f.Light.ShaftColor)
	pl.sunQuad.draw()

	prog.SetBool("isSun", false)
	placement := f.placement()
	pl.desc.Occluders(func(d *scene.Drawable) {
		prog.SetMat4("modelMat", d.ModelMatrix(placement))
		pl.draw(d)
	})
	pl.occlusion.Unbind()
}

// mainPass lights the scene into the main target, then fills the
// background with the blended skybox.
func (pl *Pipeline) mainPass(f *FrameState) {
	pl.main.Bind()
	pl.main.Clear(0, 0, 0, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)

	lightSpace := pl.frustum.LightSpaceMatrix(f.Light.Direction)
	pl.shadowMap.BindTexture(unitShadow)
	for _, prog := range []*shader.Program{pl.progs.lit, pl.progs.terrain} {
		pl.setFrameUniforms(prog, f, lightSpace)
	}

	placement := f.placement()
	emission := scene.EmissionStrength(f.Time)
	pl.desc.All(func(d *scene.Drawable) {
		model := d.ModelMatrix(placement)
		switch d.Material.Shading {
		case scene.ShadeTerrain:
			pl.drawTerrain(d, model)
		default:
			pl.drawLit(d, model, emission)
		}
	})

	pl.drawSkybox(f)
	pl.main.Unbind()
}

func (pl *Pipeline) setFrameUniforms(prog *shader.Program, f *FrameState, lightSpace math.Mat4) {
	prog.Use()
	prog.SetMat4("viewMat", f.View)
	prog.SetMat4("projMat", f.Projection)
	prog.SetMat4("lightSpaceMatrix", lightSpace)
	prog.SetVec3("viewPos", f.CameraPos)

	l := f.Light
	prog.SetVec3("dirLight.direction", l.Direction)
	prog.SetVec3("dirLight.ambient", l.Lighting.Ambient)
	prog.SetVec3("dirLight.diffuse", l.Lighting.Diffuse)
	prog.SetVec3("dirLight.specular", l.Lighting.Specular)

	pt := pl.pointLight.At(f.OrbitLight)
	prog.SetVec3("pointLight.position", pt.Position)
	prog.SetVec3("pointLight.ambient", pt.Ambient)
	prog.SetVec3("pointLight.diffuse", pt.Diffuse)
	prog.SetVec3("pointLight.specular", pt.Specular)
	prog.SetFloat("pointLight.constantK", pt.Constant)
	prog.SetFloat("pointLight.linearK", pt.Linear)
	prog.SetFloat("pointLight.quadraticK", pt.Quadratic)

	prog.SetFloat("depthRange", pl.frustum.Far-pl.frustum.Near)
	prog.SetFloat("softK", pl.params.Shadow.SoftK)
	prog.SetFloat("softM", pl.params.Shadow.SoftM)
}

func (pl *Pipeline) setBias(prog *shader.Program, s scene.Surface) {
	band := pl.buildingBias
	if s == scene.SurfaceTerrain {
		band = pl.terrainBias
	}
	prog.SetFloat("biasMin", band.Min)
	prog.SetFloat("biasMax", band.Max)
}

func (pl *Pipeline) texture(id scene.TextureID) uint32 {
	if id == scene.TexNone {
		return 0
	}
	return pl.res.Textures[id]
}

func (pl *Pipeline) drawLit(d *scene.Drawable, model math.Mat4, emission float32) {
	prog := pl.progs.lit
	prog.Use()
	prog.SetMat4("modelMat", model)
	pl.setBias(prog, d.Material.Surface)

	m := d.Material
	if m.Shading == scene.ShadeUnlit {
		prog.SetBool("isPointLight", true)
		prog.SetVec3("material.ambient", m.Ambient)
		prog.SetVec3("material.tint", m.Tint)
		pl.draw(d)
		prog.SetBool("isPointLight", false)
		return
	}

	maps := []struct {
		flag string
		unit uint32
		id   scene.TextureID
	}{
		{"material.hasDiffuseMap", unitDiffuse, m.Diffuse},
		{"material.hasNormalMap", unitNormal, m.Normal},
		{"material.hasRoughnessMap", unitRoughness, m.Roughness},
		{"material.hasEmissiveMap", unitEmissive, m.Emissive},
	}
	for _, mp := range maps {
		handle := pl.texture(mp.id)
		prog.SetBool(mp.flag, handle != 0)
		bindTexture2D(mp.unit, handle)
	}

	prog.SetVec3("material.ambient", pl.material.Ambient)
	prog.SetVec3("material.tint", m.Tint)
	prog.SetVec3("material.specular", math.Vec3{X: m.Specular, Y: m.Specular, Z: m.Specular})
	prog.SetFloat("material.shininess", m.Shininess)
	prog.SetFloat("material.emissionStrength", emission)
	pl.draw(d)
}

func (pl *Pipeline) drawTerrain(d *scene.Drawable, model math.Mat4) {
	prog := pl.progs.terrain
	prog.Use()
	prog.SetMat4("modelMat", model)
	pl.setBias(prog, d.Material.Surface)

	t := pl.res.Terrain
	for i, set := range []TextureSet{t.Lowland, t.Upland} {
		base := unitLowland
		if i == 1 {
			base = unitUpland
		}
		bindTexture2D(base, set.Diffuse)
		bindTexture2D(base+1, set.Normal)
		bindTexture2D(base+2, set.AO)
		bindTexture2D(base+3, set.Roughness)
	}
	bindTexture2D(unitBlendMap, t.BlendMap)

	prog.SetBool("hasNormalMaps", t.Lowland.Normal != 0 && t.Upland.Normal != 0)
	prog.SetBool("hasAOMaps", t.Lowland.AO != 0 && t.Upland.AO != 0)
	repeat := t.Repeat
	if repeat <= 0 {
		repeat = 1
	}
	prog.SetFloat("textureRepeat", repeat)
	prog.SetVec3("materialAmbient", pl.material.Ambient)
	s := d.Material.Specular
	prog.SetVec3("materialSpecular", math.Vec3{X: s, Y: s, Z: s})
	prog.SetFloat("shininess", d.Material.Shininess)
	pl.draw(d)
}

// drawSkybox draws the cube last at the far plane so it only covers
// pixels the scene left empty.
func (pl *Pipeline) drawSkybox(f *FrameState) {
	gl.DepthFunc(gl.LEQUAL)
	prog := pl.progs.skybox
	prog.Use()
	prog.SetMat4("projMat", f.Projection)
	prog.SetMat4("viewMat", f.View.WithoutTranslation())
	prog.SetFloat("dayFactor", daynight.SkyBlend(f.Light.Direction))
	bindCubemap(0, pl.res.NightSky)
	bindCubemap(1, pl.res.DaySky)
	pl.skybox.draw()
	gl.DepthFunc(gl.LESS)
}

// lightShaftPass blurs the occlusion image radially from the sun's screen
// position.
func (pl *Pipeline) lightShaftPass(f *FrameState) {
	pl.shafts.Bind()
	pl.shafts.Clear(0, 0, 0, 1)
	gl.Disable(gl.DEPTH_TEST)

	sun, _ := f.ScreenPosition(f.SunPosition(pl.frustum.Distance))
	gr := pl.params.GodRays

	prog := pl.progs.godRays
	prog.Use()
	prog.SetVec2("lightPosition", sun.X, sun.Y)
	prog.SetVec3("shaftColor", f.Light.ShaftColor)
	prog.SetFloat("exposure", gr.Exposure)
	prog.SetFloat("decay", gr.Decay)
	prog.SetFloat("density", gr.Density)
	prog.SetFloat("weight", gr.Weight)
	prog.SetInt("samples", int32(gr.Samples))
	pl.occlusion.BindTexture(0)
	pl.screenQuad.draw()
	pl.shafts.Unbind()
}

// compositePass adds the shafts to the lit scene in the default
// framebuffer.
func (pl *Pipeline) compositePass(f *FrameState) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, pl.width, pl.height)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	prog := pl.progs.composite
	prog.Use()
	prog.SetFloat("shaftIntensity", shaftIntensity(f, pl.frustum.Distance))
	pl.main.BindTexture(0)
	pl.shafts.BindTexture(1)
	pl.screenQuad.draw()
}

// shaftIntensity is the composite weight of the shafts. A sun behind the
// camera contributes nothing.
func shaftIntensity(f *FrameState, sunDistance float32) float32 {
	if _, inFront := f.ScreenPosition(f.SunPosition(sunDistance)); !inFront {
		return 0
	}
	return f.Light.ShaftIntensity
}
