// Package pipeline renders a frame in five passes: shadow depth, sun
// occlusion, the lit scene with skybox, the radial light shaft blur, and
// the final composite to the window.
package pipeline

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/config"
	"github.com/Faultbox/godrays/internal/engine/framebuffer"
	"github.com/Faultbox/godrays/internal/engine/lighting"
	"github.com/Faultbox/godrays/internal/engine/mesh"
	"github.com/Faultbox/godrays/internal/engine/pipeline/shaders"
	"github.com/Faultbox/godrays/internal/engine/scene"
	"github.com/Faultbox/godrays/internal/engine/shader"
	"github.com/Faultbox/godrays/internal/engine/shadow"
	"github.com/Faultbox/godrays/internal/logger"
)

// Params are the fixed settings of a pipeline.
type Params struct {
	Width   int32
	Height  int32
	Shadow  config.ShadowConfig
	GodRays config.GodRaysConfig
}

// ParamsFromConfig takes the shadow and light shaft sections from cfg.
func ParamsFromConfig(cfg *config.Config, width, height int32) Params {
	return Params{Width: width, Height: height, Shadow: cfg.Shadow, GodRays: cfg.GodRays}
}

// TextureSet is one terrain material layer. Zero handles sample black.
type TextureSet struct {
	Diffuse   uint32
	Normal    uint32
	AO        uint32
	Roughness uint32
}

// TerrainMaterial is the two-layer terrain surface and its blend map.
type TerrainMaterial struct {
	Lowland  TextureSet
	Upland   TextureSet
	BlendMap uint32
	Repeat   float32
}

// Resources are the loaded assets the passes draw. The pipeline uploads
// the meshes and takes ownership of the GPU copies; textures stay owned by
// the caller.
type Resources struct {
	Meshes   map[scene.MeshID]*mesh.Mesh
	Textures map[scene.TextureID]uint32
	Terrain  TerrainMaterial
	NightSky uint32
	DaySky   uint32
}

type programs struct {
	shadow    *shader.Program
	occlusion *shader.Program
	lit       *shader.Program
	terrain   *shader.Program
	skybox    *shader.Program
	godRays   *shader.Program
	composite *shader.Program
}

func (p *programs) all() []*shader.Program {
	return []*shader.Program{p.shadow, p.occlusion, p.lit, p.terrain, p.skybox, p.godRays, p.composite}
}

// unlinkedPrograms names the programs the driver rejected.
func unlinkedPrograms(progs []*shader.Program) []string {
	var out []string
	for _, p := range progs {
		if p != nil && !p.Linked() {
			out = append(out, p.Name())
		}
	}
	return out
}

// Pipeline owns every GPU object a frame needs.
type Pipeline struct {
	params Params
	desc   *scene.Description
	res    Resources
	log    *zap.Logger

	meshes     map[scene.MeshID]*mesh.GPUMesh
	sunQuad    *geometry
	screenQuad *geometry
	skybox     *geometry
	progs      programs

	shadowMap *shadow.Map
	occlusion *framebuffer.Framebuffer
	main      *framebuffer.Framebuffer
	shafts    *framebuffer.Framebuffer
	targets   []resizable

	frustum      shadow.Frustum
	pointLight   lighting.PointLight
	material     lighting.MaterialBase
	buildingBias lighting.BiasBand
	terrainBias  lighting.BiasBand

	width   int32
	height  int32
	tracker passTracker
}

// New compiles the programs, uploads the scene meshes and creates the
// render targets. An incomplete render target is a fatal error.
func New(p Params, desc *scene.Description, res Resources) (*Pipeline, error) {
	width, height := framebuffer.ClampSize(p.Width, p.Height)
	pl := &Pipeline{
		params: p,
		desc:   desc,
		res:    res,
		log:    logger.Named("pipeline"),
		meshes: make(map[scene.MeshID]*mesh.GPUMesh),
		frustum: shadow.Frustum{
			Extent:   p.Shadow.OrthoExtent,
			Near:     p.Shadow.Near,
			Far:      p.Shadow.Far,
			Distance: p.Shadow.Distance,
		},
		pointLight:   lighting.DefaultPointLight(),
		material:     lighting.DefaultMaterial(),
		buildingBias: lighting.BiasBand{Min: p.Shadow.BuildingBiasMin, Max: p.Shadow.BuildingBiasMax},
		terrainBias:  lighting.BiasBand{Min: p.Shadow.TerrainBiasMin, Max: p.Shadow.TerrainBiasMax},
		width:        width,
		height:       height,
	}

	if err := pl.createTargets(); err != nil {
		pl.Destroy()
		return nil, err
	}

	pl.progs = programs{
		shadow:    shader.Compile("shadow", shaders.ShadowVertexShader, shaders.ShadowFragmentShader),
		occlusion: shader.Compile("occlusion", shaders.OcclusionVertexShader, shaders.OcclusionFragmentShader),
		lit:       shader.Compile("lit", shaders.LitVertexShader, shaders.LitFragmentShader()),
		terrain:   shader.Compile("terrain", shaders.LitVertexShader, shaders.TerrainFragmentShader()),
		skybox:    shader.Compile("skybox", shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader),
		godRays:   shader.Compile("godrays", shaders.ScreenVertexShader, shaders.GodRaysFragmentShader),
		composite: shader.Compile("composite", shaders.ScreenVertexShader, shaders.CompositeFragmentShader),
	}
	if failed := unlinkedPrograms(pl.progs.all()); len(failed) > 0 {
		pl.log.Warn("programs failed to link",
			zap.Strings("programs", failed))
	}
	pl.bindSamplers()

	for id := range desc.Meshes() {
		m := res.Meshes[id]
		if m == nil {
			m = &mesh.Mesh{}
		}
		gm := mesh.Upload(m)
		pl.meshes[id] = gm
		pl.log.Debug("mesh uploaded",
			zap.Stringer("mesh", id),
			zap.Int("triangles", m.TriangleCount()),
			zap.Int32("indices", gm.IndexCount()))
	}

	pl.sunQuad = uploadGeometry(scene.SunQuad.Vertices, scene.SunQuad.Indices, 3, 2)
	pl.screenQuad = uploadGeometry(scene.ScreenQuad, nil, 2, 2)
	pl.skybox = uploadGeometry(scene.SkyboxCube, nil, 3)

	pl.log.Info("pipeline ready",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Int32("shadow_resolution", pl.shadowMap.Resolution()),
		zap.Int("drawables", len(desc.Drawables)))
	return pl, nil
}

func (pl *Pipeline) createTargets() error {
	var err error
	if pl.shadowMap, err = shadow.NewMap(int32(pl.params.Shadow.Resolution)); err != nil {
		return fmt.Errorf("creating shadow map: %w", err)
	}
	if pl.occlusion, err = framebuffer.New("occlusion", pl.width, pl.height, framebuffer.ColorOnly); err != nil {
		return err
	}
	if pl.main, err = framebuffer.New("main", pl.width, pl.height, framebuffer.DepthStencil); err != nil {
		return err
	}
	if pl.shafts, err = framebuffer.New("light-shaft", pl.width, pl.height, framebuffer.ColorOnly); err != nil {
		return err
	}
	pl.targets = []resizable{pl.occlusion, pl.main, pl.shafts}
	return nil
}

// Texture units used by the lit and terrain programs.
const (
	unitShadow uint32 = 1

	unitDiffuse   uint32 = 2
	unitNormal    uint32 = 3
	unitRoughness uint32 = 4
	unitEmissive  uint32 = 5

	unitLowland  uint32 = 2 // diffuse, normal, AO, roughness: 2..5
	unitUpland   uint32 = 6 // 6..9
	unitBlendMap uint32 = 10
)

// bindSamplers points every sampler uniform at its fixed texture unit.
func (pl *Pipeline) bindSamplers() {
	lit := pl.progs.lit
	lit.Use()
	lit.SetInt("shadowMap", int32(unitShadow))
	lit.SetInt("material.diffuseMap", int32(unitDiffuse))
	lit.SetInt("material.normalMap", int32(unitNormal))
	lit.SetInt("material.roughnessMap", int32(unitRoughness))
	lit.SetInt("material.emissiveMap", int32(unitEmissive))

	t := pl.progs.terrain
	t.Use()
	t.SetInt("shadowMap", int32(unitShadow))
	for i, name := range []string{"diffuseMap", "normalMap", "aoMap", "roughnessMap"} {
		t.SetInt("lowland."+name, int32(unitLowland)+int32(i))
		t.SetInt("upland."+name, int32(unitUpland)+int32(i))
	}
	t.SetInt("blendMap", int32(unitBlendMap))

	sky := pl.progs.skybox
	sky.Use()
	sky.SetInt("nightSkybox", 0)
	sky.SetInt("daySkybox", 1)

	pl.progs.godRays.Use()
	pl.progs.godRays.SetInt("occlusionMap", 0)

	c := pl.progs.composite
	c.Use()
	c.SetInt("sceneTexture", 0)
	c.SetInt("shaftTexture", 1)

	gl.UseProgram(0)
}

// Size returns the current window-sized target dimensions.
func (pl *Pipeline) Size() (width, height int32) {
	return pl.width, pl.height
}

// Resize reallocates the window-sized targets. It must be called between
// frames; the game applies pending resizes before the next Render.
func (pl *Pipeline) Resize(width, height int32) error {
	if !pl.tracker.idle() {
		return fmt.Errorf("resize: %w", ErrFrameActive)
	}
	width, height = framebuffer.ClampSize(width, height)
	if width == pl.width && height == pl.height {
		return nil
	}
	resizeTargets(pl.targets, width, height)
	pl.width, pl.height = width, height
	pl.log.Info("render targets resized", zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

// Render draws one frame into the default framebuffer.
func (pl *Pipeline) Render(f *FrameState) error {
	if err := pl.tracker.beginFrame(); err != nil {
		return err
	}
	steps := []struct {
		pass Pass
		run  func(*FrameState)
	}{
		{PassShadow, pl.shadowPass},
		{PassOcclusion, pl.occlusionPass},
		{PassMain, pl.mainPass},
		{PassLightShaft, pl.lightShaftPass},
		{PassComposite, pl.compositePass},
	}
	for _, s := range steps {
		if err := pl.tracker.begin(s.pass); err != nil {
			pl.tracker.abort()
			return err
		}
		s.run(f)
		if err := pl.tracker.end(s.pass); err != nil {
			pl.tracker.abort()
			return err
		}
	}
	return pl.tracker.endFrame()
}

// Destroy releases every GPU object the pipeline created. Textures in
// Resources are left to their owner.
func (pl *Pipeline) Destroy() error {
	var err error
	if !pl.tracker.idle() {
		err = multierr.Append(err, fmt.Errorf("destroy: %w", ErrFrameActive))
		pl.tracker.abort()
	}

	for _, p := range pl.progs.all() {
		if p != nil {
			p.Destroy()
		}
	}
	for id, m := range pl.meshes {
		m.Destroy()
		delete(pl.meshes, id)
	}
	pl.sunQuad.destroy()
	pl.screenQuad.destroy()
	pl.skybox.destroy()

	if pl.shadowMap != nil {
		pl.shadowMap.Destroy()
	}
	for _, fb := range []*framebuffer.Framebuffer{pl.occlusion, pl.main, pl.shafts} {
		if fb != nil {
			fb.Destroy()
		}
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		err = multierr.Append(err, fmt.Errorf("gl error 0x%x during teardown", code))
	}
	return err
}
