// Package assets loads the models, textures and skyboxes named in the
// configuration and builds the procedural terrain. Missing files never stop
// the renderer: each failure is logged once, collected, and replaced by an
// empty mesh or a 0 texture handle.
package assets

import (
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/config"
	"github.com/Faultbox/godrays/internal/engine/mesh"
	"github.com/Faultbox/godrays/internal/engine/model"
	"github.com/Faultbox/godrays/internal/engine/noise"
	"github.com/Faultbox/godrays/internal/engine/pipeline"
	"github.com/Faultbox/godrays/internal/engine/scene"
	"github.com/Faultbox/godrays/internal/engine/terrain"
	"github.com/Faultbox/godrays/internal/engine/texture"
	"github.com/Faultbox/godrays/internal/logger"
)

type textureKey struct {
	path string
	srgb bool
}

// Loader resolves asset paths against a root directory and loads them.
type Loader struct {
	root     string
	log      *zap.Logger
	textures *Cache[textureKey, uint32]
	owned    []uint32
	errs     error

	loadModel   func(path string) (*mesh.Mesh, error)
	loadTexture func(path string, srgb bool) (uint32, error)
	loadCubemap func(faces [texture.CubeFaces]string) (uint32, error)
	uploadBlend func(values []float32, width, depth int) (uint32, error)
}

// NewLoader creates a loader for files under root.
func NewLoader(root string) *Loader {
	return &Loader{
		root:        root,
		log:         logger.Named("assets"),
		textures:    NewCache[textureKey, uint32](),
		loadModel:   model.Load,
		loadTexture: texture.Load,
		loadCubemap: texture.LoadCubemap,
		uploadBlend: texture.UploadBlendMap,
	}
}

// Path resolves a configured file name. Absolute names are kept as is.
func (l *Loader) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || l.root == "" {
		return name
	}
	return filepath.Join(l.root, name)
}

func (l *Loader) fail(err error) {
	l.log.Warn("asset unavailable", zap.Error(err))
	l.errs = multierr.Append(l.errs, err)
}

// Model loads an OBJ model, or returns an empty mesh.
func (l *Loader) Model(name string) *mesh.Mesh {
	m, err := l.loadModel(l.Path(name))
	if err != nil {
		l.fail(err)
		return &mesh.Mesh{}
	}
	return m
}

// Texture loads a 2D texture, or returns 0. Each (file, colour space) pair
// is uploaded once.
func (l *Loader) Texture(name string, srgb bool) uint32 {
	key := textureKey{path: l.Path(name), srgb: srgb}
	if id, ok := l.textures.Get(key); ok {
		return id
	}
	id, err := l.loadTexture(key.path, srgb)
	if err != nil {
		l.fail(err)
		id = 0
	}
	l.textures.Set(key, id)
	return id
}

// Cubemap loads a skybox from six faces ordered +X, -X, +Y, -Y, +Z, -Z.
func (l *Loader) Cubemap(faces [texture.CubeFaces]string) uint32 {
	var paths [texture.CubeFaces]string
	for i, f := range faces {
		paths[i] = l.Path(f)
	}
	id, err := l.loadCubemap(paths)
	if err != nil {
		l.fail(fmt.Errorf("loading skybox: %w", err))
		return 0
	}
	l.owned = append(l.owned, id)
	return id
}

// BlendMap uploads the terrain height blend map, or returns 0.
func (l *Loader) BlendMap(ground *terrain.Result) uint32 {
	id, err := l.uploadBlend(ground.BlendMap(), ground.Heights.Width, ground.Heights.Depth)
	if err != nil {
		l.fail(fmt.Errorf("uploading blend map: %w", err))
		return 0
	}
	l.owned = append(l.owned, id)
	return id
}

// Err returns every failure collected so far.
func (l *Loader) Err() error {
	return l.errs
}

// handles returns every GL texture the loader created.
func (l *Loader) handles() []uint32 {
	var out []uint32
	for _, id := range l.textures.Values() {
		if id != 0 {
			out = append(out, id)
		}
	}
	return append(out, l.owned...)
}

func (l *Loader) terrainSet(t config.TerrainTextures) pipeline.TextureSet {
	return pipeline.TextureSet{
		Diffuse:   l.Texture(t.Diffuse, true),
		Normal:    l.Texture(t.Normal, false),
		AO:        l.Texture(t.AO, false),
		Roughness: l.Texture(t.Roughness, false),
	}
}

// Set is the loaded asset set and the textures it owns.
type Set struct {
	Resources pipeline.Resources
	handles   []uint32
}

// Release deletes the textures. Meshes belong to the pipeline once uploaded.
func (s *Set) Release() {
	if len(s.handles) > 0 {
		texture.Delete(s.handles...)
		s.handles = nil
	}
}

// Load reads every configured asset and attaches the terrain. The returned
// Set is always usable; the error lists the assets that were substituted.
func (l *Loader) Load(cfg config.AssetsConfig, ground *terrain.Result, textureRepeat float32) (*Set, error) {
	meshes := map[scene.MeshID]*mesh.Mesh{
		scene.MeshTower1:     l.Model(cfg.Tower1Model),
		scene.MeshTower2:     l.Model(cfg.Tower2Model),
		scene.MeshTower3:     l.Model(cfg.Tower3Model),
		scene.MeshObelisk:    l.Model(cfg.ObeliskModel),
		scene.MeshOctahedron: scene.Octahedron(),
	}

	res := pipeline.Resources{
		Meshes: meshes,
		Textures: map[scene.TextureID]uint32{
			scene.TexTowerDiffuse:     l.Texture(cfg.TowerDiffuse, true),
			scene.TexObeliskDiffuse:   l.Texture(cfg.ObeliskDiffuse, true),
			scene.TexObeliskEmissive:  l.Texture(cfg.ObeliskEmissive, true),
			scene.TexObeliskNormal:    l.Texture(cfg.ObeliskNormal, false),
			scene.TexObeliskRoughness: l.Texture(cfg.ObeliskRoughness, false),
		},
		Terrain: pipeline.TerrainMaterial{
			Lowland: l.terrainSet(cfg.Terrain1),
			Upland:  l.terrainSet(cfg.Terrain2),
			Repeat:  textureRepeat,
		},
		NightSky: l.Cubemap(cfg.NightSkybox),
		DaySky:   l.Cubemap(cfg.DaySkybox),
	}

	if ground != nil {
		meshes[scene.MeshTerrain] = ground.Mesh
		res.Terrain.BlendMap = l.BlendMap(ground)
	} else {
		meshes[scene.MeshTerrain] = &mesh.Mesh{}
	}

	hits, misses := l.textures.Stats()
	l.log.Info("assets loaded",
		zap.String("root", l.root),
		zap.Int("textures", len(l.handles())),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
		zap.Int("failures", len(multierr.Errors(l.errs))))

	return &Set{Resources: res, handles: l.handles()}, l.errs
}

// Load reads the assets under cfg.Assets.Root. See Loader.Load.
func Load(cfg *config.Config, ground *terrain.Result) (*Set, error) {
	return NewLoader(cfg.Assets.Root).Load(cfg.Assets, ground, cfg.Terrain.TextureRepeat)
}

// BuildTerrain generates the height-mapped ground from the terrain settings.
func BuildTerrain(cfg config.TerrainConfig) (*terrain.Result, error) {
	p := terrain.Params{
		Width:         cfg.Width,
		Depth:         cfg.Depth,
		HeightScale:   cfg.HeightScale,
		Octaves:       cfg.Octaves,
		Persistence:   cfg.Persistence,
		TextureRepeat: cfg.TextureRepeat,
	}
	field := noise.New(cfg.Seed)
	ground, err := terrain.Build(p, field)
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}
	logger.Info("terrain built",
		zap.Int("width", cfg.Width),
		zap.Int("depth", cfg.Depth),
		zap.Uint64("seed", field.Seed()),
		zap.Float32("min_height", ground.MinHeight),
		zap.Float32("max_height", ground.MaxHeight))
	return ground, nil
}
