// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	DayNight DayNightConfig `yaml:"daynight"`
	Shadow   ShadowConfig   `yaml:"shadow"`
	GodRays  GodRaysConfig  `yaml:"godrays"`
	Orbit    OrbitConfig    `yaml:"orbit"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// TerrainConfig holds procedural terrain parameters.
type TerrainConfig struct {
	Width         int     `yaml:"width"`
	Depth         int     `yaml:"depth"`
	HeightScale   float32 `yaml:"height_scale"`
	Seed          uint64  `yaml:"seed"`
	Octaves       int     `yaml:"octaves"`
	Persistence   float32 `yaml:"persistence"`
	TextureRepeat float32 `yaml:"texture_repeat"`
}

// DayNightConfig holds sun cycle settings.
type DayNightConfig struct {
	PhaseRate  float32 `yaml:"phase_rate"` // per rendered frame
	StartPhase float32 `yaml:"start_phase"`
}

// ShadowConfig holds directional shadow map settings.
type ShadowConfig struct {
	Resolution      int     `yaml:"resolution"`
	OrthoExtent     float32 `yaml:"ortho_extent"`
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	Distance        float32 `yaml:"distance"`
	BuildingBiasMin float32 `yaml:"building_bias_min"`
	BuildingBiasMax float32 `yaml:"building_bias_max"`
	TerrainBiasMin  float32 `yaml:"terrain_bias_min"`
	TerrainBiasMax  float32 `yaml:"terrain_bias_max"`
	SoftK           float32 `yaml:"soft_k"`
	SoftM           float32 `yaml:"soft_m"`
}

// GodRaysConfig holds light shaft post-process parameters.
type GodRaysConfig struct {
	Exposure float32 `yaml:"exposure"`
	Decay    float32 `yaml:"decay"`
	Density  float32 `yaml:"density"`
	Weight   float32 `yaml:"weight"`
	Samples  int     `yaml:"samples"`
	SunScale float32 `yaml:"sun_scale"`
}

// OrbitConfig holds point light orbit settings.
type OrbitConfig struct {
	Radius       float32 `yaml:"radius"`
	DefaultSpeed float32 `yaml:"default_speed"`
	FastSpeed    float32 `yaml:"fast_speed"`
	Acceleration float32 `yaml:"acceleration"`
	Damping      float32 `yaml:"damping"`
}

// CameraConfig holds free and fixed camera settings.
type CameraConfig struct {
	Speed         float32    `yaml:"speed"`
	Sensitivity   float32    `yaml:"sensitivity"`
	StartPosition [3]float32 `yaml:"start_position"`
	FixedPosition [3]float32 `yaml:"fixed_position"`
	FixedStep     float32    `yaml:"fixed_step"`
}

// MinCrystalSpacing bounds the scatter grid size.
const MinCrystalSpacing = 0.5

// SceneConfig holds scene population settings.
type SceneConfig struct {
	Crystals       int     `yaml:"crystals"`
	CrystalSpacing float32 `yaml:"crystal_spacing"`
}

// AssetsConfig holds asset file locations relative to Root.
type AssetsConfig struct {
	Root string `yaml:"root"`

	Tower1Model  string `yaml:"tower1_model"`
	Tower2Model  string `yaml:"tower2_model"`
	Tower3Model  string `yaml:"tower3_model"`
	ObeliskModel string `yaml:"obelisk_model"`

	TowerDiffuse     string `yaml:"tower_diffuse"`
	ObeliskDiffuse   string `yaml:"obelisk_diffuse"`
	ObeliskEmissive  string `yaml:"obelisk_emissive"`
	ObeliskNormal    string `yaml:"obelisk_normal"`
	ObeliskRoughness string `yaml:"obelisk_roughness"`

	Terrain1 TerrainTextures `yaml:"terrain1"`
	Terrain2 TerrainTextures `yaml:"terrain2"`

	NightSkybox [6]string `yaml:"night_skybox"` // +X -X +Y -Y +Z -Z
	DaySkybox   [6]string `yaml:"day_skybox"`
}

// TerrainTextures names one terrain material set.
type TerrainTextures struct {
	Diffuse   string `yaml:"diffuse"`
	Normal    string `yaml:"normal"`
	AO        string `yaml:"ao"`
	Roughness string `yaml:"roughness"`
}

// AudioConfig holds ambience settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float32 `yaml:"master_volume"`
	DayTrack     string  `yaml:"day_track"`
	NightTrack   string  `yaml:"night_track"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

func skyboxFaces(dir string) [6]string {
	var faces [6]string
	for i, name := range []string{"posx", "negx", "posy", "negy", "posz", "negz"} {
		faces[i] = "Skyboxes/" + dir + "/" + name + ".bmp"
	}
	return faces
}

func terrainSet(n int) TerrainTextures {
	prefix := fmt.Sprintf("TerrainCompressed/mudFloor%d", n)
	return TerrainTextures{
		Diffuse:   prefix + "Diffuse.bmp",
		Normal:    prefix + "Normal.bmp",
		AO:        prefix + "AO.bmp",
		Roughness: prefix + "Roughness.bmp",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    45,
			Near:   0.1,
			Far:    500,
		},
		Terrain: TerrainConfig{
			Width:         50,
			Depth:         50,
			HeightScale:   5,
			Octaves:       5,
			Persistence:   0.5,
			TextureRepeat: 4,
		},
		DayNight: DayNightConfig{
			PhaseRate: 0.0001,
		},
		Shadow: ShadowConfig{
			Resolution:      2046,
			OrthoExtent:     28.5,
			Near:            22,
			Far:             70,
			Distance:        50,
			BuildingBiasMin: 0.0134,
			BuildingBiasMax: 0.0194,
			TerrainBiasMin:  0.00989,
			TerrainBiasMax:  0.0174,
			SoftK:           20,
			SoftM:           20,
		},
		GodRays: GodRaysConfig{
			Exposure: 1.2,
			Decay:    0.96,
			Density:  1.49,
			Weight:   0.9,
			Samples:  100,
			SunScale: 100,
		},
		Orbit: OrbitConfig{
			Radius:       15,
			DefaultSpeed: 0.5,
			FastSpeed:    5,
			Acceleration: 0.2,
			Damping:      0.5,
		},
		Camera: CameraConfig{
			Speed:         7.5,
			Sensitivity:   0.1,
			StartPosition: [3]float32{0, 0, 10},
			FixedPosition: [3]float32{0, 5, 20},
			FixedStep:     0.2,
		},
		Scene: SceneConfig{
			Crystals:       12,
			CrystalSpacing: 4,
		},
		Assets: AssetsConfig{
			Root:             "dep",
			Tower1Model:      "SceneBuildings/towerBuilding.obj",
			Tower2Model:      "SceneBuildings/towerBuilding2.obj",
			Tower3Model:      "SceneBuildings/towerBuilding3.obj",
			ObeliskModel:     "MainObelisk/obelisk.obj",
			TowerDiffuse:     "SceneBuildings/towerBuilding.bmp",
			ObeliskDiffuse:   "Compressed/obeliskDiffuse.bmp",
			ObeliskEmissive:  "Compressed/obeliskEmissive.bmp",
			ObeliskNormal:    "Compressed/obeliskNormals.bmp",
			ObeliskRoughness: "Compressed/obeliskRoughness.bmp",
			Terrain1:         terrainSet(1),
			Terrain2:         terrainSet(2),
			NightSkybox:      skyboxFaces("Night"),
			DaySkybox:        skyboxFaces("Day"),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			DayTrack:     "Audio/day.wav",
			NightTrack:   "Audio/night.wav",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// Validate reports settings that would make setup impossible.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("graphics: clip planes near=%g far=%g", c.Graphics.Near, c.Graphics.Far))
	}
	if c.Terrain.Width < 2 || c.Terrain.Depth < 2 {
		errs = append(errs, fmt.Errorf("terrain: grid %dx%d needs at least 2x2 samples", c.Terrain.Width, c.Terrain.Depth))
	}
	if c.Shadow.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("shadow: resolution %d must be positive", c.Shadow.Resolution))
	}
	if c.Shadow.Far <= c.Shadow.Near {
		errs = append(errs, fmt.Errorf("shadow: far plane %g must exceed near plane %g", c.Shadow.Far, c.Shadow.Near))
	}
	if c.Shadow.BuildingBiasMin > c.Shadow.BuildingBiasMax {
		errs = append(errs, errors.New("shadow: building bias band is inverted"))
	}
	if c.Shadow.TerrainBiasMin > c.Shadow.TerrainBiasMax {
		errs = append(errs, errors.New("shadow: terrain bias band is inverted"))
	}
	if c.Shadow.SoftM <= 0 {
		errs = append(errs, fmt.Errorf("shadow: soft_m %g must be positive", c.Shadow.SoftM))
	}
	if c.GodRays.Samples <= 0 {
		errs = append(errs, fmt.Errorf("godrays: samples %d must be positive", c.GodRays.Samples))
	}
	if c.Orbit.Acceleration <= 0 {
		errs = append(errs, fmt.Errorf("orbit: acceleration %g must be positive", c.Orbit.Acceleration))
	}
	if c.Scene.Crystals > 0 && c.Scene.CrystalSpacing < MinCrystalSpacing {
		errs = append(errs, fmt.Errorf("scene: crystal_spacing %g must be at least %g", c.Scene.CrystalSpacing, MinCrystalSpacing))
	}
	return multierr.Combine(errs...)
}
