// Package game owns the window and runs the frame loop: input, simulation,
// rendering and presentation.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/assets"
	"github.com/Faultbox/godrays/internal/config"
	"github.com/Faultbox/godrays/internal/engine/audio"
	"github.com/Faultbox/godrays/internal/engine/camera"
	"github.com/Faultbox/godrays/internal/engine/daynight"
	"github.com/Faultbox/godrays/internal/engine/debug"
	"github.com/Faultbox/godrays/internal/engine/input"
	"github.com/Faultbox/godrays/internal/engine/orbit"
	"github.com/Faultbox/godrays/internal/engine/pipeline"
	"github.com/Faultbox/godrays/internal/engine/scene"
	"github.com/Faultbox/godrays/internal/engine/terrain"
	"github.com/Faultbox/godrays/internal/engine/window"
	"github.com/Faultbox/godrays/internal/logger"
	"github.com/Faultbox/godrays/pkg/math"
)

// Title is the window title.
const Title = "godrays"

// crystalMargin keeps scattered crystals off the terrain edge.
const crystalMargin = 3

// Game is the renderer instance.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window      *window.Window
	input       *input.Input
	ground      *terrain.Result
	assets      *assets.Set
	pipeline    *pipeline.Pipeline
	ambience    *audio.Ambience
	screenshots *debug.Screenshots

	free  *camera.FirstPerson
	fixed *camera.Fixed
	orbit *orbit.Light
	clock *daynight.Clock

	start     time.Time
	fixedView bool
	resize    resizeBarrier
}

// New opens the window and builds everything the first frame needs.
// Missing assets are substituted; window, GL and render target failures
// are returned.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logger.Named("game"),
	}
	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen))

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.input = input.New()
	input.SetRelativeMouse(true)

	g.ground, err = assets.BuildTerrain(cfg.Terrain)
	if err != nil {
		g.Close()
		return nil, err
	}

	g.assets, err = assets.Load(cfg, g.ground)
	if err != nil {
		g.log.Warn("some assets were substituted", zap.Error(err))
	}

	halfExtent := float32(min(cfg.Terrain.Width, cfg.Terrain.Depth))/2 - crystalMargin
	crystals := scene.ScatterCrystals(g.ground, halfExtent, cfg.Scene.CrystalSpacing, cfg.Scene.Crystals, cfg.Terrain.Seed)
	desc := scene.Build(crystals)

	w, h := g.window.DrawableSize()
	g.pipeline, err = pipeline.New(pipeline.ParamsFromConfig(cfg, w, h), desc, g.assets.Resources)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	cc := cfg.Camera
	g.free = camera.NewFirstPerson(vec3(cc.StartPosition), cc.Speed, cc.Sensitivity)
	g.free.SetZoom(cfg.Graphics.FOV)
	g.free.SetGround(g.ground)
	g.fixed = camera.NewFixed(vec3(cc.FixedPosition), cc.FixedStep)

	g.orbit = orbit.New(orbit.Params{
		Radius:       cfg.Orbit.Radius,
		DefaultSpeed: cfg.Orbit.DefaultSpeed,
		FastSpeed:    cfg.Orbit.FastSpeed,
		Acceleration: cfg.Orbit.Acceleration,
		Damping:      cfg.Orbit.Damping,
	}, scene.ObeliskPosition(0))
	g.clock = daynight.NewClock(cfg.DayNight.PhaseRate, cfg.DayNight.StartPhase)
	g.screenshots = debug.NewScreenshots(cfg.Debug.ScreenshotDir)

	if cfg.Audio.Enabled {
		g.startAmbience()
	}

	g.log.Info("initialized",
		zap.Int("crystals", len(crystals)),
		zap.Int32("drawable_width", w),
		zap.Int32("drawable_height", h))
	return g, nil
}

func (g *Game) startAmbience() {
	g.ambience = audio.New(float64(g.cfg.Audio.MasterVolume))
	loader := assets.NewLoader(g.cfg.Assets.Root)
	err := g.ambience.Start(loader.Path(g.cfg.Audio.DayTrack), loader.Path(g.cfg.Audio.NightTrack))
	if err != nil {
		g.log.Warn("ambience unavailable", zap.Error(err))
	}
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true
	g.start = time.Now()

	lastTime := g.start
	fps := newFPSCounter(time.Second, g.start)

	g.log.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Input
		state := g.input.Update()
		if state.Quit() {
			g.running = false
			break
		}
		if _, _, ok := state.Resize(); ok {
			g.resize.request(g.window.DrawableSize())
		}

		// 2. Simulation
		g.update(state, float32(dt))

		// 3. Resize between frames, never inside Render
		if w, h, ok := g.resize.take(); ok {
			if err := g.pipeline.Resize(w, h); err != nil {
				return fmt.Errorf("resize error: %w", err)
			}
			g.log.Debug("resized", zap.Int32("width", w), zap.Int32("height", h))
		}

		// 4. Render
		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if state.Pressed(input.KeyScreenshot) {
			g.screenshot()
		}

		// 5. Present
		g.window.SwapBuffers()

		if rate, ok := fps.tick(time.Now()); ok {
			g.log.Debug("fps",
				zap.Float64("rate", rate),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32("sun_angle", g.clock.SunAngle()))
		}
		if !g.cfg.Graphics.VSync {
			time.Sleep(frameBudget(g.cfg.Graphics.FPSLimit, time.Since(now)))
		}
	}

	return nil
}

func (g *Game) elapsed() float32 {
	return float32(time.Since(g.start).Seconds())
}

// update advances the clock, cameras, orbit and ambience by one frame.
func (g *Game) update(state *input.State, dt float32) {
	g.clock.Advance()
	g.fixedView = applyControls(state, dt, g.free, g.fixed)

	g.orbit.SetCenter(scene.ObeliskPosition(g.elapsed()))
	g.orbit.Update(dt, g.fixedView)

	if g.ambience != nil {
		g.ambience.SetBlend(daynight.SkyBlend(daynight.Direction(g.clock.SunAngle())))
	}
}

// render fills the frame state and runs the passes.
func (g *Game) render() error {
	viewer := activeViewer(g.fixedView, g.free, g.fixed)
	w, h := g.pipeline.Size()
	gc := g.cfg.Graphics

	f := pipeline.NewFrameState(viewer.Position(), viewer.ViewMatrix(), viewer.Zoom(), w, h, gc.Near, gc.Far)
	f.Time = g.elapsed()
	f.Light = g.clock.State()
	f.OrbitLight = g.orbit.Position()
	return g.pipeline.Render(f)
}

// screenshot saves the composited frame. Failures are logged only.
func (g *Game) screenshot() {
	w, h := g.pipeline.Size()
	path, err := g.screenshots.Write(debug.ReadDefaultFramebuffer(w, h), int(w), int(h))
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases everything in reverse order of creation.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.ambience != nil {
		if err := g.ambience.Close(); err != nil {
			g.log.Warn("closing ambience", zap.Error(err))
		}
	}
	if g.pipeline != nil {
		if err := g.pipeline.Destroy(); err != nil {
			g.log.Warn("destroying pipeline", zap.Error(err))
		}
	}
	if g.assets != nil {
		g.assets.Release()
	}
	if g.window != nil {
		g.window.Close()
	}
}
