package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/ecs"
	"github.com/milk9111/rotate/ecs/component"
	"github.com/milk9111/rotate/obj"
	"github.com/milk9111/rotate/prefabs"
	"github.com/milk9111/rotate/system"
)

var errNoSpec = errors.New("game: no scene spec")

// defaultBackground is used when the scene spec sets no background.
var defaultBackground = colornames.Navy

type Game struct {
	spec     *prefabs.DemoSpec
	specPath string
	log      *zap.Logger

	world     *ecs.World
	loop      *system.Loop
	animation *system.AnimationSystem
	render    *system.RenderSystem
	input     *obj.Input
	camera    *obj.Camera
	clock     *stepClock
	hud       *HUD
	pauseUI   *ebitenui.UI
	watcher   *prefabs.Watcher

	// pendingTuning is a reloaded tuning waiting for the next reset.
	pendingTuning *anim.Tuning

	paused  bool
	showHUD bool
	quit    bool
}

func NewGame(spec *prefabs.DemoSpec, opts options, log *zap.Logger) (*Game, error) {
	if spec == nil {
		return nil, errNoSpec
	}
	g := &Game{
		spec:     spec,
		specPath: opts.configPath,
		log:      log,
		world:    ecs.NewWorld(),
		input:    obj.NewInput(),
		camera:   obj.NewCamera(spec.Window.Width, spec.Window.Height),
		clock:    newStepClock(spec.Timestep, ebiten.TPS),
		showHUD:  opts.debug,
	}
	g.applyCamera(spec.Camera)

	if err := system.BuildScene(g.world, spec); err != nil {
		return nil, err
	}
	animation, err := system.NewAnimationSystem(g.world, anim.New(spec.Animation), log.Named("animation"))
	if err != nil {
		return nil, err
	}
	g.animation = animation
	g.render = system.NewRenderSystem(g.camera)
	g.loop = system.NewLoop(g.world, system.NewEscapeListener(g.input), g.animation)

	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}
	g.hud = hud
	g.pauseUI = NewPauseUI(spec.Window.Width, spec.Window.Height, pauseActions{
		resume: func() { g.setPaused(false) },
		reset:  g.reset,
		quit:   func() { g.quit = true },
	})
	g.setPaused(opts.paused)

	if opts.watch {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	g.pollReload()

	if g.input.PausePressed {
		g.setPaused(!g.paused)
	}
	if g.input.ResetPressed {
		g.reset()
	}
	if g.input.HUDPressed {
		g.showHUD = !g.showHUD
	}
	if g.paused {
		g.pauseUI.Update()
	}

	ok, err := g.loop.Step(g.clock.Next())
	if err != nil {
		return err
	}
	for _, ev := range g.world.Events().Peek() {
		g.log.Info("animation event", zap.String("event", string(ev.Type)))
	}
	if !ok {
		g.log.Info("escape pressed")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.Background.Or(defaultBackground))
	g.render.Draw(g.world, screen)

	if g.showHUD {
		ctrl := g.animation.Controller()
		g.hud.Draw(screen, ctrl.Professor(), ctrl.Fish(), g.paused)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops the scene spec watcher, if any.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.log.Warn("close spec watcher", zap.Error(err))
	}
	g.watcher = nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.animation.Paused = paused
}

func (g *Game) reset() {
	if g.pendingTuning != nil {
		g.animation.Controller().SetTuning(*g.pendingTuning)
		g.pendingTuning = nil
		g.log.Info("applied reloaded animation tuning")
	}
	g.animation.Reset()
	g.setPaused(false)
}

func (g *Game) applyCamera(c prefabs.CameraSpec) {
	g.camera.SetPosition(c.Position.Vec3)
	g.camera.LookAt(c.LookAt.Vec3)
	g.camera.SetNearClipDistance(c.NearClip)
	g.camera.SetFarClipDistance(c.FarClip)
	g.camera.SetFovY(c.FovY)
}

func (g *Game) watchedFile() string {
	if g.specPath != "" {
		return g.specPath
	}
	return filepath.Join(prefabs.Dir, prefabs.DemoFile)
}

func (g *Game) startWatcher() {
	dir := filepath.Dir(g.watchedFile())
	if _, err := os.Stat(dir); err != nil {
		g.log.Warn("spec watch disabled", zap.String("dir", dir), zap.Error(err))
		return
	}
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		g.log.Warn("spec watch disabled", zap.String("dir", dir), zap.Error(err))
		return
	}
	g.watcher = w
	g.log.Info("watching scene spec", zap.String("file", g.watchedFile()))
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("spec watcher", zap.Error(err))
		}
	default:
	}

	changed := false
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		if filepath.Base(name) == filepath.Base(g.watchedFile()) {
			changed = true
		}
	}
	if changed {
		g.reload()
	}
}

// reload re-reads the scene spec. Camera, colours and grid apply at once; the
// animation tuning waits for the next reset so a running spin is not cut.
func (g *Game) reload() {
	spec, err := prefabs.LoadDemoSpec(g.specPath)
	if err != nil {
		g.log.Warn("spec reload rejected", zap.Error(err))
		return
	}

	g.applyCamera(spec.Camera)
	if grid, ok := g.world.Lookup(system.GridNode); ok {
		ecs.Update(g.world, grid, component.ShapeComponent, func(s *component.Shape) {
			*s = system.GridShape(spec.Grid)
		})
	}
	g.recolor(system.ProfessorNode, spec.Professor.Color)
	g.recolor(system.FishNode, spec.Fish.Color)

	if spec.Animation != g.animation.Controller().Tuning() {
		t := spec.Animation
		g.pendingTuning = &t
		g.log.Info("animation tuning changed; press R to apply")
	}
	g.spec.Background = spec.Background
	g.spec.Camera = spec.Camera
	g.spec.Grid = spec.Grid
	g.log.Info("scene spec reloaded", zap.String("file", g.watchedFile()))
}

func (g *Game) recolor(name component.Name, c prefabs.YAMLColor) {
	if c.Color == nil {
		return
	}
	e, ok := g.world.Lookup(name)
	if !ok {
		return
	}
	ecs.Update(g.world, e, component.ShapeComponent, func(s *component.Shape) {
		s.Color = c.Color
	})
}

