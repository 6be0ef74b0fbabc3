// Package game wires the ECS world, the input aggregator and the systems into
// an ebiten.Game.
package game

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/aerialrush/aerialrush/buildinfo"
	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/entity"
	"github.com/aerialrush/aerialrush/ecs/system"
	"github.com/aerialrush/aerialrush/input"
	"github.com/aerialrush/aerialrush/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var skyColor = color.RGBA{R: 0x4a, G: 0x6f, B: 0x3c, A: 0xff}

type Options struct {
	Debug bool
	// Watch hot-reloads prefabs edited under prefabs.Dir.
	Watch bool
	// ForceControls shows the on-screen buttons before any touch is seen.
	ForceControls bool

	// InputOptions configure the aggregator, e.g. phase checks.
	InputOptions []input.Option
	// Pointers and Fallback replace the ebiten touch/mouse and
	// keyboard/gamepad readers when set.
	Pointers system.PointerSource
	Fallback system.FallbackReader
}

type Game struct {
	opts  Options
	build buildinfo.Build

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *input.Aggregator

	physics  *system.PhysicsSystem
	handling *system.HandlingScriptSystem
	watcher  *prefabs.Watcher
}

func New(opts Options) (*Game, error) {
	build, err := buildinfo.Load()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:     opts,
		build:    build,
		world:    ecs.NewWorld(),
		input:    input.New(opts.InputOptions...),
		physics:  system.NewPhysicsSystem(),
		handling: system.NewHandlingScriptSystem(nil),
	}
	g.scheduler = g.newScheduler()

	if _, err := entity.EnsureBuildOverlay(g.world, build); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := entity.BuildCourse(g.world, g.courseOptions()); err != nil {
		return nil, fmt.Errorf("game: build course: %w", err)
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// newScheduler fixes the per-tick order. The input frame opens before the
// on-screen buttons write and closes after the vehicle input has read.
func (g *Game) newScheduler() *ecs.Scheduler {
	overlay := system.NewBuildOverlaySystem(g.opts.Debug)

	s := ecs.NewScheduler(
		system.NewInputFrameSystem(g.input),
		system.NewOnScreenButtonSystem(g.input, g.opts.Pointers),
		system.NewVehicleInputSystem(g.input, g.opts.Fallback),
		system.NewInputFrameEndSystem(g.input),
		g.handling,
		system.NewVehicleSystem(),
		g.physics,
		system.NewParallaxFollowSystem(),
		overlay,
	)
	s.AddDrawer(system.NewRenderSystem())
	s.AddDrawer(system.NewOnScreenButtonRenderSystem())
	s.AddDrawer(overlay)
	if g.opts.Debug {
		s.AddDrawer(system.NewPhysicsDebugSystem(g.physics))
		s.AddDrawer(system.NewDebugHUDSystem(g.input, g.build))
	}
	return s
}

func (g *Game) courseOptions() entity.CourseOptions {
	return entity.CourseOptions{ForceControls: g.opts.ForceControls}
}

func (g *Game) Build() buildinfo.Build { return g.build }

func (g *Game) Update() error {
	g.applyPrefabChanges()
	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reload()
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.scheduler.Draw(g.world, screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) applyPrefabChanges() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: prefab watch: %v", err)
		}
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	rebuild := false
	for _, name := range changed {
		if strings.HasPrefix(name, "scripts/") {
			g.handling.Invalidate(name)
			continue
		}
		rebuild = true
	}
	if rebuild {
		log.Printf("game: prefabs changed %v, reloading course", changed)
		g.reload()
	}
}

func (g *Game) reload() {
	g.physics.Reset()
	if err := entity.ReloadCourse(g.world, g.courseOptions()); err != nil {
		log.Printf("game: %v", err)
	}
}
