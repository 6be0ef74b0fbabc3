package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/aerialrush/aerialrush/buildinfo"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugHUDSystem prints frame rate, build time, aggregator state and the
// player's control below the build overlay.
type DebugHUDSystem struct {
	agg   *input.Aggregator
	build buildinfo.Build
}

func NewDebugHUDSystem(agg *input.Aggregator, build buildinfo.Build) *DebugHUDSystem {
	return &DebugHUDSystem{agg: agg, build: build}
}

func (d *DebugHUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, DebugText(w, d.agg, d.build, ebiten.ActualTPS(), ebiten.ActualFPS()), 12, 68)
}

// DebugText renders the HUD contents.
func DebugText(w *ecs.World, agg *input.Aggregator, build buildinfo.Build, tps, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f  FPS: %.1f\n", tps, fps)
	if at, ok := build.LastBuild(); ok {
		fmt.Fprintf(&b, "built %s\n", at.UTC().Format(time.RFC3339))
	} else {
		b.WriteString("built: unknown\n")
	}
	if agg != nil {
		fmt.Fprintf(&b, "touch h=%+.2f v=%+.2f writers=%d active=%t\n",
			agg.Horizontal(), agg.Vertical(), agg.Contributors(), agg.Active())
		if n := agg.Violations(); n > 0 {
			fmt.Fprintf(&b, "input phase violations: %d\n", n)
		}
	}
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if c, ok := ecs.Get(w, player, component.ControlComponent.Kind()); ok {
			fmt.Fprintf(&b, "control steer=%+.2f throttle=%+.2f src=%s\n", c.Steer, c.Throttle, c.Source)
		}
		if v, ok := ecs.Get(w, player, component.VehicleComponent.Kind()); ok {
			vel := Velocity(v)
			fmt.Fprintf(&b, "speed=%.0f vel=(%.0f, %.0f)\n", v.Speed, vel.X, vel.Y)
		}
	}
	return b.String()
}
