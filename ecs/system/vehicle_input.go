package system

import (
	"math"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/input"
	"github.com/hajimehoshi/ebiten/v2"
)

const stickDeadzone = 0.2

// FallbackReader supplies steering when no on-screen control was touched this
// frame.
type FallbackReader func() (steer, throttle float64, source component.InputSource)

// VehicleInputSystem decides each frame which modality steers the vehicles.
// On-screen controls win whenever any of them wrote this frame; otherwise the
// fallback reader (keyboard and gamepad by default) is used.
type VehicleInputSystem struct {
	agg      *input.Aggregator
	fallback FallbackReader
}

func NewVehicleInputSystem(agg *input.Aggregator, fallback FallbackReader) *VehicleInputSystem {
	if fallback == nil {
		fallback = ReadKeyboardGamepad
	}
	return &VehicleInputSystem{agg: agg, fallback: fallback}
}

func (s *VehicleInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var steer, throttle float64
	source := component.SourceNone
	if s.agg != nil && s.agg.Active() {
		steer = s.agg.Horizontal()
		throttle = s.agg.Vertical()
		source = component.SourceTouch
	} else {
		steer, throttle, source = s.fallback()
	}

	ecs.ForEach(w, component.ControlComponent.Kind(), func(_ ecs.Entity, c *component.Control) {
		c.Steer = clampAxis(steer)
		c.Throttle = clampAxis(throttle)
		c.Source = source
	})
}

// ReadKeyboardGamepad maps arrows/WASD and the first gamepad's left stick.
// A stick outside the deadzone overrides the keys on that axis.
func ReadKeyboardGamepad() (float64, float64, component.InputSource) {
	source := component.SourceNone
	steer, throttle := 0.0, 0.0

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		steer -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		steer += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		throttle += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		throttle -= 1
	}
	if steer != 0 || throttle != 0 {
		source = component.SourceKeyboard
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			if math.Abs(lx) > stickDeadzone {
				steer = lx
				source = component.SourceGamepad
			}
			// stick up is negative
			if math.Abs(ly) > stickDeadzone {
				throttle = -ly
				source = component.SourceGamepad
			}
		}
	}

	return steer, throttle, source
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
