package system

import (
	"image"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/input"
)

// OnScreenButtonSystem tracks which pointer holds each virtual button and
// feeds held buttons into the aggregator. A button is held from the pointer
// going down inside it until that same pointer is released, wherever it has
// moved in between.
type OnScreenButtonSystem struct {
	agg      *input.Aggregator
	pointers PointerSource
}

func NewOnScreenButtonSystem(agg *input.Aggregator, pointers PointerSource) *OnScreenButtonSystem {
	if pointers == nil {
		pointers = NewEbitenPointers()
	}
	return &OnScreenButtonSystem{agg: agg, pointers: pointers}
}

func (s *OnScreenButtonSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.agg == nil {
		return
	}

	ecs.ForEach(w, component.OnScreenButtonComponent.Kind(), func(_ ecs.Entity, btn *component.OnScreenButton) {
		if btn.Pressed && s.pointers.Released(btn.PointerID) {
			btn.Pressed = false
		}
	})

	pressed := s.pointers.JustPressed()
	touched := false
	for _, p := range pressed {
		if p.ID != component.MousePointer {
			touched = true
		}
	}
	if touched {
		ecs.ForEach(w, component.ControlsComponent.Kind(), func(_ ecs.Entity, c *component.Controls) {
			c.TouchSeen = true
		})
	}
	if controlsVisible(w) {
		for _, p := range pressed {
			s.capture(w, p)
		}
	}

	ecs.ForEach(w, component.OnScreenButtonComponent.Kind(), func(_ ecs.Entity, btn *component.OnScreenButton) {
		if btn.Pressed {
			s.agg.Add(btn.Axis, btn.Value)
		}
	})
}

// capture gives p to the first free button under it.
func (s *OnScreenButtonSystem) capture(w *ecs.World, p Pointer) {
	pt := image.Pt(p.X, p.Y)
	done := false
	ecs.ForEach(w, component.OnScreenButtonComponent.Kind(), func(_ ecs.Entity, btn *component.OnScreenButton) {
		if done || btn.Pressed || !pt.In(btn.Rect) {
			return
		}
		btn.Pressed = true
		btn.PointerID = p.ID
		done = true
	})
}

// controlsVisible is true when no Controls entity exists, so bare buttons
// built without a layout still work.
func controlsVisible(w *ecs.World) bool {
	e, ok := ecs.First(w, component.ControlsComponent.Kind())
	if !ok {
		return true
	}
	c, ok := ecs.Get(w, e, component.ControlsComponent.Kind())
	return ok && c.Visible()
}
