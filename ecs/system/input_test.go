package system

import (
	"image"
	"testing"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/input"
)

type fakePointers struct {
	pressed  []Pointer
	released map[component.PointerID]bool
}

func (f *fakePointers) JustPressed() []Pointer {
	out := f.pressed
	f.pressed = nil
	return out
}

func (f *fakePointers) Released(id component.PointerID) bool {
	return f.released[id]
}

func (f *fakePointers) press(id component.PointerID, x, y int) {
	f.pressed = append(f.pressed, Pointer{ID: id, X: x, Y: y})
	delete(f.released, id)
}

func (f *fakePointers) release(id component.PointerID) {
	f.released[id] = true
}

func newFakePointers() *fakePointers {
	return &fakePointers{released: map[component.PointerID]bool{}}
}

func addButton(t *testing.T, w *ecs.World, axis input.Axis, value float64, rect image.Rectangle) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.OnScreenButtonComponent.Kind(), &component.OnScreenButton{
		Axis:  axis,
		Value: value,
		Rect:  rect,
	}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addVehicleControl(t *testing.T, w *ecs.World) *component.Control {
	t.Helper()
	e := ecs.CreateEntity(w)
	c := &component.Control{}
	if err := ecs.Add(w, e, component.ControlComponent.Kind(), c); err != nil {
		t.Fatal(err)
	}
	return c
}

// inputRig runs the input half of the game's schedule.
type inputRig struct {
	w        *ecs.World
	agg      *input.Aggregator
	pointers *fakePointers
	sched    *ecs.Scheduler
	fallback struct {
		steer, throttle float64
		source          component.InputSource
	}
}

func newInputRig(t *testing.T) *inputRig {
	t.Helper()
	r := &inputRig{
		w:        ecs.NewWorld(),
		pointers: newFakePointers(),
	}
	r.agg = input.New(input.WithPhaseChecks(true), input.WithViolationHandler(func(err error) {
		t.Errorf("unexpected phase violation: %v", err)
	}))
	r.sched = ecs.NewScheduler(
		NewInputFrameSystem(r.agg),
		NewOnScreenButtonSystem(r.agg, r.pointers),
		NewVehicleInputSystem(r.agg, func() (float64, float64, component.InputSource) {
			return r.fallback.steer, r.fallback.throttle, r.fallback.source
		}),
		NewInputFrameEndSystem(r.agg),
	)
	return r
}

func (r *inputRig) tick() { r.sched.Update(r.w) }

func TestOnScreenButtonHoldAndRelease(t *testing.T) {
	r := newInputRig(t)
	left := addButton(t, r.w, input.Horizontal, -1, image.Rect(0, 600, 100, 700))
	addButton(t, r.w, input.Horizontal, 1, image.Rect(120, 600, 220, 700))
	ctrl := addVehicleControl(t, r.w)

	r.tick()
	if r.agg.Active() || ctrl.Source == component.SourceTouch {
		t.Fatalf("no button pressed yet, got active=%v source=%v", r.agg.Active(), ctrl.Source)
	}

	r.pointers.press(3, 50, 650)
	r.tick()
	if r.agg.Horizontal() != -1 || r.agg.Contributors() != 1 {
		t.Fatalf("after press h=%v writers=%d", r.agg.Horizontal(), r.agg.Contributors())
	}
	if ctrl.Steer != -1 || ctrl.Source != component.SourceTouch {
		t.Fatalf("control = %+v, want steer -1 from touch", *ctrl)
	}

	// still held on the next frame without a new press event
	r.tick()
	btn, _ := ecs.Get(r.w, left, component.OnScreenButtonComponent.Kind())
	if !btn.Pressed || r.agg.Horizontal() != -1 {
		t.Fatalf("button should stay held, pressed=%v h=%v", btn.Pressed, r.agg.Horizontal())
	}

	r.pointers.release(3)
	r.tick()
	if btn.Pressed || r.agg.Active() {
		t.Fatalf("release should clear the button, pressed=%v active=%v", btn.Pressed, r.agg.Active())
	}
}

func TestOnScreenButtonsOpposeAndSaturate(t *testing.T) {
	r := newInputRig(t)
	addButton(t, r.w, input.Horizontal, -1, image.Rect(0, 0, 100, 100))
	addButton(t, r.w, input.Horizontal, 1, image.Rect(200, 0, 300, 100))
	addButton(t, r.w, input.Vertical, 1, image.Rect(400, 0, 500, 100))
	addButton(t, r.w, input.Vertical, 1, image.Rect(600, 0, 700, 100))
	ctrl := addVehicleControl(t, r.w)

	r.pointers.press(1, 50, 50)
	r.pointers.press(2, 250, 50)
	r.pointers.press(3, 450, 50)
	r.pointers.press(4, 650, 50)
	r.tick()

	if r.agg.Horizontal() != 0 {
		t.Fatalf("opposing buttons should cancel, h=%v", r.agg.Horizontal())
	}
	if r.agg.Vertical() != 1 {
		t.Fatalf("two forward buttons should saturate at 1, v=%v", r.agg.Vertical())
	}
	if r.agg.Contributors() != 4 {
		t.Fatalf("writers = %d, want 4", r.agg.Contributors())
	}
	if ctrl.Source != component.SourceTouch || ctrl.Throttle != 1 {
		t.Fatalf("control = %+v", *ctrl)
	}
}

func TestPointerKeepsButtonAfterSlidingOff(t *testing.T) {
	r := newInputRig(t)
	e := addButton(t, r.w, input.Vertical, -1, image.Rect(0, 0, 100, 100))

	r.pointers.press(component.MousePointer, 10, 10)
	r.tick()
	// pointer moves away; no release reported
	r.tick()
	btn, _ := ecs.Get(r.w, e, component.OnScreenButtonComponent.Kind())
	if !btn.Pressed || r.agg.Vertical() != -1 {
		t.Fatalf("button must stay pressed until pointer up, pressed=%v v=%v", btn.Pressed, r.agg.Vertical())
	}
}

func TestOnePointerCapturesOneButton(t *testing.T) {
	r := newInputRig(t)
	a := addButton(t, r.w, input.Horizontal, 1, image.Rect(0, 0, 100, 100))
	b := addButton(t, r.w, input.Horizontal, 1, image.Rect(50, 50, 150, 150))

	r.pointers.press(9, 75, 75)
	r.tick()

	ba, _ := ecs.Get(r.w, a, component.OnScreenButtonComponent.Kind())
	bb, _ := ecs.Get(r.w, b, component.OnScreenButtonComponent.Kind())
	if ba.Pressed == bb.Pressed {
		t.Fatalf("exactly one overlapping button should capture, got %v/%v", ba.Pressed, bb.Pressed)
	}
	if r.agg.Contributors() != 1 {
		t.Fatalf("writers = %d, want 1", r.agg.Contributors())
	}
}

func TestControlsVisibility(t *testing.T) {
	cases := []struct {
		name       string
		visibility string
		pointer    component.PointerID
		wantPress  bool
	}{
		{"auto_touch_shows_and_presses", component.ControlsAuto, 0, true},
		{"auto_mouse_ignored", component.ControlsAuto, component.MousePointer, false},
		{"always_mouse_presses", component.ControlsAlways, component.MousePointer, true},
		{"never_touch_ignored", component.ControlsNever, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newInputRig(t)
			layout := ecs.CreateEntity(r.w)
			if err := ecs.Add(r.w, layout, component.ControlsComponent.Kind(), &component.Controls{Visibility: c.visibility}); err != nil {
				t.Fatal(err)
			}
			e := addButton(t, r.w, input.Horizontal, 1, image.Rect(0, 0, 100, 100))

			r.pointers.press(c.pointer, 10, 10)
			r.tick()

			btn, _ := ecs.Get(r.w, e, component.OnScreenButtonComponent.Kind())
			if btn.Pressed != c.wantPress {
				t.Fatalf("pressed = %v, want %v", btn.Pressed, c.wantPress)
			}
		})
	}
}

func TestVehicleInputFallsBackWhenTouchIdle(t *testing.T) {
	r := newInputRig(t)
	addButton(t, r.w, input.Horizontal, 1, image.Rect(0, 0, 100, 100))
	ctrl := addVehicleControl(t, r.w)

	r.fallback.steer = -0.5
	r.fallback.throttle = 2 // out of range from a misbehaving reader
	r.fallback.source = component.SourceGamepad
	r.tick()

	if ctrl.Steer != -0.5 || ctrl.Throttle != 1 || ctrl.Source != component.SourceGamepad {
		t.Fatalf("fallback control = %+v", *ctrl)
	}

	// touch takes over as soon as a button writes
	r.pointers.press(0, 10, 10)
	r.tick()
	if ctrl.Steer != 1 || ctrl.Throttle != 0 || ctrl.Source != component.SourceTouch {
		t.Fatalf("touch control = %+v", *ctrl)
	}
}

func TestFrameSystemsKeepPhaseClean(t *testing.T) {
	var violations []error
	agg := input.New(input.WithPhaseChecks(true), input.WithViolationHandler(func(err error) {
		violations = append(violations, err)
	}))
	w := ecs.NewWorld()
	start := NewInputFrameSystem(agg)
	end := NewInputFrameEndSystem(agg)

	for i := 0; i < 3; i++ {
		start.Update(w)
		if !agg.FrameOpen() {
			t.Fatalf("frame should be open after start")
		}
		agg.AddHorizontal(1)
		end.Update(w)
	}
	if len(violations) != 0 {
		t.Fatalf("unexpected violations %v", violations)
	}

	// a source running after the end system is flagged
	agg.AddVertical(1)
	if len(violations) != 1 {
		t.Fatalf("expected late write to be flagged, got %v", violations)
	}
}
