package entity

import (
	"image"
	"testing"

	"github.com/aerialrush/aerialrush/buildinfo"
	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/input"
	"github.com/aerialrush/aerialrush/prefabs"
)

func TestAnchorRect(t *testing.T) {
	cases := []struct {
		anchor string
		want   image.Rectangle
	}{
		{"", image.Rect(10, 20, 110, 70)},
		{"top_left", image.Rect(10, 20, 110, 70)},
		{"top_right", image.Rect(common.BaseWidth-110, 20, common.BaseWidth-10, 70)},
		{"bottom_left", image.Rect(10, common.BaseHeight-70, 110, common.BaseHeight-20)},
		{"bottom_right", image.Rect(common.BaseWidth-110, common.BaseHeight-70, common.BaseWidth-10, common.BaseHeight-20)},
	}
	for _, c := range cases {
		t.Run(c.anchor, func(t *testing.T) {
			got, err := anchorRect(c.anchor, 10, 20, 100, 50)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("anchorRect = %v, want %v", got, c.want)
			}
		})
	}

	if _, err := anchorRect("middle", 0, 0, 1, 1); err == nil {
		t.Fatalf("expected error for unknown anchor")
	}
}

func TestNewControlsFromSpec(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.ControlsSpec{
		Buttons: []prefabs.ButtonSpec{
			{Label: "<", Axis: "horizontal", Value: -1, Width: 10, Height: 10},
			{Label: "GO", Axis: "v", Width: 10, Height: 10, Anchor: "bottom_right"},
		},
	}
	if err := NewControlsFromSpec(w, spec); err != nil {
		t.Fatal(err)
	}

	layout, ok := ecs.First(w, component.ControlsComponent.Kind())
	if !ok {
		t.Fatalf("no controls layout entity")
	}
	c, _ := ecs.Get(w, layout, component.ControlsComponent.Kind())
	if c.Visibility != component.ControlsAuto || c.Visible() {
		t.Fatalf("default visibility = %q visible=%v, want hidden auto", c.Visibility, c.Visible())
	}

	var buttons []*component.OnScreenButton
	ecs.ForEach(w, component.OnScreenButtonComponent.Kind(), func(_ ecs.Entity, b *component.OnScreenButton) {
		buttons = append(buttons, b)
	})
	if len(buttons) != 2 {
		t.Fatalf("got %d buttons, want 2", len(buttons))
	}
	for _, b := range buttons {
		switch b.Label {
		case "<":
			if b.Axis != input.Horizontal || b.Value != -1 {
				t.Fatalf("left button = %+v", *b)
			}
		case "GO":
			if b.Axis != input.Vertical || b.Value != 1 {
				t.Fatalf("go button should default to +1 vertical, got %+v", *b)
			}
		default:
			t.Fatalf("unexpected button %q", b.Label)
		}
	}
}

func TestNewControlsFromSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		spec prefabs.ControlsSpec
	}{
		{"bad_visibility", prefabs.ControlsSpec{Visible: "sometimes"}},
		{"bad_axis", prefabs.ControlsSpec{Buttons: []prefabs.ButtonSpec{{Axis: "z", Width: 1, Height: 1}}}},
		{"bad_size", prefabs.ControlsSpec{Buttons: []prefabs.ButtonSpec{{Axis: "x"}}}},
		{"bad_anchor", prefabs.ControlsSpec{Buttons: []prefabs.ButtonSpec{{Axis: "x", Width: 1, Height: 1, Anchor: "center"}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := c.spec
			if err := NewControlsFromSpec(ecs.NewWorld(), &spec); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewControlsBundledLayout(t *testing.T) {
	for _, force := range []bool{false, true} {
		w := ecs.NewWorld()
		if err := NewControls(w, force); err != nil {
			t.Fatal(err)
		}
		layout, _ := ecs.First(w, component.ControlsComponent.Kind())
		c, _ := ecs.Get(w, layout, component.ControlsComponent.Kind())
		if c.Visible() != force {
			t.Fatalf("force=%v visible=%v", force, c.Visible())
		}

		screen := image.Rect(0, 0, common.BaseWidth, common.BaseHeight)
		n := 0
		ecs.ForEach(w, component.OnScreenButtonComponent.Kind(), func(_ ecs.Entity, b *component.OnScreenButton) {
			n++
			if !b.Rect.In(screen) {
				t.Fatalf("button %q at %v is off screen", b.Label, b.Rect)
			}
		})
		if n == 0 {
			t.Fatalf("bundled layout has no buttons")
		}
	}
}

func TestNewCameraFromSpec(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCameraFromSpec(w, &prefabs.CameraSpec{
		Name:   "main",
		Target: "player",
		Follow: prefabs.FollowSpec{BaseOffsetY: -140, FollowLerp: 8},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ecs.Has(w, e, component.CameraTagComponent.Kind()) {
		t.Fatalf("main camera missing tag")
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	if cam.Zoom != 1 {
		t.Fatalf("zoom = %v, want default 1", cam.Zoom)
	}
	f, _ := ecs.Get(w, e, component.ParallaxFollowComponent.Kind())
	if f.Factor != 1 || f.FollowLerp != 8 || f.BaseOffsetY != -140 || !f.Snap || f.Target != "player" {
		t.Fatalf("follow = %+v", *f)
	}
}

func TestNewVehicleFromSpec(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.VehicleSpec{
		Transform:      prefabs.TransformSpec{X: 5, Y: 6},
		Vehicle:        prefabs.VehicleParams{CruiseSpeed: 180, MaxSpeed: 300, MinSpeed: 90},
		HandlingScript: "scripts/handling.tengo",
	}
	e, err := NewVehicleFromSpec(w, spec)
	if err != nil {
		t.Fatal(err)
	}

	n, _ := ecs.Get(w, e, component.NameComponent.Kind())
	if n.Value != "player" {
		t.Fatalf("default name = %q", n.Value)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 5 || tr.Y != 6 || tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Fatalf("transform = %+v", *tr)
	}
	v, _ := ecs.Get(w, e, component.VehicleComponent.Kind())
	if v.Speed != 180 {
		t.Fatalf("vehicle should start at cruise speed, got %v", v.Speed)
	}
	for name, ok := range map[string]bool{
		"control":  ecs.Has(w, e, component.ControlComponent.Kind()),
		"physics":  ecs.Has(w, e, component.PhysicsBodyComponent.Kind()),
		"handling": ecs.Has(w, e, component.HandlingScriptComponent.Kind()),
		"player":   ecs.Has(w, e, component.PlayerTagComponent.Kind()),
	} {
		if !ok {
			t.Fatalf("vehicle missing %s component", name)
		}
	}
	if ecs.Has(w, e, component.SpriteComponent.Kind()) {
		t.Fatalf("sprite should be skipped for size 0")
	}
}

func TestBuildOverlayPersistsAcrossClear(t *testing.T) {
	w := ecs.NewWorld()
	build := buildinfo.Build{AppName: "Aerial Rush", Version: "1.2.3", Number: "42"}

	overlay, err := EnsureBuildOverlay(w, build)
	if err != nil {
		t.Fatal(err)
	}
	again, err := EnsureBuildOverlay(w, build)
	if err != nil {
		t.Fatal(err)
	}
	if again != overlay {
		t.Fatalf("second call created %v, want existing %v", again, overlay)
	}
	o, _ := ecs.Get(w, overlay, component.BuildOverlayComponent.Kind())
	if o.Label != build.Label() {
		t.Fatalf("label = %q, want %q", o.Label, build.Label())
	}

	if _, err := NewVehicleFromSpec(w, &prefabs.VehicleSpec{}); err != nil {
		t.Fatal(err)
	}
	if err := NewControlsFromSpec(w, &prefabs.ControlsSpec{}); err != nil {
		t.Fatal(err)
	}

	if removed := ClearCourse(w); removed != 2 {
		t.Fatalf("removed %d entities, want 2", removed)
	}
	if !ecs.IsAlive(w, overlay) {
		t.Fatalf("overlay destroyed by ClearCourse")
	}
	if got := len(ecs.Entities(w)); got != 1 {
		t.Fatalf("%d entities left, want 1", got)
	}
}

func TestReloadCourseKeepsTouchSeen(t *testing.T) {
	cases := []struct {
		name    string
		touched bool
	}{
		{"touched_before_reload", true},
		{"never_touched", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if err := BuildCourse(w, CourseOptions{}); err != nil {
				t.Fatal(err)
			}
			layout, ok := ecs.First(w, component.ControlsComponent.Kind())
			if !ok {
				t.Fatalf("course has no controls layout")
			}
			before, _ := ecs.Get(w, layout, component.ControlsComponent.Kind())
			before.TouchSeen = c.touched

			if err := ReloadCourse(w, CourseOptions{}); err != nil {
				t.Fatal(err)
			}
			if ecs.IsAlive(w, layout) {
				t.Fatalf("old layout entity should be replaced on reload")
			}
			n := 0
			ecs.ForEach(w, component.ControlsComponent.Kind(), func(_ ecs.Entity, after *component.Controls) {
				n++
				if after.TouchSeen != c.touched || after.Visible() != c.touched {
					t.Fatalf("after reload touchSeen=%v visible=%v, want %v", after.TouchSeen, after.Visible(), c.touched)
				}
			})
			if n != 1 {
				t.Fatalf("%d layout entities after reload, want 1", n)
			}
		})
	}
}
