package entity

import (
	"fmt"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
)

// CourseOptions tweak how the course is built.
type CourseOptions struct {
	ForceControls bool
}

// BuildCourse creates the player, cameras, decor and on-screen controls from
// the prefabs.
func BuildCourse(w *ecs.World, opts CourseOptions) error {
	player, err := NewVehicle(w)
	if err != nil {
		return err
	}
	target := "player"
	if n, ok := ecs.Get(w, player, component.NameComponent.Kind()); ok {
		target = n.Value
	}
	if _, err := NewCamera(w); err != nil {
		return err
	}
	if err := NewParallaxLayers(w, target); err != nil {
		return err
	}
	if err := NewControls(w, opts.ForceControls); err != nil {
		return err
	}
	return nil
}

// ClearCourse destroys every entity not marked persistent and returns how
// many were removed.
func ClearCourse(w *ecs.World) int {
	removed := 0
	for _, e := range ecs.Entities(w) {
		if p, ok := ecs.Get(w, e, component.PersistentComponent.Kind()); ok && p.KeepOnReload {
			continue
		}
		if ecs.DestroyEntity(w, e) {
			removed++
		}
	}
	return removed
}

// ReloadCourse clears and rebuilds the course. A touch seen before the reload
// keeps the rebuilt controls visible in auto mode.
func ReloadCourse(w *ecs.World, opts CourseOptions) error {
	touched := controlsTouched(w)
	ClearCourse(w)
	if err := BuildCourse(w, opts); err != nil {
		return fmt.Errorf("course: reload: %w", err)
	}
	if touched {
		markControlsTouched(w)
	}
	return nil
}

func controlsTouched(w *ecs.World) bool {
	touched := false
	ecs.ForEach(w, component.ControlsComponent.Kind(), func(_ ecs.Entity, c *component.Controls) {
		touched = touched || c.TouchSeen
	})
	return touched
}

func markControlsTouched(w *ecs.World) {
	ecs.ForEach(w, component.ControlsComponent.Kind(), func(_ ecs.Entity, c *component.Controls) {
		c.TouchSeen = true
	})
}
