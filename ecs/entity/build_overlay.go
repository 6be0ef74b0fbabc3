package entity

import (
	"fmt"

	"github.com/aerialrush/aerialrush/buildinfo"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
)

// EnsureBuildOverlay creates the persistent overlay entity unless one exists.
func EnsureBuildOverlay(w *ecs.World, build buildinfo.Build) (ecs.Entity, error) {
	if e, ok := ecs.First(w, component.BuildOverlayComponent.Kind()); ok {
		return e, nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BuildOverlayComponent.Kind(), &component.BuildOverlay{Label: build.Label()}); err != nil {
		return 0, fmt.Errorf("overlay: add build overlay: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{KeepOnReload: true}); err != nil {
		return 0, fmt.Errorf("overlay: add persistent: %w", err)
	}
	return e, nil
}
