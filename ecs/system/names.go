package system

import (
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
)

// findEntityByName resolves a prefab name. "player" also matches the player
// tag so builders need not name the vehicle.
func findEntityByName(w *ecs.World, name string) ecs.Entity {
	if name == "" {
		return 0
	}
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	if found.Valid() {
		return found
	}
	if name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
