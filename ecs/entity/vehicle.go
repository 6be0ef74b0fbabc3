package entity

import (
	"fmt"

	"github.com/aerialrush/aerialrush/assets"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/prefabs"
	"golang.org/x/image/colornames"
)

func NewVehicle(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadVehicleSpec()
	if err != nil {
		return 0, fmt.Errorf("vehicle: load spec: %w", err)
	}
	return NewVehicleFromSpec(w, spec)
}

// NewVehicleFromSpec builds the player aircraft. The sprite is skipped when
// spec.Sprite.Size is zero.
func NewVehicleFromSpec(w *ecs.World, spec *prefabs.VehicleSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("vehicle: add player tag: %w", err)
	}
	name := spec.Name
	if name == "" {
		name = "player"
	}
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("vehicle: add name: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transformFromSpec(spec.Transform)); err != nil {
		return 0, fmt.Errorf("vehicle: add transform: %w", err)
	}

	params := spec.Vehicle
	if err := ecs.Add(w, e, component.VehicleComponent.Kind(), &component.Vehicle{
		CruiseSpeed: params.CruiseSpeed,
		MaxSpeed:    params.MaxSpeed,
		MinSpeed:    params.MinSpeed,
		Accel:       params.Accel,
		SteerRate:   params.SteerRate,
		BankAngle:   params.BankAngle,
		Heading:     spec.Transform.Rotation,
		Speed:       params.CruiseSpeed,
	}); err != nil {
		return 0, fmt.Errorf("vehicle: add vehicle: %w", err)
	}
	if err := ecs.Add(w, e, component.ControlComponent.Kind(), &component.Control{}); err != nil {
		return 0, fmt.Errorf("vehicle: add control: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.Physics.Radius,
		Mass:   spec.Physics.Mass,
	}); err != nil {
		return 0, fmt.Errorf("vehicle: add physics body: %w", err)
	}
	if spec.HandlingScript != "" {
		if err := ecs.Add(w, e, component.HandlingScriptComponent.Kind(), &component.HandlingScript{Path: spec.HandlingScript}); err != nil {
			return 0, fmt.Errorf("vehicle: add handling script: %w", err)
		}
	}

	if size := spec.Sprite.Size; size > 0 {
		img := assets.Aircraft(size, spec.Sprite.Body.Or(colornames.White), spec.Sprite.Wing.Or(colornames.Orangered))
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Image:   img,
			OriginX: float64(size) / 2,
			OriginY: float64(size) / 2,
		}); err != nil {
			return 0, fmt.Errorf("vehicle: add sprite: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("vehicle: add render layer: %w", err)
	}

	return e, nil
}

func transformFromSpec(t prefabs.TransformSpec) *component.Transform {
	out := &component.Transform{
		X:        t.X,
		Y:        t.Y,
		ScaleX:   t.ScaleX,
		ScaleY:   t.ScaleY,
		Rotation: t.Rotation,
	}
	if out.ScaleX == 0 {
		out.ScaleX = 1
	}
	if out.ScaleY == 0 {
		out.ScaleY = 1
	}
	return out
}
