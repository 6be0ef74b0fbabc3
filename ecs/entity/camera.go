package entity

import (
	"fmt"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, spec)
}

// NewCameraFromSpec builds the main camera as a parallax follower with the
// spec's factor, 1 when unset.
func NewCameraFromSpec(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	follow := spec.Follow
	if follow.Factor == 0 {
		follow.Factor = 1
	}
	camera, err := newFollowerCamera(w, spec.Name, spec.Target, spec.Zoom, follow)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	return camera, nil
}

func newFollowerCamera(w *ecs.World, name, target string, zoom float64, follow prefabs.FollowSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if name != "" {
		if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
			return 0, fmt.Errorf("camera: add name: %w", err)
		}
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.ParallaxFollowComponent.Kind(), &component.ParallaxFollow{
		Target:      target,
		BaseOffsetX: follow.BaseOffsetX,
		BaseOffsetY: follow.BaseOffsetY,
		Factor:      follow.Factor,
		FollowLerp:  follow.FollowLerp,
		Snap:        true,
	}); err != nil {
		return 0, fmt.Errorf("camera: add parallax follow: %w", err)
	}
	return camera, nil
}
