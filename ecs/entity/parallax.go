package entity

import (
	"fmt"
	"image/color"

	"github.com/aerialrush/aerialrush/assets"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/prefabs"
)

const mainCamera = "main"

func NewParallaxLayers(w *ecs.World, target string) error {
	spec, err := prefabs.LoadParallaxSpec()
	if err != nil {
		return fmt.Errorf("parallax: load spec: %w", err)
	}
	return NewParallaxLayersFromSpec(w, spec, target)
}

// NewParallaxLayersFromSpec builds every decor strip, plus a follower camera
// for each layer seen through a camera other than the main one.
func NewParallaxLayersFromSpec(w *ecs.World, spec *prefabs.ParallaxSpec, target string) error {
	cameras := map[string]bool{}
	for _, layer := range spec.Layers {
		cam := layer.Camera
		if cam == "" {
			cam = mainCamera
		}
		if cam != mainCamera && layer.Follow != nil && !cameras[cam] {
			if _, err := newFollowerCamera(w, cam, target, 1, *layer.Follow); err != nil {
				return fmt.Errorf("parallax: layer %s: %w", layer.Name, err)
			}
			cameras[cam] = true
		}
		if err := newTileStrip(w, layer, cam); err != nil {
			return fmt.Errorf("parallax: layer %s: %w", layer.Name, err)
		}
	}
	return nil
}

// newTileStrip lays Count tiles per column going up the screen from y=0.
// All tiles of a strip share one image.
func newTileStrip(w *ecs.World, layer prefabs.ParallaxLayerSpec, cam string) error {
	tiles := layer.Tiles
	if tiles.Count <= 0 || len(tiles.Columns) == 0 {
		return nil
	}
	img := assets.SolidRect(tiles.Width, tiles.Height, tiles.Color.Or(color.Gray{Y: 0x80}))

	for _, x := range tiles.Columns {
		for i := 0; i < tiles.Count; i++ {
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
				X:      x,
				Y:      -float64(i) * tiles.Spacing,
				ScaleX: 1,
				ScaleY: 1,
			}); err != nil {
				return fmt.Errorf("add transform: %w", err)
			}
			if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
				Image:   img,
				OriginX: float64(tiles.Width) / 2,
				OriginY: float64(tiles.Height) / 2,
			}); err != nil {
				return fmt.Errorf("add sprite: %w", err)
			}
			if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer.RenderLayer.Index}); err != nil {
				return fmt.Errorf("add render layer: %w", err)
			}
			if cam != mainCamera {
				if err := ecs.Add(w, e, component.ViewCameraComponent.Kind(), &component.ViewCamera{Camera: cam}); err != nil {
					return fmt.Errorf("add view camera: %w", err)
				}
			}
		}
	}
	return nil
}
