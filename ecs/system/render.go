package system

import (
	"sort"

	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
)

// view is a resolved camera: the world point drawn at the screen center.
type view struct {
	x, y float64
	zoom float64
}

type RenderSystem struct {
	camEntity ecs.Entity
	items     []renderItem
}

type renderItem struct {
	e     ecs.Entity
	layer int
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		r.camEntity, _ = ecs.First(w, component.CameraTagComponent.Kind())
	}
	main := cameraView(w, r.camEntity)
	views := map[string]view{}

	r.items = r.items[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, s *component.Sprite) {
		if s.Image == nil {
			return
		}
		layer := 0
		if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = rl.Index
		}
		r.items = append(r.items, renderItem{e: e, layer: layer})
	})
	sort.SliceStable(r.items, func(i, j int) bool {
		if r.items[i].layer != r.items[j].layer {
			return r.items[i].layer < r.items[j].layer
		}
		return uint64(r.items[i].e) < uint64(r.items[j].e)
	})

	for _, item := range r.items {
		t, _ := ecs.Get(w, item.e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, item.e, component.SpriteComponent.Kind())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(nonZero(t.ScaleX), nonZero(t.ScaleY))
		op.GeoM.Rotate(t.Rotation)

		v := main
		if vc, ok := ecs.Get(w, item.e, component.ViewCameraComponent.Kind()); ok && vc.Camera != "" {
			cached, ok := views[vc.Camera]
			if !ok {
				cached = cameraView(w, findEntityByName(w, vc.Camera))
				views[vc.Camera] = cached
			}
			v = cached
		}

		op.GeoM.Scale(v.zoom, v.zoom)
		op.GeoM.Translate((t.X-v.x)*v.zoom+common.BaseWidth/2, (t.Y-v.y)*v.zoom+common.BaseHeight/2)
		screen.DrawImage(s.Image, op)
	}
}

func cameraView(w *ecs.World, cam ecs.Entity) view {
	v := view{zoom: 1}
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		v.x, v.y = t.X, t.Y
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		v.zoom = c.Zoom
	}
	return v
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
