package system

import (
	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
)

// ParallaxFollowSystem eases followers toward
//
//	origin + baseOffset + (target - origin) * factor
//
// with weight 1 - exp(-followLerp*dt). Run it after everything that moves
// targets.
type ParallaxFollowSystem struct {
	dt float64
}

func NewParallaxFollowSystem() *ParallaxFollowSystem {
	return &ParallaxFollowSystem{dt: common.DeltaTime}
}

func (s *ParallaxFollowSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ParallaxFollowComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, f *component.ParallaxFollow, t *component.Transform) {
		target := findEntityByName(w, f.Target)
		if !target.Valid() || target == e {
			return
		}
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		x, y := ParallaxDesired(f, tt.X, tt.Y)
		if f.Snap {
			t.X, t.Y = x, y
			f.Snap = false
			return
		}
		k := common.ExpSmoothing(followLerp(f), s.dt)
		t.X = common.Lerp(t.X, x, k)
		t.Y = common.Lerp(t.Y, y, k)
	})
}

// ParallaxDesired is where a follower wants to be for a target at (tx, ty).
func ParallaxDesired(f *component.ParallaxFollow, tx, ty float64) (float64, float64) {
	factor := parallaxFactor(f)
	x := f.OriginX + f.BaseOffsetX + (tx-f.OriginX)*factor
	y := f.OriginY + f.BaseOffsetY + (ty-f.OriginY)*factor
	return x, y
}

func parallaxFactor(f *component.ParallaxFollow) float64 {
	if f.Factor == 0 {
		return component.DefaultParallaxFactor
	}
	return common.Clamp(f.Factor, component.MinParallaxFactor, component.MaxParallaxFactor)
}

func followLerp(f *component.ParallaxFollow) float64 {
	if f.FollowLerp <= 0 {
		return component.DefaultFollowLerp
	}
	return f.FollowLerp
}
