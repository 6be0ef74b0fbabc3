package system

import (
	"math"

	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/jakecoffman/cp"
)

// VehicleSystem turns Control into heading and speed. Vehicles with a live
// physics body get a velocity for the physics step; the rest are integrated
// here directly.
type VehicleSystem struct {
	dt float64
}

func NewVehicleSystem() *VehicleSystem {
	return &VehicleSystem{dt: common.DeltaTime}
}

func (s *VehicleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := s.dt

	ecs.ForEach3(w, component.VehicleComponent.Kind(), component.ControlComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, v *component.Vehicle, c *component.Control, t *component.Transform) {
		v.Heading += c.Steer * v.SteerRate * dt
		v.Speed = common.Lerp(v.Speed, targetSpeed(v, c.Throttle), common.ExpSmoothing(v.Accel, dt))

		vx := math.Sin(v.Heading) * v.Speed
		vy := -math.Cos(v.Heading) * v.Speed

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			body.Body.SetVelocity(vx, vy)
			body.Body.SetAngle(v.Heading)
		} else {
			t.X += vx * dt
			t.Y += vy * dt
		}

		t.Rotation = v.Heading
		// fake roll: narrow the sprite while banking
		t.ScaleX = 1 - v.BankAngle*math.Abs(c.Steer)
		if t.ScaleY == 0 {
			t.ScaleY = 1
		}
	})
}

// targetSpeed maps throttle -1..0..1 onto MinSpeed..CruiseSpeed..MaxSpeed.
func targetSpeed(v *component.Vehicle, throttle float64) float64 {
	if throttle >= 0 {
		return v.CruiseSpeed + throttle*(v.MaxSpeed-v.CruiseSpeed)
	}
	return v.CruiseSpeed + throttle*(v.CruiseSpeed-v.MinSpeed)
}

// Velocity returns the body velocity a vehicle is currently flying at.
func Velocity(v *component.Vehicle) cp.Vector {
	return cp.Vector{X: math.Sin(v.Heading) * v.Speed, Y: -math.Cos(v.Heading) * v.Speed}
}
