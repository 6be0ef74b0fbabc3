package system

import (
	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/jakecoffman/cp"
)

const (
	defaultBodyRadius = 16
	defaultBodyMass   = 1
)

// PhysicsSystem owns the Chipmunk space. It creates bodies for new
// PhysicsBody components, steps the space and copies positions back into
// Transform.
type PhysicsSystem struct {
	space    *cp.Space
	dt       float64
	entities map[ecs.Entity]*component.PhysicsBody
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:    space,
		dt:       common.DeltaTime,
		entities: make(map[ecs.Entity]*component.PhysicsBody),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanup(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if b.Body == nil {
			ps.createBody(e, b, t)
		}
	})

	ps.space.Step(ps.dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if b.Body == nil {
			return
		}
		pos := b.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

// Reset removes every body, e.g. before a course reload.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	for e, b := range ps.entities {
		ps.removeBody(b)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) createBody(e ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
	radius := b.Radius
	if radius <= 0 {
		radius = defaultBodyRadius
	}
	mass := b.Mass
	if mass <= 0 {
		mass = defaultBodyMass
	}

	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	body.SetAngle(t.Rotation)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0.2)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	b.Body = body
	b.Shape = shape
	ps.entities[e] = b
}

// cleanup drops bodies whose entity died or lost its PhysicsBody component.
func (ps *PhysicsSystem) cleanup(w *ecs.World) {
	for e, b := range ps.entities {
		current, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if ok && current == b {
			continue
		}
		ps.removeBody(b)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeBody(b *component.PhysicsBody) {
	if b.Shape != nil && ps.space.ContainsShape(b.Shape) {
		ps.space.RemoveShape(b.Shape)
	}
	if b.Body != nil && ps.space.ContainsBody(b.Body) {
		ps.space.RemoveBody(b.Body)
	}
	b.Body = nil
	b.Shape = nil
}
