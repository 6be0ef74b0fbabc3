package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Drawer renders world state. Draw must not mutate components.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

type Scheduler struct {
	systems []System
	drawers []Drawer
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) AddDrawer(drawer Drawer) {
	if drawer == nil {
		return
	}
	s.drawers = append(s.drawers, drawer)
}

// Update runs every system in insertion order.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Draw runs every drawer in insertion order.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	for _, drawer := range s.drawers {
		drawer.Draw(w, screen)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
