package system

import (
	"fmt"
	"log"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/prefabs"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptLoader returns the source of a handling script.
type ScriptLoader func(path string) ([]byte, error)

// HandlingScriptSystem runs each vehicle's tengo handling script over its
// Control. Scripts see the globals steer and throttle and write them back.
// A script that fails to compile or run leaves Control untouched.
type HandlingScriptSystem struct {
	load     ScriptLoader
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func NewHandlingScriptSystem(load ScriptLoader) *HandlingScriptSystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &HandlingScriptSystem{
		load:     load,
		compiled: map[string]*tengo.Compiled{},
		failed:   map[string]bool{},
	}
}

// Invalidate drops the cached program for path so the next frame recompiles it.
func (s *HandlingScriptSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	delete(s.compiled, path)
	delete(s.failed, path)
}

func (s *HandlingScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.HandlingScriptComponent.Kind(), component.ControlComponent.Kind(), func(e ecs.Entity, hs *component.HandlingScript, c *component.Control) {
		if hs.Path == "" {
			return
		}
		steer, throttle, err := s.apply(hs.Path, c.Steer, c.Throttle)
		if err != nil {
			if !s.failed[hs.Path] {
				log.Printf("handling: entity=%s script %s: %v", e, hs.Path, err)
				s.failed[hs.Path] = true
			}
			return
		}
		c.Steer = clampAxis(steer)
		c.Throttle = clampAxis(throttle)
	})
}

func (s *HandlingScriptSystem) apply(path string, steer, throttle float64) (float64, float64, error) {
	if s.failed[path] {
		return 0, 0, fmt.Errorf("disabled after earlier error")
	}
	compiled, err := s.program(path)
	if err != nil {
		return 0, 0, err
	}
	if err := compiled.Set("steer", steer); err != nil {
		return 0, 0, err
	}
	if err := compiled.Set("throttle", throttle); err != nil {
		return 0, 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, 0, err
	}
	return compiled.Get("steer").Float(), compiled.Get("throttle").Float(), nil
}

func (s *HandlingScriptSystem) program(path string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[path]; ok {
		return c, nil
	}
	src, err := s.load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("steer", 0.0)
	_ = script.Add("throttle", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	s.compiled[path] = compiled
	return compiled, nil
}
