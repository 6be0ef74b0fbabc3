package entity

import (
	"fmt"
	"image"

	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/aerialrush/aerialrush/input"
	"github.com/aerialrush/aerialrush/prefabs"
)

func NewControls(w *ecs.World, forceVisible bool) error {
	spec, err := prefabs.LoadControlsSpec()
	if err != nil {
		return fmt.Errorf("controls: load spec: %w", err)
	}
	if forceVisible {
		spec.Visible = component.ControlsAlways
	}
	return NewControlsFromSpec(w, spec)
}

// NewControlsFromSpec creates the layout entity and one entity per button.
func NewControlsFromSpec(w *ecs.World, spec *prefabs.ControlsSpec) error {
	visibility := spec.Visible
	switch visibility {
	case component.ControlsAuto, component.ControlsAlways, component.ControlsNever:
	case "":
		visibility = component.ControlsAuto
	default:
		return fmt.Errorf("controls: unknown visibility %q", spec.Visible)
	}

	layout := ecs.CreateEntity(w)
	if err := ecs.Add(w, layout, component.ControlsComponent.Kind(), &component.Controls{Visibility: visibility}); err != nil {
		return fmt.Errorf("controls: add layout: %w", err)
	}

	for i, b := range spec.Buttons {
		btn, err := buttonFromSpec(b)
		if err != nil {
			return fmt.Errorf("controls: button %d: %w", i, err)
		}
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.OnScreenButtonComponent.Kind(), btn); err != nil {
			return fmt.Errorf("controls: button %d: add: %w", i, err)
		}
	}
	return nil
}

func buttonFromSpec(b prefabs.ButtonSpec) (*component.OnScreenButton, error) {
	axis, err := input.ParseAxis(b.Axis)
	if err != nil {
		return nil, err
	}
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("size %dx%d must be positive", b.Width, b.Height)
	}
	value := b.Value
	if value == 0 {
		value = 1
	}
	rect, err := anchorRect(b.Anchor, b.X, b.Y, b.Width, b.Height)
	if err != nil {
		return nil, err
	}
	return &component.OnScreenButton{
		Label: b.Label,
		Axis:  axis,
		Value: value,
		Rect:  rect,
	}, nil
}

// anchorRect places a w x h box with its corner offset (x, y) in from the
// anchored screen corner.
func anchorRect(anchor string, x, y, w, h int) (image.Rectangle, error) {
	var minX, minY int
	switch anchor {
	case "", "top_left":
		minX, minY = x, y
	case "top_right":
		minX, minY = common.BaseWidth-x-w, y
	case "bottom_left":
		minX, minY = x, common.BaseHeight-y-h
	case "bottom_right":
		minX, minY = common.BaseWidth-x-w, common.BaseHeight-y-h
	default:
		return image.Rectangle{}, fmt.Errorf("unknown anchor %q", anchor)
	}
	return image.Rect(minX, minY, minX+w, minY+h), nil
}
