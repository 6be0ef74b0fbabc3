package component

import (
	"image"

	"github.com/aerialrush/aerialrush/input"
)

// OnScreenButton is a virtual control that writes Value to Axis every frame
// while held. Rect is in screen space.
type OnScreenButton struct {
	Label string
	Axis  input.Axis
	Value float64
	Rect  image.Rectangle

	Pressed   bool
	PointerID PointerID
}

var OnScreenButtonComponent = NewComponent[OnScreenButton]()

// PointerID identifies one touch or the mouse across frames.
type PointerID int

// MousePointer is the id reserved for the left mouse button. Touch ids from
// ebiten are never negative.
const MousePointer PointerID = -1

// Visibility modes for the on-screen controls.
const (
	ControlsAuto   = "auto"
	ControlsAlways = "always"
	ControlsNever  = "never"
)

// Controls holds layout-wide state for the on-screen buttons.
type Controls struct {
	Visibility string
	TouchSeen  bool
}

// Visible reports whether the buttons should be drawn.
func (c *Controls) Visible() bool {
	switch c.Visibility {
	case ControlsAlways:
		return true
	case ControlsNever:
		return false
	default:
		return c.TouchSeen
	}
}

var ControlsComponent = NewComponent[Controls]()
