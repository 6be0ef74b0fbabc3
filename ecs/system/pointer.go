package system

import (
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is a touch or mouse press in logical screen coordinates.
type Pointer struct {
	ID   component.PointerID
	X, Y int
}

// PointerSource reports pointer transitions for the current tick.
type PointerSource interface {
	// JustPressed lists pointers that went down this tick.
	JustPressed() []Pointer
	// Released reports whether the pointer is no longer held.
	Released(id component.PointerID) bool
}

// EbitenPointers reads touches and the left mouse button.
type EbitenPointers struct {
	touchIDs []ebiten.TouchID
}

func NewEbitenPointers() *EbitenPointers {
	return &EbitenPointers{}
}

func (p *EbitenPointers) JustPressed() []Pointer {
	var out []Pointer
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		out = append(out, Pointer{ID: component.PointerID(id), X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, Pointer{ID: component.MousePointer, X: x, Y: y})
	}
	return out
}

func (p *EbitenPointers) Released(id component.PointerID) bool {
	if id == component.MousePointer {
		return !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	tid := ebiten.TouchID(id)
	return inpututil.IsTouchJustReleased(tid) || inpututil.TouchPressDuration(tid) == 0
}
