package system

import (
	"image/color"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonIdle    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
	buttonPressed = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
	buttonBorder  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xa0}
)

type OnScreenButtonRenderSystem struct{}

func NewOnScreenButtonRenderSystem() *OnScreenButtonRenderSystem {
	return &OnScreenButtonRenderSystem{}
}

func (r *OnScreenButtonRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || !controlsVisible(w) {
		return
	}
	ecs.ForEach(w, component.OnScreenButtonComponent.Kind(), func(_ ecs.Entity, btn *component.OnScreenButton) {
		x := float32(btn.Rect.Min.X)
		y := float32(btn.Rect.Min.Y)
		bw := float32(btn.Rect.Dx())
		bh := float32(btn.Rect.Dy())

		fill := buttonIdle
		if btn.Pressed {
			fill = buttonPressed
		}
		vector.DrawFilledRect(screen, x, y, bw, bh, fill, false)
		vector.StrokeRect(screen, x, y, bw, bh, 2, buttonBorder, false)

		// DebugPrintAt glyphs are 6x16
		lx := btn.Rect.Min.X + (btn.Rect.Dx()-6*len(btn.Label))/2
		ly := btn.Rect.Min.Y + (btn.Rect.Dy()-16)/2
		ebitenutil.DebugPrintAt(screen, btn.Label, lx, ly)
	})
}
