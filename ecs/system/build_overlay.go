package system

import (
	"bytes"
	"image/color"
	"log"

	"github.com/aerialrush/aerialrush/ecs"
	"github.com/aerialrush/aerialrush/ecs/component"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	overlayMargin   = 12
	overlayWidth    = 420
	overlayHeight   = 48
	overlayFontSize = 24
)

// BuildOverlaySystem draws the build label panel in the top-left corner. The
// ebitenui tree is rebuilt only when the label changes. In debug mode F9
// copies the label to the clipboard.
type BuildOverlaySystem struct {
	debug bool

	ui       *ebitenui.UI
	label    string
	clipInit bool
	clipOK   bool
}

func NewBuildOverlaySystem(debug bool) *BuildOverlaySystem {
	return &BuildOverlaySystem{debug: debug}
}

func (s *BuildOverlaySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	label, ok := overlayLabel(w)
	if !ok {
		s.ui = nil
		s.label = ""
		return
	}
	if s.ui == nil || label != s.label {
		s.ui = newBuildOverlayUI(label)
		s.label = label
	}
	s.ui.Update()

	if s.debug && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.copyLabel()
	}
}

func (s *BuildOverlaySystem) Draw(_ *ecs.World, screen *ebiten.Image) {
	if s == nil || s.ui == nil || screen == nil {
		return
	}
	s.ui.Draw(screen)
}

func (s *BuildOverlaySystem) copyLabel() {
	if !s.clipInit {
		s.clipInit = true
		if err := clipboard.Init(); err != nil {
			log.Printf("overlay: clipboard unavailable: %v", err)
		} else {
			s.clipOK = true
		}
	}
	if !s.clipOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(s.label))
	log.Printf("overlay: copied %q", s.label)
}

func overlayLabel(w *ecs.World) (string, bool) {
	e, ok := ecs.First(w, component.BuildOverlayComponent.Kind())
	if !ok {
		return "", false
	}
	o, ok := ecs.Get(w, e, component.BuildOverlayComponent.Kind())
	if !ok {
		return "", false
	}
	return o.Label, true
}

func overlayFace() ebtext.Face {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("overlay: load font: %v", err)
		return ebtext.NewGoXFace(basicfont.Face7x13)
	}
	return &ebtext.GoTextFace{Source: src, Size: overlayFontSize}
}

func newBuildOverlayUI(label string) *ebitenui.UI {
	face := overlayFace()

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 102})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(overlayWidth, overlayHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(label, &face, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: overlayMargin, Left: overlayMargin}),
		)),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
