// ui.go
package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"raycaster/model"
)

const hudFontSize = 14

var (
	hudTextColor       = color.RGBA{255, 255, 255, 255}
	hudBackgroundColor = color.RGBA{0, 0, 0, 160}
)

// hud is the status panel in the bottom left corner of the window.
type hud struct {
	ui     *ebitenui.UI
	status *widget.Text
	help   *widget.Text
}

func loadHUDFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse HUD font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func newHUD() (*hud, error) {
	face, err := loadHUDFace(hudFontSize)
	if err != nil {
		return nil, err
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(hudBackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)

	h := &hud{
		status: widget.NewText(widget.TextOpts.Text("", face, hudTextColor)),
		help:   widget.NewText(widget.TextOpts.Text("WASD/arrows move, +/- zoom, M map, Esc quit", face, hudTextColor)),
	}
	panel.AddChild(h.status)
	panel.AddChild(h.help)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h, nil
}

func (h *hud) Update(s *model.State) {
	h.status.Label = statusLine(s, ebiten.ActualFPS(), ebiten.ActualTPS())
	h.ui.Update()
}

func (h *hud) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func statusLine(s *model.State, fps, tps float64) string {
	p := s.Player
	return fmt.Sprintf("FPS %0.1f  TPS %0.1f  pos %0.1f,%0.1f  facing %0.0f°  zoom %0.1f",
		fps, tps, p.Position.X, p.Position.Y, float64(p.Facing.Degrees()), s.ZoomLevel)
}
