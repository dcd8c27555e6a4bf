// minimap.go
package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws straight onto an ebiten image. The overhead map uses it
// on top of the uploaded 3D view.
type screenCanvas struct {
	img   *ebiten.Image
	color color.RGBA
}

func newScreenCanvas(img *ebiten.Image) *screenCanvas {
	return &screenCanvas{img: img, color: color.RGBA{A: 255}}
}

func (c *screenCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *screenCanvas) Clear() {
	c.img.Fill(c.color)
}

func (c *screenCanvas) SetDrawColor(clr color.RGBA) {
	c.color = clr
}

func (c *screenCanvas) FillRect(r image.Rectangle) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c.color, false)
}

func (c *screenCanvas) DrawLine(x0, y0, x1, y1 int) {
	// pixel centres, so one pixel wide lines land on whole pixels
	vector.StrokeLine(c.img, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, c.color, false)
}

func (c *screenCanvas) DrawPoint(x, y int) {
	c.img.Set(x, y, c.color)
}
