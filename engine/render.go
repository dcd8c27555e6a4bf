package engine

import (
	"image"
	"image/color"

	"raycaster/model"
)

var (
	ceilingColor = color.RGBA{128, 128, 128, 255}
	floorColor   = color.RGBA{255, 255, 255, 255}
	playerColor  = color.RGBA{0, 255, 0, 255}
	rayColor     = color.RGBA{0, 0, 0, 255}
)

// CellColor is the flat colour of a cell on the overhead map. Walls drawn
// without a texture use it too.
func CellColor(cell model.Cell) color.RGBA {
	switch cell {
	case model.CellBrickWall:
		return color.RGBA{255, 0, 0, 255}
	case model.CellBlueWall:
		return color.RGBA{0, 0, 255, 255}
	case model.CellWoodWall:
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}

// RenderView draws the first person view: a gray ceiling, a white floor and
// one textured wall strip per column that hit something.
func RenderView(c Canvas, tex TextureSampler, cols []Column, m *model.Map) {
	w, h := c.Size()

	c.SetDrawColor(ceilingColor)
	c.Clear()
	c.SetDrawColor(floorColor)
	c.FillRect(image.Rect(0, h/2, w, h))

	for _, col := range cols {
		if !col.Ray.Hit() {
			continue
		}
		drawStrip(c, tex, col, m.UnitsPerCell(), h)
	}
}

func drawStrip(c Canvas, tex TextureSampler, col Column, unitsPerCell float64, screenHeight int) {
	start, end := col.Rows()
	start, end = max(start, 0), min(end, screenHeight)

	section := col.Ray.Cell.Section()
	sw, sh, ok := tex.SectionSize(section)
	if !ok {
		c.SetDrawColor(CellColor(col.Ray.Cell))
		c.FillRect(image.Rect(col.X, start, col.X+1, end))
		return
	}

	for y := start; y < end; y++ {
		tx, ty := col.TextureCoord(y, sw, sh, unitsPerCell)
		texel, ok := tex.SampleTexture(section, tx, ty)
		if !ok {
			continue
		}
		c.SetDrawColor(texel)
		c.DrawPoint(col.X, y)
	}
}

// RenderOverhead draws the map from above, scaled by the zoom level, with the
// player's collision square and a line along every column's ray.
func RenderOverhead(c Canvas, s *model.State, cols []Column) {
	m := s.Map
	zoom := s.ZoomLevel
	cellSize := int(m.UnitsPerCell() * zoom)

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			cell, _ := m.CellAt(row, col)
			x := int(float64(col) * m.UnitsPerCell() * zoom)
			y := int(float64(row) * m.UnitsPerCell() * zoom)

			c.SetDrawColor(CellColor(cell))
			c.FillRect(image.Rect(x, y, x+cellSize, y+cellSize))
		}
	}

	p := s.Player
	size := p.CollisionSize * zoom
	px, py := p.Position.X*zoom, p.Position.Y*zoom
	x0, y0 := int(px-size/2), int(py-size/2)

	c.SetDrawColor(playerColor)
	c.FillRect(image.Rect(x0, y0, x0+int(size), y0+int(size)))

	c.SetDrawColor(rayColor)
	for _, col := range cols {
		endX := col.Angle.Cos()*col.Ray.Distance*zoom + px
		endY := col.Angle.Sin()*col.Ray.Distance*zoom + py
		c.DrawLine(int(px), int(py), int(endX), int(endY))
	}
}
