package engine

import (
	"image"
	"image/color"
)

// Canvas is everything the renderers need from a drawing surface. All
// coordinates are in pixels with the origin at the top left. Drawing outside
// the canvas is silently clipped.
type Canvas interface {
	Size() (width, height int)
	// Clear fills the whole canvas with the current draw colour
	Clear()
	SetDrawColor(c color.RGBA)
	FillRect(r image.Rectangle)
	DrawLine(x0, y0, x1, y1 int)
	DrawPoint(x, y int)
}

// TextureSampler looks up wall texels by section name.
type TextureSampler interface {
	SampleTexture(section string, x, y int) (color.RGBA, bool)
	SectionSize(section string) (width, height int, ok bool)
}

// Plot calls fn for every point of the line from (x0, y0) to (x1, y1), both
// ends included, using Bresenham's algorithm.
func Plot(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		fn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
