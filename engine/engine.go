package engine

import (
	"image"
	"image/color"
)

// Image is a software RGBA frame buffer that implements Canvas. The window
// backend renders the 3D view into one and uploads Pix in a single call.
type Image struct {
	pixels []byte
	width  int
	height int
	color  color.RGBA
}

func NewImage(width, height int) *Image {
	return &Image{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
		color:  color.RGBA{A: 255},
	}
}

// Pix returns the backing pixels, four bytes per pixel in row-major order.
func (img *Image) Pix() []byte {
	return img.pixels
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

func (img *Image) Size() (int, int) {
	return img.width, img.height
}

func (img *Image) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	index := (y*img.width + x) * 4
	img.pixels[index] = c.R
	img.pixels[index+1] = c.G
	img.pixels[index+2] = c.B
	img.pixels[index+3] = c.A
}

// At returns the pixel at (x, y), or transparent black outside the image.
func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	index := (y*img.width + x) * 4
	return color.RGBA{
		R: img.pixels[index],
		G: img.pixels[index+1],
		B: img.pixels[index+2],
		A: img.pixels[index+3],
	}
}

func (img *Image) SetDrawColor(c color.RGBA) {
	img.color = c
}

func (img *Image) Clear() {
	for i := 0; i < len(img.pixels); i += 4 {
		img.pixels[i] = img.color.R
		img.pixels[i+1] = img.color.G
		img.pixels[i+2] = img.color.B
		img.pixels[i+3] = img.color.A
	}
}

func (img *Image) FillRect(r image.Rectangle) {
	r = r.Canon().Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, img.color)
		}
	}
}

func (img *Image) DrawLine(x0, y0, x1, y1 int) {
	Plot(x0, y0, x1, y1, img.DrawPoint)
}

func (img *Image) DrawPoint(x, y int) {
	img.Set(x, y, img.color)
}
