package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sort"

	// registered decoders for atlas images
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"raycaster/model"
)

var (
	ErrSectionBounds  = errors.New("texture section exceeds atlas image")
	ErrUnknownSection = errors.New("unknown texture section")
)

// Atlas is one image holding several named wall textures.
type Atlas struct {
	img      *image.RGBA
	sections map[string]image.Rectangle
}

// New wraps img, converting it to RGBA. The atlas starts without sections.
func New(img image.Image) *Atlas {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	return &Atlas{
		img:      rgba,
		sections: make(map[string]image.Rectangle),
	}
}

// Decode reads an atlas image in any registered format.
func Decode(r io.Reader) (*Atlas, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode atlas: empty %s image", format)
	}
	return New(img), nil
}

// LoadStrip decodes an image made of equally wide textures side by side and
// names them left to right.
func LoadStrip(r io.Reader, names ...string) (*Atlas, error) {
	a, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return a, nil
	}

	w, h := a.img.Bounds().Dx()/len(names), a.img.Bounds().Dy()
	for i, name := range names {
		if err := a.CreateSection(name, image.Rect(i*w, 0, (i+1)*w, h)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// CreateSection names a rectangle of the atlas image. Redefining a name
// replaces the old rectangle.
func (a *Atlas) CreateSection(name string, r image.Rectangle) error {
	if r.Empty() || !r.In(a.img.Bounds()) {
		return fmt.Errorf("%w: %q %v not within %v", ErrSectionBounds, name, r, a.img.Bounds())
	}
	a.sections[name] = r
	return nil
}

// Section returns the rectangle of a named section.
func (a *Atlas) Section(name string) (image.Rectangle, error) {
	r, ok := a.sections[name]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return r, nil
}

// Sections lists section names in sorted order.
func (a *Atlas) Sections() []string {
	names := make([]string, 0, len(a.sections))
	for name := range a.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SampleTexture returns the texel at (x, y) relative to the section origin.
// Unknown sections and coordinates outside the section report false.
func (a *Atlas) SampleTexture(section string, x, y int) (color.RGBA, bool) {
	r, ok := a.sections[section]
	if !ok || x < 0 || y < 0 || x >= r.Dx() || y >= r.Dy() {
		return color.RGBA{}, false
	}
	return a.img.RGBAAt(r.Min.X+x, r.Min.Y+y), true
}

func (a *Atlas) SectionSize(section string) (int, int, bool) {
	r, ok := a.sections[section]
	if !ok {
		return 0, 0, false
	}
	return r.Dx(), r.Dy(), true
}

// Procedural draws a brick, blue and wood texture of size x size side by side,
// for running without an atlas file.
func Procedural(size int) *Atlas {
	if size < 4 {
		size = 4
	}

	img := image.NewRGBA(image.Rect(0, 0, size*3, size))
	paint(img, 0, size, brick)
	paint(img, size, size, tiles)
	paint(img, 2*size, size, planks)

	a := New(img)
	for i, name := range []string{model.SectionBrick, model.SectionBlue, model.SectionWood} {
		// cannot fail, the strip was sized for three sections
		_ = a.CreateSection(name, image.Rect(i*size, 0, (i+1)*size, size))
	}
	return a
}

type pattern func(x, y, size int) color.RGBA

func paint(img *image.RGBA, left, size int, p pattern) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(left+x, y, p(x, y, size))
		}
	}
}

func brick(x, y, size int) color.RGBA {
	course := size / 4
	row := y / course
	shift := 0
	if row%2 == 1 {
		shift = size / 4
	}
	if y%course == 0 || (x+shift)%(size/2) == 0 {
		return color.RGBA{200, 200, 190, 255}
	}
	return color.RGBA{160, 50, 40, 255}
}

func tiles(x, y, size int) color.RGBA {
	cell := max(size/8, 1)
	if (x/cell+y/cell)%2 == 0 {
		return color.RGBA{40, 60, 200, 255}
	}
	return color.RGBA{20, 30, 140, 255}
}

func planks(x, y, size int) color.RGBA {
	plank := max(size/4, 1)
	if x%plank == 0 {
		return color.RGBA{80, 50, 20, 255}
	}
	// grain
	shade := uint8(((x*7 + y*3) % 20))
	return color.RGBA{150 + shade, 100 + shade/2, 50, 255}
}
