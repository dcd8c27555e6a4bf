package config

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	// image map formats
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"raycaster/model"
)

// Level image palette: one pixel per cell.
var (
	LevelColorEmpty  = color.RGBA{255, 255, 255, 255}
	LevelColorBrick  = color.RGBA{0, 0, 0, 255}
	LevelColorBlue   = color.RGBA{0, 0, 255, 255}
	LevelColorWood   = color.RGBA{255, 255, 0, 255}
	LevelColorPlayer = color.RGBA{0, 255, 0, 255}
)

var levelGlyphs = map[color.RGBA]rune{
	LevelColorEmpty:  ' ',
	LevelColorBrick:  'x',
	LevelColorBlue:   'b',
	LevelColorWood:   'w',
	LevelColorPlayer: '@',
}

// LayoutFromImage turns a level image into a textual map layout, one row of
// glyphs per pixel row.
func LayoutFromImage(img image.Image) (string, error) {
	bounds := img.Bounds()
	var sb strings.Builder

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			glyph, ok := levelGlyphs[c]
			if !ok {
				return "", fmt.Errorf("%w: colour %v at pixel (%d, %d)", model.ErrUnknownCell, c, x, y)
			}
			sb.WriteRune(glyph)
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func isLevelImage(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".bmp")
}
