package config

import (
	"bytes"
	"fmt"
	"image"

	"github.com/spf13/afero"

	"raycaster/model"
)

// LoadLayout reads a map layout file. Level images (.png, .bmp) are converted
// to the textual layout; anything else is read as text.
func LoadLayout(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("read map layout: %w", err)
	}
	if !isLevelImage(path) {
		return string(data), nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode level image %s: %w", path, err)
	}
	return LayoutFromImage(img)
}

// LoadMap parses the configured layout file, or the built-in layout when no
// file is set.
func (c MapConfig) LoadMap(fs afero.Fs) (*model.Map, error) {
	layout := model.DefaultLayout
	if c.File != "" {
		var err error
		if layout, err = LoadLayout(fs, c.File); err != nil {
			return nil, err
		}
	}

	m, err := model.ParseMap(layout, c.Units)
	if err != nil {
		return nil, fmt.Errorf("parse map %q: %w", c.File, err)
	}
	return m, nil
}
