package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"raycaster/config"
	"raycaster/logger"
	"raycaster/model"
	"raycaster/texture"
)

// wallSections is the left to right order of textures in a texture strip.
var wallSections = []string{model.SectionBrick, model.SectionBlue, model.SectionWood}

// loadAtlas reads the configured texture strip, or generates textures when no
// file is configured.
func loadAtlas(fs afero.Fs, cfg config.TextureConfig) (*texture.Atlas, error) {
	if cfg.File == "" {
		logger.Log.WithField("size", cfg.Size).Debug("using generated wall textures")
		return checkWallSections(texture.Procedural(cfg.Size))
	}

	f, err := fs.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("open texture strip: %w", err)
	}
	defer f.Close()

	atlas, err := texture.LoadStrip(f, wallSections...)
	if err != nil {
		return nil, fmt.Errorf("load texture strip %s: %w", cfg.File, err)
	}
	return checkWallSections(atlas)
}

// checkWallSections makes sure every wall type has a texture section.
func checkWallSections(atlas *texture.Atlas) (*texture.Atlas, error) {
	for _, name := range wallSections {
		r, err := atlas.Section(name)
		if err != nil {
			return nil, err
		}
		logger.Log.WithFields(logrus.Fields{
			"section": name,
			"rect":    r.String(),
		}).Debug("wall texture")
	}
	return atlas, nil
}
