// main.go
package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"raycaster/config"
	"raycaster/logger"
	"raycaster/model"
	"raycaster/texture"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	fs := afero.NewOsFs()

	state, atlas, err := setup(fs, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("startup failed")
	}

	logger.Log.WithFields(logrus.Fields{
		"backend":  cfg.Backend,
		"map":      mapName(cfg.Map),
		"width":    state.Map.Width(),
		"height":   state.Map.Height(),
		"sections": atlas.Sections(),
		"workers":  cfg.Render.Workers,
	}).Info("starting raycaster")

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, state, atlas)
	default:
		err = NewGame(cfg, state, atlas).Run()
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("backend stopped")
	}
	logger.Log.Info("bye")
}

// setup loads everything the backends share: the map, the player state and the
// wall textures.
func setup(fs afero.Fs, cfg *config.Config) (*model.State, *texture.Atlas, error) {
	m, err := cfg.Map.LoadMap(fs)
	if err != nil {
		return nil, nil, err
	}

	state, err := model.NewState(m, cfg.Player.Model())
	if err != nil {
		return nil, nil, err
	}

	atlas, err := loadAtlas(fs, cfg.Texture)
	if err != nil {
		return nil, nil, err
	}
	return state, atlas, nil
}

func mapName(c config.MapConfig) string {
	if c.File == "" {
		return "built-in"
	}
	return c.File
}
