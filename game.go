package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycaster/config"
	"raycaster/engine"
	"raycaster/logger"
	"raycaster/model"
	"raycaster/texture"
)

// -- game

// Game is the window frontend. Update advances the simulation and takes a
// viewpoint snapshot; Draw renders that snapshot.
type Game struct {
	cfg   *config.Config
	state *model.State
	atlas *texture.Atlas

	// fixed simulation step, one per ebiten tick
	step time.Duration

	view model.Viewpoint

	// software frame buffer for the 3D view and its GPU copy
	frame *engine.Image
	scene *ebiten.Image

	hud *hud

	frames    int
	lastStats time.Time
}

func NewGame(cfg *config.Config, state *model.State, atlas *texture.Atlas) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height

	g := &Game{
		cfg:       cfg,
		state:     state,
		atlas:     atlas,
		step:      time.Second / time.Duration(cfg.Render.TPS),
		frame:     engine.NewImage(w, h),
		scene:     ebiten.NewImage(w, h),
		lastStats: time.Now(),
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Render.TPS)

	return g
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	hud, err := newHUD()
	if err != nil {
		return err
	}
	g.hud = hud

	if err := g.snapshot(); err != nil {
		return err
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Update is called every tick (1/TPS [s]).
func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}

	g.state.Tick(g.step, readIntents())
	if err := g.snapshot(); err != nil {
		return err
	}

	g.hud.Update(g.state)
	return nil
}

// snapshot copies the player pose for the next Draw. Column workers only see
// this copy.
func (g *Game) snapshot() error {
	vp, err := g.state.Viewpoint()
	if err != nil {
		return err
	}
	g.view = vp
	return nil
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height

	cols := engine.Sweep(g.view, g.state.Map, w, h, g.cfg.Render.Workers)
	engine.RenderView(g.frame, g.atlas, cols, g.state.Map)

	g.scene.WritePixels(g.frame.Pix())
	screen.DrawImage(g.scene, nil)

	if g.state.ShowMap {
		engine.RenderOverhead(newScreenCanvas(screen), g.state, cols)
	}

	g.hud.Draw(screen)
	g.logFrameStats()
}

// logFrameStats reports frame throughput at debug level, at most once a second.
func (g *Game) logFrameStats() {
	g.frames++
	since := time.Since(g.lastStats)
	if since < time.Second {
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"frames": g.frames,
		"fps":    fmt.Sprintf("%0.1f", float64(g.frames)/since.Seconds()),
		"tps":    fmt.Sprintf("%0.1f", ebiten.ActualTPS()),
	}).Debug("frame stats")

	g.frames = 0
	g.lastStats = time.Now()
}
