package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/config"
	"raycaster/engine"
	"raycaster/logger"
	"raycaster/model"
	"raycaster/texture"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until keyHold has passed since its last event.
const keyHold = 150 * time.Millisecond

type action int

const (
	actTurnLeft action = iota
	actTurnRight
	actForward
	actBack
	actZoomIn
	actZoomOut
	actCount
)

// terminalCanvas draws one screen cell per pixel, using the cell background.
type terminalCanvas struct {
	screen tcell.Screen
	style  tcell.Style
}

func newTerminalCanvas(screen tcell.Screen) *terminalCanvas {
	return &terminalCanvas{screen: screen, style: tcell.StyleDefault.Background(tcell.ColorBlack)}
}

func (c *terminalCanvas) Size() (int, int) {
	return c.screen.Size()
}

func (c *terminalCanvas) Clear() {
	c.screen.Fill(' ', c.style)
}

func (c *terminalCanvas) SetDrawColor(clr color.RGBA) {
	c.style = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
}

func (c *terminalCanvas) FillRect(r image.Rectangle) {
	w, h := c.Size()
	r = r.Canon().Intersect(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.screen.SetContent(x, y, ' ', nil, c.style)
		}
	}
}

func (c *terminalCanvas) DrawLine(x0, y0, x1, y1 int) {
	engine.Plot(x0, y0, x1, y1, c.DrawPoint)
}

func (c *terminalCanvas) DrawPoint(x, y int) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.screen.SetContent(x, y, ' ', nil, c.style)
}

// keyState turns the terminal's stream of key events into per-tick intents.
type keyState struct {
	last   [actCount]time.Time
	toggle bool
	quit   bool
}

func (k *keyState) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyLeft:
		k.last[actTurnLeft] = now
	case tcell.KeyRight:
		k.last[actTurnRight] = now
	case tcell.KeyUp:
		k.last[actForward] = now
	case tcell.KeyDown:
		k.last[actBack] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			k.quit = true
		case 'a':
			k.last[actTurnLeft] = now
		case 'd':
			k.last[actTurnRight] = now
		case 'w':
			k.last[actForward] = now
		case 's':
			k.last[actBack] = now
		case '+', '=':
			k.last[actZoomIn] = now
		case '-':
			k.last[actZoomOut] = now
		case 'm':
			k.toggle = true
		}
	}
}

// intents reports the keys held at now. A pending map toggle is consumed.
func (k *keyState) intents(now time.Time) model.Intents {
	held := func(a action) bool {
		t := k.last[a]
		return !t.IsZero() && now.Sub(t) < keyHold
	}

	in := model.Intents{
		TurnLeft:    held(actTurnLeft),
		TurnRight:   held(actTurnRight),
		MoveForward: held(actForward),
		MoveBack:    held(actBack),
		ZoomIn:      held(actZoomIn),
		ZoomOut:     held(actZoomOut),
		ToggleMap:   k.toggle,
	}
	k.toggle = false
	return in
}

// terminalLoop is the tcell frontend, ticking on wall clock time.
type terminalLoop struct {
	screen  tcell.Screen
	canvas  *terminalCanvas
	state   *model.State
	atlas   *texture.Atlas
	keys    keyState
	step    time.Duration
	workers int
}

func newTerminalLoop(screen tcell.Screen, cfg *config.Config, state *model.State, atlas *texture.Atlas) *terminalLoop {
	return &terminalLoop{
		screen:  screen,
		canvas:  newTerminalCanvas(screen),
		state:   state,
		atlas:   atlas,
		step:    time.Second / time.Duration(cfg.Render.TPS),
		workers: cfg.Render.Workers,
	}
}

func runTerminal(cfg *config.Config, state *model.State, atlas *texture.Atlas) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	// log lines would scribble over the screen
	out := logger.Log.Out
	logger.Log.SetOutput(io.Discard)
	defer logger.Log.SetOutput(out)

	screen.HideCursor()
	return newTerminalLoop(screen, cfg, state, atlas).run()
}

func (t *terminalLoop) run() error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.step)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.handleEvent(ev, time.Now())
			if t.keys.quit {
				return nil
			}
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if err := t.frame(elapsed, now); err != nil {
				return err
			}
		}
	}
}

func (t *terminalLoop) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.keys.handle(ev, now)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// frame advances the state by elapsed and redraws the whole screen.
func (t *terminalLoop) frame(elapsed time.Duration, now time.Time) error {
	t.state.Tick(elapsed, t.keys.intents(now))

	vp, err := t.state.Viewpoint()
	if err != nil {
		return err
	}

	w, h := t.canvas.Size()
	cols := engine.Sweep(vp, t.state.Map, w, h, t.workers)
	engine.RenderView(t.canvas, t.atlas, cols, t.state.Map)
	if t.state.ShowMap {
		engine.RenderOverhead(t.canvas, t.state, cols)
	}

	t.screen.Show()
	return nil
}
