package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycaster/model"
)

// keyQuery reports the state of one key. ebiten.IsKeyPressed and
// inpututil.IsKeyJustPressed both fit.
type keyQuery func(ebiten.Key) bool

var (
	turnLeftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}
	turnRightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}
	forwardKeys   = []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}
	backKeys      = []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}
	zoomInKeys    = []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
	zoomOutKeys   = []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
	toggleMapKeys = []ebiten.Key{ebiten.KeyM, ebiten.KeyTab}
)

// readIntents samples the keyboard once for this tick.
func readIntents() model.Intents {
	return intentsFrom(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// intentsFrom maps held keys to continuous intents and fresh presses to the
// map toggle, which must flip once per press rather than once per tick.
func intentsFrom(pressed, justPressed keyQuery) model.Intents {
	return model.Intents{
		TurnLeft:    anyKey(pressed, turnLeftKeys),
		TurnRight:   anyKey(pressed, turnRightKeys),
		MoveForward: anyKey(pressed, forwardKeys),
		MoveBack:    anyKey(pressed, backKeys),
		ZoomIn:      anyKey(pressed, zoomInKeys),
		ZoomOut:     anyKey(pressed, zoomOutKeys),
		ToggleMap:   anyKey(justPressed, toggleMapKeys),
	}
}

func anyKey(q keyQuery, keys []ebiten.Key) bool {
	for _, k := range keys {
		if q(k) {
			return true
		}
	}
	return false
}

func quitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}
