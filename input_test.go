package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/model"
)

func keys(held ...ebiten.Key) keyQuery {
	return func(k ebiten.Key) bool {
		for _, h := range held {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestIntentsFrom(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        model.Intents
	}{
		{"nothing", nil, nil, model.Intents{}},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, nil, model.Intents{MoveForward: true, TurnLeft: true}},
		{"arrows", []ebiten.Key{ebiten.KeyDown, ebiten.KeyRight}, nil, model.Intents{MoveBack: true, TurnRight: true}},
		{"zoom", []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadSubtract}, nil, model.Intents{ZoomIn: true, ZoomOut: true}},
		{"held toggle is ignored", []ebiten.Key{ebiten.KeyM}, nil, model.Intents{}},
		{"fresh toggle", []ebiten.Key{ebiten.KeyM}, []ebiten.Key{ebiten.KeyM}, model.Intents{ToggleMap: true}},
		{"tab toggles", nil, []ebiten.Key{ebiten.KeyTab}, model.Intents{ToggleMap: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intentsFrom(keys(tt.pressed...), keys(tt.justPressed...))
			if got != tt.want {
				t.Errorf("intentsFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
