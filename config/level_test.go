package config

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"

	"raycaster/model"
)

func levelImage(rows ...[]color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestLayoutFromImage(t *testing.T) {
	k, e, b, w, p := LevelColorBrick, LevelColorEmpty, LevelColorBlue, LevelColorWood, LevelColorPlayer
	img := levelImage(
		[]color.RGBA{k, k, k, k},
		[]color.RGBA{k, p, e, b},
		[]color.RGBA{w, w, w, w},
	)

	got, err := LayoutFromImage(img)
	if err != nil {
		t.Fatalf("LayoutFromImage() error = %v", err)
	}
	if want := "xxxx\nx@ b\nwwww\n"; got != want {
		t.Errorf("LayoutFromImage() = %q, want %q", got, want)
	}
}

func TestLayoutFromImageUnknownColour(t *testing.T) {
	img := levelImage([]color.RGBA{LevelColorBrick, {12, 34, 56, 255}})

	if _, err := LayoutFromImage(img); !errors.Is(err, model.ErrUnknownCell) {
		t.Errorf("LayoutFromImage() error = %v, want %v", err, model.ErrUnknownCell)
	}
}

func TestLoadMapFromLevelImage(t *testing.T) {
	k, p := LevelColorBrick, LevelColorPlayer
	img := levelImage(
		[]color.RGBA{k, k, k},
		[]color.RGBA{k, p, k},
		[]color.RGBA{k, k, k},
	)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/maps/cell.PNG", buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := MapConfig{File: "/maps/cell.PNG", Units: 5}.LoadMap(fs)
	if err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if m.Width() != 3 || m.Height() != 3 {
		t.Fatalf("map = %dx%d, want 3x3", m.Width(), m.Height())
	}
	if spawn, ok := m.FirstSpawn(model.SpawnPlayer); !ok || spawn.Row != 1 || spawn.Col != 1 {
		t.Errorf("FirstSpawn() = %+v, %v", spawn, ok)
	}
}
