package model

import (
	"fmt"
	"testing"

	"raycaster/core"
)

// 5x5 room, interior spans [5, 20] on both axes
const roomLayout = `
xxxxx
x   x
x   x
x   x
xxxxx
`

func mustParse(t *testing.T, layout string) *Map {
	t.Helper()
	m, err := ParseMap(layout, 5)
	if err != nil {
		t.Fatalf("ParseMap() error = %v", err)
	}
	return m
}

func TestResolveClampsToWallEdge(t *testing.T) {
	m := mustParse(t, roomLayout)
	const size = 4.0

	tests := []struct {
		name  string
		start core.Vector
		step  core.Vector
		want  core.Vector
	}{
		{"right", core.Vector{X: 15, Y: 12.5}, core.Vector{X: 1}, core.Vector{X: 18, Y: 12.5}},
		{"left", core.Vector{X: 10, Y: 12.5}, core.Vector{X: -1}, core.Vector{X: 7, Y: 12.5}},
		{"bottom", core.Vector{X: 12.5, Y: 15}, core.Vector{Y: 1}, core.Vector{X: 12.5, Y: 18}},
		{"top", core.Vector{X: 12.5, Y: 10}, core.Vector{Y: -1}, core.Vector{X: 12.5, Y: 7}},
	}

	// any step that reaches the wall while the centre stays in the open cell
	// ends on the edge
	speeds := []float64{3.01, 3.5, 4, 4.9}

	for _, tt := range tests {
		for _, speed := range speeds {
			t.Run(fmt.Sprintf("%s at %v", tt.name, speed), func(t *testing.T) {
				got := Resolve(m, tt.start.Add(tt.step.Scale(speed)), size)
				if got != tt.want {
					t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
				}
			})
		}
	}
}

// Once the centre itself is inside a wall, a side checked earlier can probe the
// wall at the centre coordinate and push the other axis first.
func TestResolveSideOrderWithCentreInWall(t *testing.T) {
	m := mustParse(t, roomLayout)

	tests := []struct {
		name string
		pos  core.Vector
		want core.Vector
	}{
		{"into left wall", core.Vector{X: 4.5, Y: 12.5}, core.Vector{X: 7, Y: 8}},
		{"into top wall", core.Vector{X: 12.5, Y: 4.5}, core.Vector{X: 12, Y: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(m, tt.pos, 4); got != tt.want {
				t.Errorf("Resolve(%+v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestResolveLeavesOpenSpaceAlone(t *testing.T) {
	m := mustParse(t, roomLayout)

	for _, pos := range []core.Vector{
		{X: 12.5, Y: 12.5},
		{X: 7, Y: 7},
		{X: 18, Y: 18},
		{X: 17.9, Y: 12.5},
	} {
		if got := Resolve(m, pos, 4); got != pos {
			t.Errorf("Resolve(%+v) = %+v, want unchanged", pos, got)
		}
	}
}

func TestResolveCorner(t *testing.T) {
	m := mustParse(t, roomLayout)

	got := Resolve(m, core.Vector{X: 19, Y: 19}, 4)
	if want := (core.Vector{X: 18, Y: 18}); got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}

	got = Resolve(m, core.Vector{X: 6, Y: 6}, 4)
	if want := (core.Vector{X: 7, Y: 7}); got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveOffGrid(t *testing.T) {
	m := mustParse(t, "   \n   \n   ")

	tests := []struct {
		name string
		pos  core.Vector
		want core.Vector
	}{
		{"past right edge", core.Vector{X: 14, Y: 7.5}, core.Vector{X: 13, Y: 7.5}},
		{"past left edge", core.Vector{X: 1, Y: 7.5}, core.Vector{X: 2, Y: 7.5}},
		{"past bottom edge", core.Vector{X: 7.5, Y: 14}, core.Vector{X: 7.5, Y: 13}},
		{"past top edge", core.Vector{X: 7.5, Y: 1}, core.Vector{X: 7.5, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(m, tt.pos, 4); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveSideOnlyTouchesItsAxis(t *testing.T) {
	m := mustParse(t, roomLayout)
	pos := core.Vector{X: 19, Y: 19}

	got := ResolveSide(m, pos, 4, SideRight)
	if got.X != 18 || got.Y != 19 {
		t.Errorf("ResolveSide(right) = %+v", got)
	}
	got = ResolveSide(m, pos, 4, SideTop)
	if got != pos {
		t.Errorf("ResolveSide(top) = %+v, want unchanged", got)
	}
}

func TestResolveOrder(t *testing.T) {
	want := []Side{SideRight, SideBottom, SideLeft, SideTop}
	for i, side := range ResolveOrder {
		if side != want[i] {
			t.Errorf("ResolveOrder[%d] = %v, want %v", i, side, want[i])
		}
	}
}
