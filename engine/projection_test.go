package engine

import (
	"math"
	"testing"

	"raycaster/core"
	"raycaster/model"
)

func TestColumnAngle(t *testing.T) {
	facing := core.NewRadians(math.Pi)

	tests := []struct {
		x, n int
		want float64
	}{
		{0, 4, math.Pi - math.Pi/4},
		{2, 4, math.Pi},
		{3, 4, math.Pi + math.Pi/8},
		{400, 800, math.Pi},
	}

	for _, tt := range tests {
		got := ColumnAngle(facing, tt.x, tt.n).Float()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ColumnAngle(%d, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}

	// the first column wraps below zero when facing east
	got := ColumnAngle(core.NewRadians(0), 0, 10).Float()
	if want := 2*math.Pi - math.Pi/4; math.Abs(got-want) > 1e-9 {
		t.Errorf("ColumnAngle() = %v, want %v", got, want)
	}
}

func TestCorrectFishEye(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		facing   float64
		angle    float64
		want     float64
	}{
		{"along facing", 12.5, 1, 1, 12.5},
		{"along facing across zero", 7, 0, 0, 7},
		{"45 degrees off", 10, 0, math.Pi / 4, 10 * math.Cos(math.Pi/4)},
		{"floored at one", 0.5, 2, 2, 1},
		{"no hit", 0, 0, 0, 1},
		{"negative", -4, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectFishEye(tt.distance, core.NewRadians(tt.facing), core.NewRadians(tt.angle))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CorrectFishEye() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripHeight(t *testing.T) {
	tests := []struct {
		adjusted float64
		screen   int
		want     float64
	}{
		{1, 600, 600},
		{1.5, 600, 600},
		{3, 600, 300},
		{15, 600, 60},
	}

	for _, tt := range tests {
		if got := StripHeight(tt.adjusted, tt.screen); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("StripHeight(%v, %d) = %v, want %v", tt.adjusted, tt.screen, got, tt.want)
		}
	}
}

func TestProjectCentreColumn(t *testing.T) {
	m := mustMap(t, corridor)
	vp := model.Viewpoint{Position: core.Vector{X: 7.5, Y: 7.5}}

	col := Project(vp, m, 50, 100, 600)
	if col.X != 50 {
		t.Errorf("X = %d, want 50", col.X)
	}
	if math.Abs(col.AdjustedDistance-col.Ray.Distance) > 1e-9 {
		t.Errorf("AdjustedDistance = %v, want raw distance %v", col.AdjustedDistance, col.Ray.Distance)
	}
	if math.Abs(col.Ray.Distance-12.5) > tolerance {
		t.Errorf("Distance = %v, want 12.5", col.Ray.Distance)
	}
	if want := 600 / (12.5 / 1.5); math.Abs(col.Height-want) > 1e-6 {
		t.Errorf("Height = %v, want %v", col.Height, want)
	}
	if want := 300 - col.Height/2; col.Top != want {
		t.Errorf("Top = %v, want %v", col.Top, want)
	}
}

func TestProjectNoHit(t *testing.T) {
	m := mustMap(t, "   \n   \n   ")
	vp := model.Viewpoint{Position: core.Vector{X: 7.5, Y: 7.5}}

	col := Project(vp, m, 0, 10, 100)
	if col.Ray.Hit() {
		t.Fatal("open map produced a hit")
	}
	// a zero distance is treated as 0.1 and floored to 1, so the strip fills the screen
	if col.AdjustedDistance != 1 || col.Height != 100 || col.Top != 0 {
		t.Errorf("Column = %+v", col)
	}
}

func TestTextureCoord(t *testing.T) {
	col := Column{
		Ray:    RayResult{Offset: 2.5, Cell: model.CellBrickWall},
		Top:    100,
		Height: 200,
	}

	tests := []struct {
		y      int
		wx, wy int
	}{
		{100, 32, 0},
		{200, 32, 32},
		{299, 32, 63},
		// rows outside the strip clamp to the section
		{50, 32, 0},
		{400, 32, 63},
	}

	for _, tt := range tests {
		tx, ty := col.TextureCoord(tt.y, 64, 64, 5)
		if tx != tt.wx || ty != tt.wy {
			t.Errorf("TextureCoord(%d) = (%d, %d), want (%d, %d)", tt.y, tx, ty, tt.wx, tt.wy)
		}
	}
}
