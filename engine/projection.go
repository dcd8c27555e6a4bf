package engine

import (
	"math"

	"raycaster/core"
	"raycaster/model"
)

// FieldOfView is the horizontal angle covered by the view.
const FieldOfView core.Degrees = 90

const (
	// raw distances at or below zero are treated as this
	minRawDistance = 0.1
	// adjusted distances never drop below this, which caps strip height
	minAdjustedDistance = 1.0
	// strip height scale: height = screenHeight / (distance / heightScale)
	heightScale = 1.5
)

// Column is one projected screen column.
type Column struct {
	X     int
	Angle core.Radians
	Ray   RayResult

	AdjustedDistance float64
	Height           float64
	Top              float64
}

// ColumnAngle returns the ray angle for column x of n, sweeping the field of
// view from left to right.
func ColumnAngle(facing core.Radians, x, n int) core.Radians {
	fov := FieldOfView.RadiansFloat()
	return facing.AddFloat(-fov/2 + float64(x)*fov/float64(n))
}

// CorrectFishEye projects a ray distance onto the facing direction so that
// flat walls stay flat.
func CorrectFishEye(distance float64, facing, angle core.Radians) float64 {
	if distance <= 0 {
		distance = minRawDistance
	}
	return math.Max(distance*facing.Sub(angle).Cos(), minAdjustedDistance)
}

// StripHeight is the on-screen height of a wall at the given adjusted
// distance, never taller than the screen.
func StripHeight(adjusted float64, screenHeight int) float64 {
	h := float64(screenHeight) / (adjusted / heightScale)
	return math.Min(h, float64(screenHeight))
}

// Project casts the ray for column x of n and sizes its wall strip.
func Project(vp model.Viewpoint, m *model.Map, x, n, screenHeight int) Column {
	angle := ColumnAngle(vp.Facing, x, n)
	ray := CastRay(vp.Position, angle, m)
	adjusted := CorrectFishEye(ray.Distance, vp.Facing, angle)
	height := StripHeight(adjusted, screenHeight)

	return Column{
		X:                x,
		Angle:            angle,
		Ray:              ray,
		AdjustedDistance: adjusted,
		Height:           height,
		Top:              float64(screenHeight)/2 - height/2,
	}
}

// Rows returns the screen rows covered by the strip, before clipping.
func (c Column) Rows() (start, end int) {
	start = int(c.Top)
	return start, start + int(c.Height)
}

// TextureCoord maps screen row y of the strip to a texel of a section of the
// given size. The ray offset picks the texel column.
func (c Column) TextureCoord(y int, sectionW, sectionH int, unitsPerCell float64) (tx, ty int) {
	start, _ := c.Rows()
	tx = int(c.Ray.Offset / unitsPerCell * float64(sectionW))
	ty = int(float64(y-start) / c.Height * float64(sectionH))
	return clampInt(tx, 0, sectionW-1), clampInt(ty, 0, sectionH-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
