package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"raycaster/core"
	"raycaster/model"
)

// cosines smaller than this are treated as a straight north or south ray
const verticalEpsilon = 1e-9

// RayResult describes where a ray first met a solid cell. The zero value means
// nothing was hit. Hit goes by the cell, not the distance: an origin lying on
// the face of a wall reports that wall at distance 0.
type RayResult struct {
	// Distance is the straight-line distance from the ray origin to the crossing
	Distance float64
	// Offset is the position of the crossing along the hit face, in [0, units per cell)
	Offset float64
	Cell   model.Cell
}

func (r RayResult) Hit() bool {
	return r.Cell.Solid()
}

// CastRay walks the grid lines crossed by a ray from origin and returns the
// first solid cell it reaches.
//
// Horizontal and vertical line crossings are visited in order of distance
// from the origin. At each crossing the cell just beyond the line is looked
// up; an empty or off-grid cell lets the ray continue to the next line on that
// axis. The walk gives up once both axes have run past the edge of the map in
// the direction of travel. An axis the ray never moves along counts as past
// the edge from the start.
func CastRay(origin core.Vector, angle core.Radians, m *model.Map) RayResult {
	// a player that has already left the map sees nothing
	if origin.X < 0 || origin.Y < 0 {
		return RayResult{}
	}

	upc := m.UnitsPerCell()
	maxX, maxY := m.WorldWidth(), m.WorldHeight()
	nudge := upc / 50

	run, rise := angle.Cos(), angle.Sin()
	vertical := math.Abs(run) < verticalEpsilon

	// y = slope*x + intercept, unused for vertical rays
	var slope, intercept float64
	if !vertical {
		slope = rise / run
		intercept = origin.Y - slope*origin.X
	}

	stepX, stepY := direction(run), direction(rise)
	if vertical {
		stepX = 0
	}

	// first grid lines ahead of the origin on each axis
	yLine := float64(m.CellIndex(origin.Y)) * upc
	if stepY > 0 {
		yLine += upc
	}
	xLine := float64(m.CellIndex(origin.X)) * upc
	if stepX > 0 {
		xLine += upc
	}

	for {
		xDone := exhausted(stepX, xLine, maxX)
		yDone := exhausted(stepY, yLine, maxY)
		if xDone && yDone {
			return RayResult{}
		}

		distY := math.Inf(1)
		var xAtY float64
		if !yDone {
			xAtY = origin.X
			if !vertical {
				xAtY = (yLine - intercept) / slope
			}
			distY = geom.Distance(origin.X, origin.Y, xAtY, yLine)
		}

		distX := math.Inf(1)
		var yAtX float64
		if !xDone {
			yAtX = slope*xLine + intercept
			distX = geom.Distance(origin.X, origin.Y, xLine, yAtX)
		}

		if isFinite(distY) && (!isFinite(distX) || distY < distX) {
			row := m.CellIndex(yLine + stepY*nudge)
			col := m.CellIndex(xAtY)
			if cell, ok := m.CellAt(row, col); ok && cell.Solid() {
				return RayResult{Distance: distY, Offset: math.Mod(xAtY, upc), Cell: cell}
			}
			yLine += stepY * upc
			continue
		}

		if !isFinite(distX) {
			// both crossings unusable; only reachable through non-finite input
			return RayResult{}
		}

		row := m.CellIndex(yAtX)
		col := m.CellIndex(xLine + stepX*nudge)
		if cell, ok := m.CellAt(row, col); ok && cell.Solid() {
			return RayResult{Distance: distX, Offset: math.Mod(yAtX, upc), Cell: cell}
		}
		xLine += stepX * upc
	}
}

func direction(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// exhausted reports whether every remaining line on an axis lies outside
// [0, limit] on the far side of the direction of travel.
func exhausted(step, line, limit float64) bool {
	switch {
	case step > 0:
		return line > limit
	case step < 0:
		return line < 0
	default:
		return true
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
