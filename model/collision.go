package model

import (
	"fmt"

	"raycaster/core"
)

// Side is one edge of the player's collision square.
type Side int

const (
	SideRight Side = iota
	SideBottom
	SideLeft
	SideTop
)

// ResolveOrder is the order Resolve checks the sides in. Each check sees the
// position left by the previous one, which decides how corners resolve.
var ResolveOrder = [...]Side{SideRight, SideBottom, SideLeft, SideTop}

func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Resolve pushes a square of edge size centred on pos out of solid or
// off-grid cells, one side at a time.
func Resolve(m *Map, pos core.Vector, size float64) core.Vector {
	for _, side := range ResolveOrder {
		pos = ResolveSide(m, pos, size, side)
	}
	return pos
}

// ResolveSide probes the cell half a collision size away from pos on one side.
// If that cell is solid or off the grid, the matching coordinate is clamped so
// the probe lands exactly on the near edge of the cell.
func ResolveSide(m *Map, pos core.Vector, size float64, side Side) core.Vector {
	half := size / 2
	upc := m.UnitsPerCell()

	switch side {
	case SideRight:
		row, col := m.CellIndex(pos.Y), m.CellIndex(pos.X+half)
		if m.Probe(row, col) != Open {
			pos.X = float64(col)*upc - half
		}
	case SideLeft:
		row, col := m.CellIndex(pos.Y), m.CellIndex(pos.X-half)
		if m.Probe(row, col) != Open {
			pos.X = float64(col+1)*upc + half
		}
	case SideBottom:
		row, col := m.CellIndex(pos.Y+half), m.CellIndex(pos.X)
		if m.Probe(row, col) != Open {
			pos.Y = float64(row)*upc - half
		}
	case SideTop:
		row, col := m.CellIndex(pos.Y-half), m.CellIndex(pos.X)
		if m.Probe(row, col) != Open {
			pos.Y = float64(row+1)*upc + half
		}
	}

	return pos
}
