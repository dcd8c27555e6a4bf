package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"raycaster/core"
)

var (
	ErrEmptyMap      = errors.New("map layout has no rows")
	ErrRaggedRow     = errors.New("map rows have different widths")
	ErrUnknownCell   = errors.New("unknown map cell glyph")
	ErrInvalidUnits  = errors.New("units per cell must be positive")
	ErrNoPlayerSpawn = errors.New("map has no player spawn")
)

// DefaultUnitsPerCell is the world-space edge length of a cell.
const DefaultUnitsPerCell = 5.0

// DefaultLayout is the map loaded when no layout file is configured.
const DefaultLayout = `
xxxxxxxxxx
x        x
x xxxxxx x
x        x
xxxxx bbbb
x @ x b  b
x   x b  b
x   x b  b
x xxx    b
x        b
w w w w ww
wwwwwwwwww
`

type glyph struct {
	cell  Cell
	spawn bool
	kind  SpawnKind
}

var glyphs = map[rune]glyph{
	' ': {cell: CellEmpty},
	'x': {cell: CellBrickWall},
	'b': {cell: CellBlueWall},
	'w': {cell: CellWoodWall},
	'@': {cell: CellEmpty, spawn: true, kind: SpawnPlayer},
}

// Map is a row-major grid of cells. It is never modified after ParseMap
// returns, so it can be shared freely between goroutines.
type Map struct {
	width        int
	height       int
	unitsPerCell float64
	cells        []Cell
	spawns       []SpawnPoint
}

// DefaultMap parses DefaultLayout. The layout is a compile time constant, so a
// failure here is a programming error.
func DefaultMap() *Map {
	m, err := ParseMap(DefaultLayout, DefaultUnitsPerCell)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMap builds a map from its textual layout. Empty lines are skipped and
// the first remaining line fixes the width; spawn glyphs leave an empty cell
// behind and record a SpawnPoint.
func ParseMap(layout string, unitsPerCell float64) (*Map, error) {
	if !(unitsPerCell > 0) || math.IsInf(unitsPerCell, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidUnits, unitsPerCell)
	}

	m := &Map{unitsPerCell: unitsPerCell}

	for lineNum, line := range strings.Split(layout, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		lineWidth := utf8.RuneCountInString(line)
		if m.width == 0 {
			m.width = lineWidth
		} else if lineWidth != m.width {
			return nil, fmt.Errorf("%w: line %d %q has width %d, expected %d",
				ErrRaggedRow, lineNum+1, line, lineWidth, m.width)
		}

		col := 0
		for _, r := range line {
			g, ok := glyphs[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownCell, r, lineNum+1, col+1)
			}
			m.cells = append(m.cells, g.cell)
			if g.spawn {
				m.spawns = append(m.spawns, SpawnPoint{Row: m.height, Col: col, Kind: g.kind})
			}
			col++
		}

		m.height++
	}

	if m.height == 0 {
		return nil, ErrEmptyMap
	}

	return m, nil
}

func (m *Map) Width() int            { return m.width }
func (m *Map) Height() int           { return m.height }
func (m *Map) UnitsPerCell() float64 { return m.unitsPerCell }
func (m *Map) WorldWidth() float64   { return float64(m.width) * m.unitsPerCell }
func (m *Map) WorldHeight() float64  { return float64(m.height) * m.unitsPerCell }

func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < m.height && col < m.width
}

// CellAt returns the cell at (row, col); ok is false outside the grid.
func (m *Map) CellAt(row, col int) (cell Cell, ok bool) {
	if !m.InBounds(row, col) {
		return CellEmpty, false
	}
	return m.cells[row*m.width+col], true
}

// Probe classifies (row, col) as off the grid, open or blocked.
func (m *Map) Probe(row, col int) Occupancy {
	cell, ok := m.CellAt(row, col)
	switch {
	case !ok:
		return OffGrid
	case cell.Solid():
		return Blocked
	default:
		return Open
	}
}

// CellIndex converts a world coordinate to a row or column index.
func (m *Map) CellIndex(coord float64) int {
	return int(math.Floor(coord / m.unitsPerCell))
}

// CellCenter returns the world position of the middle of a cell.
func (m *Map) CellCenter(row, col int) core.Vector {
	return core.Vector{
		X: (float64(col) + 0.5) * m.unitsPerCell,
		Y: (float64(row) + 0.5) * m.unitsPerCell,
	}
}

// Spawns returns a copy of the recorded spawn points in layout order.
func (m *Map) Spawns() []SpawnPoint {
	out := make([]SpawnPoint, len(m.spawns))
	copy(out, m.spawns)
	return out
}

// FirstSpawn returns the first spawn point of the given kind.
func (m *Map) FirstSpawn(kind SpawnKind) (SpawnPoint, bool) {
	for _, s := range m.spawns {
		if s.Kind == kind {
			return s, true
		}
	}
	return SpawnPoint{}, false
}
