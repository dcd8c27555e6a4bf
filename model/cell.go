package model

import "fmt"

// Cell is the content of one map tile. Only CellEmpty is passable; the wall
// variants differ only in which texture section they sample.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBrickWall
	CellBlueWall
	CellWoodWall
)

// texture section names, shared with the atlas
const (
	SectionBrick = "brick"
	SectionBlue  = "blue"
	SectionWood  = "wood"
)

func (c Cell) Solid() bool {
	return c != CellEmpty
}

// Section returns the texture section a wall samples, or "" for empty cells.
func (c Cell) Section() string {
	switch c {
	case CellBrickWall:
		return SectionBrick
	case CellBlueWall:
		return SectionBlue
	case CellWoodWall:
		return SectionWood
	default:
		return ""
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBrickWall:
		return "brick wall"
	case CellBlueWall:
		return "blue wall"
	case CellWoodWall:
		return "wood wall"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Occupancy is the result of probing a grid coordinate. It keeps "off the
// grid" distinct from the two in-bounds outcomes.
type Occupancy int

const (
	OffGrid Occupancy = iota
	Open
	Blocked
)

func (o Occupancy) String() string {
	switch o {
	case OffGrid:
		return "off-grid"
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("Occupancy(%d)", int(o))
	}
}

// SpawnKind names the actor placed at a spawn point.
type SpawnKind int

const (
	SpawnPlayer SpawnKind = iota
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnPlayer:
		return "player"
	default:
		return fmt.Sprintf("SpawnKind(%d)", int(k))
	}
}

// SpawnPoint is an actor placement recorded while parsing a layout.
type SpawnPoint struct {
	Row  int
	Col  int
	Kind SpawnKind
}
