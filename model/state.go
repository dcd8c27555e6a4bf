package model

import (
	"fmt"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"

	"raycaster/core"
)

const (
	DefaultZoomLevel = 4.0
	MinZoomLevel     = 1.0
	MaxZoomLevel     = 10.0

	// zoom levels per second while a zoom intent is held
	zoomSpeed = 4.0
)

// Intents are the per-frame player requests sampled by a backend.
type Intents struct {
	TurnLeft    bool
	TurnRight   bool
	MoveForward bool
	MoveBack    bool
	ZoomIn      bool
	ZoomOut     bool
	ToggleMap   bool
}

// State owns the map and the player. It is updated by Tick once per frame from
// a single goroutine.
type State struct {
	Map    *Map
	Player *Player

	// view parameters for the overhead map
	ZoomLevel float64
	ShowMap   bool
}

// Viewpoint is a copy of the player pose taken before a render sweep. Column
// workers only ever see this copy.
type Viewpoint struct {
	Position core.Vector
	Facing   core.Radians
}

// NewState places a player at the centre of the map's first player spawn.
func NewState(m *Map, cfg PlayerConfig) (*State, error) {
	spawn, ok := m.FirstSpawn(SpawnPlayer)
	if !ok {
		return nil, ErrNoPlayerSpawn
	}

	return &State{
		Map:       m,
		Player:    NewPlayer(m.CellCenter(spawn.Row, spawn.Col), cfg),
		ZoomLevel: DefaultZoomLevel,
		ShowMap:   true,
	}, nil
}

// Tick advances the simulation by elapsed. The player turns, moves along its
// new heading without any look-ahead, and is then pushed out of walls one side
// at a time.
func (s *State) Tick(elapsed time.Duration, in Intents) {
	dt := elapsed.Seconds()
	p := s.Player

	p.rotate(in.TurnLeft, in.TurnRight, dt)
	p.updateVelocity(in.MoveForward, in.MoveBack)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Position = Resolve(s.Map, p.Position, p.CollisionSize)

	if in.ZoomIn {
		s.ZoomLevel += zoomSpeed * dt
	}
	if in.ZoomOut {
		s.ZoomLevel -= zoomSpeed * dt
	}
	s.ZoomLevel = geom.Clamp(s.ZoomLevel, MinZoomLevel, MaxZoomLevel)

	if in.ToggleMap {
		s.ShowMap = !s.ShowMap
	}
}

// Viewpoint snapshots the player pose for rendering.
func (s *State) Viewpoint() (Viewpoint, error) {
	var vp Viewpoint
	if err := copier.Copy(&vp, s.Player); err != nil {
		return Viewpoint{}, fmt.Errorf("snapshot player: %w", err)
	}
	return vp, nil
}
