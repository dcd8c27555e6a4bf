package model

import (
	"raycaster/core"
)

// PlayerConfig holds the per-instance constants of a player.
type PlayerConfig struct {
	CollisionSize float64
	TurnSpeed     float64
	MoveSpeed     float64
}

// DefaultPlayerConfig mirrors the tuning the default map was laid out for.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		CollisionSize: 2,
		TurnSpeed:     5,
		MoveSpeed:     10,
	}
}

type Player struct {
	Position core.Vector
	Facing   core.Radians

	// CollisionSize is the full edge length of the square the player occupies
	CollisionSize float64

	// Velocity is recomputed every tick and only kept for inspection
	Velocity core.Vector

	TurnSpeed float64
	MoveSpeed float64
}

func NewPlayer(pos core.Vector, cfg PlayerConfig) *Player {
	return &Player{
		Position:      pos,
		Facing:        core.NewRadians(0),
		CollisionSize: cfg.CollisionSize,
		TurnSpeed:     cfg.TurnSpeed,
		MoveSpeed:     cfg.MoveSpeed,
	}
}

// rotate turns the player by the given turn rate over dt seconds
func (p *Player) rotate(left, right bool, dt float64) {
	step := p.TurnSpeed * dt
	if left {
		p.Facing = p.Facing.SubFloat(step)
	}
	if right {
		p.Facing = p.Facing.AddFloat(step)
	}
}

// updateVelocity derives the velocity from facing and move intents. Forward and
// back together cancel out.
func (p *Player) updateVelocity(forward, back bool) {
	p.Velocity = core.Vector{}
	heading := core.FromAngle(p.Facing, p.MoveSpeed)
	if forward {
		p.Velocity = p.Velocity.Add(heading)
	}
	if back {
		p.Velocity = p.Velocity.Sub(heading)
	}
}
