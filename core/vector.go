package core

import (
	"github.com/harbdog/raycaster-go/geom"
)

// Vector is a displacement or position in map units.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Distance is the straight line distance between two points.
func (v Vector) Distance(o Vector) float64 {
	return geom.Distance(v.X, v.Y, o.X, o.Y)
}

// FromAngle returns the vector of the given length pointing along angle.
func FromAngle(angle Radians, magnitude float64) Vector {
	l := geom.LineFromAngle(0, 0, angle.Float(), magnitude)
	return Vector{X: l.X2, Y: l.Y2}
}
