package core

import (
	"math"
)

// one full turn; geom.Pi2 is rounded to five decimals
const twoPi = 2 * math.Pi

// Radians is a bearing kept in [0, 2π). The zero value is a valid bearing (east).
// Every way of producing a Radians goes through normalize, so two bearings that
// differ by whole turns always compare equal.
type Radians struct {
	v float64
}

// NewRadians wraps an arbitrary angle into [0, 2π).
func NewRadians(v float64) Radians {
	return Radians{v: normalize(v)}
}

func normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	v = math.Mod(v, twoPi)
	if v < 0 {
		v += twoPi
	}

	// tiny negative inputs round up to exactly one turn
	if v >= twoPi {
		v = 0
	}
	return v
}

func (r Radians) Float() float64 { return r.v }

func (r Radians) Cos() float64 { return math.Cos(r.v) }
func (r Radians) Sin() float64 { return math.Sin(r.v) }

func (r Radians) Add(o Radians) Radians      { return NewRadians(r.v + o.v) }
func (r Radians) Sub(o Radians) Radians      { return NewRadians(r.v - o.v) }
func (r Radians) AddFloat(v float64) Radians { return NewRadians(r.v + v) }
func (r Radians) SubFloat(v float64) Radians { return NewRadians(r.v - v) }
func (r Radians) Scale(f float64) Radians    { return NewRadians(r.v * f) }

// Degrees converts back to the human facing unit.
func (r Radians) Degrees() Degrees {
	return Degrees(r.v * 180 / math.Pi)
}

// Degrees is used for configuration values such as the field of view.
// Conversion is linear and no range is enforced.
type Degrees float64

// Radians converts to a normalized bearing.
func (d Degrees) Radians() Radians {
	return NewRadians(d.RadiansFloat())
}

// RadiansFloat is the raw linear conversion, for spans like a 360° field of view
// that must not wrap.
func (d Degrees) RadiansFloat() float64 {
	return float64(d) * math.Pi / 180
}
