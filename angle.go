package dragon

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Unit identifies the measure an [Angle] is expressed in.
type Unit int

const (
	// Degrees measures angles in degrees, where one degree is 1/360 of a full
	// circle.
	Degrees Unit = iota
	// Radians measures angles in radians, where one radian is 1/2π of a full
	// circle.
	Radians
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Angle is a plane angle tagged with the unit it is expressed in.
//
// Many APIs involving geometry and trigonometry take bare floating point
// angles and leave it to documentation whether degrees or radians are
// expected. Rotations tend to be given in degrees while trigonometric
// calculations expect radians, which the user must commit to memory. Angle
// takes the guesswork out of passing angles around: callers pass an Angle and
// the callee converts to whichever measure it needs.
//
// Angles are immutable. Conversions return new values.
type Angle struct {
	val  float64
	unit Unit
}

// Deg returns the angle of v degrees.
func Deg(v float64) Angle {
	return Angle{val: v, unit: Degrees}
}

// Rad returns the angle of v radians.
func Rad(v float64) Angle {
	return Angle{val: v, unit: Radians}
}

// Value returns the bare magnitude of the angle, in whatever unit it is
// tagged with.
func (a Angle) Value() float64 {
	return a.val
}

// Unit returns the unit the angle is expressed in.
func (a Angle) Unit() Unit {
	return a.unit
}

// IsDegrees reports whether the angle is expressed in degrees.
func (a Angle) IsDegrees() bool {
	return a.unit == Degrees
}

// IsRadians reports whether the angle is expressed in radians.
func (a Angle) IsRadians() bool {
	return a.unit == Radians
}

// ToDegrees returns the angle expressed in degrees. If the angle already is
// in degrees, it is returned unchanged.
func (a Angle) ToDegrees() Angle {
	if a.unit == Degrees {
		return a
	}
	return Deg(a.val * (180 / math.Pi))
}

// ToRadians returns the angle expressed in radians. If the angle already is
// in radians, it is returned unchanged.
func (a Angle) ToRadians() Angle {
	if a.unit == Radians {
		return a
	}
	return Rad(a.val * (math.Pi / 180))
}

// Radians returns the magnitude of the angle in radians, for use with the
// math package's trigonometric functions.
func (a Angle) Radians() float64 {
	return a.ToRadians().val
}

// Normalized returns the angle reduced to [0, 360) degrees, or [0, 2π)
// radians for a radian-tagged angle. The unit tag is preserved.
func (a Angle) Normalized() Angle {
	turn := 360.0
	if a.unit == Radians {
		turn = 2 * math.Pi
	}
	v := math.Mod(a.val, turn)
	if v < 0 {
		v += turn
	}
	return Angle{val: v, unit: a.unit}
}

// Neg returns the angle with its sign flipped.
func (a Angle) Neg() Angle {
	return Angle{val: -a.val, unit: a.unit}
}

// DMS decomposes the angle into whole degrees, minutes, and seconds. A minute
// is 1/60 of a degree and a second is 1/60 of a minute. Each component is
// truncated toward zero; the seconds are computed from the remainder after
// removing whole minutes.
//
// A whole angle can be negative but the minutes and seconds in it cannot, so
// deg is signed while min and sec are not. The fractional parts of a negative
// angle saturate to zero.
func (a Angle) DMS() (deg int, min, sec uint) {
	// eps absorbs floating point error at the truncation boundaries, keeping
	// FromDMS∘DMS idempotent.
	const eps = 1e-9

	dd := a.ToDegrees().val
	d := math.Trunc(dd)
	frac := dd - d
	if frac <= 0 {
		return int(d), 0, 0
	}

	m := math.Trunc(frac*60 + eps)
	if m == 60 {
		// The carry consumed the entire fraction; there is no remainder to
		// compute seconds from.
		return int(d) + 1, 0, 0
	}
	s := math.Trunc((frac-m/60)*3600 + eps)
	if s < 0 {
		s = 0
	}

	return int(d), uint(m), uint(s)
}

// FromDMS composes an angle from whole degrees, minutes, and seconds. It is
// the inverse of [Angle.DMS]: decomposing the returned angle yields the same
// triple, subject to floating point truncation at the seconds boundary. The
// result is always tagged in degrees.
func FromDMS(deg int, min, sec uint) Angle {
	return Deg(float64(deg) + float64(min)/60 + float64(sec)/3600)
}

// String formats the angle as "{value}°" or "{value} rad.", mirroring the
// textual forms that [ParseAngle] accepts.
func (a Angle) String() string {
	if a.unit == Radians {
		return fmt.Sprintf("%v rad.", a.val)
	}
	return fmt.Sprintf("%v°", a.val)
}

// ErrUnrecognizedUnit is returned by [ParseAngle] when the input ends in
// neither a degree marker nor "rad.".
var ErrUnrecognizedUnit = errors.New("could not determine if the angle is in degrees or radians")

// degree markers accepted on input. Output always uses U+00B0.
var degreeMarkers = []string{"°", "º"}

// ParseAngle parses an angle from its textual form: a floating point number
// followed by a unit marker, with optional whitespace in between. The degree
// marker is a single degree glyph (both the degree sign U+00B0 and the
// masculine ordinal U+00BA are accepted); the radian marker is the literal
// "rad.".
//
// ParseAngle returns [ErrUnrecognizedUnit] if the input ends in neither
// marker, and a wrapped [strconv] error if the numeric prefix does not parse.
func ParseAngle(s string) (Angle, error) {
	for _, marker := range degreeMarkers {
		if num, ok := strings.CutSuffix(s, marker); ok {
			deg, err := parseMagnitude(num)
			if err != nil {
				return Angle{}, err
			}
			return Deg(deg), nil
		}
	}
	if num, ok := strings.CutSuffix(s, "rad."); ok {
		rad, err := parseMagnitude(num)
		if err != nil {
			return Angle{}, err
		}
		return Rad(rad), nil
	}
	return Angle{}, ErrUnrecognizedUnit
}

func parseMagnitude(num string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimRightFunc(num, unicode.IsSpace), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing angle magnitude: %w", err)
	}
	return v, nil
}
