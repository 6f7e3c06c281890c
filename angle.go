package prism

import "math"

// Angle types represent hue-like quantities that wrap around instead of
// clamping: 370° and 10° are the same angle. Each type fixes a unit by its
// period. All are value types; arithmetic goes through the *Angle functions,
// which always wrap their result.

// Deg is an angle in degrees, wrapping at 360.
type Deg float32

// Rad is an angle in radians, wrapping at 2π.
type Rad float32

// Rev is an angle in revolutions (turns), wrapping at 1.
type Rev float32

// Rev8 is an angle in 256ths of a revolution. Its full period is exactly the
// uint8 range, so ordinary integer overflow performs the wrapping and [Wrap]
// is a no-op for this type.
type Rev8 uint8

// Angle is the constraint satisfied by all angle representations.
type Angle interface {
	Deg | Rad | Rev | Rev8
}

// ZeroAngle returns the canonical zero of A. Every angle representation
// starts its range at numeric zero, so this is the type's zero value.
func ZeroAngle[A Angle]() A {
	var a A
	return a
}

// FullAngle returns the period of A in A's own unit: 360 for [Deg], 2π for
// [Rad], 1 for [Rev], 256 for [Rev8]. The result is float64 because Rev8's
// period does not fit its own representation.
func FullAngle[A Angle]() float64 {
	var a A
	switch any(a).(type) {
	case Deg:
		return 360
	case Rad:
		return 2 * math.Pi
	case Rev:
		return 1
	default: // Rev8
		return 256
	}
}

// Wrap reduces a into the canonical range [0, FullAngle) by taking the
// remainder modulo the period and adding one period when the remainder is
// negative. For [Rev8] it is the identity, since uint8 values cannot leave
// the range.
func Wrap[A Angle](a A) A {
	if _, ok := any(a).(Rev8); ok {
		return a
	}
	full := FullAngle[A]()
	f := math.Mod(float64(a), full)
	if f < 0 {
		f += full
	}
	return A(f)
}

// AddAngle returns the wrapped sum a + b.
func AddAngle[A Angle](a, b A) A { return Wrap(a + b) }

// SubAngle returns the wrapped difference a - b.
// Unsigned underflow in Rev8 is exactly the intended modular arithmetic.
func SubAngle[A Angle](a, b A) A { return Wrap(a - b) }

// MulAngle returns the wrapped product a * b.
func MulAngle[A Angle](a, b A) A { return Wrap(a * b) }

// DivAngle returns the wrapped quotient a / b.
// Dividing a Rev8 by zero panics like any integer division; for the float
// types the quotient is ±Inf and the wrapped result is NaN.
func DivAngle[A Angle](a, b A) A { return Wrap(a / b) }

// ModAngle returns the wrapped remainder of a by b.
func ModAngle[A Angle](a, b A) A {
	if ra, ok := any(a).(Rev8); ok {
		rb := any(b).(Rev8)
		return A(ra % rb)
	}
	return Wrap(A(math.Mod(float64(a), float64(b))))
}

// ConvAngle converts an angle to another representation, preserving the
// fraction of a full turn. The result is wrapped into canonical range and,
// for [Rev8], rounded to the nearest 256th of a turn.
func ConvAngle[B, A Angle](a A) B {
	return fromTurns[B](turns(Wrap(a)))
}

// ToAngle converts a channel value to an angle: the clamped fraction of full
// intensity becomes the same fraction of a full turn. ChannelMax itself maps
// to a whole turn, which wraps to zero.
func ToAngle[A Angle, T Channel](v T) A {
	return fromTurns[A](float64(Clamp(v)) / float64(ChannelMax[T]()))
}

// turns returns the angle as a fraction of a full turn.
func turns[A Angle](a A) float64 {
	return float64(a) / FullAngle[A]()
}

// fromTurns builds an angle from a fraction of a full turn, wrapping into
// [0, 1) first.
func fromTurns[B Angle](t float64) B {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	f := t * FullAngle[B]()
	var b B
	if _, ok := any(b).(Rev8); ok {
		// Round to the nearest step; 255.6 is closer to 0 than to 255.
		return B(uint8(int(math.Round(f)) % 256))
	}
	return B(f)
}

// angleInRange reports whether a is already in canonical range.
// Every Rev8 value is canonical.
func angleInRange[A Angle](a A) bool {
	if _, ok := any(a).(Rev8); ok {
		return true
	}
	var zero A
	return a >= zero && float64(a) < FullAngle[A]()
}
