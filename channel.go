package prism

import (
	"fmt"
	"math"
)

// Channel is the constraint satisfied by every color channel representation.
//
// Integer channels spread intensity across their full unsigned range, so the
// numeric maximum means full intensity. Floating-point channels use [0, 1].
// uint64 is excluded on purpose: conversions go through a float64
// intermediate, and float64 cannot represent every uint64 exactly.
type Channel interface {
	uint8 | uint16 | uint32 | float32 | float64
}

// Float is the subset of Channel with fractional precision.
// Gamma transfer and luminance are only defined for these representations;
// integer channels convert through [Conv] first.
type Float interface {
	float32 | float64
}

// ChannelMax returns the value representing full intensity for T:
// the numeric maximum for integer channels, 1.0 for floating point.
func ChannelMax[T Channel]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	}
	return v
}

// ChannelMid returns the value representing half intensity for T.
// For integer channels this is the truncated midpoint (127 for uint8),
// for floating point it is 0.5.
func ChannelMid[T Channel]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = math.MaxUint8 / 2
	case *uint16:
		*p = math.MaxUint16 / 2
	case *uint32:
		*p = math.MaxUint32 / 2
	case *float32:
		*p = 0.5
	case *float64:
		*p = 0.5
	}
	return v
}

// ChannelZero returns the value representing zero intensity for T.
// It is the numeric zero for every supported representation.
func ChannelZero[T Channel]() T {
	var v T
	return v
}

// Clamp restricts v to the valid channel range [ChannelZero, ChannelMax].
//
// The comparison order matters for floating point: a value is kept only if it
// compares below the maximum and above zero. NaN fails both comparisons and
// clamps to the channel maximum; -Inf clamps to zero.
func Clamp[T Channel](v T) T {
	m := ChannelMax[T]()
	if v < m {
		var zero T
		if v > zero {
			return v
		}
		return zero
	}
	return m
}

// InRange reports whether v already lies in the valid channel range.
// NaN is never in range.
func InRange[T Channel](v T) bool {
	var zero T
	return v >= zero && v <= ChannelMax[T]()
}

// Conv converts a channel value from representation T to representation U,
// preserving the proportion of full intensity: the result is
// round(Clamp(v)/max(T) * max(U)). The computation runs in float64, so no
// integer overflow occurs and widening followed by narrowing back is the
// identity on in-range values.
func Conv[U, T Channel](v T) U {
	f := float64(Clamp(v)) / float64(ChannelMax[T]()) * float64(ChannelMax[U]())
	return chanFromFloat[U](f)
}

// chanFromFloat converts a float64 intermediate to channel type T, clamping
// to the channel range (NaN to the maximum, as in Clamp) and rounding
// half away from zero for integer representations.
func chanFromFloat[T Channel](f float64) T {
	m := float64(ChannelMax[T]())
	if !(f < m) { // catches NaN as well
		f = m
	} else if f < 0 {
		f = 0
	}
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = uint8(math.Round(f))
	case *uint16:
		*p = uint16(math.Round(f))
	case *uint32:
		*p = uint32(math.Round(f))
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	}
	return v
}

// ChannelError reports a channel value outside its valid domain.
// It is returned by constructors that validate instead of clamping,
// such as [NewHSV].
type ChannelError struct {
	Channel string  // channel name: "hue", "saturation", "value", "alpha"
	Value   float64 // offending value, widened to float64
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("prism: %s channel value %v out of range", e.Channel, e.Value)
}
