package prism

import (
	"fmt"
	"math"
)

// HSV is a color in hue/saturation/value form: hue as an angle around the
// RGB hexagon, saturation and value as channel fractions. H is the hue
// representation, T the channel representation of saturation and value, and
// S the space of the RGB color it corresponds to — HSV does not change the
// space, it only re-parameterizes the coordinates.
type HSV[H Angle, T Channel, S Space] struct {
	H H // hue
	S T // saturation
	V T // value
}

type (
	// StdHSVColor is the HSV form of a float sRGB color, hue in degrees.
	StdHSVColor = HSV[Deg, float32, SRGBSpace]

	// LinHSVColor is the HSV form of a float linear color, hue in degrees.
	LinHSVColor = HSV[Deg, float32, LinearSpace]
)

// NewHSV validates the components and returns the normalized color.
// Saturation or value outside the channel range, or a hue that is not
// finite, yield a [*ChannelError]; nothing is silently clamped on this
// path. Use [MustHSV] for known-good constants, or build the struct
// directly and call [HSV.Normalize] for clamping pipeline semantics.
//
// The space comes first so it can be given alone, with the hue and channel
// types inferred: NewHSV[SRGBSpace](Deg(220), s, v).
func NewHSV[S Space, H Angle, T Channel](h H, s, v T) (HSV[H, T, S], error) {
	if !InRange(s) {
		return HSV[H, T, S]{}, &ChannelError{Channel: "saturation", Value: float64(s)}
	}
	if !InRange(v) {
		return HSV[H, T, S]{}, &ChannelError{Channel: "value", Value: float64(v)}
	}
	w := Wrap(h)
	if !angleInRange(w) { // a non-finite hue survives wrapping
		return HSV[H, T, S]{}, &ChannelError{Channel: "hue", Value: float64(h)}
	}
	return HSV[H, T, S]{H: w, S: s, V: v}.Normalize(), nil
}

// MustHSV is like [NewHSV] but panics on invalid components.
func MustHSV[S Space, H Angle, T Channel](h H, s, v T) HSV[H, T, S] {
	c, err := NewHSV[S](h, s, v)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize returns the canonical form of the color.
//
// Degeneracy is resolved on the raw values first, then the remaining
// components are brought into range: a color with zero value is canonical
// black (hue and saturation zeroed), a color with zero saturation is an
// achromatic grey (hue zeroed, value clamped), anything else keeps its
// components with the hue wrapped and saturation and value clamped.
func (c HSV[H, T, S]) Normalize() HSV[H, T, S] {
	var zero T
	switch {
	case c.V == zero:
		return HSV[H, T, S]{}
	case c.S == zero:
		return HSV[H, T, S]{V: Clamp(c.V)}
	default:
		return HSV[H, T, S]{H: Wrap(c.H), S: Clamp(c.S), V: Clamp(c.V)}
	}
}

// IsNormal reports whether the color is already canonical: all components
// in range and the degenerate forms carrying zero hue and saturation.
func (c HSV[H, T, S]) IsNormal() bool {
	if !angleInRange(c.H) || !InRange(c.S) || !InRange(c.V) {
		return false
	}
	var zeroH H
	var zero T
	if c.V == zero {
		return c.H == zeroH && c.S == zero
	}
	if c.S == zero {
		return c.H == zeroH
	}
	return true
}

// Components returns hue, saturation and value.
func (c HSV[H, T, S]) Components() (h H, s, v T) {
	return c.H, c.S, c.V
}

// RGB converts back to red/green/blue components.
//
// The hue selects one of six sectors of the RGB hexagon; chroma s·v and the
// intermediate component fan out across the sector. Inputs are assumed
// normalized (as every value built by this package is); the conversion runs
// on float32 fractions and scales back to T with rounding, which makes
// RGB→HSV→RGB the identity on 8-bit colors.
func (c HSV[H, T, S]) RGB() RGB[T, S] {
	h := float32(ConvAngle[Deg](c.H)) / 60
	s := Conv[float32](c.S)
	v := Conv[float32](c.V)

	chroma := s * v
	x := chroma * (1 - float32(math.Abs(math.Mod(float64(h), 2)-1)))
	m := v - chroma

	var r, g, b float32
	switch uint8(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		// Sectors 5 and 6. A wrapped hue converts to just under 360°, but
		// float rounding can land exactly on it, so 6 folds into 5.
		r, g, b = chroma, 0, x
	}
	return RGB[T, S]{Conv[T](r + m), Conv[T](g + m), Conv[T](b + m)}
}

// ConvHSV converts hue to representation H2 and saturation/value to
// representation T2, then normalizes.
func ConvHSV[H2 Angle, T2 Channel, H Angle, T Channel, S Space](c HSV[H, T, S]) HSV[H2, T2, S] {
	out := HSV[H2, T2, S]{
		H: ConvAngle[H2](c.H),
		S: Conv[T2](c.S),
		V: Conv[T2](c.V),
	}
	return out.Normalize()
}

// String formats hue in degrees and saturation/value as percentages in a
// fixed-width style: " 98.1°, 78.4%,100.0%".
func (c HSV[H, T, S]) String() string {
	hd := float64(ConvAngle[Deg](c.H))
	sp := Conv[float64](c.S) * 100
	vp := Conv[float64](c.V) * 100
	return fmt.Sprintf("%5.1f°,%5.1f%%,%5.1f%%", hd, sp, vp)
}
