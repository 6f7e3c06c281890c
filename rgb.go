package prism

import (
	"fmt"
	"math"
)

// RGB is a color with red, green and blue components, generic over the
// channel representation T and the color space S. The space parameter holds
// no data: it exists so that a gamma-encoded and a linear color with the
// same channel type are unrelated types, and code that needs linear input
// cannot receive encoded values.
type RGB[T Channel, S Space] struct {
	R, G, B T
}

// Aliases for the instantiations that cover ordinary use.
type (
	// SRGBColor is a gamma-encoded sRGB color with float32 channels in [0, 1].
	SRGBColor = RGB[float32, SRGBSpace]

	// SRGB24Color is the ordinary 24-bit screen color: gamma-encoded sRGB
	// with uint8 channels. Hex strings parse to this type.
	SRGB24Color = RGB[uint8, SRGBSpace]

	// LinRGBColor is a linear-light color with float32 channels in [0, 1].
	LinRGBColor = RGB[float32, LinearSpace]

	// LinRGB48Color is a linear-light color with uint16 channels. 16 bits
	// keep enough precision to hold decoded 8-bit sRGB losslessly.
	LinRGB48Color = RGB[uint16, LinearSpace]
)

// NewRGB builds a color from channel values, clamping each into range.
// The space comes first so it can be given alone and the channel type
// inferred: NewRGB[SRGBSpace](r, g, b). For the common instantiations use
// [SRGB], [SRGB24], [LinRGB], [LinRGB48].
func NewRGB[S Space, T Channel](r, g, b T) RGB[T, S] {
	return RGB[T, S]{Clamp(r), Clamp(g), Clamp(b)}
}

// SRGB builds a gamma-encoded float color, clamping each channel into [0, 1].
func SRGB(r, g, b float32) SRGBColor {
	return NewRGB[SRGBSpace](r, g, b)
}

// SRGB24 builds a 24-bit gamma-encoded color.
func SRGB24(r, g, b uint8) SRGB24Color {
	return NewRGB[SRGBSpace](r, g, b)
}

// LinRGB builds a linear float color, clamping each channel into [0, 1].
func LinRGB(r, g, b float32) LinRGBColor {
	return NewRGB[LinearSpace](r, g, b)
}

// LinRGB48 builds a 48-bit linear color.
func LinRGB48(r, g, b uint16) LinRGB48Color {
	return NewRGB[LinearSpace](r, g, b)
}

// Channels returns the components in red, green, blue order.
func (c RGB[T, S]) Channels() (r, g, b T) {
	return c.R, c.G, c.B
}

// Array returns the components as an array, for indexed access.
func (c RGB[T, S]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Map returns the color with f applied to every channel.
func (c RGB[T, S]) Map(f func(T) T) RGB[T, S] {
	return RGB[T, S]{f(c.R), f(c.G), f(c.B)}
}

// Normalize clamps every channel into the valid range.
func (c RGB[T, S]) Normalize() RGB[T, S] {
	return c.Map(Clamp[T])
}

// IsNormal reports whether every channel is in the valid range.
func (c RGB[T, S]) IsNormal() bool {
	return InRange(c.R) && InRange(c.G) && InRange(c.B)
}

// HSV converts the color to hue/saturation/value form with hue in degrees.
// For other hue representations use [ToHSV] directly.
func (c RGB[T, S]) HSV() HSV[Deg, T, S] {
	return ToHSV[Deg](c)
}

// String formats the channels in a fixed-width style suitable for tabular
// reports: "255, 128,   0" for 8-bit, "65535,32896,    0" for 16-bit,
// "  1.0,  0.5,  0.0" for floating point.
func (c RGB[T, S]) String() string {
	switch any(c.R).(type) {
	case uint8:
		return fmt.Sprintf("%3d, %3d, %3d", c.R, c.G, c.B)
	case uint16:
		return fmt.Sprintf("%5d,%5d,%5d", c.R, c.G, c.B)
	case uint32:
		return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
	default:
		return fmt.Sprintf("%5.1f,%5.1f,%5.1f", float64(c.R), float64(c.G), float64(c.B))
	}
}

// ConvRGB converts every channel to representation U, preserving the
// proportion of full intensity per channel. Widening (8 to 16 bit, integer
// to float) is lossless.
func ConvRGB[U, T Channel, S Space](c RGB[T, S]) RGB[U, S] {
	return RGB[U, S]{Conv[U](c.R), Conv[U](c.G), Conv[U](c.B)}
}

// ToHSV converts a color to hue/saturation/value form with hue
// representation H. The transform runs on float32 channel fractions
// regardless of T; saturation and value scale back to T with rounding.
//
// Hue is measured on the RGB hexagon: value is the largest channel,
// saturation the spread between largest and smallest relative to the
// largest. When channels tie for the maximum, red wins over green over blue,
// which pins the hue of secondary colors (yellow is 60°, not 180°).
func ToHSV[H Angle, T Channel, S Space](c RGB[T, S]) HSV[H, T, S] {
	r := Conv[float32](c.R)
	g := Conv[float32](c.G)
	b := Conv[float32](c.B)

	hi := max(r, g, b)
	lo := min(r, g, b)
	delta := hi - lo

	var s float32
	if hi > 0 {
		s = delta / hi
	}

	var hue float32
	switch {
	case delta == 0:
		hue = 0
	case hi == r:
		// Can be negative when blue exceeds green; the angle conversion
		// wraps it into canonical range.
		hue = 60 * float32(math.Mod(float64((g-b)/delta), 6))
	case hi == g:
		hue = 60 * ((b-r)/delta + 2)
	default:
		hue = 60 * ((r-g)/delta + 4)
	}

	out := HSV[H, T, S]{H: ConvAngle[H](Deg(hue)), S: Conv[T](s), V: Conv[T](hi)}
	return out.Normalize()
}

// Decode converts a gamma-encoded sRGB color to linear light by applying
// the sRGB EOTF per channel. Integer-channel colors convert to float first:
//
//	lin := prism.Decode(prism.ConvRGB[float32](c))
func Decode[T Float](c RGB[T, SRGBSpace]) RGB[T, LinearSpace] {
	return RGB[T, LinearSpace]{
		T(srgbDecode64(float64(c.R))),
		T(srgbDecode64(float64(c.G))),
		T(srgbDecode64(float64(c.B))),
	}
}

// Encode converts a linear-light color to gamma-encoded sRGB, the inverse
// of [Decode].
func Encode[T Float](c RGB[T, LinearSpace]) RGB[T, SRGBSpace] {
	return RGB[T, SRGBSpace]{
		T(srgbEncode64(float64(c.R))),
		T(srgbEncode64(float64(c.G))),
		T(srgbEncode64(float64(c.B))),
	}
}

// RelativeLuminance returns the CIE relative luminance of a linear color:
// 0.2126 R + 0.7152 G + 0.0722 B (Rec. 709 primaries). White is 1, black 0.
// The type system keeps gamma-encoded colors out; decode first.
func RelativeLuminance[T Float](c RGB[T, LinearSpace]) T {
	return T(0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B))
}

// Arithmetic is defined for linear space only; sums and products of
// gamma-encoded values mean nothing physical, so those do not compile.
// Results are clamped into channel range. Integer channels compute through
// float64, so intermediate overflow cannot occur.

// Add returns the component-wise sum of two linear colors, clamped.
func Add[T Channel](a, b RGB[T, LinearSpace]) RGB[T, LinearSpace] {
	return zipLinear(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the component-wise difference of two linear colors, clamped
// at zero.
func Sub[T Channel](a, b RGB[T, LinearSpace]) RGB[T, LinearSpace] {
	return zipLinear(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the component-wise product of two linear colors, clamped.
func Mul[T Channel](a, b RGB[T, LinearSpace]) RGB[T, LinearSpace] {
	return zipLinear(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns the component-wise quotient of two linear colors, clamped.
// A zero divisor saturates the channel (x/0 is +Inf, which clamps to max).
func Div[T Channel](a, b RGB[T, LinearSpace]) RGB[T, LinearSpace] {
	return zipLinear(a, b, func(x, y float64) float64 { return x / y })
}

// Scale returns the color with every channel multiplied by k, clamped.
// Integer channels round the result.
func Scale[T Channel](c RGB[T, LinearSpace], k float32) RGB[T, LinearSpace] {
	f := float64(k)
	return RGB[T, LinearSpace]{
		chanFromFloat[T](float64(c.R) * f),
		chanFromFloat[T](float64(c.G) * f),
		chanFromFloat[T](float64(c.B) * f),
	}
}

func zipLinear[T Channel](a, b RGB[T, LinearSpace], f func(x, y float64) float64) RGB[T, LinearSpace] {
	return RGB[T, LinearSpace]{
		chanFromFloat[T](f(float64(a.R), float64(b.R))),
		chanFromFloat[T](f(float64(a.G), float64(b.G))),
		chanFromFloat[T](f(float64(a.B), float64(b.B))),
	}
}
