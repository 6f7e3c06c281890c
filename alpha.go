package prism

// Color is the constraint shared by the color value types: anything that can
// restore and report its canonical form. RGB and HSV instantiations satisfy
// it, which lets [Alpha] wrap either.
type Color[C any] interface {
	Normalize() C
	IsNormal() bool
}

// Alpha pairs a color with a straight (non-premultiplied) alpha channel.
// Alpha measures coverage, not light: it is never gamma-encoded, and the
// color components are not scaled by it. The zero value is fully
// transparent black.
type Alpha[C Color[C], A Channel] struct {
	Color C
	Alpha A
}

// Aliases for the alpha-carrying forms of the common instantiations.
type (
	// SRGBAColor is a gamma-encoded float color with alpha.
	SRGBAColor = Alpha[SRGBColor, float32]

	// SRGBA24Color is a 24-bit sRGB color with an 8-bit alpha channel,
	// the form of "RRGGBBAA" hex strings.
	SRGBA24Color = Alpha[SRGB24Color, uint8]

	// LinRGBAColor is a linear float color with alpha, the working type of
	// the compositing operators.
	LinRGBAColor = Alpha[LinRGBColor, float32]

	// LinRGBA48Color is a 48-bit linear color with a 16-bit alpha channel.
	LinRGBA48Color = Alpha[LinRGB48Color, uint16]
)

// NewAlpha pairs a color with an alpha value, clamping alpha into channel
// range. The color part is taken as built; the concrete constructors
// ([SRGBA] and friends) clamp their components already.
func NewAlpha[C Color[C], A Channel](c C, a A) Alpha[C, A] {
	return Alpha[C, A]{Color: c, Alpha: Clamp(a)}
}

// Opaque wraps a color with full coverage. The alpha representation comes
// first so it can be given alone: Opaque[float32](c).
func Opaque[A Channel, C Color[C]](c C) Alpha[C, A] {
	return Alpha[C, A]{Color: c, Alpha: ChannelMax[A]()}
}

// SRGBA builds a gamma-encoded float color with alpha, clamping every
// component into [0, 1].
func SRGBA(r, g, b, a float32) SRGBAColor {
	return NewAlpha(SRGB(r, g, b), a)
}

// SRGBA24 builds a 32-bit sRGB color with alpha.
func SRGBA24(r, g, b, a uint8) SRGBA24Color {
	return NewAlpha(SRGB24(r, g, b), a)
}

// LinRGBA builds a linear float color with alpha, clamping every component
// into [0, 1].
func LinRGBA(r, g, b, a float32) LinRGBAColor {
	return NewAlpha(LinRGB(r, g, b), a)
}

// LinRGBA48 builds a 64-bit linear color with alpha.
func LinRGBA48(r, g, b, a uint16) LinRGBA48Color {
	return NewAlpha(LinRGB48(r, g, b), a)
}

// Normalize returns the color with the color part normalized and alpha
// clamped.
func (a Alpha[C, A]) Normalize() Alpha[C, A] {
	return Alpha[C, A]{Color: a.Color.Normalize(), Alpha: Clamp(a.Alpha)}
}

// IsNormal reports whether the color part is canonical and alpha in range.
func (a Alpha[C, A]) IsNormal() bool {
	return a.Color.IsNormal() && InRange(a.Alpha)
}

// IsOpaque reports whether alpha is at the channel maximum.
func (a Alpha[C, A]) IsOpaque() bool {
	return a.Alpha == ChannelMax[A]()
}

// IsTransparent reports whether alpha is zero.
func (a Alpha[C, A]) IsTransparent() bool {
	var zero A
	return a.Alpha == zero
}

// AlphaHSV converts the color part to hue/saturation/value form, keeping
// the alpha channel untouched.
func AlphaHSV[H Angle, T, A Channel, S Space](a Alpha[RGB[T, S], A]) Alpha[HSV[H, T, S], A] {
	return Alpha[HSV[H, T, S], A]{Color: ToHSV[H](a.Color), Alpha: a.Alpha}
}

// AlphaRGB converts the color part back to red/green/blue form, keeping
// the alpha channel untouched.
func AlphaRGB[H Angle, T, A Channel, S Space](a Alpha[HSV[H, T, S], A]) Alpha[RGB[T, S], A] {
	return Alpha[RGB[T, S], A]{Color: a.Color.RGB(), Alpha: a.Alpha}
}

// DecodeAlpha gamma-decodes the color part. Alpha is coverage and has no
// gamma; it passes through unchanged.
func DecodeAlpha[T Float, A Channel](a Alpha[RGB[T, SRGBSpace], A]) Alpha[RGB[T, LinearSpace], A] {
	return Alpha[RGB[T, LinearSpace], A]{Color: Decode(a.Color), Alpha: a.Alpha}
}

// EncodeAlpha gamma-encodes the color part, the inverse of [DecodeAlpha].
func EncodeAlpha[T Float, A Channel](a Alpha[RGB[T, LinearSpace], A]) Alpha[RGB[T, SRGBSpace], A] {
	return Alpha[RGB[T, SRGBSpace], A]{Color: Encode(a.Color), Alpha: a.Alpha}
}

// ConvAlpha converts the channel representations of both parts: the color
// channels to U and the alpha channel to B.
func ConvAlpha[U, B, T, A Channel, S Space](a Alpha[RGB[T, S], A]) Alpha[RGB[U, S], B] {
	return Alpha[RGB[U, S], B]{Color: ConvRGB[U](a.Color), Alpha: Conv[B](a.Alpha)}
}
