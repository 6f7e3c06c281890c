package prism

// BaseColor is one of the nine basic colors: the six rainbow hues plus the
// black/grey/white greyscale anchors. They serve as named construction
// points and as the vocabulary of the shade classifier.
type BaseColor uint8

const (
	Black BaseColor = iota
	Grey
	White
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
)

var baseColorNames = [...]string{
	"black", "grey", "white", "red", "yellow",
	"green", "cyan", "blue", "magenta",
}

// String returns the lowercase English name of the color.
func (b BaseColor) String() string {
	if int(b) < len(baseColorNames) {
		return baseColorNames[b]
	}
	return "unknown"
}

// SRGB24 returns the reference 24-bit sRGB value. Grey sits at byte 128;
// every other representation derives from this table by conversion.
func (b BaseColor) SRGB24() SRGB24Color {
	switch b {
	case Grey:
		return SRGB24Color{128, 128, 128}
	case White:
		return SRGB24Color{255, 255, 255}
	case Red:
		return SRGB24Color{255, 0, 0}
	case Yellow:
		return SRGB24Color{255, 255, 0}
	case Green:
		return SRGB24Color{0, 255, 0}
	case Cyan:
		return SRGB24Color{0, 255, 255}
	case Blue:
		return SRGB24Color{0, 0, 255}
	case Magenta:
		return SRGB24Color{255, 0, 255}
	default:
		return SRGB24Color{}
	}
}

// SRGB returns the gamma-encoded float form.
func (b BaseColor) SRGB() SRGBColor { return BaseSRGB[float32](b) }

// LinRGB returns the linear-light float form.
func (b BaseColor) LinRGB() LinRGBColor { return BaseLinear[float32](b) }

// LinRGB48 returns the linear-light 48-bit form.
func (b BaseColor) LinRGB48() LinRGB48Color { return BaseLinear[uint16](b) }

// HSV returns the nominal hue/saturation/value form. Grey's value is the
// nominal 0.5 here, not the 128/255 its byte form converts to.
func (b BaseColor) HSV() StdHSVColor {
	switch b {
	case Grey:
		return StdHSVColor{V: 0.5}
	case White:
		return StdHSVColor{V: 1}
	case Red:
		return StdHSVColor{S: 1, V: 1}
	case Yellow:
		return StdHSVColor{H: 60, S: 1, V: 1}
	case Green:
		return StdHSVColor{H: 120, S: 1, V: 1}
	case Cyan:
		return StdHSVColor{H: 180, S: 1, V: 1}
	case Blue:
		return StdHSVColor{H: 240, S: 1, V: 1}
	case Magenta:
		return StdHSVColor{H: 300, S: 1, V: 1}
	default:
		return StdHSVColor{}
	}
}

// BaseSRGB builds the reference color in any gamma-encoded channel
// representation, converted from the 24-bit table.
func BaseSRGB[T Channel](b BaseColor) RGB[T, SRGBSpace] {
	return ConvRGB[T](b.SRGB24())
}

// BaseLinear builds the reference color in any linear-light channel
// representation, decoding the 24-bit table through float64.
func BaseLinear[T Channel](b BaseColor) RGB[T, LinearSpace] {
	return ConvRGB[T](Decode(ConvRGB[float64](b.SRGB24())))
}
