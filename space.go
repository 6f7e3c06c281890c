package prism

import "math"

// SRGBSpace tags colors whose channel values are gamma-encoded per the sRGB
// transfer function (IEC 61966-2-1). This is the encoding of ordinary 24-bit
// screen colors and hex strings.
//
// The space types carry no data; they exist only as type parameters, so that
// sRGB and linear colors are distinct types and cannot be mixed by accident.
type SRGBSpace struct{}

// LinearSpace tags colors whose channel values are proportional to light
// intensity. Blending, component arithmetic and relative luminance are only
// defined in this space.
type LinearSpace struct{}

// Space is the constraint satisfied by the color space tags.
type Space interface {
	SRGBSpace | LinearSpace
}

// StdGamma is the exponent of the power segment of the sRGB transfer
// function.
const StdGamma = 2.4

// SRGBToLinear converts one gamma-encoded sRGB component to linear light
// (the sRGB EOTF). Components at or below 0.04045 are on the linear toe
// segment; the rest go through the power curve. Input and output are
// fractions in [0, 1].
func SRGBToLinear(s float32) float32 {
	return float32(srgbDecode64(float64(s)))
}

// LinearToSRGB converts one linear-light component to gamma-encoded sRGB
// (the sRGB OETF), the inverse of [SRGBToLinear]. Components at or below
// 0.0031308 are on the linear toe segment.
func LinearToSRGB(l float32) float32 {
	return float32(srgbEncode64(float64(l)))
}

// srgbDecode64 is the transfer function core, shared by the scalar helpers
// and the generic color-level [Decode].
func srgbDecode64(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, StdGamma)
}

func srgbEncode64(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/StdGamma) - 0.055
}
