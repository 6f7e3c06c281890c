// Package prism provides color representation and conversion for Go.
//
// # Overview
//
// prism models colors as small value types that are generic over two axes:
// the channel representation (8/16/32-bit integer or floating point) and the
// color space (gamma-encoded sRGB or linear RGB). The space is a phantom type
// parameter, so mixing spaces — averaging gamma-encoded values, blending in
// sRGB, taking the luminance of an encoded color — is a compile error rather
// than a subtle rendering bug.
//
// # Quick Start
//
//	import "github.com/goprism/prism"
//
//	// Parse an 8-bit sRGB color and inspect it.
//	c, err := prism.ParseHex("#ff8000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hsv := c.HSV()
//
//	// Physically meaningful math happens in linear space.
//	lin := prism.Decode(prism.ConvRGB[float32](c))
//	lum := prism.RelativeLuminance(lin)
//
//	// Classify into named shades: "orange-ish" colors report red+yellow.
//	shades := prism.Shades(prism.ConvRGB[float32](c))
//
// # Color Spaces
//
// Two spaces are distinguished at the type level:
//   - [SRGBSpace]: gamma-encoded sRGB, the encoding of ordinary 24-bit colors.
//   - [LinearSpace]: linear light, where blending and luminance are meaningful.
//
// [Decode] and [Encode] move between them using the standard sRGB transfer
// function (IEC 61966-2-1). Arithmetic and blending are only defined for
// linear colors; there is deliberately no way to add two sRGB-space colors.
//
// # Representations
//
// Channel types convert with [Conv] by scaling through the full range with
// rounding, so widening and narrowing back is lossless. Hue channels are
// angle types ([Deg], [Rad], [Rev], [Rev8]) that wrap instead of clamping.
//
// Common instantiations have aliases: [SRGBColor], [SRGB24Color],
// [LinRGBColor], [LinRGB48Color], [StdHSVColor], and their alpha-carrying
// variants such as [SRGBAColor].
//
// # Concurrency
//
// All color types are immutable values; every operation returns a new value.
// The package is safe for concurrent use without synchronization.
package prism

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
