package palette

import (
	"fmt"
	"strings"

	"github.com/goprism/prism"
)

// An Info wraps a color for display in palette reports. Its String method
// renders the byte sRGB triple, the HSV form, the relative luminance as a
// percentage and the shade classification sentence:
//
//	sRGB: (244,  67,  54), HSV: (  4.1°, 77.9%, 95.7%), lum:  24%, is a shade of red.
type Info struct {
	Color prism.SRGB24Color
}

func (i Info) String() string {
	f := prism.ConvRGB[float32](i.Color)
	hsv := prism.ToHSV[prism.Deg](f)
	lum := prism.RelativeLuminance(prism.Decode(f))

	var b strings.Builder
	fmt.Fprintf(&b, "sRGB: (%s), HSV: (%s), lum: %3.0f%%, ", i.Color, hsv, 100*lum)
	writeShadeSentence(&b, prism.Shades(f))
	return b.String()
}

// writeShadeSentence writes "is a shade of red." for a single shade and
// "is shades of green and yellow." for several, joining three or more with
// commas before the final "and".
func writeShadeSentence(b *strings.Builder, shades []prism.Shade) {
	if len(shades) == 1 {
		b.WriteString("is a shade of")
	} else {
		b.WriteString("is shades of")
	}
	for i, s := range shades {
		switch {
		case i == len(shades)-1:
			fmt.Fprintf(b, " %s.", s.Base)
		case i == len(shades)-2:
			fmt.Fprintf(b, " %s and", s.Base)
		default:
			fmt.Fprintf(b, " %s,", s.Base)
		}
	}
}
