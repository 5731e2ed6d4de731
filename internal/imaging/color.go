package imaging

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex formats the color as lowercase "#rrggbb".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGBColor) String() string { return c.Hex() }

// OkLab returns the color's coordinates in the OkLab space.
//
// L ranges from 0 (black) to 1 (white); a and b are roughly within
// [-0.4, 0.4] for colors inside the sRGB gamut.
//
// # Conversion
//
// The sRGB transfer function comes from go-colorful. Linear RGB is mapped to
// LMS cone response and then to Lab with Björn Ottosson's published matrices
// for linear sRGB, without passing through XYZ. Every 8-bit color survives
// OkLab and FromOkLab unchanged.
func (c RGBColor) OkLab() (l, a, b float64) {
	lr, lg, lb := c.colorful().LinearRgb()

	lc := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	mc := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	sc := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, b
}

// FromOkLab converts OkLab coordinates back to 8-bit sRGB.
//
// Out-of-gamut values are clamped per channel to [0, 1] before being scaled
// and rounded to [0, 255].
func FromOkLab(l, a, b float64) RGBColor {
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	lr := 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	lg := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	lb := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc

	r, g, bl := colorful.LinearRgb(lr, lg, lb).Clamped().RGB255()
	return RGBColor{R: r, G: g, B: bl}
}

func (c RGBColor) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
