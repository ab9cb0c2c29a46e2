package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
)

// RGBA8 holds 8-bit color components with alpha.
type RGBA8 struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSB holds a hue/saturation/brightness triple. Hue is in degrees
// (0-360), saturation and brightness in [0, 1].
type HSB struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	B float64 `json:"b"`
}

// ColorResult reports one color in the formats callers commonly need:
// a "#RRGGBB" hex string (alpha excluded), 8-bit RGBA components, and
// an HSB triple.
type ColorResult struct {
	Hex  string `json:"hex"`
	RGBA RGBA8  `json:"rgba"`
	HSB  HSB    `json:"hsb"`
}

// Describe converts a color into its multi-format representation.
func Describe(c colorutil.Color) ColorResult {
	r, g, b, a := c.RGBA8()
	h, s, v := c.HSB()
	return ColorResult{
		Hex:  c.Hex(),
		RGBA: RGBA8{R: r, G: g, B: b, A: a},
		HSB:  HSB{H: h, S: s, B: v},
	}
}

// SampleColor reads the color at pixel (x, y) of img. Coordinates are
// 0-based from the top-left corner; out-of-bounds coordinates are an
// error.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	result := Describe(colorutil.FromRGBA8(c.R, c.G, c.B, c.A))
	return &result, nil
}
