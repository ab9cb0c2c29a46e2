// Package colorutil provides the color value type and the perceptual
// predicates used throughout palette extraction.
//
// Colors are immutable RGBA quadruples with each channel normalized to
// [0, 1]. For counting and map keys, colors are quantized to 8 bits per
// channel so that floating-point noise never splits one visual color into
// many keys.
//
// # Predicates
//
// Three predicates drive palette selection:
//
//   - IsDark: relative luminance below 0.5 (ITU-R BT.709 weights)
//   - DistinctFrom: perceptual difference with near-gray suppression
//   - ContrastsWith: WCAG-style contrast ratio above 1.6
//
// # Lenient hex parsing
//
// ParseHex never fails. Malformed input yields a transparent white
// sentinel instead of an error; callers needing strict validation must
// pre-validate length and charset themselves.
package colorutil

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Channels above this on all three components count as near-white.
	nearWhiteFloor = 0.91

	// Channels below this on all three components count as near-black.
	nearBlackCeil = 0.09

	// Minimum per-channel gap before two colors can be distinct.
	distinctGap = 0.25

	// A color whose channels span less than this is treated as gray.
	graySpan = 0.03

	// Minimum contrast ratio for two colors to count as contrasting.
	contrastThreshold = 1.6
)

// Color is an immutable RGBA color. Each channel is a normalized scalar;
// operations that offset channels may push values outside [0, 1] and the
// overflow is passed through uncorrected.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common fallback values.
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}

	// TransparentWhite is the sentinel returned for malformed hex input.
	TransparentWhite = Color{R: 1, G: 1, B: 1, A: 0}
)

// FromRGBA8 builds a Color from 8-bit channel values.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// ParseHex parses a hex color string into an opaque Color.
//
// An optional leading "#" is accepted, followed by exactly 3 or 6 hex
// digits. The 3-digit form expands each digit d to dd, so "abc" parses
// the same as "aabbcc". Any other length, or any non-hex digit, yields
// TransparentWhite rather than an error.
func ParseHex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded[:])
	case 6:
	default:
		return TransparentWhite
	}

	var v uint32
	for i := 0; i < 6; i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return TransparentWhite
		}
		v = v<<4 | uint32(d)
	}
	return FromRGBA8(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex formats the color as "#RRGGBB" with uppercase digits. Alpha is not
// encoded.
func (c Color) Hex() string {
	return "#" + c.RawHex()
}

// RawHex formats the color as "RRGGBB" without the leading "#".
func (c Color) RawHex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// RGBA8 returns the channels rounded to 8-bit values. Channels outside
// [0, 1] are clipped so the result stays representable.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return quant8(c.R), quant8(c.G), quant8(c.B), quant8(c.A)
}

func quant8(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Key returns the 8-bit quantized value of the color packed into a
// uint32, suitable as a map key for frequency counting.
func (c Color) Key() uint32 {
	r, g, b, a := c.RGBA8()
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// FromKey reverses Key.
func FromKey(k uint32) Color {
	return FromRGBA8(uint8(k>>24), uint8(k>>16), uint8(k>>8), uint8(k))
}

// Luminance returns the relative luminance using ITU-R BT.709 weights:
// 0.2126 R + 0.7152 G + 0.0722 B.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// IsDark reports whether the relative luminance is below 0.5.
func (c Color) IsDark() bool {
	return c.Luminance() < 0.5
}

// IsBlackOrWhite reports whether the color is near-white (all channels
// above 0.91) or near-black (all channels below 0.09).
func (c Color) IsBlackOrWhite() bool {
	if c.R > nearWhiteFloor && c.G > nearWhiteFloor && c.B > nearWhiteFloor {
		return true
	}
	return c.R < nearBlackCeil && c.G < nearBlackCeil && c.B < nearBlackCeil
}

// DistinctFrom reports whether two colors read as visually different.
//
// The colors are distinct when any channel differs by more than 0.25,
// unless both colors are individually near-gray: two grays are never
// distinct regardless of how far apart their shades sit. Without that
// suppression a light gray and a dark gray would pass the channel test
// and claim two palette slots.
func (c Color) DistinctFrom(o Color) bool {
	apart := math.Abs(c.R-o.R) > distinctGap ||
		math.Abs(c.G-o.G) > distinctGap ||
		math.Abs(c.B-o.B) > distinctGap
	if !apart {
		return false
	}
	if c.isGray() && o.isGray() {
		return false
	}
	return true
}

func (c Color) isGray() bool {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	return hi-lo < graySpan
}

// ContrastsWith reports whether the contrast ratio against o exceeds 1.6.
func (c Color) ContrastsWith(o Color) bool {
	return ContrastRatio(c, o) > contrastThreshold
}

// ContrastRatio computes the WCAG-style contrast ratio
// (L1 + 0.05) / (L2 + 0.05) with L1 >= L2, using BT.709 relative
// luminance. Symmetric in its arguments.
func ContrastRatio(a, b Color) float64 {
	l1, l2 := a.Luminance(), b.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// HSB returns the hue (degrees), saturation and brightness of the color.
func (c Color) HSB() (h, s, b float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
}

// ClampSaturation returns the color with its saturation raised to at
// least min. Hue, brightness and alpha are unchanged; colors already at
// or above min are returned as-is.
func (c Color) ClampSaturation(min float64) Color {
	h, s, v := c.HSB()
	if s >= min {
		return c
	}
	cc := colorful.Hsv(h, min, v)
	return Color{R: cc.R, G: cc.G, B: cc.B, A: c.A}
}

// AddHSB returns the color offset componentwise in HSB space. Offsets
// are not clamped; out-of-range saturation or brightness passes straight
// into the conversion.
func (c Color) AddHSB(dh, ds, db float64) Color {
	h, s, v := c.HSB()
	cc := colorful.Hsv(h+dh, s+ds, v+db)
	return Color{R: cc.R, G: cc.G, B: cc.B, A: c.A}
}

// AddRGB returns the color offset componentwise in RGB space. Offsets
// are not clamped.
func (c Color) AddRGB(dr, dg, db float64) Color {
	return Color{R: c.R + dr, G: c.G + dg, B: c.B + db, A: c.A}
}
