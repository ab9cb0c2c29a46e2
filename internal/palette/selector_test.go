package palette

import (
	"testing"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
)

func TestSelectAccents_LightBackground(t *testing.T) {
	// On a white background only dark candidates survive the polarity
	// filter, and slots are assigned in frequency order.
	red := colorutil.Color{R: 1, A: 1}          // luminance 0.2126
	blue := colorutil.Color{B: 1, A: 1}         // luminance 0.0722
	darkGreen := colorutil.Color{G: 0.4, A: 1}  // luminance 0.286
	lightYellow := colorutil.Color{R: 1, G: 1, B: 0.6, A: 1}

	ct := NewCounter()
	addN(ct, red, 400)
	addN(ct, blue, 300)
	addN(ct, darkGreen, 200)
	addN(ct, lightYellow, 500)

	primary, secondary, detail := selectAccents(ct, colorutil.White)

	if primary != red {
		t.Errorf("primary = %s, want red", primary.Hex())
	}
	if secondary != blue {
		t.Errorf("secondary = %s, want blue", secondary.Hex())
	}
	if detail != darkGreen {
		t.Errorf("detail = %s, want dark green", detail.Hex())
	}
}

func TestSelectAccents_InvariantsHold(t *testing.T) {
	bg := colorutil.White
	ct := NewCounter()
	addN(ct, colorutil.Color{R: 1, A: 1}, 400)
	addN(ct, colorutil.Color{B: 1, A: 1}, 300)
	addN(ct, colorutil.Color{G: 0.4, A: 1}, 200)

	primary, secondary, detail := selectAccents(ct, bg)

	for _, c := range []colorutil.Color{primary, secondary, detail} {
		if !c.ContrastsWith(bg) {
			t.Errorf("%s does not contrast with background", c.Hex())
		}
	}
	if !primary.DistinctFrom(secondary) || !primary.DistinctFrom(detail) || !secondary.DistinctFrom(detail) {
		t.Error("selected accents are not pairwise distinct")
	}
}

func TestSelectAccents_PolarityFilter(t *testing.T) {
	// A dark candidate on a dark background never qualifies, even with
	// overwhelming frequency.
	navy := colorutil.Color{B: 0.4, A: 1}

	ct := NewCounter()
	addN(ct, navy, 10000)

	primary, secondary, detail := selectAccents(ct, colorutil.Black)

	if primary != colorutil.White || secondary != colorutil.White || detail != colorutil.White {
		t.Errorf("got (%s, %s, %s), want white fallbacks",
			primary.Hex(), secondary.Hex(), detail.Hex())
	}
}

func TestSelectAccents_FallbackByBackgroundDarkness(t *testing.T) {
	empty := NewCounter()

	p, s, d := selectAccents(empty, colorutil.Black)
	if p != colorutil.White || s != colorutil.White || d != colorutil.White {
		t.Errorf("dark background: got (%s, %s, %s), want white", p.Hex(), s.Hex(), d.Hex())
	}

	p, s, d = selectAccents(empty, colorutil.White)
	if p != colorutil.Black || s != colorutil.Black || d != colorutil.Black {
		t.Errorf("light background: got (%s, %s, %s), want black", p.Hex(), s.Hex(), d.Hex())
	}
}

func TestSelectAccents_PartialFill(t *testing.T) {
	// A single qualifying color fills primary; the other slots fall
	// back to black on a light background.
	red := colorutil.Color{R: 1, A: 1}

	ct := NewCounter()
	addN(ct, red, 100)

	primary, secondary, detail := selectAccents(ct, colorutil.White)
	if primary != red {
		t.Errorf("primary = %s, want red", primary.Hex())
	}
	if secondary != colorutil.Black || detail != colorutil.Black {
		t.Errorf("unfilled slots = (%s, %s), want black", secondary.Hex(), detail.Hex())
	}
}

func TestSelectAccents_RejectsIndistinctSecondary(t *testing.T) {
	// A close shade of the primary cannot take the secondary slot; the
	// next distinct candidate does.
	red := colorutil.Color{R: 1, A: 1}
	nearRed := colorutil.Color{R: 0.9, G: 0.1, A: 1}
	blue := colorutil.Color{B: 1, A: 1}

	ct := NewCounter()
	addN(ct, red, 400)
	addN(ct, nearRed, 300)
	addN(ct, blue, 200)

	primary, secondary, _ := selectAccents(ct, colorutil.White)
	if primary != red {
		t.Fatalf("primary = %s, want red", primary.Hex())
	}
	if secondary != blue {
		t.Errorf("secondary = %s, want blue", secondary.Hex())
	}
}

func TestSelectAccents_SaturationClampChangesPolarity(t *testing.T) {
	// A washed-out near-white pixel is pulled to minimum saturation
	// before the polarity check, so it is judged in its clamped form.
	washed := colorutil.Color{R: 0.98, G: 0.98, B: 0.98, A: 1}

	ct := NewCounter()
	addN(ct, washed, 100)

	// Against a white background the clamped color is still light, so
	// nothing qualifies and the fallback is black.
	primary, _, _ := selectAccents(ct, colorutil.White)
	if primary != colorutil.Black {
		t.Errorf("primary = %s, want black fallback", primary.Hex())
	}
}
