package palette

import (
	"sort"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
)

// Accent candidates are pulled toward at least this much saturation
// before filtering, so washed-out colors still land on the right side
// of the dark/light split.
const minAccentSaturation = 0.15

// selectAccents assigns the primary, secondary and detail colors from
// the full-image counts, judged against the chosen background.
//
// Candidates must sit on the opposite side of the dark/light split from
// the background. Survivors are ranked by frequency and assigned in a
// single greedy pass: primary is the first color contrasting with the
// background, secondary the first later color also distinct from
// primary, detail the first later color distinct from both. The greedy
// scan keeps the selected colors in decreasing frequency order and
// mutually distinct without any combinatorial search.
//
// Unfilled slots fall back to white on a dark background and black on a
// light one; no other fallback values are produced.
func selectAccents(full *Counter, background colorutil.Color) (primary, secondary, detail colorutil.Color) {
	darkBackground := background.IsDark()

	candidates := make([]CountedColor, 0, full.Len())
	for _, cc := range full.Unique() {
		c := cc.Color.ClampSaturation(minAccentSaturation)
		if c.IsDark() == darkBackground {
			continue
		}
		candidates = append(candidates, CountedColor{Color: c, Count: cc.Count})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Count > candidates[j].Count
	})

	var havePrimary, haveSecondary, haveDetail bool
	for _, cc := range candidates {
		c := cc.Color
		switch {
		case !havePrimary:
			if c.ContrastsWith(background) {
				primary, havePrimary = c, true
			}
		case !haveSecondary:
			if c.DistinctFrom(primary) && c.ContrastsWith(background) {
				secondary, haveSecondary = c, true
			}
		default:
			if c.DistinctFrom(primary) && c.DistinctFrom(secondary) && c.ContrastsWith(background) {
				detail, haveDetail = c, true
			}
		}
		if haveDetail {
			break
		}
	}

	fallback := colorutil.Black
	if darkBackground {
		fallback = colorutil.White
	}
	if !havePrimary {
		primary = fallback
	}
	if !haveSecondary {
		secondary = fallback
	}
	if !haveDetail {
		detail = fallback
	}
	return primary, secondary, detail
}
