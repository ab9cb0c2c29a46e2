package palette

import (
	"sort"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
)

// The background proxy strip: a thin vertical band near the left edge,
// columns 5 through 10 inclusive over every row. The assumption is that
// the subject of the image is framed away from the left edge, so this
// band is dominated by background pixels.
const (
	stripLeft  = 5
	stripRight = 10
)

// A black-or-white leader only keeps the background slot if no colored
// runner-up reaches this share of its count.
const edgeReplaceRatio = 0.3

// selectBackground picks the dominant edge-strip color.
//
// Strip colors are admitted as candidates when their count reaches 1%
// of the image height (floor), then ranked by count. The leader wins
// unless it is near-black or near-white, in which case the first
// colored candidate with more than 30% of the leader's count takes its
// place. An empty strip falls back to black.
func selectBackground(edge *Counter, imageHeight int) colorutil.Color {
	threshold := imageHeight / 100

	candidates := make([]CountedColor, 0, edge.Len())
	for _, cc := range edge.Unique() {
		if cc.Count >= threshold {
			candidates = append(candidates, cc)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Count > candidates[j].Count
	})

	proposed := CountedColor{Color: colorutil.Black, Count: 1}
	if len(candidates) > 0 {
		proposed = candidates[0]
	}

	if proposed.Color.IsBlackOrWhite() && len(candidates) > 1 {
		for _, next := range candidates[1:] {
			// Candidates are sorted, so once the ratio drops below the
			// cutoff nothing later can pass it.
			if float64(next.Count)/float64(proposed.Count) <= edgeReplaceRatio {
				break
			}
			if !next.Color.IsBlackOrWhite() {
				proposed = next
				break
			}
		}
	}

	return proposed.Color
}
