package palette

import (
	"image"
	"sort"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

// DominantColor pairs a color with its share of the analyzed pixels.
type DominantColor struct {
	Color      colorutil.Color
	Count      int
	Percentage float64
}

// Dominant returns the count most frequent colors of img in descending
// frequency order. Fewer entries come back when the image has fewer
// distinct colors. The image is analyzed at full resolution; callers
// wanting the downsampled view should resize first.
func Dominant(img image.Image, count int) ([]DominantColor, error) {
	buf, err := imaging.Rasterize(img)
	if err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}

	full := NewCounter()
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			full.Add(buf.At(x, y))
		}
	}

	total := full.Total()
	colors := full.Unique()
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Count > colors[j].Count
	})
	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}

	out := make([]DominantColor, 0, len(colors))
	for _, cc := range colors {
		out = append(out, DominantColor{
			Color:      cc.Color,
			Count:      cc.Count,
			Percentage: float64(cc.Count) / float64(total) * 100,
		})
	}
	return out, nil
}
