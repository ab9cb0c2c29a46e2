package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
)

// PixelBuffer is an owned, row-major rasterization of an image into
// normalized RGBA colors. It is created once per analysis pass and
// read-only afterwards.
type PixelBuffer struct {
	Width  int
	Height int
	pix    []colorutil.Color
}

// Rasterize converts img into a PixelBuffer with straight (non-
// premultiplied) alpha. It fails for nil images and for images with
// empty bounds; those are the only inputs that cannot be rasterized.
func Rasterize(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("cannot rasterize nil image")
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot rasterize image with empty bounds %v", bounds)
	}

	pix := make([]colorutil.Color, w*h)

	// Fast path for NRGBA, which is what Resize produces.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+w*4]
			for x := 0; x < w; x++ {
				pix[y*w+x] = colorutil.FromRGBA8(row[x*4], row[x*4+1], row[x*4+2], row[x*4+3])
			}
		}
		return &PixelBuffer{Width: w, Height: h, pix: pix}, nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pix[y*w+x] = colorutil.FromRGBA8(c.R, c.G, c.B, c.A)
		}
	}
	return &PixelBuffer{Width: w, Height: h, pix: pix}, nil
}

// At returns the color at (x, y). Coordinates outside the buffer return
// the zero Color, mirroring how image.Image behaves outside its bounds.
func (p *PixelBuffer) At(x, y int) colorutil.Color {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return colorutil.Color{}
	}
	return p.pix[y*p.Width+x]
}
