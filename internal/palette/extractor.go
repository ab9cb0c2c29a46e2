// Package palette extracts a small, visually coherent color palette
// (background, primary, secondary, detail) from a bitmap image.
//
// The pipeline is deterministic and single-threaded: the image is
// downsampled, pixel frequencies are counted in two passes (a thin edge
// strip and the full frame), the edge counts pick a representative
// background color, and the remaining colors are filtered by polarity
// against the background and greedily assigned to the three accent
// slots. Every selection step is a total function with a defined
// fallback; the only failure mode is an image that cannot be
// rasterized.
package palette

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

// DefaultWidth is the downsample width used when no target size is
// given; the height follows from the source aspect ratio.
const DefaultWidth = 250

// Size is an explicit analysis size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Palette is the extracted color scheme. Background is always a color
// observed in the edge strip (or black for a degenerate strip); the
// three accent slots fall back to black or white, chosen by background
// darkness, when no qualifying candidate exists.
//
// When all three accents come from the image they are pairwise distinct
// and each contrasts with the background.
type Palette struct {
	Background colorutil.Color `json:"background"`
	Primary    colorutil.Color `json:"primary"`
	Secondary  colorutil.Color `json:"secondary"`
	Detail     colorutil.Color `json:"detail"`
}

// DecodeError reports that a source image could not be rasterized for
// analysis. It is the only error Extract returns; everything after
// rasterization has a defined fallback instead of a failure path.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "palette: cannot rasterize image: " + e.Reason
}

// Extract computes the palette of img.
//
// If size is nil, the image is downsampled to DefaultWidth wide with
// the aspect ratio preserved; otherwise it is resized to exactly the
// given size. The resize uses Lanczos resampling.
func Extract(img image.Image, size *Size) (*Palette, error) {
	if img == nil {
		return nil, &DecodeError{Reason: "nil image"}
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &DecodeError{Reason: fmt.Sprintf("empty image bounds %v", bounds)}
	}

	width, height := targetSize(bounds, size)
	if width <= 0 || height <= 0 {
		return nil, &DecodeError{Reason: fmt.Sprintf("degenerate target size %dx%d", width, height)}
	}

	edge, full, err := countPasses(imaging.Resize(img, width, height))
	if err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}

	background := selectBackground(edge, height)
	primary, secondary, detail := selectAccents(full, background)

	return &Palette{
		Background: background,
		Primary:    primary,
		Secondary:  secondary,
		Detail:     detail,
	}, nil
}

// countPasses rasterizes the resized image and runs the two counting
// passes. The pixel buffer never escapes this function, so it is
// collectable before selection runs and peak memory stays at one
// buffer per extraction.
func countPasses(resized image.Image) (edge, full *Counter, err error) {
	buf, err := imaging.Rasterize(resized)
	if err != nil {
		return nil, nil, err
	}

	edge = NewCounter()
	for y := 0; y < buf.Height; y++ {
		for x := stripLeft; x <= stripRight && x < buf.Width; x++ {
			edge.Add(buf.At(x, y))
		}
	}

	full = NewCounter()
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			full.Add(buf.At(x, y))
		}
	}

	return edge, full, nil
}

func targetSize(bounds image.Rectangle, size *Size) (width, height int) {
	if size != nil {
		return size.Width, size.Height
	}
	width = DefaultWidth
	height = int(math.Round(float64(DefaultWidth) * float64(bounds.Dy()) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	return width, height
}
