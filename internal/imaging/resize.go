package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales img to exactly width x height using Lanczos resampling.
// The aspect ratio is not preserved here; callers compute the target
// size themselves.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
