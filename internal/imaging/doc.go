// Package imaging handles image loading, rasterization and pixel access
// for the palette tools.
//
// It sits between the standard image decoders and the analysis code:
// images are decoded (PNG, JPEG, GIF), optionally cached by path,
// downsampled with Lanczos resampling, and rasterized into an owned
// PixelBuffer of normalized RGBA colors that the palette package reads.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner; X grows rightward and Y grows downward. PixelBuffer
// coordinates always start at (0, 0) regardless of the source image's
// bounds.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. PixelBuffer is read-only after
// construction and each buffer is owned by a single extraction pass, so
// no locking is involved.
package imaging
