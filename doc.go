// Package pixfx provides in-place pixel processing for RGBA8 raster buffers.
//
// # Overview
//
// pixfx is a small, pure Go engine for the classic image adjustments:
// color filters, neighborhood filters and geometric transforms. It owns a
// single RGBA8 byte buffer and mutates it one operation at a time.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfx"
//
//	buf, err := pixfx.New(rgba, width, height)
//	if err != nil {
//	    return err
//	}
//	if err := buf.Blur(2); err != nil {
//	    return err
//	}
//	buf.Grayscale()
//	out := buf.Data()
//
// Or, fluently:
//
//	err := pixfx.Chain(buf).Grayscale().Blur(2).Rotate90().Err()
//
// # Operations
//
//   - Color: Grayscale, Sepia, Invert, Brightness, Contrast
//   - Neighborhood: Blur (separable Gaussian), Sharpen (unsharp mask),
//     EdgeDetect (Sobel)
//   - Geometry: FlipHorizontal, FlipVertical, Rotate90, Resize (nearest
//     neighbor)
//
// # Pixel Layout
//
// Data is RGBA8: 4 bytes per pixel in R, G, B, A order, row-major, origin at
// the top-left, straight (non-premultiplied) alpha. This matches
// image.NRGBA and HTML canvas ImageData. FromImage and ToImage convert to
// and from the standard library image types.
//
// # Errors
//
// Operations validate their parameters before touching the buffer. A
// rejected call returns an *InvalidParameterError (matching
// ErrInvalidParameter) and leaves the buffer byte-for-byte unchanged.
//
// # Concurrency
//
// All operations are synchronous. A PixelBuffer must not be mutated from
// several goroutines at once; Clone returns a fully independent copy.
package pixfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
