// Package filter implements the pixel filters behind pixfx.
//
// Every function works on a raw RGBA8 slice (4 bytes per pixel, row-major,
// straight alpha) together with its width and height, and mutates it in
// place:
//   - Color matrices (grayscale, sepia, invert, brightness, contrast)
//   - Gaussian blur (separable, renormalized at the borders)
//   - Unsharp-mask sharpening
//   - Sobel edge detection
//
// Callers are expected to validate parameters first. The functions here
// assume len(data) == width*height*4 and do not allocate more than one
// scratch buffer per call.
package filter
