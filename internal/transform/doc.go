// Package transform implements index-remapping operations on RGBA8 buffers:
// flips, 90° rotation and nearest-neighbor resampling.
//
// Flips mutate the slice in place. Rotate90 and Resize return a freshly
// allocated slice and never alias their input.
package transform
