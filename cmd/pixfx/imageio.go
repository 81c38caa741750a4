package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// errUnsupportedFormat is returned when the output extension has no encoder.
var errUnsupportedFormat = errors.New("pixfx: unsupported output format")

// loadImage decodes an image file, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// encoder writes an image in one output format.
type encoder func(w io.Writer, img image.Image) error

// encoderFor returns the encoder for the output extension ext (".png",
// ".jpg", ...).
func encoderFor(ext string, quality int) (encoder, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		quality = min(max(quality, 1), 100)
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}
}

// saveImage encodes img to path, choosing the encoder from the extension.
// The image is written to a temporary file in the same directory and renamed
// over path only once encoding succeeded, so an existing file at path is
// never truncated by a failed save.
func saveImage(path string, img image.Image, quality int) error {
	encode, err := encoderFor(filepath.Ext(path), quality)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	tmp := f.Name()
	_ = f.Chmod(0o644)

	if err := encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}
