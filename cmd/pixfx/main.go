// Command pixfx applies pixel filters to an image file.
//
// Usage:
//
//	pixfx -in photo.jpg -out result.png -ops "grayscale,blur=2,rotate90"
//
// Operations: grayscale, sepia, invert, brightness=N, contrast=N, blur=R,
// sharpen=A, edgedetect, fliphorizontal, flipvertical, rotate90,
// resize=WxH.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/pixfx"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
		out     = flag.String("out", "out.png", "output image (PNG, JPEG, BMP, TIFF)")
		ops     = flag.String("ops", "", "comma-separated operations, e.g. grayscale,blur=2")
		quality = flag.Int("quality", 90, "JPEG quality (1-100)")
		verbose = flag.Bool("v", false, "log every operation")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixfx.SetLogger(logger)

	if err := run(*in, *out, *ops, *quality, logger); err != nil {
		logger.Error("pixfx failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out, ops string, quality int, logger *slog.Logger) error {
	if in == "" {
		return fmt.Errorf("missing -in")
	}

	steps, err := parseOps(ops)
	if err != nil {
		return err
	}
	if _, err := encoderFor(filepath.Ext(out), quality); err != nil {
		return err
	}

	img, format, err := loadImage(in)
	if err != nil {
		return err
	}

	buf, err := pixfx.FromImage(img)
	if err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}
	logger.Debug("loaded", "path", in, "format", format, "width", buf.Width(), "height", buf.Height())

	if err := runSteps(buf, steps); err != nil {
		return err
	}

	if err := saveImage(out, buf.ToImage(), quality); err != nil {
		return err
	}

	logger.Info("saved", "path", out, "width", buf.Width(), "height", buf.Height(), "ops", len(steps))
	return nil
}
