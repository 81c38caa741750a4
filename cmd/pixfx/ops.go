package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/pixfx"
)

// errBadOp is returned for malformed entries in the -ops list.
var errBadOp = errors.New("pixfx: bad operation")

// step is one parsed operation, ready to run on a chain.
type step struct {
	name  string
	apply func(c *pixfx.Chainer) *pixfx.Chainer
}

// opParser turns the argument text after '=' into a step function.
type opParser func(arg string) (func(c *pixfx.Chainer) *pixfx.Chainer, error)

// noArg wraps an operation that takes no argument.
func noArg(fn func(c *pixfx.Chainer) *pixfx.Chainer) opParser {
	return func(arg string) (func(c *pixfx.Chainer) *pixfx.Chainer, error) {
		if arg != "" {
			return nil, fmt.Errorf("takes no argument, got %q", arg)
		}
		return fn, nil
	}
}

// floatArg wraps an operation with one numeric argument.
func floatArg(fn func(c *pixfx.Chainer, v float64) *pixfx.Chainer) opParser {
	return func(arg string) (func(c *pixfx.Chainer) *pixfx.Chainer, error) {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("want a number, got %q", arg)
		}
		return func(c *pixfx.Chainer) *pixfx.Chainer { return fn(c, v) }, nil
	}
}

// intArg wraps an operation with one integer argument.
func intArg(fn func(c *pixfx.Chainer, v int) *pixfx.Chainer) opParser {
	return func(arg string) (func(c *pixfx.Chainer) *pixfx.Chainer, error) {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("want an integer, got %q", arg)
		}
		return func(c *pixfx.Chainer) *pixfx.Chainer { return fn(c, v) }, nil
	}
}

// sizeArg parses WxH for resize.
func sizeArg(arg string) (func(c *pixfx.Chainer) *pixfx.Chainer, error) {
	ws, hs, ok := strings.Cut(arg, "x")
	if !ok {
		return nil, fmt.Errorf("want WIDTHxHEIGHT, got %q", arg)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil {
		return nil, fmt.Errorf("want WIDTHxHEIGHT, got %q", arg)
	}
	return func(c *pixfx.Chainer) *pixfx.Chainer { return c.Resize(w, h) }, nil
}

// operations maps case-folded operation names to their parsers.
var operations = map[string]opParser{
	"grayscale":      noArg((*pixfx.Chainer).Grayscale),
	"sepia":          noArg((*pixfx.Chainer).Sepia),
	"invert":         noArg((*pixfx.Chainer).Invert),
	"edgedetect":     noArg((*pixfx.Chainer).EdgeDetect),
	"fliphorizontal": noArg((*pixfx.Chainer).FlipHorizontal),
	"flipvertical":   noArg((*pixfx.Chainer).FlipVertical),
	"rotate90":       noArg((*pixfx.Chainer).Rotate90),
	"blur":           floatArg((*pixfx.Chainer).Blur),
	"sharpen":        floatArg((*pixfx.Chainer).Sharpen),
	"brightness":     intArg((*pixfx.Chainer).Brightness),
	"contrast":       intArg((*pixfx.Chainer).Contrast),
	"resize":         sizeArg,
}

// aliases are accepted alternative spellings.
var aliases = map[string]string{
	"gray":  "grayscale",
	"grey":  "grayscale",
	"edges": "edgedetect",
	"fliph": "fliphorizontal",
	"flipv": "flipvertical",
	"rot90": "rotate90",
}

// parseOps parses a comma-separated operation list such as
// "grayscale,blur=2.5,resize=320x200". Names are matched case-insensitively
// and may contain '-' or '_' separators.
func parseOps(list string) ([]step, error) {
	fold := cases.Fold()
	var steps []step

	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, arg, _ := strings.Cut(entry, "=")
		key := fold.String(strings.TrimSpace(name))
		key = strings.NewReplacer("-", "", "_", "").Replace(key)
		if alias, ok := aliases[key]; ok {
			key = alias
		}

		parse, ok := operations[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operation %q", errBadOp, name)
		}
		fn, err := parse(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errBadOp, key, err)
		}
		steps = append(steps, step{name: key, apply: fn})
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty operation list", errBadOp)
	}
	return steps, nil
}

// runSteps applies steps in order and returns the first error.
func runSteps(buf *pixfx.PixelBuffer, steps []step) error {
	c := pixfx.Chain(buf)
	for _, s := range steps {
		c = s.apply(c)
		if err := c.Err(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}
