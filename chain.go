package pixfx

// Chainer applies operations to a PixelBuffer in a fluent style:
//
//	err := pixfx.Chain(buf).Grayscale().Blur(2).Rotate90().Err()
//
// The first failing call is remembered and every later call is skipped, so
// the buffer reflects exactly the operations that preceded the failure.
type Chainer struct {
	buf *PixelBuffer
	err error
}

// Chain returns a Chainer operating on b.
func Chain(b *PixelBuffer) *Chainer {
	return &Chainer{buf: b}
}

// Err returns the first error encountered, or nil.
func (c *Chainer) Err() error {
	return c.err
}

// Buffer returns the underlying buffer.
func (c *Chainer) Buffer() *PixelBuffer {
	return c.buf
}

func (c *Chainer) do(op func() error) *Chainer {
	if c.err == nil {
		c.err = op()
	}
	return c
}

func (c *Chainer) run(op func()) *Chainer {
	if c.err == nil {
		op()
	}
	return c
}

// Grayscale calls PixelBuffer.Grayscale.
func (c *Chainer) Grayscale() *Chainer { return c.run(c.buf.Grayscale) }

// Sepia calls PixelBuffer.Sepia.
func (c *Chainer) Sepia() *Chainer { return c.run(c.buf.Sepia) }

// Invert calls PixelBuffer.Invert.
func (c *Chainer) Invert() *Chainer { return c.run(c.buf.Invert) }

// EdgeDetect calls PixelBuffer.EdgeDetect.
func (c *Chainer) EdgeDetect() *Chainer { return c.run(c.buf.EdgeDetect) }

// FlipHorizontal calls PixelBuffer.FlipHorizontal.
func (c *Chainer) FlipHorizontal() *Chainer { return c.run(c.buf.FlipHorizontal) }

// FlipVertical calls PixelBuffer.FlipVertical.
func (c *Chainer) FlipVertical() *Chainer { return c.run(c.buf.FlipVertical) }

// Rotate90 calls PixelBuffer.Rotate90.
func (c *Chainer) Rotate90() *Chainer { return c.run(c.buf.Rotate90) }

// Brightness calls PixelBuffer.Brightness.
func (c *Chainer) Brightness(amount int) *Chainer {
	return c.do(func() error { return c.buf.Brightness(amount) })
}

// Contrast calls PixelBuffer.Contrast.
func (c *Chainer) Contrast(amount int) *Chainer {
	return c.do(func() error { return c.buf.Contrast(amount) })
}

// Blur calls PixelBuffer.Blur.
func (c *Chainer) Blur(radius float64) *Chainer {
	return c.do(func() error { return c.buf.Blur(radius) })
}

// Sharpen calls PixelBuffer.Sharpen.
func (c *Chainer) Sharpen(amount float64) *Chainer {
	return c.do(func() error { return c.buf.Sharpen(amount) })
}

// Resize calls PixelBuffer.Resize.
func (c *Chainer) Resize(newWidth, newHeight int) *Chainer {
	return c.do(func() error { return c.buf.Resize(newWidth, newHeight) })
}
