// Package channel decomposes interleaved RGB bitmaps into single-channel
// images and builds the real-valued sample planes fed to the Fourier engine.
package channel

import (
	"fmt"

	"github.com/cwbudde/algo-imgfft/codec/bitmap"
	"github.com/cwbudde/algo-imgfft/dsp/core"
)

// ErrUnknown is returned by Parse for names outside red, green and blue.
var ErrUnknown = core.NewKind(core.ErrPrecondition, "channel: unknown channel")

// Channel identifies one color component.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// All returns the channels in processing order.
func All() []Channel {
	return []Channel{Red, Green, Blue}
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Parse maps a lower-case channel name to its Channel.
func Parse(name string) (Channel, error) {
	for _, c := range All() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Component returns the value of c in p.
func (c Channel) Component(p bitmap.Pixel) uint8 {
	switch c {
	case Red:
		return p.R
	case Green:
		return p.G
	case Blue:
		return p.B
	}
	return 0
}

// Isolate returns p with every component except c forced to zero.
func (c Channel) Isolate(p bitmap.Pixel) bitmap.Pixel {
	switch c {
	case Red:
		return bitmap.Pixel{R: p.R}
	case Green:
		return bitmap.Pixel{G: p.G}
	case Blue:
		return bitmap.Pixel{B: p.B}
	}
	return bitmap.Pixel{}
}

// Extract returns a copy of img keeping only component c. Dimensions and
// storage order are preserved.
func Extract(img *bitmap.Image, c Channel) *bitmap.Image {
	out := &bitmap.Image{
		Width:  img.Width,
		Height: img.Height,
		Pix:    make([]bitmap.Pixel, len(img.Pix)),
	}
	for i, p := range img.Pix {
		out.Pix[i] = c.Isolate(p)
	}
	return out
}

// Split returns the red, green and blue channel images of img in a single
// pass over its pixels.
func Split(img *bitmap.Image) (r, g, b *bitmap.Image) {
	n := len(img.Pix)
	r = &bitmap.Image{Width: img.Width, Height: img.Height, Pix: make([]bitmap.Pixel, n)}
	g = &bitmap.Image{Width: img.Width, Height: img.Height, Pix: make([]bitmap.Pixel, n)}
	b = &bitmap.Image{Width: img.Width, Height: img.Height, Pix: make([]bitmap.Pixel, n)}

	for i, p := range img.Pix {
		r.Pix[i] = bitmap.Pixel{R: p.R}
		g.Pix[i] = bitmap.Pixel{G: p.G}
		b.Pix[i] = bitmap.Pixel{B: p.B}
	}
	return r, g, b
}

// Samples flattens component c of every pixel, in storage order, into a
// complex sequence with zero imaginary parts.
func Samples(img *bitmap.Image, c Channel) []complex128 {
	out := make([]complex128, len(img.Pix))
	for i, p := range img.Pix {
		out[i] = complex(float64(c.Component(p)), 0)
	}
	return out
}
