package bitmap

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/cwbudde/algo-imgfft/dsp/core"
	"github.com/cwbudde/algo-imgfft/internal/atomicfile"
)

var (
	ErrOpen        = core.NewKind(core.ErrIO, "bitmap: cannot open file")
	ErrShortHeader = core.NewKind(core.ErrFormat, "bitmap: short header")
	ErrTruncated   = core.NewKind(core.ErrFormat, "bitmap: truncated pixel data")
	ErrDimensions  = core.NewKind(core.ErrFormat, "bitmap: invalid dimensions")
	ErrUnsupported = core.NewKind(core.ErrFormat, "bitmap: unsupported variant")
	ErrTooLarge    = core.NewKind(core.ErrAllocation, "bitmap: image too large")
	ErrPixelCount  = core.NewKind(core.ErrPrecondition, "bitmap: pixel count does not match dimensions")
)

// DefaultMaxPixels bounds the pixel buffer Decode is willing to allocate.
const DefaultMaxPixels = 1 << 28

// Pixel is one on-disk triple. Field order is the storage order.
type Pixel struct {
	B, G, R uint8
}

// Image is a decoded bitmap. Pix holds Width*|Height| pixels in storage
// order: bottom row first when Height > 0, top row first when Height < 0.
type Image struct {
	Width  int32
	Height int32
	Pix    []Pixel
}

// New returns a zeroed image of the given size. A negative width is
// clamped to zero, giving an empty image.
func New(width, height int32) *Image {
	img := &Image{Width: max(width, 0), Height: height}
	if n, err := pixelCount(img.Width, height, 0); err == nil {
		img.Pix = make([]Pixel, n)
	}
	return img
}

// Rows returns |Height|.
func (m *Image) Rows() int {
	if m.Height < 0 {
		return -int(m.Height)
	}
	return int(m.Height)
}

// Len returns the number of pixels the dimensions declare.
func (m *Image) Len() int {
	return int(m.Width) * m.Rows()
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(m.Width), m.Rows())
}

// At implements image.Image with y increasing downwards, independent of the
// storage order.
func (m *Image) At(x, y int) color.Color {
	i := m.PixOffset(x, y)
	if i < 0 {
		return color.RGBA{}
	}
	p := m.Pix[i]
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// PixOffset returns the index into Pix of the pixel at (x, y) in display
// coordinates, or -1 when the point is outside the image.
func (m *Image) PixOffset(x, y int) int {
	rows := m.Rows()
	if x < 0 || y < 0 || x >= int(m.Width) || y >= rows {
		return -1
	}
	row := y
	if m.Height > 0 {
		row = rows - 1 - y
	}
	i := row*int(m.Width) + x
	if i >= len(m.Pix) {
		return -1
	}
	return i
}

// FromImage converts any image.Image into a bottom-up Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := New(int32(b.Dx()), int32(b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			m.Pix[m.PixOffset(x, y)] = Pixel{B: c.B, G: c.G, R: c.R}
		}
	}
	return m
}

type decodeConfig struct {
	maxPixels int
}

// Option configures decoding.
type Option func(*decodeConfig)

// WithMaxPixels overrides DefaultMaxPixels. Non-positive values are ignored.
func WithMaxPixels(n int) Option {
	return func(cfg *decodeConfig) {
		if n > 0 {
			cfg.maxPixels = n
		}
	}
}

func pixelCount(width, height int32, limit int) (int, error) {
	if width < 0 {
		return 0, fmt.Errorf("%w: width %d", ErrDimensions, width)
	}

	rows := int64(height)
	if rows < 0 {
		rows = -rows
	}

	n, ok := core.MulChecked(int(width), int(rows))
	if !ok || (limit > 0 && n > limit) {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	if _, ok := core.MulChecked(n, PixelSize); !ok {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	return n, nil
}

// Decode reads both headers and the pixel array from r. Pixel data is read
// immediately after the info header.
func Decode(r io.Reader, opts ...Option) (*Image, error) {
	return decode(r, newDecodeConfig(opts), -1)
}

func newDecodeConfig(opts []Option) decodeConfig {
	cfg := decodeConfig{maxPixels: DefaultMaxPixels}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// decode reads the pixel array into a buffer that grows with the bytes
// read. size is the total source length, or -1 when unknown.
func decode(r io.Reader, cfg decodeConfig, size int64) (*Image, error) {
	_, ih, err := readHeaders(r)
	if err != nil {
		return nil, err
	}

	n, err := pixelCount(ih.Width, ih.Height, cfg.maxPixels)
	if err != nil {
		return nil, err
	}

	want := int64(n) * PixelSize
	if size >= 0 && size-HeaderSize < want {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncated, want, max(size-HeaderSize, 0))
	}

	var buf bytes.Buffer
	if got, err := io.CopyN(&buf, r, want); err != nil {
		return nil, fmt.Errorf("%w: want %d bytes, got %d: %w", ErrTruncated, want, got, err)
	}
	raw := buf.Bytes()

	img := &Image{Width: ih.Width, Height: ih.Height, Pix: make([]Pixel, n)}
	for i := range img.Pix {
		o := i * PixelSize
		img.Pix[i] = Pixel{B: raw[o], G: raw[o+1], R: raw[o+2]}
	}

	return img, nil
}

// Encode writes img as a 24-bit uncompressed bitmap. The height sign, and
// therefore the row order, is preserved.
func Encode(w io.Writer, img *Image) error {
	n, err := pixelCount(img.Width, img.Height, 0)
	if err != nil {
		return err
	}
	if len(img.Pix) != n {
		return fmt.Errorf("%w: have %d, want %d", ErrPixelCount, len(img.Pix), n)
	}

	fh, ih := headersFor(img.Width, img.Height, n)
	if err := writeHeaders(w, fh, ih); err != nil {
		return err
	}

	raw := make([]byte, n*PixelSize)
	for i, p := range img.Pix {
		o := i * PixelSize
		raw[o], raw[o+1], raw[o+2] = p.B, p.G, p.R
	}

	_, err = w.Write(raw)
	return err
}

// Read decodes the bitmap stored at path.
func Read(path string, opts ...Option) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	size := int64(-1)
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		size = fi.Size()
	}

	img, err := decode(bufio.NewReader(f), newDecodeConfig(opts), size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// ReadHeader returns the two headers of the bitmap at path without reading
// pixel data.
func ReadHeader(path string) (FileHeader, InfoHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileHeader{}, InfoHeader{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return readHeaders(bufio.NewReader(f))
}

// Write encodes img to path. A failed write leaves no file behind.
func Write(path string, img *Image) error {
	err := atomicfile.Write(path, func(w io.Writer) error {
		return Encode(w, img)
	})
	if err != nil {
		return fmt.Errorf("bitmap: write %s: %w", path, err)
	}
	return nil
}
