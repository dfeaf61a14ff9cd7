package bitmap

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Layout constants of the on-disk format.
const (
	Signature      uint16 = 0x4D42 // "BM"
	FileHeaderSize        = 14
	InfoHeaderSize        = 40
	HeaderSize            = FileHeaderSize + InfoHeaderSize
	BitsPerPixel          = 24
	PixelSize             = 3
)

// FileHeader is the leading 14-byte record. Field order and widths match
// the disk layout exactly; encoding/binary reads and writes it packed.
type FileHeader struct {
	Type      uint16
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

// InfoHeader is the 40-byte record that follows FileHeader.
type InfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

func readHeaders(r io.Reader) (FileHeader, InfoHeader, error) {
	var fh FileHeader
	var ih InfoHeader

	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return fh, ih, fmt.Errorf("%w: file header: %w", ErrShortHeader, err)
	}

	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return fh, ih, fmt.Errorf("%w: info header: %w", ErrShortHeader, err)
	}

	return fh, ih, nil
}

func writeHeaders(w io.Writer, fh FileHeader, ih InfoHeader) error {
	if err := binary.Write(w, binary.LittleEndian, fh); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, ih)
}

// headersFor builds the headers written for an image: bit depth 24, no
// compression, no palette, image size left zero.
func headersFor(width, height int32, pixels int) (FileHeader, InfoHeader) {
	fh := FileHeader{
		Type:    Signature,
		Size:    uint32(HeaderSize + pixels*PixelSize),
		OffBits: HeaderSize,
	}
	ih := InfoHeader{
		Size:     InfoHeaderSize,
		Width:    width,
		Height:   height,
		Planes:   1,
		BitCount: BitsPerPixel,
	}
	return fh, ih
}

// Check reports whether ih describes an uncompressed, 24-bit, single-plane
// bitmap with a standard info header.
func (ih InfoHeader) Check() error {
	switch {
	case ih.Size != InfoHeaderSize:
		return fmt.Errorf("%w: info header size %d", ErrUnsupported, ih.Size)
	case ih.Planes != 1:
		return fmt.Errorf("%w: %d planes", ErrUnsupported, ih.Planes)
	case ih.BitCount != BitsPerPixel:
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, ih.BitCount)
	case ih.Compression != 0:
		return fmt.Errorf("%w: compression %d", ErrUnsupported, ih.Compression)
	}
	return nil
}

// Check reports whether fh carries the bitmap signature.
func (fh FileHeader) Check() error {
	if fh.Type != Signature {
		return fmt.Errorf("%w: signature %#04x", ErrUnsupported, fh.Type)
	}
	return nil
}

// TopDown reports whether rows are stored first-to-last (negative height).
func (ih InfoHeader) TopDown() bool {
	return ih.Height < 0
}
