package spectrum

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-imgfft/internal/atomicfile"
)

// chunkSamples is the number of samples encoded per Write call.
const chunkSamples = 4096

// EncodeBinary writes every bin of s as two consecutive native-endian
// float64 values, real part first.
func EncodeBinary(w io.Writer, s ComplexBins) error {
	n := s.Len()
	chunk := make([]byte, 0, chunkSamples*SampleSize)

	for i := range n {
		v := s.At(i)
		chunk = binary.NativeEndian.AppendUint64(chunk, math.Float64bits(real(v)))
		chunk = binary.NativeEndian.AppendUint64(chunk, math.Float64bits(imag(v)))

		if len(chunk) == cap(chunk) {
			if _, err := w.Write(chunk); err != nil {
				return err
			}
			chunk = chunk[:0]
		}
	}

	if len(chunk) > 0 {
		_, err := w.Write(chunk)
		return err
	}
	return nil
}

// DecodeBinary reads a packed array written by EncodeBinary.
func DecodeBinary(r io.Reader) (Spectrum, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw)%SampleSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(raw))
	}

	out := make(Spectrum, len(raw)/SampleSize)
	for i := range out {
		o := i * SampleSize
		re := math.Float64frombits(binary.NativeEndian.Uint64(raw[o:]))
		im := math.Float64frombits(binary.NativeEndian.Uint64(raw[o+8:]))
		out[i] = complex(re, im)
	}
	return out, nil
}

// WriteBinary stores s at path in binary form.
func WriteBinary(path string, s ComplexBins) error {
	err := atomicfile.Write(path, func(w io.Writer) error {
		return EncodeBinary(w, s)
	})
	if err != nil {
		return fmt.Errorf("spectrum: write %s: %w", path, err)
	}
	return nil
}

// ReadBinary loads a binary spectrum from path.
func ReadBinary(path string) (Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	s, err := DecodeBinary(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
