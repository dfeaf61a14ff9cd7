package spectrum

import (
	"github.com/cwbudde/algo-imgfft/dsp/core"
)

var (
	ErrOpen      = core.NewKind(core.ErrIO, "spectrum: cannot open file")
	ErrTruncated = core.NewKind(core.ErrFormat, "spectrum: binary length is not a multiple of 16")
	ErrMalformed = core.NewKind(core.ErrFormat, "spectrum: malformed text line")
)

// SampleSize is the encoded size of one complex sample in binary form.
const SampleSize = 16

// ComplexBins is a read-only adapter for complex spectrum outputs, so
// writers are not coupled to a particular slice type.
type ComplexBins interface {
	Len() int
	At(i int) complex128
}

// Spectrum is an ordered sequence of complex frequency-domain samples.
type Spectrum []complex128

// Len returns the bin count.
func (s Spectrum) Len() int { return len(s) }

// At returns the bin value at index i.
func (s Spectrum) At(i int) complex128 { return s[i] }
