package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-imgfft/internal/atomicfile"
)

// DefaultPrecision is the number of decimals written per value, matching
// the classic "%f" rendering.
const DefaultPrecision = 6

// ShortestPrecision selects the shortest decimal that parses back to the
// identical float64.
const ShortestPrecision = -1

type textConfig struct {
	precision int
}

// TextOption configures the text encoder.
type TextOption func(*textConfig)

// WithPrecision sets the number of decimals. Use ShortestPrecision for
// lossless output. Values below ShortestPrecision are ignored.
func WithPrecision(p int) TextOption {
	return func(cfg *textConfig) {
		if p >= ShortestPrecision {
			cfg.precision = p
		}
	}
}

func applyText(opts []TextOption) textConfig {
	cfg := textConfig{precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// EncodeText writes one "<real> <imag>\n" line per bin.
func EncodeText(w io.Writer, s ComplexBins, opts ...TextOption) error {
	cfg := applyText(opts)
	line := make([]byte, 0, 64)

	for i := range s.Len() {
		v := s.At(i)
		line = strconv.AppendFloat(line[:0], real(v), 'f', cfg.precision, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, imag(v), 'f', cfg.precision, 64)
		line = append(line, '\n')

		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// DecodeText parses text written by EncodeText.
func DecodeText(r io.Reader) (Spectrum, error) {
	var out Spectrum

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %d fields", ErrMalformed, lineNo, len(fields))
		}

		re, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
		im, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}

		out = append(out, complex(re, im))
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteText stores s at path in text form.
func WriteText(path string, s ComplexBins, opts ...TextOption) error {
	err := atomicfile.Write(path, func(w io.Writer) error {
		return EncodeText(w, s, opts...)
	})
	if err != nil {
		return fmt.Errorf("spectrum: write %s: %w", path, err)
	}
	return nil
}

// ReadText loads a text spectrum from path.
func ReadText(path string) (Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	s, err := DecodeText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
