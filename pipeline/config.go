package pipeline

import (
	"log/slog"

	"github.com/cwbudde/algo-imgfft/codec/bitmap"
	"github.com/cwbudde/algo-imgfft/dsp/fft"
	"github.com/cwbudde/algo-imgfft/dsp/spectrum"
)

// Config defines where inputs are found, where artifacts go and how the
// transform runs.
type Config struct {
	SourceDir  string
	PreviewDir string
	BinaryDir  string
	TextDir    string

	// Pattern is the substring a file name must contain to be processed.
	Pattern string
	// StartIndex is the index given to the first successfully processed file.
	StartIndex int

	Kernel     fft.Kernel
	SizePolicy fft.SizePolicy
	// Precision is the number of decimals in text spectra, or
	// spectrum.ShortestPrecision.
	Precision int
	// MaxPixels bounds the decoded image size.
	MaxPixels int

	Logger   *slog.Logger
	Reporter Reporter
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the classic layout: bitmaps from ./img, previews to
// ./output_channels, spectra to ./output_fft_DAT and ./output_fft_TXT.
func DefaultConfig() Config {
	return Config{
		SourceDir:  "img",
		PreviewDir: "output_channels",
		BinaryDir:  "output_fft_DAT",
		TextDir:    "output_fft_TXT",
		Pattern:    ".bmp",
		StartIndex: 1,
		Kernel:     fft.KernelIterative,
		SizePolicy: fft.SizeStrict,
		Precision:  spectrum.DefaultPrecision,
		MaxPixels:  bitmap.DefaultMaxPixels,
		Logger:     slog.New(slog.DiscardHandler),
		Reporter:   nopReporter{},
	}
}

// WithSourceDir sets the directory scanned by Run.
func WithSourceDir(dir string) Option {
	return func(cfg *Config) {
		if dir != "" {
			cfg.SourceDir = dir
		}
	}
}

// WithOutputDirs sets the preview, binary-spectrum and text-spectrum
// directories. Empty arguments keep the current value.
func WithOutputDirs(preview, binary, text string) Option {
	return func(cfg *Config) {
		if preview != "" {
			cfg.PreviewDir = preview
		}
		if binary != "" {
			cfg.BinaryDir = binary
		}
		if text != "" {
			cfg.TextDir = text
		}
	}
}

// WithPattern sets the file-name filter substring.
func WithPattern(pattern string) Option {
	return func(cfg *Config) {
		if pattern != "" {
			cfg.Pattern = pattern
		}
	}
}

// WithStartIndex sets the first output index.
func WithStartIndex(index int) Option {
	return func(cfg *Config) {
		if index >= 0 {
			cfg.StartIndex = index
		}
	}
}

// WithKernel selects the transform kernel.
func WithKernel(k fft.Kernel) Option {
	return func(cfg *Config) {
		cfg.Kernel = k
	}
}

// WithSizePolicy selects how non-power-of-two pixel counts are handled.
func WithSizePolicy(p fft.SizePolicy) Option {
	return func(cfg *Config) {
		cfg.SizePolicy = p
	}
}

// WithPrecision sets the text-spectrum precision.
func WithPrecision(p int) Option {
	return func(cfg *Config) {
		if p >= spectrum.ShortestPrecision {
			cfg.Precision = p
		}
	}
}

// WithMaxPixels bounds the decoded image size.
func WithMaxPixels(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxPixels = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Reporter = r
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
