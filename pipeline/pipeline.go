// Package pipeline wires the bitmap codec, channel extractor, Fourier
// engine and spectral serializer into a per-file pipeline, and drives it
// over a source directory.
//
// For every image the red, green and blue channels are processed in that
// order: the channel preview bitmap is written, the channel's component
// plane is transformed, and the spectrum is stored in binary and text form.
// Artifacts are named by a per-run index, never by the input name.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-imgfft/codec/bitmap"
	"github.com/cwbudde/algo-imgfft/dsp/channel"
	"github.com/cwbudde/algo-imgfft/dsp/core"
	"github.com/cwbudde/algo-imgfft/dsp/fft"
	"github.com/cwbudde/algo-imgfft/dsp/spectrum"
)

var (
	ErrSourceDir = core.NewKind(core.ErrIO, "pipeline: cannot read source directory")
	ErrOutputDir = core.NewKind(core.ErrIO, "pipeline: cannot create output directory")
)

// Artifacts lists the files written for one channel.
type Artifacts struct {
	Channel channel.Channel
	Preview string
	Binary  string
	Text    string
	// Bins is the spectrum length.
	Bins int
}

// Result describes one successfully processed image.
type Result struct {
	Path     string
	Index    int
	Width    int32
	Height   int32
	Channels []Artifacts
}

// Processor runs the per-file pipeline.
type Processor struct {
	cfg    Config
	engine *fft.Engine
	log    *slog.Logger
}

// New returns a Processor configured by opts on top of DefaultConfig.
func New(opts ...Option) *Processor {
	cfg := ApplyOptions(opts...)
	return &Processor{
		cfg:    cfg,
		engine: fft.New(fft.WithKernel(cfg.Kernel), fft.WithSizePolicy(cfg.SizePolicy)),
		log:    cfg.Logger,
	}
}

// Config returns the processor settings.
func (p *Processor) Config() Config {
	return p.cfg
}

// Names returns the preview, binary and text artifact paths for channel c
// of the image with the given index.
func (p *Processor) Names(index int, c channel.Channel) Artifacts {
	return Artifacts{
		Channel: c,
		Preview: filepath.Join(p.cfg.PreviewDir, fmt.Sprintf("%s_channel_%02d.bmp", c, index)),
		Binary:  filepath.Join(p.cfg.BinaryDir, fmt.Sprintf("%s_channel_fft_%02d.dat", c, index)),
		Text:    filepath.Join(p.cfg.TextDir, fmt.Sprintf("%s_channel_fft_%02d.txt", c, index)),
	}
}

// ProcessFile runs the full pipeline for the bitmap at path, naming the
// outputs with index. The spectrum length is validated against the size
// policy before anything is written. If any step fails, artifacts already
// written for this file are removed.
func (p *Processor) ProcessFile(path string, index int) (res *Result, err error) {
	img, err := bitmap.Read(path, bitmap.WithMaxPixels(p.cfg.MaxPixels))
	if err != nil {
		return nil, err
	}

	bins, err := p.engine.OutputLen(len(img.Pix))
	if err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", path, img.Width, img.Height, err)
	}

	var written []string
	defer func() {
		if err != nil {
			for _, f := range written {
				if rmErr := os.Remove(f); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
					p.log.Warn("rollback failed", "path", f, "err", rmErr)
				}
			}
		}
	}()

	r, g, b := channel.Split(img)
	previews := map[channel.Channel]*bitmap.Image{channel.Red: r, channel.Green: g, channel.Blue: b}

	res = &Result{Path: path, Index: index, Width: img.Width, Height: img.Height}
	for _, c := range channel.All() {
		out := p.Names(index, c)
		out.Bins = bins
		preview := previews[c]

		if err = bitmap.Write(out.Preview, preview); err != nil {
			return nil, err
		}
		written = append(written, out.Preview)

		var s []complex128
		s, err = p.engine.Transform(channel.Samples(preview, c))
		if err != nil {
			return nil, fmt.Errorf("%s: %s channel: %w", path, c, err)
		}

		if err = spectrum.WriteBinary(out.Binary, spectrum.Spectrum(s)); err != nil {
			return nil, err
		}
		written = append(written, out.Binary)

		if err = spectrum.WriteText(out.Text, spectrum.Spectrum(s), spectrum.WithPrecision(p.cfg.Precision)); err != nil {
			return nil, err
		}
		written = append(written, out.Text)

		p.log.Debug("channel done", "path", path, "channel", c.String(), "bins", len(s))
		res.Channels = append(res.Channels, out)
	}

	return res, nil
}
