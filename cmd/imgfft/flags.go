package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-imgfft/dsp/fft"
	"github.com/cwbudde/algo-imgfft/pipeline"
)

// pipelineFlags are shared by the run and file subcommands.
type pipelineFlags struct {
	previewDir string
	binaryDir  string
	textDir    string
	kernel     string
	policy     string
	precision  int
	maxPixels  int
	verbose    bool
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	def := pipeline.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVar(&f.previewDir, "channels-dir", def.PreviewDir, "directory for channel preview bitmaps")
	fs.StringVar(&f.binaryDir, "dat-dir", def.BinaryDir, "directory for binary spectra")
	fs.StringVar(&f.textDir, "txt-dir", def.TextDir, "directory for text spectra")
	fs.StringVar(&f.kernel, "kernel", def.Kernel.String(), "transform kernel (iterative, recursive, split, algofft)")
	fs.StringVar(&f.policy, "size-policy", def.SizePolicy.String(), "non-power-of-two pixel counts: strict, pad or bluestein")
	fs.IntVar(&f.precision, "precision", def.Precision, "decimals in text spectra (-1 for shortest exact)")
	fs.IntVar(&f.maxPixels, "max-pixels", def.MaxPixels, "largest image accepted, in pixels")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline steps to stderr")
}

func (f *pipelineFlags) options(cmd *cobra.Command) ([]pipeline.Option, error) {
	kernel, err := fft.ParseKernel(f.kernel)
	if err != nil {
		return nil, err
	}

	policy, err := fft.ParseSizePolicy(f.policy)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{
		pipeline.WithOutputDirs(f.previewDir, f.binaryDir, f.textDir),
		pipeline.WithKernel(kernel),
		pipeline.WithSizePolicy(policy),
		pipeline.WithPrecision(f.precision),
		pipeline.WithMaxPixels(f.maxPixels),
		pipeline.WithReporter(newConsoleReporter(cmd.OutOrStdout())),
	}

	if f.verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, pipeline.WithLogger(slog.New(h)))
	}

	return opts, nil
}
