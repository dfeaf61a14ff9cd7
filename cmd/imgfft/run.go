package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-imgfft/pipeline"
)

func newRunCmd() *cobra.Command {
	var (
		pf         pipelineFlags
		src        string
		pattern    string
		startIndex int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process every bitmap in the source directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := pf.options(cmd)
			if err != nil {
				return err
			}
			opts = append(opts,
				pipeline.WithSourceDir(src),
				pipeline.WithPattern(pattern),
				pipeline.WithStartIndex(startIndex),
			)

			report, err := pipeline.New(opts...).Run(cmd.Context())
			if err != nil {
				return err
			}

			newConsoleReporter(cmd.OutOrStdout()).Summary(report)
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d file(s) failed", len(report.Failed))
			}
			return nil
		},
	}

	def := pipeline.DefaultConfig()
	pf.register(cmd)
	cmd.Flags().StringVar(&src, "src", def.SourceDir, "directory scanned for bitmaps")
	cmd.Flags().StringVar(&pattern, "pattern", def.Pattern, "substring a file name must contain")
	cmd.Flags().IntVar(&startIndex, "start-index", def.StartIndex, "index of the first processed file")

	return cmd
}

func newFileCmd() *cobra.Command {
	var (
		pf    pipelineFlags
		index int
	)

	cmd := &cobra.Command{
		Use:   "file <bitmap>",
		Short: "Process a single bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := pf.options(cmd)
			if err != nil {
				return err
			}

			p := pipeline.New(opts...)
			if err := p.EnsureOutputDirs(); err != nil {
				return err
			}

			res, err := p.ProcessFile(args[0], index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, a := range res.Channels {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", a.Channel, a.Preview, a.Binary, a.Text)
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().IntVar(&index, "index", 1, "index used in output names")

	return cmd
}
