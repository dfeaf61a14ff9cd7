// Command imgfft splits 24-bit bitmaps into their red, green and blue
// channels and writes the Fourier spectrum of each channel.
//
// Usage:
//
//	imgfft run [flags]
//	imgfft file [flags] <bitmap>
//	imgfft inspect <bitmap ...>
//
// Examples:
//
//	imgfft run
//	imgfft run --src photos --size-policy pad
//	imgfft file --index 7 --kernel split img/lena.bmp
//	imgfft inspect img/*.bmp
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "imgfft",
		Short:         "Per-channel Fourier spectra of uncompressed 24-bit bitmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newFileCmd(), newInspectCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
