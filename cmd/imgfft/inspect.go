package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-imgfft/codec/bitmap"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <bitmap ...>",
		Short: "Print the file and info headers of bitmaps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, path := range args {
				fh, ih, err := bitmap.ReadHeader(path)
				if err != nil {
					return err
				}
				if err := printHeaders(tw, path, fh, ih); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}

func printHeaders(w io.Writer, path string, fh bitmap.FileHeader, ih bitmap.InfoHeader) error {
	status := "yes"
	if err := fh.Check(); err != nil {
		status = err.Error()
	} else if err := ih.Check(); err != nil {
		status = err.Error()
	}

	order := "bottom-up"
	if ih.TopDown() {
		order = "top-down"
	}

	rows := [][2]string{
		{"File", path},
		{"Type", fmt.Sprintf("%#04x", fh.Type)},
		{"File size", fmt.Sprint(fh.Size)},
		{"Pixel offset", fmt.Sprint(fh.OffBits)},
		{"Info size", fmt.Sprint(ih.Size)},
		{"Width", fmt.Sprint(ih.Width)},
		{"Height", fmt.Sprintf("%d (%s)", ih.Height, order)},
		{"Planes", fmt.Sprint(ih.Planes)},
		{"Bit count", fmt.Sprint(ih.BitCount)},
		{"Compression", fmt.Sprint(ih.Compression)},
		{"Image size", fmt.Sprint(ih.SizeImage)},
		{"Resolution", fmt.Sprintf("%dx%d px/m", ih.XPelsPerMeter, ih.YPelsPerMeter)},
		{"Palette", fmt.Sprintf("%d used, %d important", ih.ClrUsed, ih.ClrImportant)},
		{"Supported", status},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
