package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-imgfft/pipeline"
)

var (
	styleInfo = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"})
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#5FD787"})
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}).Bold(true)
	styleDim  = lipgloss.NewStyle().Faint(true)
)

// consoleReporter prints one line per pipeline event.
type consoleReporter struct {
	w io.Writer
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	return &consoleReporter{w: w}
}

func (r *consoleReporter) Started(path string, index int) {
	fmt.Fprintln(r.w, styleInfo.Render(fmt.Sprintf("processing %s -> #%02d", path, index)))
}

func (r *consoleReporter) Skipped(name string) {
	fmt.Fprintln(r.w, styleDim.Render("skipped "+name))
}

func (r *consoleReporter) Finished(res *pipeline.Result) {
	bins := 0
	if len(res.Channels) > 0 {
		bins = res.Channels[0].Bins
	}
	fmt.Fprintln(r.w, styleOK.Render(fmt.Sprintf("done %s (%dx%d, %d bins per channel)", res.Path, res.Width, res.Height, bins)))
}

func (r *consoleReporter) Failed(path string, err error) {
	fmt.Fprintln(r.w, styleFail.Render(fmt.Sprintf("failed %s: %v", path, err)))
}

func (r *consoleReporter) Summary(rep *pipeline.Report) {
	line := fmt.Sprintf("%d processed, %d failed, %d skipped", len(rep.Processed), len(rep.Failed), len(rep.Skipped))
	if len(rep.Failed) > 0 {
		fmt.Fprintln(r.w, styleFail.Render(line))
		return
	}
	fmt.Fprintln(r.w, styleOK.Render(line))
}
