package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Failure records a file whose pipeline did not complete.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a Run.
type Report struct {
	Processed []*Result
	Skipped   []string
	Failed    []Failure
	// NextIndex is the index the next processed file would receive.
	NextIndex int
}

// EnsureOutputDirs creates the three destination directories if absent.
func (p *Processor) EnsureOutputDirs() error {
	for _, dir := range []string{p.cfg.PreviewDir, p.cfg.BinaryDir, p.cfg.TextDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputDir, err)
		}
	}
	return nil
}

// Run processes every regular file of the source directory whose name
// contains the configured pattern, in lexical order. Other entries are
// skipped. A per-file failure is reported and the run continues; only a
// failure to prepare the output directories, to list the source
// directory, or a cancelled ctx ends the run early. The index advances
// only after a file completes.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	if err := p.EnsureOutputDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(p.cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceDir, err)
	}

	report := &Report{NextIndex: p.cfg.StartIndex}
	rep := p.cfg.Reporter

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.Contains(name, p.cfg.Pattern) {
			p.log.Debug("skipping", "name", name)
			report.Skipped = append(report.Skipped, name)
			rep.Skipped(name)
			continue
		}

		path := filepath.Join(p.cfg.SourceDir, name)
		rep.Started(path, report.NextIndex)
		p.log.Info("processing", "path", path, "index", report.NextIndex)

		res, err := p.ProcessFile(path, report.NextIndex)
		if err != nil {
			p.log.Error("file failed", "path", path, "err", err)
			report.Failed = append(report.Failed, Failure{Path: path, Err: err})
			rep.Failed(path, err)
			continue
		}

		report.Processed = append(report.Processed, res)
		report.NextIndex++
		rep.Finished(res)
	}

	return report, nil
}
