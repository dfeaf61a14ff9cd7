// Package atomicfile writes output artifacts so that a reader never observes
// a partially written file: content goes to a temporary sibling that is
// renamed over the destination only after every byte has been flushed.
package atomicfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-imgfft/dsp/core"
)

var (
	// ErrCreate is returned when the destination cannot be opened for writing.
	ErrCreate = core.NewKind(core.ErrIO, "atomicfile: cannot open destination")
	// ErrWrite is returned when flushing or committing the destination fails.
	ErrWrite = core.NewKind(core.ErrIO, "atomicfile: write failed")
)

// Perm is the mode given to committed files.
const Perm os.FileMode = 0o644

// Write streams the output of fn into path. fn receives a buffered writer;
// if fn returns an error, or any I/O step fails, the temporary file is
// removed and path is left untouched.
func Write(path string, fn func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, path, err)
	}

	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		return err
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err = f.Chmod(Perm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return nil
}
