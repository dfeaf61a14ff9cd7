package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-imgfft/dsp/core"
)

func TestWriteCommits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	err := Write(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	})
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != "hello\n" {
		t.Fatalf("content = %q, want %q", got, "hello\n")
	}

	assertNoTemporaries(t, dir, 1)
}

func TestWriteFailureLeavesNoArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dat")
	errBoom := errors.New("boom")

	err := Write(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, "partial"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want %v", err, errBoom)
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("destination exists after failed write: %v", statErr)
	}

	assertNoTemporaries(t, dir, 0)
}

func TestWriteFailureKeepsPreviousContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	_ = Write(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "new")
		return errors.New("abort")
	})

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "old" {
		t.Fatalf("content = %q, want previous content", got)
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := Write(path, func(io.Writer) error { return nil })
	if !errors.Is(err, ErrCreate) {
		t.Fatalf("err = %v, want ErrCreate", err)
	}
	if !errors.Is(err, core.ErrIO) {
		t.Fatalf("err = %v, want core.ErrIO kind", err)
	}
}

func assertNoTemporaries(t *testing.T, dir string, wantEntries int) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != wantEntries {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("directory entries = %v, want %d entries", names, wantEntries)
	}
}
