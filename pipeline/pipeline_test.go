package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-imgfft/codec/bitmap"
	"github.com/cwbudde/algo-imgfft/dsp/channel"
	"github.com/cwbudde/algo-imgfft/dsp/core"
	"github.com/cwbudde/algo-imgfft/dsp/fft"
	"github.com/cwbudde/algo-imgfft/dsp/spectrum"
	"github.com/cwbudde/algo-imgfft/internal/testutil"
)

type workspace struct {
	root, src, preview, bin, txt string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	root := t.TempDir()
	ws := workspace{
		root:    root,
		src:     filepath.Join(root, "img"),
		preview: filepath.Join(root, "output_channels"),
		bin:     filepath.Join(root, "output_fft_DAT"),
		txt:     filepath.Join(root, "output_fft_TXT"),
	}
	require.NoError(t, os.MkdirAll(ws.src, 0o755))
	return ws
}

func (ws workspace) options(extra ...Option) []Option {
	return append([]Option{
		WithSourceDir(ws.src),
		WithOutputDirs(ws.preview, ws.bin, ws.txt),
	}, extra...)
}

func (ws workspace) addBitmap(t *testing.T, name string, img *bitmap.Image) {
	t.Helper()
	require.NoError(t, bitmap.Write(filepath.Join(ws.src, name), img))
}

func solid(width, height int32, p bitmap.Pixel) *bitmap.Image {
	img := bitmap.New(width, height)
	for i := range img.Pix {
		img.Pix[i] = p
	}
	return img
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

type recorder struct {
	started  []int
	skipped  []string
	finished []int
	failed   []string
}

func (r *recorder) Started(_ string, index int) { r.started = append(r.started, index) }
func (r *recorder) Skipped(name string)         { r.skipped = append(r.skipped, name) }
func (r *recorder) Finished(res *Result)        { r.finished = append(r.finished, res.Index) }
func (r *recorder) Failed(path string, _ error) { r.failed = append(r.failed, filepath.Base(path)) }

func TestWhiteImageEndToEnd(t *testing.T) {
	ws := newWorkspace(t)
	ws.addBitmap(t, "white.bmp", solid(2, 2, bitmap.Pixel{B: 255, G: 255, R: 255}))

	report, err := New(ws.options()...).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Processed, 1)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 2, report.NextIndex)

	assert.Equal(t, []string{"blue_channel_01.bmp", "green_channel_01.bmp", "red_channel_01.bmp"}, listDir(t, ws.preview))
	assert.Equal(t, []string{"blue_channel_fft_01.dat", "green_channel_fft_01.dat", "red_channel_fft_01.dat"}, listDir(t, ws.bin))
	assert.Equal(t, []string{"blue_channel_fft_01.txt", "green_channel_fft_01.txt", "red_channel_fft_01.txt"}, listDir(t, ws.txt))

	want := []complex128{1020, 0, 0, 0}
	for _, art := range report.Processed[0].Channels {
		bin, err := spectrum.ReadBinary(art.Binary)
		require.NoError(t, err)
		testutil.RequireComplexNearlyEqual(t, bin, want, 1e-12)

		txt, err := os.ReadFile(art.Text)
		require.NoError(t, err)
		assert.Equal(t, "1020.000000 0.000000\n0.000000 0.000000\n0.000000 0.000000\n0.000000 0.000000\n", string(txt))

		preview, err := bitmap.Read(art.Preview)
		require.NoError(t, err)
		assert.Equal(t, channel.Extract(solid(2, 2, bitmap.Pixel{B: 255, G: 255, R: 255}), art.Channel).Pix, preview.Pix)
		assert.Equal(t, 4, art.Bins)
	}
}

func TestSpectraMatchChannelComponent(t *testing.T) {
	ws := newWorkspace(t)
	img := bitmap.New(4, 2)
	for i := range img.Pix {
		img.Pix[i] = bitmap.Pixel{B: uint8(10 * i), G: uint8(200 - i), R: uint8(i * i)}
	}
	ws.addBitmap(t, "grad.bmp", img)

	p := New(ws.options(WithKernel(fft.KernelRecursive), WithPrecision(spectrum.ShortestPrecision))...)
	report, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Processed, 1)

	for _, art := range report.Processed[0].Channels {
		want := testutil.NaiveDFT(channel.Samples(img, art.Channel))

		bin, err := spectrum.ReadBinary(art.Binary)
		require.NoError(t, err)
		testutil.RequireComplexNearlyEqual(t, bin, want, 1e-9)

		txt, err := spectrum.ReadText(art.Text)
		require.NoError(t, err)
		testutil.RequireComplexNearlyEqual(t, txt, bin, 0)
	}
}

func TestFailuresAreLocalAndDoNotConsumeIndex(t *testing.T) {
	ws := newWorkspace(t)
	ws.addBitmap(t, "a_odd.bmp", solid(3, 1, bitmap.Pixel{R: 1}))
	require.NoError(t, os.WriteFile(filepath.Join(ws.src, "b_truncated.bmp"), []byte("BM\x00"), 0o644))
	ws.addBitmap(t, "c_good.bmp", solid(2, 1, bitmap.Pixel{G: 9}))
	require.NoError(t, os.WriteFile(filepath.Join(ws.src, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(ws.src, "dir.bmp"), 0o755))

	rec := &recorder{}
	report, err := New(ws.options(WithReporter(rec))...).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Failed, 2)
	assert.ErrorIs(t, report.Failed[0].Err, fft.ErrNotPowerOfTwo)
	assert.ErrorIs(t, report.Failed[0].Err, core.ErrPrecondition)
	assert.ErrorIs(t, report.Failed[1].Err, core.ErrFormat)

	require.Len(t, report.Processed, 1)
	assert.Equal(t, 1, report.Processed[0].Index)
	assert.Equal(t, []string{"dir.bmp", "notes.txt"}, report.Skipped)

	assert.Equal(t, []int{1, 1, 1}, rec.started)
	assert.Equal(t, []int{1}, rec.finished)
	assert.Equal(t, []string{"a_odd.bmp", "b_truncated.bmp"}, rec.failed)
	assert.Equal(t, []string{"dir.bmp", "notes.txt"}, rec.skipped)

	// the rejected 3x1 image left nothing behind
	assert.Equal(t, []string{"blue_channel_01.bmp", "green_channel_01.bmp", "red_channel_01.bmp"}, listDir(t, ws.preview))
}

func TestSizePolicies(t *testing.T) {
	tests := []struct {
		policy fft.SizePolicy
		bins   int
	}{
		{fft.SizeZeroPad, 4},
		{fft.SizeBluestein, 3},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			ws := newWorkspace(t)
			img := bitmap.New(3, 1)
			img.Pix = []bitmap.Pixel{{R: 1}, {R: 2}, {R: 3}}
			ws.addBitmap(t, "odd.bmp", img)

			report, err := New(ws.options(WithSizePolicy(tt.policy))...).Run(context.Background())
			require.NoError(t, err)
			require.Len(t, report.Processed, 1)

			red := report.Processed[0].Channels[0]
			require.Equal(t, channel.Red, red.Channel)
			assert.Equal(t, tt.bins, red.Bins)

			s, err := spectrum.ReadBinary(red.Binary)
			require.NoError(t, err)
			require.Len(t, s, tt.bins)
			testutil.RequireComplexNearlyEqual(t, s[:1], []complex128{6}, 1e-9)
		})
	}
}

func TestStartIndexAndSequentialNames(t *testing.T) {
	ws := newWorkspace(t)
	ws.addBitmap(t, "1.bmp", solid(1, 1, bitmap.Pixel{R: 1}))
	ws.addBitmap(t, "2.bmp", solid(1, 2, bitmap.Pixel{R: 2}))

	report, err := New(ws.options(WithStartIndex(9))...).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Processed, 2)
	assert.Equal(t, 11, report.NextIndex)

	assert.Contains(t, listDir(t, ws.bin), "red_channel_fft_09.dat")
	assert.Contains(t, listDir(t, ws.bin), "red_channel_fft_10.dat")
}

func TestMissingSourceDirAbortsRun(t *testing.T) {
	ws := newWorkspace(t)
	p := New(ws.options(WithSourceDir(filepath.Join(ws.root, "nope")))...)

	_, err := p.Run(context.Background())
	require.ErrorIs(t, err, ErrSourceDir)
	require.ErrorIs(t, err, core.ErrIO)

	// destination directories are created before the source is listed
	for _, dir := range []string{ws.preview, ws.bin, ws.txt} {
		info, statErr := os.Stat(dir)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	}
}

func TestOutputDirFailureAbortsRun(t *testing.T) {
	ws := newWorkspace(t)
	blocker := filepath.Join(ws.root, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	p := New(ws.options(WithOutputDirs(filepath.Join(blocker, "sub"), "", ""))...)
	_, err := p.Run(context.Background())
	require.ErrorIs(t, err, ErrOutputDir)
}

func TestCancelledContextStopsRun(t *testing.T) {
	ws := newWorkspace(t)
	ws.addBitmap(t, "a.bmp", solid(1, 1, bitmap.Pixel{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(ws.options()...).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Processed)
}

func TestProcessFileRollsBackOnWriteFailure(t *testing.T) {
	ws := newWorkspace(t)
	ws.addBitmap(t, "a.bmp", solid(2, 2, bitmap.Pixel{R: 5}))

	// text directory is never created, so the first text write fails
	p := New(ws.options()...)
	require.NoError(t, os.MkdirAll(ws.preview, 0o755))
	require.NoError(t, os.MkdirAll(ws.bin, 0o755))

	_, err := p.ProcessFile(filepath.Join(ws.src, "a.bmp"), 1)
	require.ErrorIs(t, err, core.ErrIO)

	assert.Empty(t, listDir(t, ws.preview))
	assert.Empty(t, listDir(t, ws.bin))
}

func TestProcessFileMissingInput(t *testing.T) {
	ws := newWorkspace(t)
	_, err := New(ws.options()...).ProcessFile(filepath.Join(ws.src, "missing.bmp"), 1)
	require.ErrorIs(t, err, bitmap.ErrOpen)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "img", cfg.SourceDir)
	assert.Equal(t, "output_channels", cfg.PreviewDir)
	assert.Equal(t, "output_fft_DAT", cfg.BinaryDir)
	assert.Equal(t, "output_fft_TXT", cfg.TextDir)
	assert.Equal(t, ".bmp", cfg.Pattern)
	assert.Equal(t, 1, cfg.StartIndex)
	assert.Equal(t, fft.SizeStrict, cfg.SizePolicy)
	assert.Equal(t, spectrum.DefaultPrecision, cfg.Precision)

	ignored := ApplyOptions(WithSourceDir(""), WithPattern(""), WithStartIndex(-1), WithPrecision(-5), WithMaxPixels(0), WithLogger(nil), WithReporter(nil))
	assert.Equal(t, cfg.SourceDir, ignored.SourceDir)
	assert.Equal(t, cfg.Pattern, ignored.Pattern)
	assert.Equal(t, cfg.StartIndex, ignored.StartIndex)
	assert.Equal(t, cfg.Precision, ignored.Precision)
	assert.Equal(t, cfg.MaxPixels, ignored.MaxPixels)
	assert.NotNil(t, ignored.Logger)
	assert.NotNil(t, ignored.Reporter)
}

func TestNames(t *testing.T) {
	p := New(WithOutputDirs("p", "b", "t"))
	got := p.Names(3, channel.Green)
	assert.Equal(t, filepath.Join("p", "green_channel_03.bmp"), got.Preview)
	assert.Equal(t, filepath.Join("b", "green_channel_fft_03.dat"), got.Binary)
	assert.Equal(t, filepath.Join("t", "green_channel_fft_03.txt"), got.Text)
}
