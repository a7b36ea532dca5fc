package capture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/stitchshot/pkg/mocks"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/widget"
)

func TestCaptureScrollPages(t *testing.T) {
	dir := t.TempDir()
	sv := newScrollView(300, 300, 100, 150, 200)
	sv.ScrollTo(40)

	paths, err := New().CaptureScrollPages(context.Background(), sv, filepath.Join(dir, "page.jpg"), 90)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "0_page.jpg"),
		filepath.Join(dir, "1_page.jpg"),
	}, paths)
	assert.Equal(t, 40, sv.ScrollY())

	first := decode(t, paths[0])
	assertColor(t, first, 150, 50, red)
	assertColor(t, first, 150, 150, green)

	// The last page is clamped to the scroll range of 150.
	last := decode(t, paths[1])
	assertColor(t, last, 150, 50, green)
	assertColor(t, last, 150, 250, blue)
}

func TestCaptureScrollPagesRemovesStalePages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2_page.jpg", "3_page.jpg", "5_page.jpg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("old"), 0644))
	}

	paths, err := New().CaptureScrollPages(context.Background(), newScrollView(300, 300, 100, 150, 200), filepath.Join(dir, "page.jpg"), 90)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.NoFileExists(t, filepath.Join(dir, "2_page.jpg"))
	assert.NoFileExists(t, filepath.Join(dir, "3_page.jpg"))
	// Only the run directly after the last page is removed.
	assert.FileExists(t, filepath.Join(dir, "5_page.jpg"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestCaptureScrollPagesShortContent(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := mocks.NewDebugSink(true)
	c := New(WithRenderer(&mocks.Renderer{}), WithFileSystem(fs), WithDebugSink(sink))

	paths, err := c.CaptureScrollPages(context.Background(), newScrollView(300, 300, 100), filepath.Join("out", "p.jpg"), 80)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("out", "0_p.jpg")}, paths)
	assert.Len(t, sink.Pages, 1)
}

func TestCaptureScrollPagesWriteFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteErr = errors.New("read-only")
	renderer := &mocks.Renderer{}
	c := New(WithRenderer(renderer), WithFileSystem(fs))

	paths, err := c.CaptureScrollPages(context.Background(), newScrollView(300, 300, 100, 150, 200), "p.jpg", 80)
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrIO)
	assert.Empty(t, paths)

	canvases := renderer.Canvases()
	require.Len(t, canvases, 1)
	assert.True(t, canvases[0].Released())
}

func TestCaptureScrollPagesPreconditions(t *testing.T) {
	c := New(WithRenderer(&mocks.Renderer{}), WithFileSystem(mocks.NewFileSystem()))
	ctx := context.Background()

	_, err := c.CaptureScrollPages(ctx, nil, "p.jpg", 80)
	assert.ErrorIs(t, err, pipeline.ErrPrecondition)

	_, err = c.CaptureScrollPages(ctx, widget.NewScrollView(nil), "p.jpg", 80)
	assert.ErrorIs(t, err, pipeline.ErrPrecondition)

	_, err = c.CaptureScrollPages(ctx, widget.NewScrollView(column(100)), "p.jpg", 80)
	assert.ErrorIs(t, err, pipeline.ErrPrecondition, "not laid out")

	_, err = c.CaptureScrollPages(ctx, newScrollView(300, 300, 100), "p.jpg", -1)
	assert.ErrorIs(t, err, pipeline.ErrPrecondition)
}

func TestCaptureScrollPagesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fs := mocks.NewFileSystem()
	c := New(WithRenderer(&mocks.Renderer{}), WithFileSystem(fs))

	_, err := c.CaptureScrollPages(ctx, newScrollView(300, 300, 100), "p.jpg", 80)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fs.Written())
}
