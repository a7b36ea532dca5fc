package capture

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"

	"github.com/user/stitchshot/pkg/adapters/viewcontent"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/widget"
)

const pagesOp = "capture pages"

// CaptureScrollPages writes sv one viewport at a time, scrolling by the
// viewport height until the scroll range is exhausted. Page i is written
// to <dir of path>/<i>_<base of path>. The scroll position is restored
// before returning.
//
// On failure the paths written so far are returned with the error.
func (c *Capturer) CaptureScrollPages(ctx context.Context, sv *widget.ScrollView, path string, quality int) ([]string, error) {
	if sv == nil {
		return nil, pipeline.NewError(pipeline.KindPrecondition, pagesOp, viewcontent.ErrNilView)
	}
	if sv.ChildAt(0) == nil {
		return nil, pipeline.NewError(pipeline.KindPrecondition, pagesOp, viewcontent.ErrNoChild)
	}
	width, height := sv.Width(), sv.Height()
	if width <= 0 || height <= 0 {
		return nil, pipeline.Errorf(pipeline.KindPrecondition, pagesOp, "invalid viewport %dx%d", width, height)
	}
	if quality < 0 || quality > 100 {
		return nil, pipeline.Errorf(pipeline.KindPrecondition, pagesOp, "quality %d outside 0-100", quality)
	}
	if path == "" {
		return nil, pipeline.Errorf(pipeline.KindPrecondition, pagesOp, "no output path")
	}

	dir, base := filepath.Split(path)
	encoder := c.encodeStage()

	original := sv.ScrollY()
	defer sv.ScrollTo(original)
	sv.ScrollTo(0)

	var written []string
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		c.logger.Info(l10n.F("Capturing page %d at scroll offset %d", index, sv.ScrollY()))

		pagePath := pageFile(dir, base, index)
		if err := c.writePage(ctx, encoder, sv, index, pagePath, quality); err != nil {
			c.logger.Error(l10n.F("Failed to capture page %d: %s", index, err))
			return written, err
		}
		written = append(written, pagePath)

		if sv.ScrollBy(height) == 0 {
			break
		}
	}

	c.removeStalePages(dir, base, len(written))

	c.logger.Info(l10n.F("Saved %d pages to %s", len(written), dir))
	return written, nil
}

func pageFile(dir, base string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%d_%s", index, base))
}

// removeStalePages deletes consecutive pages from index on, left by an
// earlier run of a longer scroll view.
func (c *Capturer) removeStalePages(dir, base string, index int) {
	for ; ; index++ {
		stale := pageFile(dir, base, index)
		if exists, err := c.fs.Exists(stale); err != nil || !exists {
			return
		}
		if err := c.fs.Remove(stale); err != nil {
			c.logger.Warn(l10n.F("Failed to remove stale page %s: %s", stale, err))
			return
		}
		c.logger.Debug(l10n.F("Removed stale page %s", stale))
	}
}

func (c *Capturer) writePage(ctx context.Context, encoder pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult], sv *widget.ScrollView, index int, path string, quality int) error {
	canvas, err := c.renderer.CreateCanvas(sv.Width(), sv.Height(), c.fillColor)
	if err != nil {
		return pipeline.NewError(pipeline.KindAllocation, pagesOp, err)
	}
	defer canvas.Release()

	sv.Draw(canvas)

	if c.sink.Enabled() {
		c.sink.SavePage(index, canvas.ToImage())
	}

	_, err = encoder.Execute(ctx, pipeline.EncodeInput{
		Image:   canvas.ToImage(),
		Path:    path,
		Format:  c.format,
		Quality: quality,
	})
	return err
}
