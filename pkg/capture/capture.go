// Package capture renders widget containers into a single stitched image.
//
// Each entry point measures every item of the container off-screen, scales
// the whole column so it fits the requested height, draws the items one
// under another onto a single canvas and writes it as an image file.
package capture

import (
	"context"
	"image"
	"image/color"

	"github.com/user/stitchshot/pkg/adapters/ggrenderer"
	"github.com/user/stitchshot/pkg/adapters/logger"
	"github.com/user/stitchshot/pkg/adapters/nullsink"
	"github.com/user/stitchshot/pkg/adapters/osfilesystem"
	"github.com/user/stitchshot/pkg/adapters/viewcontent"
	"github.com/user/stitchshot/pkg/orchestrator"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/stages/composite"
	"github.com/user/stitchshot/pkg/stages/encode"
	"github.com/user/stitchshot/pkg/stages/layout"
	"github.com/user/stitchshot/pkg/stages/measure"
	"github.com/user/stitchshot/pkg/widget"
)

const op = "capture"

// Request describes the destination of a stitched capture.
type Request struct {
	Width      int
	Height     int
	Background image.Image    // Optional, clamped behind the scaled column
	Logo       *pipeline.Logo // Optional, drawn below the last item
	Path       string
	Quality    int // 0-100
}

// Result describes a written capture.
type Result struct {
	Kind          string
	Path          string
	Format        ports.ImageFormat
	Quality       int
	Width         int
	Height        int
	FileSize      int64
	SourceWidth   int
	ItemCount     int
	Heights       []int
	ContentHeight int
	LogoExtent    int
	TotalHeight   int
	Scale         float64
	HasBackground bool
	HasLogo       bool
	DurationMs    int
}

// Capturer holds the adapters shared by every capture.
// It is safe to reuse across captures but not for concurrent captures of
// the same widget tree.
type Capturer struct {
	renderer  ports.Renderer
	fs        ports.FileSystem
	logger    ports.Logger
	sink      ports.DebugSink
	format    ports.ImageFormat
	fillColor color.Color
}

// Option configures a Capturer.
type Option func(*Capturer)

// WithRenderer sets the renderer used to allocate and encode canvases.
func WithRenderer(r ports.Renderer) Option {
	return func(c *Capturer) { c.renderer = r }
}

// WithFileSystem sets where encoded images are written.
func WithFileSystem(fs ports.FileSystem) Option {
	return func(c *Capturer) { c.fs = fs }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l ports.Logger) Option {
	return func(c *Capturer) { c.logger = l }
}

// WithDebugSink sets the sink receiving intermediate results.
func WithDebugSink(s ports.DebugSink) Option {
	return func(c *Capturer) { c.sink = s }
}

// WithFormat sets the output image format. JPEG is the default.
func WithFormat(f ports.ImageFormat) Option {
	return func(c *Capturer) { c.format = f }
}

// WithFillColor sets the colour canvases start with. A translucent colour
// is flattened onto white.
func WithFillColor(col color.Color) Option {
	return func(c *Capturer) { c.fillColor = pipeline.OpaqueFill(col) }
}

// New creates a Capturer. Without options it draws with gg, writes to the
// local file system, encodes JPEG and logs nothing.
func New(opts ...Option) *Capturer {
	c := &Capturer{
		renderer:  ggrenderer.New(),
		fs:        osfilesystem.New(),
		logger:    logger.NewNoop(),
		sink:      nullsink.New(),
		format:    ports.FormatJPEG,
		fillColor: pipeline.DefaultFillColor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CaptureView writes v as it is currently laid out, at its own size.
func (c *Capturer) CaptureView(ctx context.Context, v widget.View, path string, quality int) (Result, error) {
	content, err := viewcontent.NewView(v)
	if err != nil {
		return Result{}, pipeline.NewError(pipeline.KindPrecondition, op, err)
	}
	return c.CaptureContent(ctx, content, Request{
		Width:   v.Width(),
		Height:  v.Height(),
		Path:    path,
		Quality: quality,
	})
}

// CaptureScroll stitches the full scrollable extent of sv.
func (c *Capturer) CaptureScroll(ctx context.Context, sv *widget.ScrollView, req Request) (Result, error) {
	content, err := viewcontent.NewScroll(sv)
	if err != nil {
		return Result{}, pipeline.NewError(pipeline.KindPrecondition, op, err)
	}
	return c.CaptureContent(ctx, content, req)
}

// CaptureList stitches every adapter item of lv.
func (c *Capturer) CaptureList(ctx context.Context, lv *widget.ListView, req Request) (Result, error) {
	content, err := viewcontent.NewList(lv)
	if err != nil {
		return Result{}, pipeline.NewError(pipeline.KindPrecondition, op, err)
	}
	return c.CaptureContent(ctx, content, req)
}

// CaptureRecycler stitches every adapter item of rv. Item decorations are
// not added to the stitched height.
func (c *Capturer) CaptureRecycler(ctx context.Context, rv *widget.RecyclerView, req Request) (Result, error) {
	content, err := viewcontent.NewRecycler(rv)
	if err != nil {
		return Result{}, pipeline.NewError(pipeline.KindPrecondition, op, err)
	}
	return c.CaptureContent(ctx, content, req)
}

// CaptureContent stitches any item source.
func (c *Capturer) CaptureContent(ctx context.Context, content ports.Content, req Request) (Result, error) {
	config := orchestrator.Config{
		OutputPath: req.Path,
		Format:     c.format,
		Quality:    req.Quality,
		Width:      req.Width,
		Height:     req.Height,
		Background: req.Background,
		Logo:       req.Logo,
		FillColor:  c.fillColor,
	}

	run, err := c.orchestrator().Run(ctx, content, config)
	if err != nil {
		return Result{}, err
	}
	return newResult(run), nil
}

func (c *Capturer) orchestrator() *orchestrator.Orchestrator {
	return orchestrator.New(
		measure.NewStage(c.logger),
		layout.NewStage(),
		composite.NewStage(c.renderer, c.sink, c.logger),
		c.encodeStage(),
		c.sink,
		c.logger,
	)
}

func (c *Capturer) encodeStage() *encode.Stage {
	return encode.NewStage(c.renderer, c.fs, c.logger)
}

func newResult(run orchestrator.RunResult) Result {
	return Result{
		Kind:          run.Kind,
		Path:          run.OutputPath,
		Format:        run.Format,
		Quality:       run.Quality,
		Width:         run.Width,
		Height:        run.Height,
		FileSize:      run.FileSize,
		SourceWidth:   run.SourceWidth,
		ItemCount:     run.ItemCount,
		Heights:       run.Heights,
		ContentHeight: run.ContentHeight,
		LogoExtent:    run.LogoExtent,
		TotalHeight:   run.TotalHeight,
		Scale:         run.Scale,
		HasBackground: run.HasBackground,
		HasLogo:       run.HasLogo,
		DurationMs:    run.DurationMs,
	}
}
