package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/user/stitchshot/pkg/adapters/filesink"
	"github.com/user/stitchshot/pkg/adapters/ggrenderer"
	"github.com/user/stitchshot/pkg/adapters/imageloader"
	"github.com/user/stitchshot/pkg/adapters/logger"
	"github.com/user/stitchshot/pkg/adapters/nullsink"
	"github.com/user/stitchshot/pkg/adapters/osfilesystem"
	"github.com/user/stitchshot/pkg/capture"
	"github.com/user/stitchshot/pkg/config"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/scene"
	"github.com/user/stitchshot/pkg/stages/watermark"
	"github.com/user/stitchshot/pkg/summarizer"
)

// app bundles the adapters one command invocation uses.
type app struct {
	cfg      config.Config
	log      ports.Logger
	fs       ports.FileSystem
	renderer ports.Renderer
	sink     ports.DebugSink
}

func newApp(c *cli.Context) (*app, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		fs:       osfilesystem.New(),
		renderer: ggrenderer.New(),
		sink:     nullsink.New(),
	}

	if cfg.Debug {
		if err := a.fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		a.sink = filesink.New(cfg.DebugDir, a.fs, a.renderer)
	}

	return a, nil
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("background") {
		cfg.Background.Image = c.String("background")
	}
	if c.IsSet("background-color") {
		cfg.Background.Color = c.String("background-color")
	}
	if c.IsSet("logo") {
		cfg.Logo.Image = c.String("logo")
	}
	if c.IsSet("logo-text") {
		cfg.Logo.Text = c.String("logo-text")
	}
	if c.IsSet("summary") {
		cfg.SummaryPath = c.String("summary")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, cfg.Validate()
}

func (a *app) capturer() *capture.Capturer {
	return capture.New(
		capture.WithRenderer(a.renderer),
		capture.WithFileSystem(a.fs),
		capture.WithLogger(a.log),
		capture.WithDebugSink(a.sink),
		capture.WithFormat(a.cfg.ImageFormat()),
		capture.WithFillColor(config.ColorOr(a.cfg.FillColor, pipeline.DefaultFillColor)),
	)
}

func runRender(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}

	ctx, cancel := withSignals(c.Context, a.log)
	defer cancel()

	s, err := scene.Build(a.cfg.Mode, a.cfg.Scene)
	if err != nil {
		return err
	}

	req, err := a.request(ctx)
	if err != nil {
		return err
	}

	capturer := a.capturer()

	var result capture.Result
	switch a.cfg.Mode {
	case config.ModeView:
		result, err = capturer.CaptureView(ctx, s.Root, req.Path, req.Quality)
	case config.ModeScroll:
		result, err = capturer.CaptureScroll(ctx, s.Scroll, req)
	case config.ModeList:
		result, err = capturer.CaptureList(ctx, s.List, req)
	case config.ModeRecycler:
		result, err = capturer.CaptureRecycler(ctx, s.Recycler, req)
	}
	if err != nil {
		return err
	}

	a.report(c, newSummary(result))
	return nil
}

func runPages(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}

	ctx, cancel := withSignals(c.Context, a.log)
	defer cancel()

	s, err := scene.Build(config.ModeScroll, a.cfg.Scene)
	if err != nil {
		return err
	}

	paths, err := a.capturer().CaptureScrollPages(ctx, s.Scroll, a.cfg.OutputPath, a.cfg.Quality)
	for _, path := range paths {
		fmt.Fprintln(c.App.Writer, path)
	}
	if err != nil {
		return err
	}

	sv := s.Scroll
	a.report(c, summarizer.NewBuilder().
		WithSource(summarizer.SourceInfo{
			Kind:          "scroll",
			Width:         sv.Width(),
			ItemCount:     1,
			ContentHeight: sv.Height() + sv.VerticalScrollRange(),
		}).
		WithGeometry(summarizer.GeometryInfo{
			TargetWidth:  sv.Width(),
			TargetHeight: sv.Height(),
			TotalHeight:  sv.Height() + sv.VerticalScrollRange(),
			Scale:        1,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:    paths[len(paths)-1],
			Format:  a.cfg.ImageFormat().String(),
			Quality: a.cfg.Quality,
			Pages:   len(paths),
		}).
		Build())
	return nil
}

// request resolves the background and logo for a stitched capture.
func (a *app) request(ctx context.Context) (capture.Request, error) {
	req := capture.Request{
		Width:   a.cfg.Width,
		Height:  a.cfg.Height,
		Path:    a.cfg.OutputPath,
		Quality: a.cfg.Quality,
	}

	loader := imageloader.New(a.fs, a.renderer)

	bg := a.cfg.Background
	switch {
	case bg.Image != "":
		img, err := loader.Load(bg.Image, 0, 0)
		if err != nil {
			return req, err
		}
		req.Background = img
	case bg.Color != "":
		col, err := config.ParseColor(bg.Color)
		if err != nil {
			return req, err
		}
		req.Background = solid(col)
	}

	lc := a.cfg.Logo
	var logoImage image.Image
	switch {
	case lc.Image != "":
		img, err := loader.Load(lc.Image, lc.Width, lc.Height)
		if err != nil {
			return req, err
		}
		logoImage = img
	case lc.Text != "":
		stage := watermark.NewStage(a.renderer, a.sink, a.log)
		theme := pipeline.DefaultWatermarkTheme()
		theme.BackgroundColor = config.ColorOr(lc.BackgroundColor, theme.BackgroundColor)
		theme.TextColor = config.ColorOr(lc.TextColor, theme.TextColor)
		out, err := stage.Execute(ctx, pipeline.WatermarkInput{
			Text:   lc.Text,
			Width:  lc.Width,
			Height: lc.Height,
			Theme:  theme,
		})
		if err != nil {
			return req, err
		}
		logoImage = out.Image
	}
	if logoImage != nil {
		req.Logo = pipeline.NewLogo(logoImage, lc.Width, lc.Height, lc.MarginTop, lc.MarginBottom)
	}

	return req, nil
}

// solid returns a one-pixel image; the clamped fill stretches it over the band.
func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}

func newSummary(r capture.Result) *summarizer.Summary {
	return summarizer.NewBuilder().
		WithSource(summarizer.SourceInfo{
			Kind:          r.Kind,
			Width:         r.SourceWidth,
			ItemCount:     r.ItemCount,
			Heights:       r.Heights,
			ContentHeight: r.ContentHeight,
		}).
		WithGeometry(summarizer.GeometryInfo{
			TargetWidth:   r.Width,
			TargetHeight:  r.Height,
			LogoExtent:    r.LogoExtent,
			TotalHeight:   r.TotalHeight,
			Scale:         r.Scale,
			HasBackground: r.HasBackground,
			HasLogo:       r.HasLogo,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:       r.Path,
			Format:     r.Format.String(),
			Quality:    r.Quality,
			FileSize:   r.FileSize,
			DurationMs: r.DurationMs,
		}).
		Build()
}

// report prints the boxed summary on a terminal and writes the Markdown file.
func (a *app) report(c *cli.Context, s *summarizer.Summary) {
	if !c.Bool("quiet") && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(c.App.Writer, summarizer.NewTerminalFormatter().Format(s))
	}

	if a.cfg.SummaryPath == "" {
		return
	}
	w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), a.fs)
	if err := w.Write(a.cfg.SummaryPath, s); err != nil {
		a.log.Error(l10n.F("Failed to write summary: %s", err))
		return
	}
	a.log.Info(l10n.F("Summary saved to %s", a.cfg.SummaryPath))
}
