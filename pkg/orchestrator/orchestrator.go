// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/stages/layout"
)

// Config describes one capture.
type Config struct {
	// Output
	OutputPath string
	Format     ports.ImageFormat
	Quality    int // 0-100

	// Destination size
	Width  int
	Height int

	// Decoration
	Background image.Image    // Optional clamped fill behind the content
	Logo       *pipeline.Logo // Optional
	FillColor  color.Color    // Defaults to pipeline.DefaultFillColor
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	measureStage   pipeline.Stage[pipeline.MeasureInput, pipeline.MeasureResult]
	layoutStage    pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	measureStage pipeline.Stage[pipeline.MeasureInput, pipeline.MeasureResult],
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		measureStage:   measureStage,
		layoutStage:    layoutStage,
		compositeStage: compositeStage,
		encodeStage:    encodeStage,
		sink:           sink,
		logger:         logger,
	}
}

// Run measures content, stitches it onto one canvas and writes the image.
// The canvas is released before Run returns, whatever the outcome.
func (o *Orchestrator) Run(ctx context.Context, content ports.Content, config Config) (RunResult, error) {
	started := time.Now()

	if config.Quality < 0 || config.Quality > 100 {
		return RunResult{}, pipeline.Errorf(pipeline.KindPrecondition, "capture", "quality %d outside 0-100", config.Quality)
	}
	if content == nil {
		return RunResult{}, pipeline.Errorf(pipeline.KindPrecondition, "capture", "no content")
	}

	o.logger.Info(l10n.F("Capturing %s with %d items", content.Kind(), content.ItemCount()))

	// 1. First pass: item heights
	measured, err := o.measureStage.Execute(ctx, pipeline.MeasureInput{Content: content})
	if err != nil {
		o.logger.Error(l10n.F("Failed to measure content: %s", err))
		return RunResult{}, err
	}
	o.logger.Info(l10n.F("Content measured: %d items, %d px", len(measured.Heights), measured.ContentHeight))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(measured, "", "  "); err == nil {
			o.sink.SaveMeasureJSON(data)
		}
	}

	// 2. Geometry
	geometry, err := o.layoutStage.Execute(ctx, o.buildLayoutInput(config, measured))
	if err != nil {
		o.logger.Error(l10n.F("Failed to calculate layout: %s", err))
		return RunResult{}, err
	}
	o.logger.Info(l10n.F("Layout calculated: %d px total, scale %.3f", geometry.TotalHeight, geometry.Scale))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(geometry, "", "  "); err == nil {
			o.sink.SaveLayoutJSON(data)
		}
		o.sink.SaveLayoutSVG(layout.RenderSVG(geometry, measured.Heights, measured.SourceWidth))
	}

	// 3. Second pass: draw
	o.logger.Info(l10n.F("Compositing %dx%d image", config.Width, config.Height))
	composed, err := o.compositeStage.Execute(ctx, o.buildCompositeInput(config, content, measured, geometry))
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite image: %s", err))
		return RunResult{}, err
	}
	defer composed.Canvas.Release()

	// 4. Encode and write
	o.logger.Info(l10n.F("Encoding %s with quality %d", config.Format, config.Quality))
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Image:   composed.Canvas.ToImage(),
		Path:    config.OutputPath,
		Format:  config.Format,
		Quality: config.Quality,
	})
	if err != nil {
		if pipeline.KindOf(err) == pipeline.KindIO {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
		} else {
			o.logger.Error(l10n.F("Failed to encode image: %s", err))
		}
		return RunResult{}, err
	}

	o.logger.Info(l10n.F("Output saved to %s (%d bytes)", encoded.Path, encoded.FileSize))
	o.logger.Info(l10n.T("Capture completed successfully"))

	return RunResult{
		Kind:           measured.Kind,
		SourceWidth:    measured.SourceWidth,
		ItemCount:      len(measured.Heights),
		Heights:        measured.Heights,
		ContentHeight:  measured.ContentHeight,
		LogoExtent:     geometry.LogoExtent,
		TotalHeight:    geometry.TotalHeight,
		Scale:          geometry.Scale,
		ConsumedHeight: composed.ConsumedHeight,
		HasBackground:  config.Background != nil,
		HasLogo:        geometry.HasLogo,
		OutputPath:     encoded.Path,
		Format:         config.Format,
		Quality:        config.Quality,
		Width:          config.Width,
		Height:         config.Height,
		FileSize:       encoded.FileSize,
		DurationMs:     int(time.Since(started).Milliseconds()),
	}, nil
}

func (o *Orchestrator) buildLayoutInput(config Config, measured pipeline.MeasureResult) pipeline.LayoutInput {
	return pipeline.LayoutInput{
		TargetWidth:   config.Width,
		TargetHeight:  config.Height,
		SourceWidth:   measured.SourceWidth,
		ContentHeight: measured.ContentHeight,
		Logo:          config.Logo,
	}
}

func (o *Orchestrator) buildCompositeInput(
	config Config,
	content ports.Content,
	measured pipeline.MeasureResult,
	geometry pipeline.LayoutResult,
) pipeline.CompositeInput {
	return pipeline.CompositeInput{
		Content:    content,
		Measure:    measured,
		Layout:     geometry,
		Background: config.Background,
		Logo:       config.Logo,
		FillColor:  config.FillColor,
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Source information
	Kind          string
	SourceWidth   int
	ItemCount     int
	Heights       []int
	ContentHeight int

	// Geometry
	LogoExtent     int
	TotalHeight    int
	Scale          float64
	ConsumedHeight int // Sum of rendered heights in the draw pass
	HasBackground  bool
	HasLogo        bool

	// Output information
	OutputPath string
	Format     ports.ImageFormat
	Quality    int
	Width      int
	Height     int
	FileSize   int64

	DurationMs int
}
