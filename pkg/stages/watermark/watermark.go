// Package watermark implements the text logo generation stage.
package watermark

import (
	"context"

	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
)

const (
	op = "watermark"

	// Horizontal room left on each side of the text.
	textPadding = 6
	minFontSize = 6.0
)

// Stage renders a text label into a logo image.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new watermark stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("watermark"),
	}
}

// Execute draws input.Text centred on a rounded badge of the requested size.
// The font starts at 60% of the badge height and shrinks until the text fits.
func (s *Stage) Execute(ctx context.Context, input pipeline.WatermarkInput) (pipeline.WatermarkResult, error) {
	result := pipeline.WatermarkResult{}

	if input.Width <= 0 || input.Height <= 0 {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "invalid logo size %dx%d", input.Width, input.Height)
	}

	s.logger.Debug("Generating text logo: %dx%d", input.Width, input.Height)

	theme := input.Theme
	if theme.TextColor == nil {
		theme = pipeline.DefaultWatermarkTheme()
	}

	canvas, err := s.renderer.CreateCanvas(input.Width, input.Height, theme.BackgroundColor)
	if err != nil {
		return result, pipeline.NewError(pipeline.KindAllocation, op, err)
	}
	defer canvas.Release()

	if theme.CornerRadius > 0 {
		// Clear the corners and draw the badge on top.
		canvas.DrawRect(0, 0, input.Width, input.Height, pipeline.DefaultFillColor)
		canvas.DrawRoundedRect(0, 0, input.Width, input.Height, theme.CornerRadius, theme.BackgroundColor)
	}

	if input.Text != "" {
		style := ports.TextStyle{
			FontSize: float64(input.Height) * 0.6,
			Color:    theme.TextColor,
			Align:    ports.AlignCenter,
		}
		maxWidth := float64(input.Width - 2*textPadding)
		for style.FontSize > minFontSize {
			if w, _ := canvas.MeasureText(input.Text, style); w <= maxWidth {
				break
			}
			style.FontSize--
		}
		canvas.DrawText(input.Text, input.Width/2, input.Height/2, style)
	}

	result.Image = canvas.ToImage()

	if s.sink.Enabled() {
		s.sink.SaveLogo(result.Image)
	}

	return result, nil
}
