// Package composite implements the stitching stage: every item is drawn
// top to bottom onto one scaled destination canvas.
package composite

import (
	"context"
	"fmt"

	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
)

const op = "composite"

// Stage draws the background band, the content items and the logo.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new composite stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("composite"),
	}
}

// Execute draws the destination canvas. On success the caller owns
// result.Canvas and must release it; on failure it has been released.
func (s *Stage) Execute(ctx context.Context, input pipeline.CompositeInput) (pipeline.CompositeResult, error) {
	result := pipeline.CompositeResult{}
	layout := input.Layout

	if input.Content == nil {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "no content")
	}

	fill := pipeline.OpaqueFill(input.FillColor)

	canvas, err := s.renderer.CreateCanvas(layout.Target.Width, layout.Target.Height, fill)
	if err != nil {
		return result, pipeline.NewError(pipeline.KindAllocation, op, err)
	}

	s.logger.Debug("Canvas %dx%d, scale %.4f about (%.0f, %.0f)",
		layout.Target.Width, layout.Target.Height, layout.Scale, layout.Pivot.X, layout.Pivot.Y)

	// Background goes on before the scale, in destination pixels.
	if input.Background != nil {
		if input.Background.Bounds().Empty() {
			s.logger.Warn("Background image is empty, skipping")
		} else {
			band := layout.BackgroundBand
			canvas.FillRectWithImage(input.Background, band.X, band.Y, band.Width, band.Height)
		}
	}

	canvas.Scale(layout.Scale, layout.Scale, layout.Pivot.X, layout.Pivot.Y)

	offsets, consumed, err := s.drawItems(ctx, canvas, input)
	if err != nil {
		canvas.Release()
		return result, err
	}

	if layout.HasLogo && input.Logo != nil && input.Logo.Image() != nil {
		area := layout.LogoArea
		canvas.DrawImageScaled(input.Logo.Image(), area.X, area.Y, area.Width, area.Height)
		if s.sink.Enabled() {
			s.sink.SaveLogo(input.Logo.Image())
		}
	}

	if s.sink.Enabled() {
		s.sink.SaveComposite(canvas.ToImage())
	}

	result.Canvas = canvas
	result.Offsets = offsets
	result.ConsumedHeight = consumed
	return result, nil
}

// drawItems renders every item in order, translating the canvas down by
// each item's rendered height. The canvas transform is restored before
// returning.
func (s *Stage) drawItems(ctx context.Context, canvas ports.Canvas, input pipeline.CompositeInput) ([]int, int, error) {
	count := input.Content.ItemCount()
	offsets := make([]int, 0, count)
	y := 0

	saved := canvas.Save()
	defer canvas.RestoreToCount(saved)

	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		h, err := input.Content.RenderItem(i, canvas)
		if err != nil {
			return nil, 0, pipeline.NewError(pipeline.KindPrecondition, op, fmt.Errorf("render item %d: %w", i, err))
		}
		if i < len(input.Measure.Heights) && h != input.Measure.Heights[i] {
			s.logger.Warn("Item %d rendered at %d px but measured %d px", i, h, input.Measure.Heights[i])
		}

		offsets = append(offsets, y)
		canvas.Translate(0, float64(h))
		y += h
	}

	return offsets, y, nil
}
