package watermark

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/user/stitchshot/pkg/adapters/ggrenderer"
	"github.com/user/stitchshot/pkg/adapters/logger"
	"github.com/user/stitchshot/pkg/mocks"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(ggrenderer.New(), sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.WatermarkInput{
		Text:   "stitchshot",
		Width:  120,
		Height: 40,
		Theme:  pipeline.DefaultWatermarkTheme(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := result.Image.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 40 {
		t.Errorf("expected 120x40, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The corner lies outside the rounded badge.
	r, g, b, _ := result.Image.At(0, 0).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("expected white corner, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	// The edge midpoint is badge background.
	r, g, b, _ = result.Image.At(2, 20).RGBA()
	if r>>8 > 60 || g>>8 > 60 || b>>8 > 60 {
		t.Errorf("expected dark badge, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	if sink.Logo == nil {
		t.Error("expected logo debug output")
	}
}

func TestStage_ShrinksLongText(t *testing.T) {
	var sizes []float64
	renderer := &mocks.Renderer{
		CreateCanvasFunc: func(w, h int, bg color.Color) (ports.Canvas, error) {
			return &sizingCanvas{Canvas: mocks.NewCanvas(w, h), sizes: &sizes}, nil
		},
	}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.WatermarkInput{
		Text:   "watermark label",
		Width:  100,
		Height: 40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sizes) < 2 {
		t.Fatalf("expected the font to shrink, measured %v", sizes)
	}
	if sizes[0] != 24 {
		t.Errorf("expected initial size 24, got %.1f", sizes[0])
	}
	// The mock measures 0.6em per rune: 15 runes fit in 88px at 9px.
	if last := sizes[len(sizes)-1]; last != 9 {
		t.Errorf("expected final size 9, got %.1f", last)
	}
}

type sizingCanvas struct {
	*mocks.Canvas
	sizes *[]float64
}

func (c *sizingCanvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	*c.sizes = append(*c.sizes, style.FontSize)
	return c.Canvas.MeasureText(text, style)
}

func TestStage_InvalidSize(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, &mocks.NullSink{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.WatermarkInput{Text: "x", Width: 0, Height: 10})
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}
