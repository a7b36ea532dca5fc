package composite

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/stitchshot/pkg/adapters/logger"
	"github.com/user/stitchshot/pkg/mocks"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/stages/layout"
)

func newInput(content *mocks.Content, logo *pipeline.Logo) pipeline.CompositeInput {
	heights := append([]int(nil), content.Heights...)
	total := 0
	for _, h := range heights {
		total += h
	}
	return pipeline.CompositeInput{
		Content: content,
		Measure: pipeline.MeasureResult{Heights: heights, ContentHeight: total, SourceWidth: content.SourceWidth},
		Layout: layout.ComputeLayout(pipeline.LayoutInput{
			TargetWidth:   300,
			TargetHeight:  300,
			SourceWidth:   content.SourceWidth,
			ContentHeight: total,
			Logo:          logo,
		}),
		Logo: logo,
	}
}

func names(calls []mocks.Call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Name
	}
	return out
}

func TestStage_DrawOrder(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	input := newInput(mocks.NewContent(300, 100, 150, 200), nil)
	input.Background = image.NewRGBA(image.Rect(0, 0, 4, 4))

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	canvas := result.Canvas.(*mocks.Canvas)

	expected := []string{
		"FillRectWithImage", "Scale", "Save",
		"DrawRect", "Translate",
		"DrawRect", "Translate",
		"DrawRect", "Translate",
		"RestoreToCount",
	}
	got := names(canvas.Calls)
	if len(got) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("call %d: expected %s, got %s", i, expected[i], got[i])
		}
	}

	fill := canvas.CallsNamed("FillRectWithImage")[0]
	if fill.Args[0] != 50 || fill.Args[1] != 0 || fill.Args[2] != 200 || fill.Args[3] != 300 {
		t.Errorf("unexpected background band: %v", fill.Args)
	}

	scale := canvas.CallsNamed("Scale")[0]
	if scale.Args[2] != 150.0 || scale.Args[3] != 0.0 {
		t.Errorf("expected pivot (150, 0), got %v", scale.Args)
	}

	translates := canvas.CallsNamed("Translate")
	for i, h := range []float64{100, 150, 200} {
		if translates[i].Args[1] != h {
			t.Errorf("translate %d: expected %.0f, got %v", i, h, translates[i].Args[1])
		}
	}

	if result.ConsumedHeight != 450 {
		t.Errorf("expected consumed height 450, got %d", result.ConsumedHeight)
	}
	if len(result.Offsets) != 3 || result.Offsets[1] != 100 || result.Offsets[2] != 250 {
		t.Errorf("unexpected offsets: %v", result.Offsets)
	}
	if canvas.Depth() != 0 {
		t.Errorf("expected balanced save/restore, depth %d", canvas.Depth())
	}
	if canvas.Released() {
		t.Error("canvas must not be released on success")
	}
}

func TestStage_NoBackground(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), newInput(mocks.NewContent(300, 100), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(result.Canvas.(*mocks.Canvas).CallsNamed("FillRectWithImage")); n != 0 {
		t.Errorf("expected no background fill, got %d", n)
	}
}

func TestStage_FillColor(t *testing.T) {
	var gotFill color.Color
	renderer := &mocks.Renderer{
		CreateCanvasFunc: func(w, h int, bg color.Color) (ports.Canvas, error) {
			gotFill = bg
			return mocks.NewCanvas(w, h), nil
		},
	}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	if _, err := stage.Execute(context.Background(), newInput(mocks.NewContent(300, 100), nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFill != pipeline.DefaultFillColor {
		t.Errorf("expected default fill, got %v", gotFill)
	}

	input := newInput(mocks.NewContent(300, 100), nil)
	input.FillColor = color.Black
	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFill != color.Black {
		t.Errorf("expected black fill, got %v", gotFill)
	}

	input.FillColor = color.NRGBA{R: 0xff, A: 0x80}
	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := gotFill.RGBA()
	if a != 0xffff {
		t.Fatalf("expected opaque fill, got alpha %#x", a)
	}
	if r != 0xffff || g < 0x7e00 || g > 0x8100 || b != g {
		t.Errorf("expected half red over white, got %#x %#x %#x", r, g, b)
	}
}

func TestStage_Logo(t *testing.T) {
	renderer := &mocks.Renderer{}
	sink := mocks.NewDebugSink(true)
	stage := NewStage(renderer, sink, logger.NewNoop())

	logo := pipeline.NewLogo(image.NewRGBA(image.Rect(0, 0, 8, 8)), 50, 50, 10, 20)
	result, err := stage.Execute(context.Background(), newInput(mocks.NewContent(300, 100, 150, 200), logo))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	canvas := result.Canvas.(*mocks.Canvas)

	calls := canvas.CallsNamed("DrawImageScaled")
	if len(calls) != 1 {
		t.Fatalf("expected one logo draw, got %d", len(calls))
	}
	want := []interface{}{125, 460, 50, 50}
	for i := range want {
		if calls[0].Args[i] != want[i] {
			t.Errorf("logo arg %d: expected %v, got %v", i, want[i], calls[0].Args[i])
		}
	}

	// Logo is drawn after the item transform has been restored.
	last := canvas.Calls[len(canvas.Calls)-1]
	if last.Name != "DrawImageScaled" {
		t.Errorf("expected logo to be drawn last, got %s", last.Name)
	}

	if sink.Logo == nil || sink.Composite == nil {
		t.Error("expected logo and composite debug output")
	}
}

func TestStage_AllocationFailure(t *testing.T) {
	renderer := &mocks.Renderer{
		CreateCanvasFunc: func(w, h int, bg color.Color) (ports.Canvas, error) {
			return nil, errors.New("out of memory")
		},
	}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), newInput(mocks.NewContent(300, 100), nil))
	if !errors.Is(err, pipeline.ErrAllocation) {
		t.Errorf("expected allocation error, got %v", err)
	}
}

func TestStage_RenderFailureReleasesCanvas(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	content := mocks.NewContent(300, 100)
	content.RenderErr = errors.New("detached view")

	_, err := stage.Execute(context.Background(), newInput(content, nil))
	if pipeline.KindOf(err) != pipeline.KindPrecondition {
		t.Errorf("expected precondition error, got %v", err)
	}

	canvases := renderer.Canvases()
	if len(canvases) != 1 || !canvases[0].Released() {
		t.Error("expected the canvas to be released")
	}
}

func TestStage_HeightMismatchUsesRenderedHeight(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

	content := mocks.NewContent(300, 100, 100)
	content.RenderHeights = []int{120, 100}

	result, err := stage.Execute(context.Background(), newInput(content, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ConsumedHeight != 220 {
		t.Errorf("expected consumed height 220, got %d", result.ConsumedHeight)
	}
	if result.Offsets[1] != 120 {
		t.Errorf("expected second item at 120, got %d", result.Offsets[1])
	}
}

func TestStage_Cancelled(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, newInput(mocks.NewContent(300, 100), nil))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if !renderer.Canvases()[0].Released() {
		t.Error("expected the canvas to be released")
	}
}
