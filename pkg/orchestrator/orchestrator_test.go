package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/user/stitchshot/pkg/adapters/logger"
	"github.com/user/stitchshot/pkg/mocks"
	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/stages/composite"
	"github.com/user/stitchshot/pkg/stages/encode"
	"github.com/user/stitchshot/pkg/stages/layout"
	"github.com/user/stitchshot/pkg/stages/measure"
)

// mockMeasureStage is a mock for the measure stage.
type mockMeasureStage struct {
	result pipeline.MeasureResult
	err    error
}

func (m *mockMeasureStage) Execute(ctx context.Context, input pipeline.MeasureInput) (pipeline.MeasureResult, error) {
	if m.err != nil {
		return pipeline.MeasureResult{}, m.err
	}
	return m.result, nil
}

// mockLayoutStage is a mock for the layout stage.
type mockLayoutStage struct {
	input  pipeline.LayoutInput
	result pipeline.LayoutResult
	err    error
}

func (m *mockLayoutStage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.LayoutResult{}, m.err
	}
	return m.result, nil
}

// mockCompositeStage is a mock for the composite stage.
type mockCompositeStage struct {
	canvas *mocks.Canvas
	err    error
}

func (m *mockCompositeStage) Execute(ctx context.Context, input pipeline.CompositeInput) (pipeline.CompositeResult, error) {
	if m.err != nil {
		return pipeline.CompositeResult{}, m.err
	}
	return pipeline.CompositeResult{Canvas: m.canvas, ConsumedHeight: input.Measure.ContentHeight}, nil
}

// mockEncodeStage is a mock for the encode stage.
type mockEncodeStage struct {
	input pipeline.EncodeInput
	err   error
}

func (m *mockEncodeStage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.EncodeResult{}, m.err
	}
	return pipeline.EncodeResult{Path: input.Path, FileSize: 1234}, nil
}

func testConfig() Config {
	return Config{
		OutputPath: "/out/capture.jpg",
		Format:     ports.FormatJPEG,
		Quality:    85,
		Width:      300,
		Height:     300,
		FillColor:  pipeline.DefaultFillColor,
	}
}

func TestOrchestrator_Run(t *testing.T) {
	measureStage := &mockMeasureStage{result: pipeline.MeasureResult{
		Kind:          "list",
		SourceWidth:   300,
		Heights:       []int{100, 150, 200},
		ContentHeight: 450,
	}}
	layoutStage := &mockLayoutStage{result: pipeline.LayoutResult{TotalHeight: 450, Scale: 300.0 / 450.0}}
	compositeStage := &mockCompositeStage{canvas: mocks.NewCanvas(300, 300)}
	encodeStage := &mockEncodeStage{}
	sink := mocks.NewDebugSink(true)

	orch := New(measureStage, layoutStage, compositeStage, encodeStage, sink, logger.NewNoop())

	result, err := orch.Run(context.Background(), mocks.NewContent(300, 100, 150, 200), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if layoutStage.input.ContentHeight != 450 || layoutStage.input.TargetWidth != 300 {
		t.Errorf("unexpected layout input: %+v", layoutStage.input)
	}
	if encodeStage.input.Quality != 85 || encodeStage.input.Path != "/out/capture.jpg" {
		t.Errorf("unexpected encode input: %+v", encodeStage.input)
	}
	if encodeStage.input.Image == nil {
		t.Error("expected the canvas image to be encoded")
	}
	if !compositeStage.canvas.Released() {
		t.Error("expected the canvas to be released")
	}

	if result.ItemCount != 3 || result.ContentHeight != 450 || result.TotalHeight != 450 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.FileSize != 1234 || result.OutputPath != "/out/capture.jpg" {
		t.Errorf("unexpected output in result: %+v", result)
	}
	if result.Kind != "list" {
		t.Errorf("expected kind list, got %q", result.Kind)
	}

	if sink.MeasureJSON == nil || sink.LayoutJSON == nil || sink.LayoutSVG == nil {
		t.Error("expected measure and layout debug output")
	}
}

func TestOrchestrator_StageErrors(t *testing.T) {
	measureErr := pipeline.Errorf(pipeline.KindPrecondition, "measure", "no items")
	layoutErr := pipeline.Errorf(pipeline.KindPrecondition, "layout", "nothing to draw")
	compositeErr := pipeline.Errorf(pipeline.KindAllocation, "composite", "too large")
	encodeErr := pipeline.Errorf(pipeline.KindIO, "encode", "disk full")

	tests := []struct {
		name      string
		measure   error
		layout    error
		composite error
		encode    error
		want      error
		released  bool
	}{
		{"measure", measureErr, nil, nil, nil, pipeline.ErrPrecondition, false},
		{"layout", nil, layoutErr, nil, nil, pipeline.ErrPrecondition, false},
		{"composite", nil, nil, compositeErr, nil, pipeline.ErrAllocation, false},
		{"encode", nil, nil, nil, encodeErr, pipeline.ErrIO, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := mocks.NewCanvas(300, 300)
			orch := New(
				&mockMeasureStage{
					result: pipeline.MeasureResult{Heights: []int{10}, ContentHeight: 10},
					err:    tt.measure,
				},
				&mockLayoutStage{result: pipeline.LayoutResult{TotalHeight: 10, Scale: 30}, err: tt.layout},
				&mockCompositeStage{canvas: canvas, err: tt.composite},
				&mockEncodeStage{err: tt.encode},
				&mocks.NullSink{},
				logger.NewNoop(),
			)

			_, err := orch.Run(context.Background(), mocks.NewContent(300, 10), testConfig())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if canvas.Released() != tt.released {
				t.Errorf("expected released=%v, got %v", tt.released, canvas.Released())
			}
		})
	}
}

func TestOrchestrator_InvalidQuality(t *testing.T) {
	orch := New(&mockMeasureStage{}, &mockLayoutStage{}, &mockCompositeStage{}, &mockEncodeStage{},
		&mocks.NullSink{}, logger.NewNoop())

	for _, q := range []int{-1, 101} {
		config := testConfig()
		config.Quality = q
		_, err := orch.Run(context.Background(), mocks.NewContent(300, 10), config)
		if !errors.Is(err, pipeline.ErrPrecondition) {
			t.Errorf("quality %d: expected precondition error, got %v", q, err)
		}
	}
}

func TestOrchestrator_RealStages(t *testing.T) {
	renderer := &mocks.Renderer{}
	fs := mocks.NewFileSystem()
	sink := &mocks.NullSink{}
	log := logger.NewNoop()

	orch := New(
		measure.NewStage(log),
		layout.NewStage(),
		composite.NewStage(renderer, sink, log),
		encode.NewStage(renderer, fs, log),
		sink,
		log,
	)

	result, err := orch.Run(context.Background(), mocks.NewContent(300, 100, 150, 200), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ConsumedHeight != 450 {
		t.Errorf("expected consumed height 450, got %d", result.ConsumedHeight)
	}
	if _, ok := fs.GetFile("/out/capture.jpg"); !ok {
		t.Error("expected the output file to be written")
	}
	if c := renderer.Canvases(); len(c) != 1 || !c[0].Released() {
		t.Error("expected exactly one canvas, released")
	}
}

func TestOrchestrator_NoItemsWritesNothing(t *testing.T) {
	renderer := &mocks.Renderer{}
	fs := mocks.NewFileSystem()
	log := logger.NewNoop()

	orch := New(
		measure.NewStage(log),
		layout.NewStage(),
		composite.NewStage(renderer, &mocks.NullSink{}, log),
		encode.NewStage(renderer, fs, log),
		&mocks.NullSink{},
		log,
	)

	_, err := orch.Run(context.Background(), mocks.NewContent(300), testConfig())
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected no file to be written")
	}
	if len(renderer.Canvases()) != 0 {
		t.Error("expected no canvas to be allocated")
	}
}
