package measure

import (
	"context"
	"errors"
	"testing"

	"github.com/user/stitchshot/pkg/adapters/logger"
	"github.com/user/stitchshot/pkg/mocks"
	"github.com/user/stitchshot/pkg/pipeline"
)

func TestStage_Execute(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	content := mocks.NewContent(300, 100, 150, 200)

	result, err := stage.Execute(context.Background(), pipeline.MeasureInput{Content: content})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ContentHeight != 450 {
		t.Errorf("expected content height 450, got %d", result.ContentHeight)
	}
	if len(result.Heights) != 3 || result.Heights[1] != 150 {
		t.Errorf("unexpected heights: %v", result.Heights)
	}
	if result.SourceWidth != 300 {
		t.Errorf("expected source width 300, got %d", result.SourceWidth)
	}
	if result.Kind != "mock" {
		t.Errorf("expected kind mock, got %q", result.Kind)
	}
	if len(content.Measured) != 3 || content.Measured[0] != 0 || content.Measured[2] != 2 {
		t.Errorf("items not measured in order: %v", content.Measured)
	}
}

func TestStage_NoItems(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.MeasureInput{Content: mocks.NewContent(300)})
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestStage_NilContent(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.MeasureInput{})
	if pipeline.KindOf(err) != pipeline.KindPrecondition {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestStage_ZeroWidth(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.MeasureInput{Content: mocks.NewContent(0, 10)})
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestStage_MeasureError(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	cause := errors.New("boom")
	content := mocks.NewContent(300, 10)
	content.MeasureErr = cause

	_, err := stage.Execute(context.Background(), pipeline.MeasureInput{Content: content})
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if !errors.Is(err, pipeline.ErrPrecondition) {
		t.Errorf("expected precondition kind, got %v", err)
	}
}

func TestStage_Cancelled(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.MeasureInput{Content: mocks.NewContent(300, 10)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
