// Package measure implements the item measurement stage.
package measure

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
)

const op = "measure"

// Stage asks the content for the natural height of every item.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new measure stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("measure"),
	}
}

// Execute measures every item in index order.
func (s *Stage) Execute(ctx context.Context, input pipeline.MeasureInput) (pipeline.MeasureResult, error) {
	result := pipeline.MeasureResult{}

	if input.Content == nil {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "no content")
	}

	count := input.Content.ItemCount()
	if count <= 0 {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "%s has no items", input.Content.Kind())
	}
	if input.Content.Width() <= 0 {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "%s has zero width", input.Content.Kind())
	}

	heights := make([]int, count)
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		h, err := input.Content.MeasureItem(i)
		if err != nil {
			return result, pipeline.NewError(pipeline.KindPrecondition, op, fmt.Errorf("item %d: %w", i, err))
		}
		if h < 0 {
			return result, pipeline.Errorf(pipeline.KindPrecondition, op, "item %d has negative height %d", i, h)
		}
		heights[i] = h
		s.logger.Debug("Item %d: %d px", i, h)
	}

	result.Kind = input.Content.Kind()
	result.SourceWidth = input.Content.Width()
	result.Heights = heights
	result.ContentHeight = lo.Sum(heights)

	s.logger.Debug("Measured %d items, %d px in total", count, result.ContentHeight)
	return result, nil
}
