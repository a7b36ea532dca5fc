// Package encode implements the image encoding and output stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/stitchshot/pkg/pipeline"
	"github.com/user/stitchshot/pkg/ports"
)

const op = "encode"

// Stage encodes the composed image and writes it to the output path.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes input.Image and replaces the file at input.Path.
// Encoding failures are KindEncode, write failures KindIO.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.Image == nil {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "no image to encode")
	}
	if input.Path == "" {
		return result, pipeline.Errorf(pipeline.KindPrecondition, op, "no output path")
	}

	select {
	case <-ctx.Done():
		return result, ctx.Err()
	default:
	}

	quality := clampQuality(input.Quality)
	if quality != input.Quality {
		s.logger.Debug("Quality %d clamped to %d", input.Quality, quality)
	}

	data, err := s.renderer.EncodeImage(input.Image, input.Format, quality)
	if err != nil {
		return result, pipeline.NewError(pipeline.KindEncode, op, fmt.Errorf("encode %s: %w", input.Format, err))
	}
	s.logger.Debug("Encoded %s: %d bytes", input.Format, len(data))

	if err := s.fs.WriteFile(input.Path, data); err != nil {
		return result, pipeline.NewError(pipeline.KindIO, op, fmt.Errorf("write %s: %w", input.Path, err))
	}

	result.Path = input.Path
	result.FileSize = int64(len(data))
	return result, nil
}

// clampQuality maps the caller's quality onto the 0-100 range.
func clampQuality(q int) int {
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}
