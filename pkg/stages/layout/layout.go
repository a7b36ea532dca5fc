// Package layout implements the composite geometry stage.
package layout

import (
	"context"

	"github.com/user/stitchshot/pkg/pipeline"
)

const op = "layout"

// Stage calculates where the content, background and logo land on the
// destination canvas. This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute validates the input and calculates the layout.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	if input.TargetWidth <= 0 || input.TargetHeight <= 0 {
		return pipeline.LayoutResult{}, pipeline.Errorf(pipeline.KindPrecondition, op,
			"invalid target size %dx%d", input.TargetWidth, input.TargetHeight)
	}
	if input.ContentHeight+input.Logo.Extent() <= 0 {
		return pipeline.LayoutResult{}, pipeline.Errorf(pipeline.KindPrecondition, op, "nothing to draw")
	}
	return ComputeLayout(input), nil
}

// ComputeLayout performs the layout calculation.
// This is exposed as a standalone function for testing and reuse.
//
// The whole content column plus the logo extent is scaled uniformly so its
// height fills the target height. The scale pivots on the top edge at the
// horizontal centre, so a column as wide as the target shrinks towards the
// middle and leaves equal side margins.
//
// The caller must ensure the total height is positive.
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutResult {
	extent := input.Logo.Extent()
	total := input.ContentHeight + extent
	scale := float64(input.TargetHeight) / float64(total)

	// Band and pivot share the integer centre.
	centre := float64(input.TargetWidth / 2)
	w := float64(input.TargetWidth)
	bandLeft := int(centre - w*scale/2)
	bandRight := int(w*scale + float64(bandLeft))

	result := pipeline.LayoutResult{
		Target: pipeline.Dimension{
			Width:  input.TargetWidth,
			Height: input.TargetHeight,
		},
		ContentHeight: input.ContentHeight,
		LogoExtent:    extent,
		TotalHeight:   total,
		Scale:         scale,
		Pivot: pipeline.Point{
			X: centre,
			Y: 0,
		},
		BackgroundBand: pipeline.Rectangle{
			X:      bandLeft,
			Y:      0,
			Width:  bandRight - bandLeft,
			Height: input.TargetHeight,
		},
	}

	if input.Logo != nil {
		// Centred on the source width and anchored to the bottom of the
		// total height, in content coordinates.
		left := input.SourceWidth/2 - input.Logo.Width()/2
		bottom := total - input.Logo.MarginBottom()
		result.LogoArea = pipeline.Rectangle{
			X:      left,
			Y:      bottom - input.Logo.Height(),
			Width:  input.Logo.Width(),
			Height: input.Logo.Height(),
		}
		result.HasLogo = true
	}

	return result
}

// ToCanvas maps a point in content coordinates to destination pixels.
func ToCanvas(layout pipeline.LayoutResult, x, y float64) (float64, float64) {
	return layout.Pivot.X + (x-layout.Pivot.X)*layout.Scale, layout.Pivot.Y + (y-layout.Pivot.Y)*layout.Scale
}
