package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveMeasureJSON saves the per-item measurement as JSON.
	SaveMeasureJSON(data []byte) error

	// SaveLayoutJSON saves the layout calculation result as JSON.
	SaveLayoutJSON(data []byte) error

	// SaveLayoutSVG saves the layout visualization as SVG.
	SaveLayoutSVG(data []byte) error

	// SaveLogo saves the logo image that was composited.
	SaveLogo(img image.Image) error

	// SaveComposite saves the composed image before encoding.
	SaveComposite(img image.Image) error

	// SavePage saves one page of a paged capture.
	SavePage(index int, img image.Image) error
}
