package pipeline

import (
	"image"
	"image/color"

	"github.com/user/stitchshot/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Point is a position in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Logo is a watermark composited below the stitched content.
// It is immutable once constructed.
type Logo struct {
	image        image.Image
	width        int
	height       int
	marginTop    int
	marginBottom int
}

// NewLogo creates a Logo drawn at width x height with the given margins.
func NewLogo(img image.Image, width, height, marginTop, marginBottom int) *Logo {
	return &Logo{
		image:        img,
		width:        width,
		height:       height,
		marginTop:    marginTop,
		marginBottom: marginBottom,
	}
}

func (l *Logo) Image() image.Image { return l.image }
func (l *Logo) Width() int         { return l.width }
func (l *Logo) Height() int        { return l.height }
func (l *Logo) MarginTop() int     { return l.marginTop }
func (l *Logo) MarginBottom() int  { return l.marginBottom }

// Extent is the vertical space the logo adds to the content: margins plus height.
// A nil logo has no extent.
func (l *Logo) Extent() int {
	if l == nil {
		return 0
	}
	return l.marginTop + l.height + l.marginBottom
}

// DefaultFillColor is the opaque colour a destination canvas starts with.
var DefaultFillColor color.Color = color.White

// OpaqueFill returns c composited over white, so the canvas never carries
// alpha. A nil colour yields DefaultFillColor.
func OpaqueFill(c color.Color) color.Color {
	if c == nil {
		return DefaultFillColor
	}
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return c
	}
	rest := 0xffff - a
	return color.RGBA64{R: uint16(r + rest), G: uint16(g + rest), B: uint16(b + rest), A: 0xffff}
}

// =============================================================================
// Measure Stage Types
// =============================================================================

// MeasureInput contains the source whose items are measured.
type MeasureInput struct {
	Content ports.Content
}

// MeasureResult contains the natural height of every item.
type MeasureResult struct {
	Kind          string `json:"kind"`
	SourceWidth   int    `json:"source_width"`
	Heights       []int  `json:"heights"`
	ContentHeight int    `json:"content_height"` // sum of Heights
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for the composite geometry.
type LayoutInput struct {
	TargetWidth   int
	TargetHeight  int
	SourceWidth   int // Width of the captured container, used to centre the logo
	ContentHeight int
	Logo          *Logo // Optional
}

// LayoutResult contains the geometry shared by the composite stage and tests.
//
// All rectangles except BackgroundBand are in content coordinates, i.e.
// before the canvas scale is applied.
type LayoutResult struct {
	Target        Dimension `json:"target"`
	ContentHeight int       `json:"content_height"`
	LogoExtent    int       `json:"logo_extent"`
	TotalHeight   int       `json:"total_height"`
	Scale         float64   `json:"scale"`

	// Pivot is the fixed point of the scale: horizontal centre, top edge.
	Pivot Point `json:"pivot"`

	// BackgroundBand is the area, in final pixels, the scaled content covers.
	BackgroundBand Rectangle `json:"background_band"`

	// LogoArea is where the logo is drawn; zero when there is no logo.
	LogoArea Rectangle `json:"logo_area"`
	HasLogo  bool      `json:"has_logo"`
}

// =============================================================================
// Composite Stage Types
// =============================================================================

// CompositeInput contains everything needed to draw the destination canvas.
type CompositeInput struct {
	Content    ports.Content
	Measure    MeasureResult
	Layout     LayoutResult
	Background image.Image // Optional clamped fill behind the content
	Logo       *Logo       // Optional
	FillColor  color.Color // Defaults to DefaultFillColor
}

// CompositeResult holds the drawn canvas. The caller owns the canvas and
// must release it.
type CompositeResult struct {
	Canvas ports.Canvas

	// Offsets is the vertical content offset each item was drawn at.
	Offsets []int

	// ConsumedHeight is the sum of the translations applied between items.
	ConsumedHeight int
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for image encoding.
type EncodeInput struct {
	Image   image.Image
	Path    string
	Format  ports.ImageFormat
	Quality int // 0-100, ignored for PNG
}

// EncodeResult describes the written file.
type EncodeResult struct {
	Path     string
	FileSize int64
}

// =============================================================================
// Watermark Stage Types
// =============================================================================

// WatermarkInput contains parameters for a generated text logo.
type WatermarkInput struct {
	Text   string
	Width  int
	Height int
	Theme  WatermarkTheme
}

// WatermarkTheme defines watermark styling.
type WatermarkTheme struct {
	BackgroundColor color.Color
	TextColor       color.Color
	CornerRadius    int
}

// DefaultWatermarkTheme returns a default watermark theme.
func DefaultWatermarkTheme() WatermarkTheme {
	return WatermarkTheme{
		BackgroundColor: color.RGBA{R: 45, G: 45, B: 45, A: 255},
		TextColor:       color.White,
		CornerRadius:    6,
	}
}

// WatermarkResult contains the generated logo image.
type WatermarkResult struct {
	Image image.Image
}
