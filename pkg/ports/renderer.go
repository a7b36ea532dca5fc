package ports

import (
	"image"
	"image/color"
)

// MaxCanvasPixels bounds the size of a single destination canvas.
// Requests above it fail with an allocation error instead of exhausting memory.
const MaxCanvasPixels = 64 * 1024 * 1024

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas allocates a new opaque drawing canvas filled with bg.
	// It returns an error when the pixel buffer cannot be allocated.
	CreateCanvas(width, height int, bg color.Color) (Canvas, error)

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations for compositing images.
//
// Coordinates passed to drawing calls are transformed by the current
// matrix, which is modified by Scale and Translate and saved/restored
// with Save and RestoreToCount.
type Canvas interface {
	// Save pushes the current transform and returns the depth before the push.
	Save() int

	// Restore pops one saved transform.
	Restore()

	// RestoreToCount pops saved transforms until the depth equals count.
	RestoreToCount(count int)

	// Scale scales the canvas around the pivot (px, py).
	Scale(sx, sy, px, py float64)

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)

	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawImageScaled draws an image scaled to the specified dimensions.
	DrawImageScaled(img image.Image, x, y, width, height int)

	// FillRectWithImage fills a rectangle with img used as a clamped shader:
	// the image is anchored at the canvas origin and its edge pixels extend
	// beyond its bounds.
	FillRectWithImage(img image.Image, x, y, w, h int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// DrawRectStroke draws a rectangle outline.
	DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64)

	// DrawText draws text at the specified position.
	DrawText(text string, x, y int, style TextStyle)

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// DrawLine draws a line between two points.
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)

	// Size returns the pixel dimensions of the canvas.
	Size() (width, height int)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image

	// Release frees the backing pixel buffer. The canvas must not be used afterwards.
	Release()
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string
	Color    color.Color
	Align    TextAlign
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

// String returns the lowercase name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses a format name. Unknown names map to JPEG.
func ParseImageFormat(s string) ImageFormat {
	switch s {
	case "png":
		return FormatPNG
	default:
		return FormatJPEG
	}
}
