// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/stitchshot/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	maxPixels int
}

// New creates a new Renderer limited to ports.MaxCanvasPixels per canvas.
func New() *Renderer {
	return &Renderer{maxPixels: ports.MaxCanvasPixels}
}

// NewWithLimit creates a Renderer that refuses canvases above maxPixels.
func NewWithLimit(maxPixels int) *Renderer {
	return &Renderer{maxPixels: maxPixels}
}

// CreateCanvas allocates a new drawing canvas filled with bg.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) (canvas ports.Canvas, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if r.maxPixels > 0 && int64(width)*int64(height) > int64(r.maxPixels) {
		return nil, fmt.Errorf("canvas %dx%d exceeds %d pixels", width, height, r.maxPixels)
	}

	// image.NewRGBA panics on sizes the runtime cannot allocate.
	defer func() {
		if rec := recover(); rec != nil {
			canvas = nil
			err = fmt.Errorf("allocate canvas %dx%d: %v", width, height, rec)
		}
	}()

	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}, nil
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		// Try to auto-detect
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: clampQuality(quality)}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// jpeg.Encode clamps too, but 0 means "default" there.
func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc    *gg.Context
	depth int
}

// Save pushes the current transform.
func (c *Canvas) Save() int {
	count := c.depth
	c.dc.Push()
	c.depth++
	return count
}

// Restore pops one saved transform.
func (c *Canvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.dc.Pop()
	c.depth--
}

// RestoreToCount pops saved transforms until the depth equals count.
func (c *Canvas) RestoreToCount(count int) {
	for c.depth > count && c.depth > 0 {
		c.Restore()
	}
}

// Scale scales the canvas around the pivot (px, py).
func (c *Canvas) Scale(sx, sy, px, py float64) {
	c.dc.ScaleAbout(sx, sy, px, py)
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageScaled draws an image scaled to the specified dimensions.
func (c *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()

	scaleX := float64(width) / float64(bounds.Dx())
	scaleY := float64(height) / float64(bounds.Dy())

	c.dc.Translate(float64(x), float64(y))
	c.dc.Scale(scaleX, scaleY)
	c.dc.DrawImage(img, -bounds.Min.X, -bounds.Min.Y)
}

// FillRectWithImage fills a rectangle using img as a clamped pattern.
func (c *Canvas) FillRectWithImage(img image.Image, x, y, w, h int) {
	if w <= 0 || h <= 0 || img.Bounds().Empty() {
		return
	}
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.SetFillStyle(&clampPattern{img: img})
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawRoundedRect draws a filled rounded rectangle.
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.dc.Fill()
}

// DrawRectStroke draws a rectangle outline.
func (c *Canvas) DrawRectStroke(x, y, w, h int, col color.Color, strokeWidth float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Stroke()
}

// DrawText draws text vertically centred on y.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.applyFont(style)
	c.dc.SetColor(style.Color)

	ax := 0.0
	switch style.Align {
	case ports.AlignCenter:
		ax = 0.5
	case ports.AlignRight:
		ax = 1.0
	}

	c.dc.DrawStringAnchored(text, float64(x), float64(y), ax, 0.5)
}

// MeasureText returns the width and height of the text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	c.applyFont(style)
	return c.dc.MeasureString(text)
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

// Size returns the pixel dimensions of the canvas.
func (c *Canvas) Size() (int, int) {
	if c.dc == nil {
		return 0, 0
	}
	return c.dc.Width(), c.dc.Height()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// Release drops the gg context so its pixel buffer can be reclaimed.
func (c *Canvas) Release() {
	c.dc = nil
	c.depth = 0
}

func (c *Canvas) applyFont(style ports.TextStyle) {
	if style.FontSize <= 0 {
		return
	}
	if style.FontPath != "" {
		if err := c.dc.LoadFontFace(style.FontPath, style.FontSize); err == nil {
			return
		}
	}
	if face, err := defaultFace(style.FontSize); err == nil {
		c.dc.SetFontFace(face)
	}
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

// defaultFace returns Go Regular at size points.
func defaultFace(size float64) (font.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, goRegularErr
	}
	return opentype.NewFace(goRegular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// clampPattern samples img at device coordinates, extending edge pixels.
type clampPattern struct {
	img image.Image
}

func (p *clampPattern) ColorAt(x, y int) color.Color {
	b := p.img.Bounds()
	x += b.Min.X
	y += b.Min.Y
	if x < b.Min.X {
		x = b.Min.X
	} else if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y < b.Min.Y {
		y = b.Min.Y
	} else if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	return p.img.At(x, y)
}
