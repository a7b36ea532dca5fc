package mocks

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/user/stitchshot/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) (ports.Canvas, error)
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	mu       sync.Mutex
	canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) (ports.Canvas, error) {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := NewCanvas(width, height)
	m.mu.Lock()
	m.canvases = append(m.canvases, c)
	m.mu.Unlock()
	return c, nil
}

// Canvases returns the canvases created by the default CreateCanvas.
func (m *Renderer) Canvases() []*Canvas {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Canvas(nil), m.canvases...)
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// Call is one recorded canvas operation.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Canvas is a mock implementation of ports.Canvas that records every call.
type Canvas struct {
	width    int
	height   int
	img      *image.RGBA
	depth    int
	released bool

	Calls []Call
}

// NewCanvas creates a recording canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (m *Canvas) record(name string, args ...interface{}) {
	m.Calls = append(m.Calls, Call{Name: name, Args: args})
}

// CallsNamed returns the recorded calls with the given name.
func (m *Canvas) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range m.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Depth returns the current save depth.
func (m *Canvas) Depth() int { return m.depth }

// Released reports whether Release was called.
func (m *Canvas) Released() bool { return m.released }

func (m *Canvas) Save() int {
	m.record("Save")
	m.depth++
	return m.depth - 1
}

func (m *Canvas) Restore() {
	m.record("Restore")
	if m.depth > 0 {
		m.depth--
	}
}

func (m *Canvas) RestoreToCount(count int) {
	m.record("RestoreToCount", count)
	if count < m.depth {
		m.depth = count
	}
}

func (m *Canvas) Scale(sx, sy, px, py float64) { m.record("Scale", sx, sy, px, py) }

func (m *Canvas) Translate(dx, dy float64) { m.record("Translate", dx, dy) }

func (m *Canvas) DrawImage(img image.Image, x, y int) { m.record("DrawImage", x, y) }

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	m.record("DrawImageScaled", x, y, width, height)
}

func (m *Canvas) FillRectWithImage(img image.Image, x, y, w, h int) {
	m.record("FillRectWithImage", x, y, w, h)
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) { m.record("DrawRect", x, y, w, h) }

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {
	m.record("DrawRoundedRect", x, y, w, h, radius)
}

func (m *Canvas) DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64) {
	m.record("DrawRectStroke", x, y, w, h)
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.record("DrawText", text, x, y)
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	return float64(len(text)) * style.FontSize * 0.6, style.FontSize
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {
	m.record("DrawLine", x1, y1, x2, y2)
}

func (m *Canvas) Size() (int, int) { return m.width, m.height }

func (m *Canvas) ToImage() image.Image {
	if m.released {
		return nil
	}
	if m.img == nil {
		m.img = image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	}
	return m.img
}

func (m *Canvas) Release() {
	m.record("Release")
	m.released = true
	m.img = nil
}

var _ ports.Canvas = (*Canvas)(nil)
