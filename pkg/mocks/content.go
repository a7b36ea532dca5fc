package mocks

import (
	"fmt"

	"github.com/user/stitchshot/pkg/ports"
)

// Content is a mock implementation of ports.Content with fixed item heights.
type Content struct {
	KindName    string
	SourceWidth int
	Heights     []int

	// RenderHeights overrides the heights reported by RenderItem when set.
	RenderHeights []int

	MeasureErr error
	RenderErr  error

	Measured []int
	Rendered []int
}

// NewContent creates a Content of the given width and item heights.
func NewContent(width int, heights ...int) *Content {
	return &Content{KindName: "mock", SourceWidth: width, Heights: heights}
}

func (m *Content) Kind() string   { return m.KindName }
func (m *Content) Width() int     { return m.SourceWidth }
func (m *Content) ItemCount() int { return len(m.Heights) }

func (m *Content) MeasureItem(index int) (int, error) {
	if m.MeasureErr != nil {
		return 0, m.MeasureErr
	}
	if index < 0 || index >= len(m.Heights) {
		return 0, fmt.Errorf("index %d out of range", index)
	}
	m.Measured = append(m.Measured, index)
	return m.Heights[index], nil
}

func (m *Content) RenderItem(index int, canvas ports.Canvas) (int, error) {
	if m.RenderErr != nil {
		return 0, m.RenderErr
	}
	if index < 0 || index >= len(m.Heights) {
		return 0, fmt.Errorf("index %d out of range", index)
	}
	m.Rendered = append(m.Rendered, index)
	h := m.Heights[index]
	if m.RenderHeights != nil {
		h = m.RenderHeights[index]
	}
	canvas.DrawRect(0, 0, m.SourceWidth, h, nil)
	return h, nil
}

var _ ports.Content = (*Content)(nil)
