package mocks

import (
	"image"
	"sync"

	"github.com/user/stitchshot/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	MeasureJSON []byte
	LayoutJSON  []byte
	LayoutSVG   []byte
	Logo        image.Image
	Composite   image.Image
	Pages       map[int]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Pages:   make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveMeasureJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MeasureJSON = data
	return nil
}

func (m *DebugSink) SaveLayoutJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutJSON = data
	return nil
}

func (m *DebugSink) SaveLayoutSVG(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutSVG = data
	return nil
}

func (m *DebugSink) SaveLogo(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logo = img
	return nil
}

func (m *DebugSink) SaveComposite(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Composite = img
	return nil
}

func (m *DebugSink) SavePage(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pages[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                             { return false }
func (m *NullSink) SaveMeasureJSON(data []byte) error         { return nil }
func (m *NullSink) SaveLayoutJSON(data []byte) error          { return nil }
func (m *NullSink) SaveLayoutSVG(data []byte) error           { return nil }
func (m *NullSink) SaveLogo(img image.Image) error            { return nil }
func (m *NullSink) SaveComposite(img image.Image) error       { return nil }
func (m *NullSink) SavePage(index int, img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
