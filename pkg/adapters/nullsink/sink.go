// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/stitchshot/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveMeasureJSON does nothing.
func (s *Sink) SaveMeasureJSON(data []byte) error {
	return nil
}

// SaveLayoutJSON does nothing.
func (s *Sink) SaveLayoutJSON(data []byte) error {
	return nil
}

// SaveLayoutSVG does nothing.
func (s *Sink) SaveLayoutSVG(data []byte) error {
	return nil
}

// SaveLogo does nothing.
func (s *Sink) SaveLogo(img image.Image) error {
	return nil
}

// SaveComposite does nothing.
func (s *Sink) SaveComposite(img image.Image) error {
	return nil
}

// SavePage does nothing.
func (s *Sink) SavePage(index int, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
