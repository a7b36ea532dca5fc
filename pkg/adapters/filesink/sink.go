// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/stitchshot/pkg/ports"
)

// Sink saves debug output to files under a base directory:
//
//	measure.json, layout.json, layout.svg, logo.png, composite.png,
//	pages/page-NNNN.png
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveMeasureJSON saves the per-item measurement as JSON.
func (s *Sink) SaveMeasureJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "measure.json"), data)
}

// SaveLayoutJSON saves the layout calculation result as JSON.
func (s *Sink) SaveLayoutJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "layout.json"), data)
}

// SaveLayoutSVG saves the layout visualization as SVG.
func (s *Sink) SaveLayoutSVG(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "layout.svg"), data)
}

// SaveLogo saves the logo drawable.
func (s *Sink) SaveLogo(img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, "logo.png"), img)
}

// SaveComposite saves the composed image before encoding.
func (s *Sink) SaveComposite(img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, "composite.png"), img)
}

// SavePage saves one page of a paged capture.
func (s *Sink) SavePage(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "pages")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	return s.savePNG(filepath.Join(dir, fmt.Sprintf("page-%04d.png", index)), img)
}

func (s *Sink) savePNG(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("no image for %s", filepath.Base(path))
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
