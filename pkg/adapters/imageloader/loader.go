// Package imageloader loads background and logo images from disk.
package imageloader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/user/stitchshot/pkg/ports"
)

// ErrEmptySVG is returned for SVG documents without a usable size.
var ErrEmptySVG = errors.New("svg has no size")

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Loader reads PNG, JPEG and SVG files into images.
type Loader struct {
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a Loader that reads through fs and decodes with renderer.
func New(fs ports.FileSystem, renderer ports.Renderer) *Loader {
	return &Loader{
		fs:       fs,
		renderer: renderer,
	}
}

// Load reads the image at path. When width and height are positive the
// image is resized (raster) or rasterised (SVG) to that size; otherwise
// it keeps its natural size.
func (l *Loader) Load(path string, width, height int) (image.Image, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if isSVG(path, data) {
		img, err := RasterizeSVG(data, width, height)
		if err != nil {
			return nil, fmt.Errorf("rasterize %s: %w", path, err)
		}
		return img, nil
	}

	img, err := l.renderer.DecodeImage(data, detectFormat(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if width > 0 && height > 0 {
		b := img.Bounds()
		if b.Dx() != width || b.Dy() != height {
			img = l.renderer.ResizeImage(img, width, height)
		}
	}
	return img, nil
}

// RasterizeSVG draws an SVG document at width x height. A zero size uses
// the document's viewBox, and a single zero dimension keeps the aspect ratio.
func RasterizeSVG(data []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	switch {
	case width > 0 && height > 0:
	case width > 0 && vw > 0:
		height = int(math.Round(float64(width) * vh / vw))
	case height > 0 && vh > 0:
		width = int(math.Round(float64(height) * vw / vh))
	default:
		width, height = int(math.Ceil(vw)), int(math.Ceil(vh))
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptySVG
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

func isSVG(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return true
	}
	head := bytes.TrimSpace(data)
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.HasPrefix(head, []byte("<")) && bytes.Contains(head, []byte("<svg"))
}

func detectFormat(data []byte) ports.ImageFormat {
	if bytes.HasPrefix(data, pngMagic) {
		return ports.FormatPNG
	}
	return ports.FormatJPEG
}
