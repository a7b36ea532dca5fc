// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/stitchshot/pkg/ports"
)

// Capture modes, one per container type.
const (
	ModeView     = "view"
	ModeScroll   = "scroll"
	ModeList     = "list"
	ModeRecycler = "recycler"
)

// Config represents the full configuration for stitchshot.
type Config struct {
	// Output
	OutputPath string `yaml:"output"`
	Format     string `yaml:"format"`
	Quality    int    `yaml:"quality"`

	// Destination size
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Source
	Mode  string      `yaml:"mode"`
	Scene SceneConfig `yaml:"scene"`

	// Decoration
	FillColor  string           `yaml:"fill_color"`
	Background BackgroundConfig `yaml:"background"`
	Logo       LogoConfig       `yaml:"logo"`

	// Reporting
	SummaryPath string `yaml:"summary"`
	LogLevel    string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// BackgroundConfig selects the clamped background: an image file or a
// solid colour. The image wins when both are set.
type BackgroundConfig struct {
	Image string `yaml:"image"`
	Color string `yaml:"color"`
}

// Enabled reports whether a background is configured.
func (b BackgroundConfig) Enabled() bool {
	return b.Image != "" || b.Color != ""
}

// LogoConfig describes the logo below the content: an image file or a
// generated text watermark.
type LogoConfig struct {
	Image           string `yaml:"image"`
	Text            string `yaml:"text"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	MarginTop       int    `yaml:"margin_top"`
	MarginBottom    int    `yaml:"margin_bottom"`
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
}

// Enabled reports whether a logo is configured.
func (l LogoConfig) Enabled() bool {
	return l.Image != "" || l.Text != ""
}

// SceneConfig describes the widget tree to capture.
type SceneConfig struct {
	Width          int           `yaml:"width"`
	ViewportHeight int           `yaml:"viewport_height"`
	Padding        PaddingConfig `yaml:"padding"`
	Divider        int           `yaml:"divider"`
	DividerColor   string        `yaml:"divider_color"`
	Items          []ItemConfig  `yaml:"items"`
}

// PaddingConfig is the container padding in pixels.
type PaddingConfig struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// ItemConfig describes one item of the scene.
type ItemConfig struct {
	Height       int    `yaml:"height"`
	Color        string `yaml:"color"`
	Label        string `yaml:"label"`
	LabelColor   string `yaml:"label_color"`
	FontSize     int    `yaml:"font_size"`
	BorderColor  string `yaml:"border_color"`
	BorderWidth  int    `yaml:"border_width"`
	ViewType     int    `yaml:"view_type"`
	Repeat       int    `yaml:"repeat"`
	MarginLeft   int    `yaml:"margin_left"`
	MarginTop    int    `yaml:"margin_top"`
	MarginRight  int    `yaml:"margin_right"`
	MarginBottom int    `yaml:"margin_bottom"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Output
		OutputPath: "capture.jpg",
		Format:     "jpeg",
		Quality:    90,

		// Destination size
		Width:  512,
		Height: 640,

		// Source
		Mode: ModeScroll,
		Scene: SceneConfig{
			Width:          360,
			ViewportHeight: 640,
			DividerColor:   "#dddddd",
			Items: []ItemConfig{
				{Height: 120, Label: "Item {n}", Repeat: 12},
			},
		},

		// Decoration
		FillColor: "#ffffff",
		Logo: LogoConfig{
			Width:           160,
			Height:          40,
			MarginTop:       24,
			MarginBottom:    24,
			BackgroundColor: "#2d2d2d",
			TextColor:       "#ffffff",
		},

		LogLevel: "info",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values a capture cannot start without.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeView, ModeScroll, ModeList, ModeRecycler:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Format {
	case "jpeg", "jpg", "png":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("quality %d outside 0-100", c.Quality)
	}
	if c.Mode != ModeView && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Logo.Enabled() && (c.Logo.Width <= 0 || c.Logo.Height <= 0) {
		return fmt.Errorf("invalid logo size %dx%d", c.Logo.Width, c.Logo.Height)
	}
	if c.FillColor != "" {
		fill, err := ParseColor(c.FillColor)
		if err != nil {
			return err
		}
		if _, _, _, a := fill.RGBA(); a != 0xffff {
			return fmt.Errorf("fill color %q must be opaque", c.FillColor)
		}
	}
	for _, value := range []string{c.Background.Color, c.Logo.BackgroundColor, c.Logo.TextColor} {
		if value == "" {
			continue
		}
		if _, err := ParseColor(value); err != nil {
			return err
		}
	}
	return nil
}

// ImageFormat returns the output format.
func (c Config) ImageFormat() ports.ImageFormat {
	if c.Format == "jpg" {
		return ports.FormatJPEG
	}
	return ports.ParseImageFormat(c.Format)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The leading # is optional.
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", hex)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ColorOr is like ParseColor but returns fallback for an empty or invalid value.
func ColorOr(hex string, fallback color.Color) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return c
}
