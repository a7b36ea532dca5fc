package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Capture Summary\n\n")
	fmt.Fprintf(&b, "Generated at %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("## Source\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	row(&b, "Kind", s.Source.Kind)
	row(&b, "Width", formatPixels(s.Source.Width))
	row(&b, "Items", fmt.Sprint(s.Source.ItemCount))
	row(&b, "Content height", formatPixels(s.Source.ContentHeight))
	row(&b, "Item heights", formatHeights(s.Source.Heights))
	b.WriteString("\n")

	g := s.Geometry
	b.WriteString("## Geometry\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	row(&b, "Canvas", fmt.Sprintf("%dx%d", g.TargetWidth, g.TargetHeight))
	row(&b, "Total height", formatPixels(g.TotalHeight))
	row(&b, "Scale", fmt.Sprintf("%.4f", g.Scale))
	row(&b, "Background", yesNo(g.HasBackground))
	if g.HasLogo {
		row(&b, "Logo", fmt.Sprintf("yes (%s)", formatPixels(g.LogoExtent)))
	} else {
		row(&b, "Logo", "no")
	}
	b.WriteString("\n")

	o := s.Output
	b.WriteString("## Output\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	row(&b, "Path", "`"+o.Path+"`")
	row(&b, "Format", o.Format)
	if o.Format != "png" {
		row(&b, "Quality", fmt.Sprint(o.Quality))
	}
	if o.Pages > 0 {
		row(&b, "Pages", fmt.Sprint(o.Pages))
	}
	row(&b, "File size", formatBytes(o.FileSize))
	row(&b, "Duration", fmt.Sprintf("%d ms", o.DurationMs))

	return b.String()
}

func row(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", name, value)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

var _ Formatter = (*MarkdownFormatter)(nil)
