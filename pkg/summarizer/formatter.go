package summarizer

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

var numbers = message.NewPrinter(language.English)

// formatPixels renders a pixel count with thousands separators.
func formatPixels(n int) string {
	return numbers.Sprintf("%d px", n)
}

// formatBytes renders a byte count in the largest whole unit.
func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n < unit:
		return numbers.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	}
}

// maxListedHeights bounds the per-item list in formatted summaries.
const maxListedHeights = 20

func formatHeights(heights []int) string {
	if len(heights) == 0 {
		return "-"
	}
	shown := heights
	if len(shown) > maxListedHeights {
		shown = shown[:maxListedHeights]
	}
	s := numbers.Sprint(shown)
	if rest := len(heights) - len(shown); rest > 0 {
		s += fmt.Sprintf(" (+%d more)", rest)
	}
	return s
}
