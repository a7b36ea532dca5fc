package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/user/stitchshot/pkg/mocks"
)

func sampleSummary() *Summary {
	s := NewBuilder().
		WithSource(SourceInfo{
			Kind:          "recycler",
			Width:         360,
			ItemCount:     3,
			Heights:       []int{100, 150, 1200},
			ContentHeight: 1450,
		}).
		WithGeometry(GeometryInfo{
			TargetWidth:  300,
			TargetHeight: 300,
			LogoExtent:   80,
			TotalHeight:  1530,
			Scale:        0.196,
			HasLogo:      true,
		}).
		WithOutput(OutputInfo{
			Path:       "out/feed.jpg",
			Format:     "jpeg",
			Quality:    90,
			FileSize:   2048,
			DurationMs: 42,
		}).
		Build()
	s.GeneratedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return s
}

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := sampleSummary()

	if summary.Source.Kind != "recycler" {
		t.Errorf("expected kind 'recycler', got '%s'", summary.Source.Kind)
	}
	if summary.Source.ContentHeight != 1450 {
		t.Errorf("expected content height 1450, got %d", summary.Source.ContentHeight)
	}
	if !summary.Geometry.HasLogo || summary.Geometry.LogoExtent != 80 {
		t.Error("Geometry logo not set correctly")
	}
	if summary.Output.FileSize != 2048 {
		t.Errorf("expected FileSize 2048, got %d", summary.Output.FileSize)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Source.Kind })

	if got := f.Format(sampleSummary()); got != "recycler" {
		t.Errorf("expected 'recycler', got %q", got)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "summary" }), fs)

	if err := w.Write("out/summary.md", sampleSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("out/summary.md")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if string(data) != "summary" {
		t.Errorf("expected 'summary', got %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteErr = errors.New("read-only")
	w := NewWriter(NewMarkdownFormatter(), fs)

	err := w.Write("summary.md", sampleSummary())
	if !errors.Is(err, fs.WriteErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHeights(t *testing.T) {
	if got := formatHeights(nil); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}

	many := make([]int, maxListedHeights+5)
	if got := formatHeights(many); got[len(got)-len("(+5 more)"):] != "(+5 more)" {
		t.Errorf("expected truncation marker, got %q", got)
	}
}
