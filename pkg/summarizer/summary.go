// Package summarizer provides summary generation for capture results.
package summarizer

import "time"

// Summary contains the facts collected during one capture.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Where the items came from
	Source SourceInfo

	// How they were fitted onto the canvas
	Geometry GeometryInfo

	// What was written
	Output OutputInfo
}

// SourceInfo describes the captured container.
type SourceInfo struct {
	Kind          string
	Width         int
	ItemCount     int
	Heights       []int
	ContentHeight int
}

// GeometryInfo describes the scaling onto the destination.
type GeometryInfo struct {
	TargetWidth   int
	TargetHeight  int
	LogoExtent    int
	TotalHeight   int
	Scale         float64
	HasBackground bool
	HasLogo       bool
}

// OutputInfo describes the written image.
type OutputInfo struct {
	Path       string
	Format     string
	Quality    int
	FileSize   int64
	DurationMs int
	Pages      int // Non-zero for paged captures
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the source information.
func (b *Builder) WithSource(source SourceInfo) *Builder {
	b.summary.Source = source
	return b
}

// WithGeometry sets the geometry.
func (b *Builder) WithGeometry(geometry GeometryInfo) *Builder {
	b.summary.Geometry = geometry
	return b
}

// WithOutput sets the output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
