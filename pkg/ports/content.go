package ports

// Content is a measurement oracle over the items of a capturable source.
//
// MeasureItem and RenderItem must report the same height for the same
// index; the composite relies on it to keep the drawn extent equal to
// the measured one.
type Content interface {
	// Kind names the source type (view, scroll, list, recycler).
	Kind() string

	// Width returns the source width in content pixels.
	Width() int

	// ItemCount returns the number of items to stitch.
	ItemCount() int

	// MeasureItem lays out item index off-screen and returns its height.
	MeasureItem(index int) (int, error)

	// RenderItem lays out item index, draws it at the canvas origin, and
	// returns the height it occupies.
	RenderItem(index int, canvas Canvas) (int, error)
}
