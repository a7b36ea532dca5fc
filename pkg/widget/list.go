package widget

import (
	"github.com/user/stitchshot/pkg/ports"
)

// ListAdapter supplies the item views of a ListView.
type ListAdapter interface {
	// Count returns the number of items.
	Count() int

	// View returns a view showing the item at position. Implementations
	// may return a fresh view on every call.
	View(position int, parent View) View
}

// ListAdapterFunc adapts a count and a view factory to ListAdapter.
type ListAdapterFunc struct {
	N       int
	Factory func(position int, parent View) View
}

func (f ListAdapterFunc) Count() int { return f.N }

func (f ListAdapterFunc) View(position int, parent View) View {
	return f.Factory(position, parent)
}

// ListView shows adapter items stacked from the top, only as many as fit.
type ListView struct {
	Base
	adapter ListAdapter
}

// NewListView creates a ListView backed by adapter (which may be nil).
func NewListView(adapter ListAdapter) *ListView {
	return &ListView{adapter: adapter}
}

// Adapter returns the item adapter.
func (l *ListView) Adapter() ListAdapter {
	return l.adapter
}

// ListPaddingLeft is the x position items are laid out at.
func (l *ListView) ListPaddingLeft() int {
	return l.padding.Left
}

// Measure sizes the list from its specs; items are measured on demand.
func (l *ListView) Measure(widthSpec, heightSpec MeasureSpec) {
	l.SetMeasuredDimension(ResolveSize(l.padding.Horizontal(), widthSpec), ResolveSize(l.padding.Vertical(), heightSpec))
}

// MeasureItem measures item the way the list lays out its rows: the list
// width minus padding, and the item's fixed height or its natural height.
// The item is placed at (ListPaddingLeft, 0).
func (l *ListView) MeasureItem(item View) {
	lp := item.LayoutParams()
	if lp == nil {
		lp = NewLayoutParams(MatchParent, WrapContent)
	}

	widthSpec := ChildMeasureSpec(MakeMeasureSpec(l.Width(), Exactly), l.padding.Horizontal(), lp.Width)
	var heightSpec MeasureSpec
	if lp.Height > 0 {
		heightSpec = MakeMeasureSpec(lp.Height, Exactly)
	} else {
		heightSpec = MakeMeasureSpec(l.MeasuredHeight(), Unspecified)
	}
	item.Measure(widthSpec, heightSpec)

	left := l.ListPaddingLeft()
	item.Layout(left, 0, left+item.MeasuredWidth(), item.MeasuredHeight())
}

// Draw renders the items that fit in the list's height.
func (l *ListView) Draw(canvas ports.Canvas) {
	l.DrawBackground(canvas)
	if l.adapter == nil {
		return
	}

	y := l.padding.Top
	for pos := 0; pos < l.adapter.Count() && y < l.Height(); pos++ {
		item := l.adapter.View(pos, l)
		l.MeasureItem(item)

		saved := canvas.Save()
		canvas.Translate(float64(l.ListPaddingLeft()), float64(y))
		item.Draw(canvas)
		canvas.RestoreToCount(saved)

		y += item.Height()
	}
}

var _ View = (*ListView)(nil)
