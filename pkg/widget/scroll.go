package widget

import (
	"github.com/user/stitchshot/pkg/ports"
)

// ScrollView is a vertically scrolling container with at most one child.
// Its own height is the viewport; the child is laid out at its full
// natural height.
type ScrollView struct {
	Base
	child   View
	scrollY int
}

// NewScrollView creates a ScrollView holding child (which may be nil).
func NewScrollView(child View) *ScrollView {
	return &ScrollView{child: child}
}

// ChildCount returns 0 or 1.
func (s *ScrollView) ChildCount() int {
	if s.child == nil {
		return 0
	}
	return 1
}

// ChildAt returns the content child for index 0, nil otherwise.
func (s *ScrollView) ChildAt(i int) View {
	if i != 0 {
		return nil
	}
	return s.child
}

// Measure sizes the viewport from the specs and measures the child with
// an unbounded height.
func (s *ScrollView) Measure(widthSpec, heightSpec MeasureSpec) {
	desiredWidth := s.padding.Horizontal()
	desiredHeight := s.padding.Vertical()

	if s.child != nil {
		lp := paramsOf(s.child)
		cw := ChildMeasureSpec(widthSpec, s.padding.Horizontal()+lp.HorizontalMargins(), lp.Width)
		ch := MakeMeasureSpec(0, Unspecified)
		if lp.Height >= 0 {
			ch = MakeMeasureSpec(lp.Height, Exactly)
		}
		s.child.Measure(cw, ch)

		desiredWidth += s.child.MeasuredWidth() + lp.HorizontalMargins()
		desiredHeight += s.child.MeasuredHeight() + lp.VerticalMargins()
	}

	s.SetMeasuredDimension(ResolveSize(desiredWidth, widthSpec), ResolveSize(desiredHeight, heightSpec))
}

// Layout places the viewport and the child below the top padding.
func (s *ScrollView) Layout(left, top, right, bottom int) {
	s.Base.Layout(left, top, right, bottom)
	if s.child == nil {
		return
	}
	lp := paramsOf(s.child)
	x := s.padding.Left + lp.LeftMargin
	y := s.padding.Top + lp.TopMargin
	s.child.Layout(x, y, x+s.child.MeasuredWidth(), y+s.child.MeasuredHeight())
	s.ScrollTo(s.scrollY)
}

// VerticalScrollRange is how far the content extends below the visible
// content area: child bottom minus the viewport height inside padding.
// It is 0 without a child and negative when the content is shorter than
// the viewport.
func (s *ScrollView) VerticalScrollRange() int {
	if s.child == nil {
		return 0
	}
	contentHeight := s.Height() - s.padding.Vertical()
	return s.child.Bottom() - contentHeight
}

// ScrollY returns the current vertical scroll offset.
func (s *ScrollView) ScrollY() int {
	return s.scrollY
}

// CanScrollDown reports whether content remains below the viewport.
func (s *ScrollView) CanScrollDown() bool {
	return s.scrollY < s.maxScroll()
}

// ScrollTo sets the scroll offset, clamped to the scroll range.
func (s *ScrollView) ScrollTo(y int) {
	if y > s.maxScroll() {
		y = s.maxScroll()
	}
	if y < 0 {
		y = 0
	}
	s.scrollY = y
}

// ScrollBy scrolls by dy and returns the distance actually scrolled.
func (s *ScrollView) ScrollBy(dy int) int {
	before := s.scrollY
	s.ScrollTo(s.scrollY + dy)
	return s.scrollY - before
}

func (s *ScrollView) maxScroll() int {
	if r := s.VerticalScrollRange(); r > 0 {
		return r
	}
	return 0
}

// Draw renders the visible viewport: the child shifted up by the scroll offset.
func (s *ScrollView) Draw(canvas ports.Canvas) {
	s.DrawBackground(canvas)
	if s.child == nil {
		return
	}
	saved := canvas.Save()
	canvas.Translate(0, float64(-s.scrollY))
	drawChild(canvas, s.child)
	canvas.RestoreToCount(saved)
}

var _ View = (*ScrollView)(nil)
