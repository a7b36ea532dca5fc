package widget

import (
	"github.com/user/stitchshot/pkg/ports"
)

// LinearLayout stacks its children vertically.
type LinearLayout struct {
	Base
	children []View
}

// NewLinearLayout creates a vertical LinearLayout with the given children.
func NewLinearLayout(children ...View) *LinearLayout {
	return &LinearLayout{children: children}
}

// AddView appends a child.
func (l *LinearLayout) AddView(child View) {
	l.children = append(l.children, child)
}

// ChildCount returns the number of children.
func (l *LinearLayout) ChildCount() int {
	return len(l.children)
}

// ChildAt returns child i, or nil when out of range.
func (l *LinearLayout) ChildAt(i int) View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

// Measure measures every child and sizes the layout to their sum.
func (l *LinearLayout) Measure(widthSpec, heightSpec MeasureSpec) {
	// Children never constrain the stacking axis.
	childHeightSpec := MakeMeasureSpec(0, Unspecified)

	maxWidth := 0
	total := l.padding.Vertical()
	for _, child := range l.children {
		lp := paramsOf(child)
		cw := ChildMeasureSpec(widthSpec, l.padding.Horizontal()+lp.HorizontalMargins(), lp.Width)
		ch := ChildMeasureSpec(childHeightSpec, 0, lp.Height)
		child.Measure(cw, ch)

		total += child.MeasuredHeight() + lp.VerticalMargins()
		if w := child.MeasuredWidth() + lp.HorizontalMargins(); w > maxWidth {
			maxWidth = w
		}
	}

	l.SetMeasuredDimension(
		ResolveSize(maxWidth+l.padding.Horizontal(), widthSpec),
		ResolveSize(total, heightSpec),
	)
}

// Layout places the layout and stacks its children from the top.
func (l *LinearLayout) Layout(left, top, right, bottom int) {
	l.Base.Layout(left, top, right, bottom)

	y := l.padding.Top
	for _, child := range l.children {
		lp := paramsOf(child)
		y += lp.TopMargin
		x := l.padding.Left + lp.LeftMargin
		child.Layout(x, y, x+child.MeasuredWidth(), y+child.MeasuredHeight())
		y += child.MeasuredHeight() + lp.BottomMargin
	}
}

// Draw draws the background and every child.
func (l *LinearLayout) Draw(canvas ports.Canvas) {
	l.DrawBackground(canvas)
	for _, child := range l.children {
		drawChild(canvas, child)
	}
}

var _ View = (*LinearLayout)(nil)
