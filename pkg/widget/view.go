// Package widget is a small retained-mode view toolkit.
//
// Views follow a two-step protocol: Measure under constraints, then
// Layout at a rectangle relative to the parent. Draw renders a view in
// its own coordinate space; containers translate the canvas by a
// child's left/top before drawing it.
package widget

import (
	"image/color"

	"github.com/user/stitchshot/pkg/ports"
)

// View is a measurable, placeable, drawable element.
type View interface {
	Measure(widthSpec, heightSpec MeasureSpec)
	MeasuredWidth() int
	MeasuredHeight() int

	Layout(left, top, right, bottom int)
	Left() int
	Top() int
	Right() int
	Bottom() int
	Width() int
	Height() int

	LayoutParams() *LayoutParams
	SetLayoutParams(lp *LayoutParams)
	Padding() Insets

	Draw(canvas ports.Canvas)
}

// Insets are distances from each edge.
type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// Base holds the state shared by all views. Concrete views embed it and
// implement Measure and Draw.
type Base struct {
	measuredWidth  int
	measuredHeight int

	left, top, right, bottom int

	params  *LayoutParams
	padding Insets

	// Background is filled behind the view content when non-nil.
	Background color.Color
}

func (b *Base) MeasuredWidth() int  { return b.measuredWidth }
func (b *Base) MeasuredHeight() int { return b.measuredHeight }

// SetMeasuredDimension records the result of Measure.
func (b *Base) SetMeasuredDimension(width, height int) {
	b.measuredWidth = width
	b.measuredHeight = height
}

// Layout places the view relative to its parent.
func (b *Base) Layout(left, top, right, bottom int) {
	b.left, b.top, b.right, b.bottom = left, top, right, bottom
}

func (b *Base) Left() int   { return b.left }
func (b *Base) Top() int    { return b.top }
func (b *Base) Right() int  { return b.right }
func (b *Base) Bottom() int { return b.bottom }
func (b *Base) Width() int  { return b.right - b.left }
func (b *Base) Height() int { return b.bottom - b.top }

func (b *Base) LayoutParams() *LayoutParams      { return b.params }
func (b *Base) SetLayoutParams(lp *LayoutParams) { b.params = lp }

func (b *Base) Padding() Insets { return b.padding }

// SetPadding sets the padding on all four edges.
func (b *Base) SetPadding(left, top, right, bottom int) {
	b.padding = Insets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// DrawBackground fills the view bounds with Background, if set.
func (b *Base) DrawBackground(canvas ports.Canvas) {
	if b.Background == nil {
		return
	}
	canvas.DrawRect(0, 0, b.Width(), b.Height(), b.Background)
}

// LayoutRoot measures v at exactly width x height and places it at the origin.
func LayoutRoot(v View, width, height int) {
	v.Measure(MakeMeasureSpec(width, Exactly), MakeMeasureSpec(height, Exactly))
	v.Layout(0, 0, v.MeasuredWidth(), v.MeasuredHeight())
}

// drawChild draws child translated to its position inside the parent.
func drawChild(canvas ports.Canvas, child View) {
	saved := canvas.Save()
	canvas.Translate(float64(child.Left()), float64(child.Top()))
	child.Draw(canvas)
	canvas.RestoreToCount(saved)
}

// paramsOf returns the child's LayoutParams or a MatchParent x WrapContent default.
func paramsOf(child View) *LayoutParams {
	if lp := child.LayoutParams(); lp != nil {
		return lp
	}
	return NewLayoutParams(MatchParent, WrapContent)
}
