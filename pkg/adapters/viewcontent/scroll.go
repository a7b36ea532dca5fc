package viewcontent

import (
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/widget"
)

// Scroll exposes a ScrollView's content child as one item spanning the
// viewport plus the scroll range.
type Scroll struct {
	sv    *widget.ScrollView
	child widget.View
}

// NewScroll wraps sv, which must hold a laid-out child.
func NewScroll(sv *widget.ScrollView) (*Scroll, error) {
	if sv == nil {
		return nil, ErrNilView
	}
	child := sv.ChildAt(0)
	if child == nil {
		return nil, ErrNoChild
	}
	return &Scroll{sv: sv, child: child}, nil
}

func (c *Scroll) Kind() string   { return KindScroll }
func (c *Scroll) Width() int     { return c.sv.Width() }
func (c *Scroll) ItemCount() int { return 1 }

// ExtentHeight is the container height plus its vertical scroll range.
func (c *Scroll) ExtentHeight() int {
	return c.sv.Height() + c.sv.VerticalScrollRange()
}

func (c *Scroll) MeasureItem(index int) (int, error) {
	if index != 0 {
		return 0, ErrIndexOutOfRange
	}
	return c.ExtentHeight(), nil
}

// RenderItem draws the child once; it renders its full laid-out height.
func (c *Scroll) RenderItem(index int, canvas ports.Canvas) (int, error) {
	if index != 0 {
		return 0, ErrIndexOutOfRange
	}
	c.child.Draw(canvas)
	return c.ExtentHeight(), nil
}

var _ ports.Content = (*Scroll)(nil)
