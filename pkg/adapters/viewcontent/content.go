// Package viewcontent adapts widget containers to ports.Content so the
// capture stages can measure and draw their items one by one.
package viewcontent

import (
	"errors"

	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/widget"
)

// Source kinds reported by Content.Kind.
const (
	KindView     = "view"
	KindScroll   = "scroll"
	KindList     = "list"
	KindRecycler = "recycler"
)

var (
	ErrNilView          = errors.New("view is nil")
	ErrNotLaidOut       = errors.New("view has not been laid out")
	ErrNoChild          = errors.New("scroll container has no child")
	ErrNilAdapter       = errors.New("adapter is nil")
	ErrNilLayoutManager = errors.New("layout manager is nil")
	ErrIndexOutOfRange  = errors.New("item index out of range")
)

// View exposes a laid-out view as a single item of its current size.
type View struct {
	view widget.View
}

// NewView wraps v. v must already be laid out with a non-empty size.
func NewView(v widget.View) (*View, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if v.Width() <= 0 || v.Height() <= 0 {
		return nil, ErrNotLaidOut
	}
	return &View{view: v}, nil
}

func (c *View) Kind() string   { return KindView }
func (c *View) Width() int     { return c.view.Width() }
func (c *View) ItemCount() int { return 1 }

func (c *View) MeasureItem(index int) (int, error) {
	if index != 0 {
		return 0, ErrIndexOutOfRange
	}
	return c.view.Height(), nil
}

func (c *View) RenderItem(index int, canvas ports.Canvas) (int, error) {
	if index != 0 {
		return 0, ErrIndexOutOfRange
	}
	c.view.Draw(canvas)
	return c.view.Height(), nil
}

var _ ports.Content = (*View)(nil)
