package viewcontent

import (
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/widget"
)

// List exposes every adapter item of a ListView, including those off-screen.
//
// Item views are requested from the adapter afresh on every call and laid
// out with the list's own row measurement, so measuring and rendering the
// same position yield the same height.
type List struct {
	lv      *widget.ListView
	adapter widget.ListAdapter
}

// NewList wraps lv, which must have an adapter.
func NewList(lv *widget.ListView) (*List, error) {
	if lv == nil {
		return nil, ErrNilView
	}
	if lv.Adapter() == nil {
		return nil, ErrNilAdapter
	}
	return &List{lv: lv, adapter: lv.Adapter()}, nil
}

func (c *List) Kind() string   { return KindList }
func (c *List) Width() int     { return c.lv.Width() }
func (c *List) ItemCount() int { return c.adapter.Count() }

func (c *List) MeasureItem(index int) (int, error) {
	item, err := c.itemView(index)
	if err != nil {
		return 0, err
	}
	return item.Height(), nil
}

func (c *List) RenderItem(index int, canvas ports.Canvas) (int, error) {
	item, err := c.itemView(index)
	if err != nil {
		return 0, err
	}
	item.Draw(canvas)
	return item.Height(), nil
}

func (c *List) itemView(index int) (widget.View, error) {
	if index < 0 || index >= c.adapter.Count() {
		return nil, ErrIndexOutOfRange
	}
	item := c.adapter.View(index, c.lv)
	if item == nil {
		return nil, ErrNilView
	}
	c.lv.MeasureItem(item)
	return item, nil
}

var _ ports.Content = (*List)(nil)
