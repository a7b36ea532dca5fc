package viewcontent

import (
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/widget"
)

// Recycler exposes every adapter item of a RecyclerView with a vertical,
// top-to-bottom layout manager.
//
// MeasureItem creates, binds and lays out a holder for the position and
// keeps it; RenderItem draws that holder and drops it. Both passes report
// the height of the same bound view, and every holder is bound once.
// A holder measured but never rendered stays cached until the Recycler
// itself is dropped, so use one Recycler per capture.
//
// Item decorations are not part of the reported heights: an item is laid
// out in its measured height with the decoration insets taken out of it,
// so output with dividers is slightly compressed compared to the screen.
type Recycler struct {
	rv      *widget.RecyclerView
	adapter widget.RecyclerAdapter
	lm      widget.LayoutManager

	holders map[int]*widget.ViewHolder
}

// NewRecycler wraps rv, which must have an adapter and a layout manager.
func NewRecycler(rv *widget.RecyclerView) (*Recycler, error) {
	if rv == nil {
		return nil, ErrNilView
	}
	if rv.Adapter() == nil {
		return nil, ErrNilAdapter
	}
	if rv.LayoutManager() == nil {
		return nil, ErrNilLayoutManager
	}
	return &Recycler{
		rv:      rv,
		adapter: rv.Adapter(),
		lm:      rv.LayoutManager(),
		holders: make(map[int]*widget.ViewHolder),
	}, nil
}

func (c *Recycler) Kind() string   { return KindRecycler }
func (c *Recycler) Width() int     { return c.rv.Width() }
func (c *Recycler) ItemCount() int { return c.adapter.ItemCount() }

func (c *Recycler) MeasureItem(index int) (int, error) {
	holder, err := c.boundHolder(index)
	if err != nil {
		return 0, err
	}
	c.holders[index] = holder
	return holder.ItemView.Height(), nil
}

func (c *Recycler) RenderItem(index int, canvas ports.Canvas) (int, error) {
	holder, ok := c.holders[index]
	if ok {
		delete(c.holders, index)
	} else {
		var err error
		if holder, err = c.boundHolder(index); err != nil {
			return 0, err
		}
	}

	holder.ItemView.Draw(canvas)
	return holder.ItemView.Height(), nil
}

// boundHolder creates a holder for index, binds it and lays it out.
func (c *Recycler) boundHolder(index int) (*widget.ViewHolder, error) {
	if index < 0 || index >= c.adapter.ItemCount() {
		return nil, ErrIndexOutOfRange
	}
	holder := c.adapter.CreateViewHolder(c.rv, c.adapter.ItemViewType(index))
	if holder == nil || holder.ItemView == nil {
		return nil, ErrNilView
	}
	c.rv.BindViewHolder(holder, index)
	c.setupItemView(holder.ItemView)
	return holder, nil
}

// setupItemView gives the item params the layout manager accepts, measures
// it with margins, and places it at the manager's left padding, top 0.
func (c *Recycler) setupItemView(item widget.View) {
	lp := item.LayoutParams()
	switch {
	case lp == nil:
		item.SetLayoutParams(c.lm.GenerateDefaultLayoutParams())
	case !c.lm.CheckLayoutParams(lp):
		item.SetLayoutParams(c.lm.GenerateLayoutParams(lp))
	}

	c.lm.MeasureChildWithMargins(item, 0, 0)

	lp = item.LayoutParams()
	left := c.lm.PaddingLeft()
	right := left + c.lm.DecoratedMeasuredWidth(item) + lp.LeftMargin + lp.RightMargin
	top := 0
	bottom := top + item.MeasuredHeight()

	c.lm.LayoutDecoratedWithMargins(item, left, top, right, bottom)
}

var _ ports.Content = (*Recycler)(nil)
