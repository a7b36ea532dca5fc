package widget

import (
	"image/color"

	"github.com/user/stitchshot/pkg/ports"
)

// ViewHolder wraps an item view created by a RecyclerAdapter.
type ViewHolder struct {
	ItemView View
	ViewType int
	Position int
}

// NewViewHolder creates an unbound ViewHolder.
func NewViewHolder(itemView View, viewType int) *ViewHolder {
	return &ViewHolder{ItemView: itemView, ViewType: viewType, Position: -1}
}

// RecyclerAdapter creates and binds view holders.
type RecyclerAdapter interface {
	ItemCount() int
	ItemViewType(position int) int
	CreateViewHolder(parent *RecyclerView, viewType int) *ViewHolder
	BindViewHolder(holder *ViewHolder, position int)
}

// LayoutManager sizes and places recycler items.
type LayoutManager interface {
	// Attach binds the manager to its RecyclerView.
	Attach(rv *RecyclerView)

	GenerateDefaultLayoutParams() *LayoutParams
	CheckLayoutParams(lp *LayoutParams) bool
	GenerateLayoutParams(lp *LayoutParams) *LayoutParams

	// MeasureChildWithMargins measures child within the recycler, taking
	// margins, decoration insets and the already used space into account.
	MeasureChildWithMargins(child View, widthUsed, heightUsed int)

	DecoratedMeasuredWidth(child View) int
	DecoratedMeasuredHeight(child View) int

	// LayoutDecoratedWithMargins lays child out inside the rectangle,
	// leaving room for its decoration insets and margins.
	LayoutDecoratedWithMargins(child View, left, top, right, bottom int)

	PaddingLeft() int
}

// ItemDecoration adds space around items, such as dividers.
type ItemDecoration interface {
	ItemOffsets(child View, parent *RecyclerView) Insets
	DrawOver(canvas ports.Canvas, child View, parent *RecyclerView)
}

// RecyclerView shows adapter items through a pluggable LayoutManager.
type RecyclerView struct {
	Base
	adapter       RecyclerAdapter
	layoutManager LayoutManager
	decorations   []ItemDecoration
}

// NewRecyclerView creates a RecyclerView with the given adapter and manager.
func NewRecyclerView(adapter RecyclerAdapter, lm LayoutManager) *RecyclerView {
	rv := &RecyclerView{adapter: adapter}
	rv.SetLayoutManager(lm)
	return rv
}

func (r *RecyclerView) Adapter() RecyclerAdapter     { return r.adapter }
func (r *RecyclerView) LayoutManager() LayoutManager { return r.layoutManager }

// SetLayoutManager attaches lm to the recycler.
func (r *RecyclerView) SetLayoutManager(lm LayoutManager) {
	r.layoutManager = lm
	if lm != nil {
		lm.Attach(r)
	}
}

// AddItemDecoration appends a decoration.
func (r *RecyclerView) AddItemDecoration(d ItemDecoration) {
	r.decorations = append(r.decorations, d)
}

// ItemDecorInsets sums the offsets of every decoration for child.
func (r *RecyclerView) ItemDecorInsets(child View) Insets {
	var total Insets
	for _, d := range r.decorations {
		o := d.ItemOffsets(child, r)
		total.Left += o.Left
		total.Top += o.Top
		total.Right += o.Right
		total.Bottom += o.Bottom
	}
	return total
}

// BindViewHolder records the position on holder and lets the adapter bind it.
func (r *RecyclerView) BindViewHolder(holder *ViewHolder, position int) {
	holder.Position = position
	r.adapter.BindViewHolder(holder, position)
}

// Measure sizes the recycler from its specs; items are measured on demand.
func (r *RecyclerView) Measure(widthSpec, heightSpec MeasureSpec) {
	r.SetMeasuredDimension(ResolveSize(r.padding.Horizontal(), widthSpec), ResolveSize(r.padding.Vertical(), heightSpec))
}

// Draw renders the items that fit, each followed by its decorations.
func (r *RecyclerView) Draw(canvas ports.Canvas) {
	r.DrawBackground(canvas)
	if r.adapter == nil || r.layoutManager == nil {
		return
	}

	lm := r.layoutManager
	y := r.padding.Top
	for pos := 0; pos < r.adapter.ItemCount() && y < r.Height(); pos++ {
		holder := r.adapter.CreateViewHolder(r, r.adapter.ItemViewType(pos))
		r.BindViewHolder(holder, pos)
		child := holder.ItemView
		if child.LayoutParams() == nil {
			child.SetLayoutParams(lm.GenerateDefaultLayoutParams())
		}

		lm.MeasureChildWithMargins(child, 0, 0)
		lp := child.LayoutParams()
		left := lm.PaddingLeft()
		right := left + lm.DecoratedMeasuredWidth(child) + lp.HorizontalMargins()
		bottom := y + lm.DecoratedMeasuredHeight(child) + lp.VerticalMargins()
		lm.LayoutDecoratedWithMargins(child, left, y, right, bottom)

		drawChild(canvas, child)
		for _, d := range r.decorations {
			d.DrawOver(canvas, child, r)
		}
		y = bottom
	}
}

var _ View = (*RecyclerView)(nil)

// LinearLayoutManager lays items out top to bottom at the recycler width.
type LinearLayoutManager struct {
	rv *RecyclerView
}

// NewLinearLayoutManager creates a vertical LinearLayoutManager.
func NewLinearLayoutManager() *LinearLayoutManager {
	return &LinearLayoutManager{}
}

func (m *LinearLayoutManager) Attach(rv *RecyclerView) { m.rv = rv }

func (m *LinearLayoutManager) GenerateDefaultLayoutParams() *LayoutParams {
	return NewLayoutParams(WrapContent, WrapContent)
}

// CheckLayoutParams accepts any params with valid dimensions.
func (m *LinearLayoutManager) CheckLayoutParams(lp *LayoutParams) bool {
	return lp != nil && lp.Width >= WrapContent && lp.Height >= WrapContent
}

// GenerateLayoutParams copies lp, replacing invalid dimensions with WrapContent.
func (m *LinearLayoutManager) GenerateLayoutParams(lp *LayoutParams) *LayoutParams {
	if lp == nil {
		return m.GenerateDefaultLayoutParams()
	}
	out := *lp
	if out.Width < WrapContent {
		out.Width = WrapContent
	}
	if out.Height < WrapContent {
		out.Height = WrapContent
	}
	return &out
}

func (m *LinearLayoutManager) MeasureChildWithMargins(child View, widthUsed, heightUsed int) {
	lp := child.LayoutParams()
	if lp == nil {
		lp = m.GenerateDefaultLayoutParams()
		child.SetLayoutParams(lp)
	}
	insets := m.rv.ItemDecorInsets(child)
	padding := m.rv.Padding()

	widthSpec := ChildMeasureSpec(
		MakeMeasureSpec(m.rv.Width(), Exactly),
		padding.Horizontal()+lp.HorizontalMargins()+insets.Horizontal()+widthUsed,
		lp.Width,
	)
	// The scrolling axis is unbounded.
	heightSpec := ChildMeasureSpec(
		MakeMeasureSpec(0, Unspecified),
		padding.Vertical()+lp.VerticalMargins()+insets.Vertical()+heightUsed,
		lp.Height,
	)
	child.Measure(widthSpec, heightSpec)
}

func (m *LinearLayoutManager) DecoratedMeasuredWidth(child View) int {
	return child.MeasuredWidth() + m.rv.ItemDecorInsets(child).Horizontal()
}

func (m *LinearLayoutManager) DecoratedMeasuredHeight(child View) int {
	return child.MeasuredHeight() + m.rv.ItemDecorInsets(child).Vertical()
}

func (m *LinearLayoutManager) LayoutDecoratedWithMargins(child View, left, top, right, bottom int) {
	insets := m.rv.ItemDecorInsets(child)
	lp := child.LayoutParams()
	if lp == nil {
		lp = &LayoutParams{}
	}
	child.Layout(
		left+insets.Left+lp.LeftMargin,
		top+insets.Top+lp.TopMargin,
		right-insets.Right-lp.RightMargin,
		bottom-insets.Bottom-lp.BottomMargin,
	)
}

func (m *LinearLayoutManager) PaddingLeft() int {
	return m.rv.Padding().Left
}

var _ LayoutManager = (*LinearLayoutManager)(nil)

// DividerDecoration leaves Height pixels below every item and draws a
// line of that thickness through them.
type DividerDecoration struct {
	Height int
	Color  color.Color
}

func (d *DividerDecoration) ItemOffsets(child View, parent *RecyclerView) Insets {
	return Insets{Bottom: d.Height}
}

func (d *DividerDecoration) DrawOver(canvas ports.Canvas, child View, parent *RecyclerView) {
	if d.Color == nil || d.Height <= 0 {
		return
	}
	y := child.Bottom() + d.Height/2
	canvas.DrawLine(child.Left(), y, child.Right(), y, d.Color, float64(d.Height))
}

var _ ItemDecoration = (*DividerDecoration)(nil)
