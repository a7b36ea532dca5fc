// Package scene builds widget trees from scene descriptions so the CLI
// can capture containers without a host application.
package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/user/stitchshot/pkg/config"
	"github.com/user/stitchshot/pkg/ports"
	"github.com/user/stitchshot/pkg/widget"
)

const defaultFontSize = 16

// palette colours items that do not name one.
var palette = []color.Color{
	color.RGBA{R: 0xe5, G: 0x73, B: 0x73, A: 0xff},
	color.RGBA{R: 0x81, G: 0xc7, B: 0x84, A: 0xff},
	color.RGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff},
	color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff},
}

// Item is one expanded scene item.
type Item struct {
	Height      int
	Color       color.Color
	Label       string
	LabelStyle  ports.TextStyle
	Border      color.Color
	BorderWidth int
	ViewType    int
	Margins     widget.Insets
}

// Scene is a laid-out widget tree ready for capture. Exactly one of
// Scroll, List and Recycler is set unless Mode is view.
type Scene struct {
	Mode  string
	Root  widget.View
	Items []Item

	Scroll   *widget.ScrollView
	List     *widget.ListView
	Recycler *widget.RecyclerView
}

// Build expands cfg into items and lays out the container for mode.
func Build(mode string, cfg config.SceneConfig) (*Scene, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("invalid scene width %d", cfg.Width)
	}
	if mode != config.ModeView && cfg.ViewportHeight <= 0 {
		return nil, fmt.Errorf("invalid viewport height %d", cfg.ViewportHeight)
	}

	items, err := Items(cfg)
	if err != nil {
		return nil, err
	}

	s := &Scene{Mode: mode, Items: items}
	pad := cfg.Padding

	switch mode {
	case config.ModeView:
		column := newColumn(items)
		column.SetPadding(pad.Left, pad.Top, pad.Right, pad.Bottom)
		column.Measure(
			widget.MakeMeasureSpec(cfg.Width, widget.Exactly),
			widget.MakeMeasureSpec(0, widget.Unspecified),
		)
		column.Layout(0, 0, column.MeasuredWidth(), column.MeasuredHeight())
		s.Root = column

	case config.ModeScroll:
		sv := widget.NewScrollView(newColumn(items))
		sv.SetPadding(pad.Left, pad.Top, pad.Right, pad.Bottom)
		widget.LayoutRoot(sv, cfg.Width, cfg.ViewportHeight)
		s.Root, s.Scroll = sv, sv

	case config.ModeList:
		lv := widget.NewListView(widget.ListAdapterFunc{
			N: len(items),
			Factory: func(position int, parent widget.View) widget.View {
				return newBlock(items[position])
			},
		})
		lv.SetPadding(pad.Left, pad.Top, pad.Right, pad.Bottom)
		widget.LayoutRoot(lv, cfg.Width, cfg.ViewportHeight)
		s.Root, s.List = lv, lv

	case config.ModeRecycler:
		rv := widget.NewRecyclerView(&itemAdapter{items: items}, widget.NewLinearLayoutManager())
		rv.SetPadding(pad.Left, pad.Top, pad.Right, pad.Bottom)
		if cfg.Divider > 0 {
			rv.AddItemDecoration(&widget.DividerDecoration{
				Height: cfg.Divider,
				Color:  config.ColorOr(cfg.DividerColor, color.Gray{Y: 0xdd}),
			})
		}
		widget.LayoutRoot(rv, cfg.Width, cfg.ViewportHeight)
		s.Root, s.Recycler = rv, rv

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	return s, nil
}

// Items expands repeats and resolves colours. A "{n}" in a label becomes
// the 1-based item number.
func Items(cfg config.SceneConfig) ([]Item, error) {
	expanded := lo.FlatMap(cfg.Items, func(ic config.ItemConfig, _ int) []config.ItemConfig {
		return lo.Times(max(ic.Repeat, 1), func(int) config.ItemConfig { return ic })
	})

	items := make([]Item, 0, len(expanded))
	for i, ic := range expanded {
		if ic.Height < 0 {
			return nil, fmt.Errorf("item %d: negative height %d", i, ic.Height)
		}

		fill := palette[i%len(palette)]
		if ic.Color != "" {
			c, err := config.ParseColor(ic.Color)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			fill = c
		}

		style := ports.TextStyle{
			FontSize: float64(ic.FontSize),
			Color:    config.ColorOr(ic.LabelColor, color.Black),
			Align:    ports.AlignCenter,
		}
		if style.FontSize <= 0 {
			style.FontSize = defaultFontSize
		}

		var border color.Color
		if ic.BorderWidth > 0 {
			border = config.ColorOr(ic.BorderColor, color.Black)
		}

		items = append(items, Item{
			Height:      ic.Height,
			Color:       fill,
			Label:       strings.ReplaceAll(ic.Label, "{n}", strconv.Itoa(i+1)),
			LabelStyle:  style,
			Border:      border,
			BorderWidth: ic.BorderWidth,
			ViewType:    ic.ViewType,
			Margins: widget.Insets{
				Left:   ic.MarginLeft,
				Top:    ic.MarginTop,
				Right:  ic.MarginRight,
				Bottom: ic.MarginBottom,
			},
		})
	}
	return items, nil
}

func newColumn(items []Item) *widget.LinearLayout {
	return widget.NewLinearLayout(lo.Map(items, func(item Item, _ int) widget.View {
		return newBlock(item)
	})...)
}

func newBlock(item Item) *widget.Block {
	b := widget.NewBlock(item.Color, item.Height)
	b.SetLayoutParams(layoutParams(item))
	b.Border, b.BorderWidth = item.Border, item.BorderWidth
	if item.Label != "" {
		b.WithLabel(item.Label, item.LabelStyle)
	}
	return b
}

func layoutParams(item Item) *widget.LayoutParams {
	lp := widget.NewLayoutParams(widget.MatchParent, widget.WrapContent)
	lp.LeftMargin = item.Margins.Left
	lp.TopMargin = item.Margins.Top
	lp.RightMargin = item.Margins.Right
	lp.BottomMargin = item.Margins.Bottom
	return lp
}

// itemAdapter binds scene items to recycled blocks.
type itemAdapter struct {
	items []Item
}

func (a *itemAdapter) ItemCount() int                { return len(a.items) }
func (a *itemAdapter) ItemViewType(position int) int { return a.items[position].ViewType }

func (a *itemAdapter) CreateViewHolder(parent *widget.RecyclerView, viewType int) *widget.ViewHolder {
	return widget.NewViewHolder(widget.NewBlock(nil, 0), viewType)
}

func (a *itemAdapter) BindViewHolder(holder *widget.ViewHolder, position int) {
	item := a.items[position]
	b := holder.ItemView.(*widget.Block)
	b.PreferredHeight = item.Height
	b.Background = item.Color
	b.Label = item.Label
	b.LabelStyle = item.LabelStyle
	b.Border, b.BorderWidth = item.Border, item.BorderWidth
	b.SetLayoutParams(layoutParams(item))
}

var _ widget.RecyclerAdapter = (*itemAdapter)(nil)
