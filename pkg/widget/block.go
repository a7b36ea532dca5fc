package widget

import (
	"image"
	"image/color"

	"github.com/user/stitchshot/pkg/ports"
)

// Block is a leaf view: a filled rectangle with an optional centred label,
// image and border. Its natural height is PreferredHeight plus padding.
type Block struct {
	Base

	PreferredHeight int
	Label           string
	LabelStyle      ports.TextStyle
	Image           image.Image

	Border      color.Color
	BorderWidth int
}

// NewBlock creates a Block of the given colour and natural height.
func NewBlock(c color.Color, height int) *Block {
	b := &Block{PreferredHeight: height}
	b.Background = c
	return b
}

// WithLabel sets the label text drawn at the block centre.
func (b *Block) WithLabel(text string, style ports.TextStyle) *Block {
	b.Label = text
	b.LabelStyle = style
	return b
}

// Measure resolves the block against the constraints.
func (b *Block) Measure(widthSpec, heightSpec MeasureSpec) {
	desiredWidth := b.padding.Horizontal()
	if b.Image != nil {
		desiredWidth += b.Image.Bounds().Dx()
	}
	desiredHeight := b.PreferredHeight + b.padding.Vertical()

	b.SetMeasuredDimension(ResolveSize(desiredWidth, widthSpec), ResolveSize(desiredHeight, heightSpec))
}

// Draw fills the block and draws its image, border and label.
func (b *Block) Draw(canvas ports.Canvas) {
	b.DrawBackground(canvas)

	if b.Image != nil {
		canvas.DrawImageScaled(b.Image,
			b.padding.Left, b.padding.Top,
			b.Width()-b.padding.Horizontal(), b.Height()-b.padding.Vertical())
	}

	if b.Border != nil && b.BorderWidth > 0 {
		// Inset by half the stroke so the outline stays inside the bounds.
		half := b.BorderWidth / 2
		canvas.DrawRectStroke(half, half, b.Width()-b.BorderWidth, b.Height()-b.BorderWidth,
			b.Border, float64(b.BorderWidth))
	}

	if b.Label != "" {
		style := b.LabelStyle
		if style.Color == nil {
			style.Color = color.Black
		}
		x := b.padding.Left
		switch style.Align {
		case ports.AlignCenter:
			x = b.Width() / 2
		case ports.AlignRight:
			x = b.Width() - b.padding.Right
		}
		canvas.DrawText(b.Label, x, b.Height()/2, style)
	}
}

var _ View = (*Block)(nil)
