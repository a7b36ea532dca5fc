package widget

// MeasureMode is how a parent constrains a child along one axis.
type MeasureMode int

const (
	// Unspecified lets the child take whatever size it wants.
	Unspecified MeasureMode = iota
	// Exactly imposes Size.
	Exactly
	// AtMost lets the child grow up to Size.
	AtMost
)

// MeasureSpec is a size constraint for one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// MakeMeasureSpec creates a MeasureSpec.
func MakeMeasureSpec(size int, mode MeasureMode) MeasureSpec {
	if size < 0 {
		size = 0
	}
	return MeasureSpec{Mode: mode, Size: size}
}

// Special LayoutParams dimensions.
const (
	MatchParent = -1
	WrapContent = -2
)

// LayoutParams are the size requests a child makes of its parent.
type LayoutParams struct {
	Width  int
	Height int

	LeftMargin   int
	TopMargin    int
	RightMargin  int
	BottomMargin int
}

// NewLayoutParams creates LayoutParams without margins.
func NewLayoutParams(width, height int) *LayoutParams {
	return &LayoutParams{Width: width, Height: height}
}

// HorizontalMargins returns LeftMargin + RightMargin.
func (lp *LayoutParams) HorizontalMargins() int {
	return lp.LeftMargin + lp.RightMargin
}

// VerticalMargins returns TopMargin + BottomMargin.
func (lp *LayoutParams) VerticalMargins() int {
	return lp.TopMargin + lp.BottomMargin
}

// ChildMeasureSpec derives the spec for a child from the parent's spec,
// the space already used by padding and margins, and the child's
// requested dimension.
func ChildMeasureSpec(spec MeasureSpec, padding, childDimension int) MeasureSpec {
	size := spec.Size - padding
	if size < 0 {
		size = 0
	}

	switch spec.Mode {
	case Exactly:
		switch {
		case childDimension >= 0:
			return MakeMeasureSpec(childDimension, Exactly)
		case childDimension == MatchParent:
			return MakeMeasureSpec(size, Exactly)
		default:
			return MakeMeasureSpec(size, AtMost)
		}
	case AtMost:
		switch {
		case childDimension >= 0:
			return MakeMeasureSpec(childDimension, Exactly)
		default:
			return MakeMeasureSpec(size, AtMost)
		}
	default:
		if childDimension >= 0 {
			return MakeMeasureSpec(childDimension, Exactly)
		}
		return MakeMeasureSpec(size, Unspecified)
	}
}

// ResolveSize picks the final size for a view that wants desired.
func ResolveSize(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		if desired > spec.Size {
			return spec.Size
		}
		return desired
	default:
		return desired
	}
}
