package layout

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/user/stitchshot/pkg/pipeline"
)

// RenderSVG draws the layout as an SVG of the target size: the background
// band, every item boundary and the logo area, all in destination pixels.
func RenderSVG(layout pipeline.LayoutResult, heights []int, sourceWidth int) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(layout.Target.Width, layout.Target.Height)
	canvas.Rect(0, 0, layout.Target.Width, layout.Target.Height, "fill:#ffffff;stroke:#999999")

	band := layout.BackgroundBand
	canvas.Rect(band.X, band.Y, band.Width, band.Height, "fill:#dde7f3")

	// Items are drawn from content x = 0, which the pivot maps left of the
	// band when the source is narrower than the target.
	y := 0
	for i, h := range heights {
		x1, y1 := ToCanvas(layout, 0, float64(y))
		x2, y2 := ToCanvas(layout, float64(sourceWidth), float64(y+h))
		canvas.Rect(int(x1), int(y1), int(x2-x1), int(y2-y1), "fill:none;stroke:#3366cc")
		canvas.Text(int(x1)+4, int(y1)+12, fmt.Sprintf("#%d %dpx", i, h), "font-size:10px;fill:#3366cc")
		y += h
	}

	if layout.HasLogo {
		a := layout.LogoArea
		x1, y1 := ToCanvas(layout, float64(a.X), float64(a.Y))
		x2, y2 := ToCanvas(layout, float64(a.X+a.Width), float64(a.Y+a.Height))
		canvas.Rect(int(x1), int(y1), int(x2-x1), int(y2-y1), "fill:#f3dede;stroke:#cc3333")
	}

	canvas.Text(4, layout.Target.Height-4,
		fmt.Sprintf("scale %.3f, total %dpx", layout.Scale, layout.TotalHeight),
		"font-size:10px;fill:#333333")
	canvas.End()
	return buf.Bytes()
}
