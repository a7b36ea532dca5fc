package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/stitchshot/pkg/adapters/viewcontent"
	"github.com/user/stitchshot/pkg/config"
	"github.com/user/stitchshot/pkg/mocks"
)

func sceneConfig() config.SceneConfig {
	return config.SceneConfig{
		Width:          300,
		ViewportHeight: 200,
		Items: []config.ItemConfig{
			{Height: 100, Color: "#ff0000", Label: "first"},
			{Height: 50, Repeat: 3, Label: "row {n}"},
		},
	}
}

func TestItems(t *testing.T) {
	items, err := Items(sceneConfig())
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, items[0].Color)
	assert.Equal(t, palette[1], items[1].Color)
	assert.Equal(t, []string{"first", "row 2", "row 3", "row 4"},
		[]string{items[0].Label, items[1].Label, items[2].Label, items[3].Label})
	assert.Equal(t, float64(defaultFontSize), items[0].LabelStyle.FontSize)
}

func TestItemsBorder(t *testing.T) {
	items, err := Items(config.SceneConfig{Items: []config.ItemConfig{
		{Height: 40, BorderWidth: 2, BorderColor: "#0000ff"},
		{Height: 40, BorderWidth: 1},
		{Height: 40, BorderColor: "#0000ff"},
	}})
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{B: 255, A: 255}, items[0].Border)
	assert.Equal(t, 2, items[0].BorderWidth)
	assert.Equal(t, color.Black, items[1].Border)
	assert.Nil(t, items[2].Border)

	s, err := Build(config.ModeRecycler, config.SceneConfig{
		Width:          100,
		ViewportHeight: 100,
		Items:          []config.ItemConfig{{Height: 40, BorderWidth: 2}},
	})
	require.NoError(t, err)

	canvas := mocks.NewCanvas(100, 100)
	s.Recycler.Draw(canvas)
	strokes := canvas.CallsNamed("DrawRectStroke")
	require.Len(t, strokes, 1)
	assert.Equal(t, []interface{}{1, 1, 98, 38}, strokes[0].Args)
}

func TestItemsErrors(t *testing.T) {
	_, err := Items(config.SceneConfig{Items: []config.ItemConfig{{Height: 10, Color: "red"}}})
	assert.Error(t, err)

	_, err = Items(config.SceneConfig{Items: []config.ItemConfig{{Height: -1}}})
	assert.Error(t, err)
}

func TestBuildView(t *testing.T) {
	cfg := sceneConfig()
	cfg.Padding = config.PaddingConfig{Top: 10, Bottom: 10}

	s, err := Build(config.ModeView, cfg)
	require.NoError(t, err)

	assert.Equal(t, 300, s.Root.Width())
	assert.Equal(t, 10+100+150+10, s.Root.Height())
	assert.Nil(t, s.Scroll)
}

func TestBuildScroll(t *testing.T) {
	s, err := Build(config.ModeScroll, sceneConfig())
	require.NoError(t, err)
	require.NotNil(t, s.Scroll)

	assert.Equal(t, 200, s.Scroll.Height())
	assert.Equal(t, 50, s.Scroll.VerticalScrollRange())

	c, err := viewcontent.NewScroll(s.Scroll)
	require.NoError(t, err)
	assert.Equal(t, 250, c.ExtentHeight())
}

func TestBuildList(t *testing.T) {
	s, err := Build(config.ModeList, sceneConfig())
	require.NoError(t, err)
	require.NotNil(t, s.List)

	c, err := viewcontent.NewList(s.List)
	require.NoError(t, err)
	require.Equal(t, 4, c.ItemCount())

	h, err := c.MeasureItem(0)
	require.NoError(t, err)
	assert.Equal(t, 100, h)
}

func TestBuildRecycler(t *testing.T) {
	cfg := sceneConfig()
	cfg.Padding = config.PaddingConfig{Left: 12, Right: 12}
	cfg.Items[0].MarginLeft = 8

	s, err := Build(config.ModeRecycler, cfg)
	require.NoError(t, err)
	require.NotNil(t, s.Recycler)

	c, err := viewcontent.NewRecycler(s.Recycler)
	require.NoError(t, err)

	heights := make([]int, c.ItemCount())
	for i := range heights {
		heights[i], err = c.MeasureItem(i)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{100, 50, 50, 50}, heights)

	canvas := mocks.NewCanvas(300, 100)
	_, err = c.RenderItem(0, canvas)
	require.NoError(t, err)

	rects := canvas.CallsNamed("DrawRect")
	require.NotEmpty(t, rects)
	assert.Equal(t, []interface{}{0, 0, 268, 100}, rects[0].Args)

	texts := canvas.CallsNamed("DrawText")
	require.Len(t, texts, 1)
	assert.Equal(t, "first", texts[0].Args[0])
}

func TestBuildRecyclerWithDivider(t *testing.T) {
	cfg := sceneConfig()
	cfg.Divider = 2

	s, err := Build(config.ModeRecycler, cfg)
	require.NoError(t, err)

	c, err := viewcontent.NewRecycler(s.Recycler)
	require.NoError(t, err)

	// The divider inset is taken out of the item, not added to it.
	h, err := c.MeasureItem(1)
	require.NoError(t, err)
	assert.Equal(t, 48, h)
}

func TestBuildErrors(t *testing.T) {
	cfg := sceneConfig()

	_, err := Build("grid", cfg)
	assert.Error(t, err)

	cfg.Width = 0
	_, err = Build(config.ModeScroll, cfg)
	assert.Error(t, err)

	cfg = sceneConfig()
	cfg.ViewportHeight = 0
	_, err = Build(config.ModeList, cfg)
	assert.Error(t, err)

	_, err = Build(config.ModeView, cfg)
	assert.NoError(t, err)
}
